package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saravenpi/wore/internal/models"
)

func TestChatItem(t *testing.T) {
	item := chatItem{chat: models.Chat{
		ID:          "3",
		Name:        "Канал новостей",
		LastMessage: "Обновление системы безопасности и прочее",
		Time:        "12:15",
		Unread:      5,
		Kind:        models.ChatChannel,
	}}

	assert.Equal(t, "# Канал новостей", item.Title())
	assert.Equal(t, "Канал новостей", item.FilterValue())
	assert.Contains(t, item.Description(), "12:15 • ")
	assert.Contains(t, item.Description(), "…")
	assert.Contains(t, item.Description(), "(5)")
}

func TestChatItemOnlineAndRead(t *testing.T) {
	item := chatItem{chat: models.Chat{Name: "Анна", LastMessage: "hi", Time: "14:32", Online: true, Kind: models.ChatDirect}}

	assert.Equal(t, "👤 Анна ●", item.Title())
	assert.Equal(t, "14:32 • hi", item.Description())
}

func TestChatItemsByTab(t *testing.T) {
	chats := []models.Chat{
		{ID: "1", Kind: models.ChatDirect},
		{ID: "2", Kind: models.ChatGroup},
		{ID: "3", Kind: models.ChatChannel},
		{ID: "4", Kind: models.ChatDirect},
	}

	assert.Len(t, chatItems(chats, tabAllChats), 4)

	contacts := chatItems(chats, tabContacts)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "4", contacts[1].(chatItem).chat.ID)
}
