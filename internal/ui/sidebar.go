package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/saravenpi/wore/internal/models"
)

const (
	sidebarWidth   = 36
	previewWidth   = 22
	sidebarTabRows = 2
)

type sidebarTab int

const (
	tabAllChats sidebarTab = iota
	tabContacts
)

var tabTitles = []string{"Все чаты", "Контакты"}

type chatItem struct {
	chat models.Chat
}

func (i chatItem) Title() string {
	title := fmt.Sprintf("%s %s", kindGlyph(i.chat.Kind), i.chat.Name)
	if i.chat.Online {
		title += " ●"
	}
	return title
}

func (i chatItem) Description() string {
	preview := truncate.StringWithTail(i.chat.LastMessage, previewWidth, "…")
	desc := fmt.Sprintf("%s • %s", i.chat.Time, preview)
	if i.chat.Unread > 0 {
		desc += fmt.Sprintf(" (%d)", i.chat.Unread)
	}
	return desc
}

func (i chatItem) FilterValue() string {
	return i.chat.Name
}

func kindGlyph(kind models.ChatKind) string {
	switch kind {
	case models.ChatGroup:
		return "👥"
	case models.ChatChannel:
		return "#"
	default:
		return "👤"
	}
}

func newChatList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorAccentSoft).
		BorderLeftForeground(colorAccent).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorTextMuted).
		BorderLeftForeground(colorAccent)

	l := list.New([]list.Item{}, delegate, sidebarWidth, 20)
	l.Title = "Wore Messenger"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.FilterInput.Placeholder = "Поиск чатов..."
	return l
}

// chatItems returns the list items visible under tab. The contacts tab only
// shows direct conversations.
func chatItems(chats []models.Chat, tab sidebarTab) []list.Item {
	items := make([]list.Item, 0, len(chats))
	for _, c := range chats {
		if tab == tabContacts && c.Kind != models.ChatDirect {
			continue
		}
		items = append(items, chatItem{chat: c})
	}
	return items
}

func renderTabs(active sidebarTab) string {
	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		style := tabStyle
		if sidebarTab(i) == active {
			style = tabActiveStyle
		}
		tabs[i] = lipgloss.PlaceHorizontal(sidebarWidth/2, lipgloss.Center, style.Render(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
