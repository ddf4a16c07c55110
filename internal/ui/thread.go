package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/saravenpi/wore/internal/models"
)

const waveformWidth = 10

// renderThread lays out messages for a viewport of the given width. Own
// messages are right-aligned.
func renderThread(messages []models.Message, width int) string {
	if width <= 0 {
		width = 80
	}
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 12 {
		bubbleWidth = width
	}

	var content strings.Builder
	for i, message := range messages {
		if i > 0 {
			content.WriteString("\n")
		}

		header := messageHeaderStyle.Render(fmt.Sprintf("%s • %s", message.Sender, message.Time))
		body := renderBody(message, bubbleWidth-2)

		style := messageFromOtherStyle
		align := lipgloss.Left
		if message.IsOwn {
			style = messageFromMeStyle
			align = lipgloss.Right
		}

		block := lipgloss.JoinVertical(align, header, style.Render(body))
		content.WriteString(lipgloss.NewStyle().Align(align).Width(width).Render(block) + "\n")
	}
	return content.String()
}

func renderBody(message models.Message, wrapWidth int) string {
	if message.Kind != models.MessageVoice {
		return wordwrap.String(message.Content, wrapWidth)
	}

	duration := message.Duration
	if duration == "" {
		duration = "0:00"
	}
	played := waveformWidth / 3
	line := fmt.Sprintf("▶ %s%s %s",
		strings.Repeat("━", played),
		strings.Repeat("─", waveformWidth-played),
		duration)
	if message.VoiceEffect != "" {
		line += "\n✦ " + message.VoiceEffect
	}
	return line
}

// renderHeader shows the active chat's avatar, name and presence.
func renderHeader(chat models.Chat, ok bool) string {
	if !ok {
		return mutedStyle.Render("Выберите чат")
	}

	var status string
	switch {
	case chat.Kind == models.ChatGroup:
		status = mutedStyle.Render("группа")
	case chat.Kind == models.ChatChannel:
		status = mutedStyle.Render("канал")
	case chat.Online:
		status = onlineStyle.Render("в сети")
	default:
		status = mutedStyle.Render("не в сети")
	}

	info := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(chat.Name), status)
	return lipgloss.JoinHorizontal(lipgloss.Center, avatarStyle.Render(chat.Avatar), " ", info)
}
