// Package chat owns the active conversation and the composer state: draft
// text, the recording flag, effect panel visibility and the effect applied
// to the next voice note.
package chat

import (
	"strings"
	"time"

	"github.com/saravenpi/wore/internal/models"
)

// VoiceNote describes a finished recording. No audio is captured; the note
// only carries what the thread needs to display it.
type VoiceNote struct {
	ChatID   string
	Duration time.Duration
	Effect   string
}

// Sender receives outgoing messages. Delivery itself is not modelled here.
type Sender interface {
	SendText(chatID, text string)
	SendVoice(note VoiceNote)
}

type Session struct {
	chats    []models.Chat
	known    map[string]bool
	sender   Sender
	now      func() time.Time
	selected string

	draft         string
	recording     bool
	recordStarted time.Time
	recordChat    string
	panelVisible  bool
	activeEffect  string
}

type Option func(*Session)

// WithClock replaces time.Now for measuring voice note durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts a session over chats with the first chat selected.
// sender may be nil, in which case outgoing messages are dropped.
func NewSession(chats []models.Chat, sender Sender, opts ...Option) *Session {
	s := &Session{
		chats:  chats,
		known:  make(map[string]bool, len(chats)),
		sender: sender,
		now:    time.Now,
	}
	for _, c := range chats {
		s.known[c.ID] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset returns the composer to not-recording, panel-hidden with an empty
// draft and no effect, and reselects the first chat.
func (s *Session) Reset() {
	s.selected = ""
	if len(s.chats) > 0 {
		s.selected = s.chats[0].ID
	}
	s.draft = ""
	s.recording = false
	s.recordStarted = time.Time{}
	s.recordChat = ""
	s.panelVisible = false
	s.activeEffect = ""
}

// SelectChat makes id the active chat. Ids not in the chat list are ignored.
func (s *Session) SelectChat(id string) bool {
	if !s.known[id] {
		return false
	}
	s.selected = id
	return true
}

func (s *Session) SelectedID() string { return s.selected }

// Selected returns the active chat snapshot.
func (s *Session) Selected() (models.Chat, bool) {
	for _, c := range s.chats {
		if c.ID == s.selected {
			return c, true
		}
	}
	return models.Chat{}, false
}

func (s *Session) UpdateDraft(text string) { s.draft = text }

func (s *Session) Draft() string { return s.draft }

// Send hands the draft to the sender and clears it. Blank drafts are left
// untouched and nothing is sent.
func (s *Session) Send() bool {
	if strings.TrimSpace(s.draft) == "" {
		return false
	}
	if s.sender != nil {
		s.sender.SendText(s.selected, s.draft)
	}
	s.draft = ""
	return true
}

// ToggleRecording starts or stops recording. Starting always shows the
// effect panel; stopping leaves it as it is and emits a voice note to the
// chat the recording was started in.
func (s *Session) ToggleRecording() {
	if !s.recording {
		s.recording = true
		s.recordStarted = s.now()
		s.recordChat = s.selected
		s.panelVisible = true
		return
	}

	s.recording = false
	note := VoiceNote{
		ChatID:   s.recordChat,
		Duration: s.now().Sub(s.recordStarted),
		Effect:   s.activeEffect,
	}
	s.recordStarted = time.Time{}
	s.recordChat = ""
	if s.sender != nil {
		s.sender.SendVoice(note)
	}
}

func (s *Session) TogglePanelVisible() { s.panelVisible = !s.panelVisible }

// ApplyEffect stores the effect for the next voice note and hides the panel.
func (s *Session) ApplyEffect(name string) {
	s.activeEffect = name
	s.panelVisible = false
}

func (s *Session) ClosePanel() { s.panelVisible = false }

// RecordingChatID is the chat the current recording will be delivered to.
func (s *Session) RecordingChatID() string { return s.recordChat }

func (s *Session) Recording() bool      { return s.recording }
func (s *Session) PanelVisible() bool   { return s.panelVisible }
func (s *Session) ActiveEffect() string { return s.activeEffect }
func (s *Session) Chats() []models.Chat { return s.chats }

// RecordingFor reports how long the current recording has been running.
func (s *Session) RecordingFor() time.Duration {
	if !s.recording {
		return 0
	}
	return s.now().Sub(s.recordStarted)
}
