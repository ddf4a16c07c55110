package models

import "fmt"

type ChatKind string

const (
	ChatDirect  ChatKind = "direct"
	ChatGroup   ChatKind = "group"
	ChatChannel ChatKind = "channel"
)

func (k ChatKind) Valid() bool {
	switch k {
	case ChatDirect, ChatGroup, ChatChannel:
		return true
	}
	return false
}

// Chat is a sidebar entry. Snapshots are never mutated in place.
type Chat struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	LastMessage string   `yaml:"last_message"`
	Time        string   `yaml:"time"`
	Unread      int      `yaml:"unread"`
	Avatar      string   `yaml:"avatar"`
	Online      bool     `yaml:"online"`
	Kind        ChatKind `yaml:"kind"`
}

type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageVoice MessageKind = "voice"
)

func (k MessageKind) Valid() bool {
	return k == MessageText || k == MessageVoice
}

type Message struct {
	ID          string      `yaml:"id"`
	ChatID      string      `yaml:"chat_id"`
	Sender      string      `yaml:"sender"`
	Content     string      `yaml:"content"`
	Time        string      `yaml:"time"`
	Kind        MessageKind `yaml:"kind"`
	IsOwn       bool        `yaml:"own"`
	Duration    string      `yaml:"duration,omitempty"`
	VoiceEffect string      `yaml:"voice_effect,omitempty"`
}

// VoiceEffect is a catalog entry. Whether it is active is tracked by the
// effects panel, not by the entry itself.
type VoiceEffect struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Validate reports the first structural problem with the chat snapshot.
func (c Chat) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("chat %q: empty id", c.Name)
	}
	if c.Unread < 0 {
		return fmt.Errorf("chat %s: negative unread count %d", c.ID, c.Unread)
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("chat %s: unknown kind %q", c.ID, c.Kind)
	}
	return nil
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message in chat %s: empty id", m.ChatID)
	}
	if !m.Kind.Valid() {
		return fmt.Errorf("message %s: unknown kind %q", m.ID, m.Kind)
	}
	if m.Kind == MessageText && (m.Duration != "" || m.VoiceEffect != "") {
		return fmt.Errorf("message %s: duration and effect are voice-only", m.ID)
	}
	return nil
}
