// Package outbox delivers composed messages into in-memory chat threads.
// Nothing leaves the process and nothing is written to disk.
package outbox

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saravenpi/wore/internal/chat"
	"github.com/saravenpi/wore/internal/models"
)

const voicePreview = "Голосовое сообщение"

// Outbox is safe for concurrent use; tea.Cmd goroutines read threads while
// the update loop delivers.
type Outbox struct {
	mu      sync.RWMutex
	me      string
	now     func() time.Time
	chats   []models.Chat
	threads map[string][]models.Message
}

type Option func(*Outbox)

func WithClock(now func() time.Time) Option {
	return func(o *Outbox) { o.now = now }
}

// New seeds the outbox with chats and their existing threads. me is the
// sender label used for own messages.
func New(me string, chats []models.Chat, threads map[string][]models.Message, opts ...Option) *Outbox {
	o := &Outbox{
		me:      me,
		now:     time.Now,
		chats:   append([]models.Chat(nil), chats...),
		threads: make(map[string][]models.Message, len(threads)),
	}
	for id, msgs := range threads {
		o.threads[id] = append([]models.Message(nil), msgs...)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SendText appends an own text message to chatID's thread.
func (o *Outbox) SendText(chatID, text string) {
	o.deliver(chatID, models.Message{
		Kind:    models.MessageText,
		Content: text,
	}, text)
}

// SendVoice appends an own voice message carrying the note's duration and
// effect.
func (o *Outbox) SendVoice(note chat.VoiceNote) {
	o.deliver(note.ChatID, models.Message{
		Kind:        models.MessageVoice,
		Duration:    FormatDuration(note.Duration),
		VoiceEffect: note.Effect,
	}, voicePreview)
}

func (o *Outbox) deliver(chatID string, msg models.Message, preview string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.chatIndex(chatID)
	if idx < 0 {
		return
	}

	label := o.now().Format("15:04")
	msg.ID = uuid.NewString()
	msg.ChatID = chatID
	msg.Sender = o.me
	msg.Time = label
	msg.IsOwn = true
	o.threads[chatID] = append(o.threads[chatID], msg)

	c := o.chats[idx]
	c.LastMessage = preview
	c.Time = label
	o.chats[idx] = c
}

func (o *Outbox) chatIndex(chatID string) int {
	for i, c := range o.chats {
		if c.ID == chatID {
			return i
		}
	}
	return -1
}

// MarkRead clears chatID's unread counter.
func (o *Outbox) MarkRead(chatID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if idx := o.chatIndex(chatID); idx >= 0 {
		o.chats[idx].Unread = 0
	}
}

// Thread returns a copy of chatID's messages in delivery order.
func (o *Outbox) Thread(chatID string) []models.Message {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]models.Message(nil), o.threads[chatID]...)
}

// Chats returns a copy of the chat list with updated previews.
func (o *Outbox) Chats() []models.Chat {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]models.Chat(nil), o.chats...)
}

// FormatDuration renders d as m:ss, rounding to the nearest second.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
