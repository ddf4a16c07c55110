package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravenpi/wore/internal/models"
)

type recordingSender struct {
	texts  []string
	chats  []string
	voices []VoiceNote
}

func (r *recordingSender) SendText(chatID, text string) {
	r.chats = append(r.chats, chatID)
	r.texts = append(r.texts, text)
}

func (r *recordingSender) SendVoice(note VoiceNote) {
	r.voices = append(r.voices, note)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testChats() []models.Chat {
	return []models.Chat{
		{ID: "1", Name: "Анна Петрова", Kind: models.ChatDirect, Online: true},
		{ID: "2", Name: "Рабочая группа", Kind: models.ChatGroup},
		{ID: "3", Name: "Канал новостей", Kind: models.ChatChannel},
	}
}

func newTestSession(t *testing.T) (*Session, *recordingSender, *fakeClock) {
	t.Helper()
	sender := &recordingSender{}
	clock := &fakeClock{t: time.Date(2024, 5, 1, 14, 33, 0, 0, time.UTC)}
	return NewSession(testChats(), sender, WithClock(clock.Now)), sender, clock
}

func TestNewSessionInitialState(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.Equal(t, "1", s.SelectedID())
	assert.Empty(t, s.Draft())
	assert.False(t, s.Recording())
	assert.False(t, s.PanelVisible())
	assert.Empty(t, s.ActiveEffect())
}

func TestNewSessionWithoutChats(t *testing.T) {
	s := NewSession(nil, nil)

	assert.Empty(t, s.SelectedID())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSelectChat(t *testing.T) {
	s, _, _ := newTestSession(t)

	require.True(t, s.SelectChat("3"))
	chat, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Канал новостей", chat.Name)
}

func TestSelectUnknownChatIsIgnored(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.SelectChat("2")

	assert.False(t, s.SelectChat("42"))
	assert.Equal(t, "2", s.SelectedID())
}

func TestUpdateDraftIsVerbatim(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.UpdateDraft("  привет\t")

	assert.Equal(t, "  привет\t", s.Draft())
}

func TestSendClearsDraft(t *testing.T) {
	s, sender, _ := newTestSession(t)
	s.SelectChat("2")
	s.UpdateDraft(" Собрание в 15:00 ")

	assert.True(t, s.Send())
	assert.Empty(t, s.Draft())
	assert.Equal(t, []string{" Собрание в 15:00 "}, sender.texts)
	assert.Equal(t, []string{"2"}, sender.chats)
}

func TestSendWhitespaceOnlyIsNoop(t *testing.T) {
	s, sender, _ := newTestSession(t)
	s.UpdateDraft("   ")

	assert.False(t, s.Send())
	assert.Equal(t, "   ", s.Draft())
	assert.Empty(t, sender.texts)
}

func TestSendWithoutSender(t *testing.T) {
	s := NewSession(testChats(), nil)
	s.UpdateDraft("hi")

	assert.True(t, s.Send())
	assert.Empty(t, s.Draft())
}

func TestToggleRecordingShowsPanel(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.ToggleRecording()

	assert.True(t, s.Recording())
	assert.True(t, s.PanelVisible())
}

func TestStopRecordingKeepsPanelVisibility(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.ToggleRecording()
	s.ToggleRecording()
	assert.False(t, s.Recording())
	assert.True(t, s.PanelVisible(), "panel stays open after stopping")

	s.ToggleRecording()
	s.ApplyEffect("Эхо")
	s.ToggleRecording()
	assert.False(t, s.PanelVisible(), "panel stays hidden after stopping")
}

func TestStopRecordingEmitsVoiceNote(t *testing.T) {
	s, sender, clock := newTestSession(t)
	s.SelectChat("3")

	s.ToggleRecording()
	s.ApplyEffect("Робот")
	clock.Advance(15 * time.Second)
	assert.Equal(t, 15*time.Second, s.RecordingFor())
	s.ToggleRecording()

	require.Len(t, sender.voices, 1)
	assert.Equal(t, VoiceNote{ChatID: "3", Duration: 15 * time.Second, Effect: "Робот"}, sender.voices[0])
	assert.Zero(t, s.RecordingFor())
	assert.Equal(t, "Робот", s.ActiveEffect(), "effect carries over to the next note")
}

func TestVoiceNoteGoesToChatRecordingStartedIn(t *testing.T) {
	s, sender, clock := newTestSession(t)
	s.SelectChat("2")

	s.ToggleRecording()
	assert.Equal(t, "2", s.RecordingChatID())
	require.True(t, s.SelectChat("3"))
	clock.Advance(4 * time.Second)
	s.ToggleRecording()

	require.Len(t, sender.voices, 1)
	assert.Equal(t, "2", sender.voices[0].ChatID)
	assert.Equal(t, "3", s.SelectedID())
	assert.Empty(t, s.RecordingChatID())
}

func TestComposerStatesAllReachable(t *testing.T) {
	s, _, _ := newTestSession(t)
	type state struct{ recording, panel bool }
	seen := map[state]bool{}
	record := func() { seen[state{s.Recording(), s.PanelVisible()}] = true }

	record()
	s.ToggleRecording()
	record()
	s.TogglePanelVisible()
	record()
	s.ToggleRecording()
	s.TogglePanelVisible()
	record()

	assert.Len(t, seen, 4)
}

func TestTogglePanelVisibleIndependentOfRecording(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.TogglePanelVisible()
	assert.True(t, s.PanelVisible())
	assert.False(t, s.Recording())

	s.TogglePanelVisible()
	assert.False(t, s.PanelVisible())
}

func TestApplyEffectHidesPanel(t *testing.T) {
	for _, visible := range []bool{true, false} {
		s, _, _ := newTestSession(t)
		if visible {
			s.TogglePanelVisible()
		}

		s.ApplyEffect("Робот")

		assert.Equal(t, "Робот", s.ActiveEffect())
		assert.False(t, s.PanelVisible())
	}
}

func TestClosePanel(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.ToggleRecording()

	s.ClosePanel()

	assert.False(t, s.PanelVisible())
	assert.True(t, s.Recording())
}

func TestReset(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.SelectChat("2")
	s.UpdateDraft("draft")
	s.ToggleRecording()
	s.ApplyEffect("Эхо")

	s.Reset()

	assert.Equal(t, "1", s.SelectedID())
	assert.Empty(t, s.Draft())
	assert.False(t, s.Recording())
	assert.False(t, s.PanelVisible())
	assert.Empty(t, s.ActiveEffect())
}
