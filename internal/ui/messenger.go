package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/wore/internal/chat"
	"github.com/saravenpi/wore/internal/effects"
	"github.com/saravenpi/wore/internal/logger"
	"github.com/saravenpi/wore/internal/models"
	"github.com/saravenpi/wore/internal/outbox"
)

type focus int

const (
	focusSidebar focus = iota
	focusComposer
)

const (
	headerHeight   = 3
	composerHeight = 3
	helpHeight     = 1
)

type threadLoadedMsg struct {
	chatID   string
	messages []models.Message
	chats    []models.Chat
}

// Deps are the collaborators the messenger drives.
type Deps struct {
	Session *chat.Session
	Panel   *effects.Panel
	Outbox  *outbox.Outbox
	Log     *logger.Logger
}

type MessengerModel struct {
	session *chat.Session
	panel   *effects.Panel
	outbox  *outbox.Outbox
	log     *logger.Logger

	list     list.Model
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	effects  *effectsView

	tab      sidebarTab
	focus    focus
	messages []models.Message

	windowWidth  int
	windowHeight int
}

// NewMessengerModel wires the panel's events to the session and builds the
// widgets. The session's sender should be deps.Outbox so deliveries show up
// in the thread.
func NewMessengerModel(deps Deps) MessengerModel {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Panel.OnApplyEffect = func(name string) {
		deps.Session.ApplyEffect(name)
		deps.Log.Info("voice effect applied", "effect", name)
	}
	deps.Panel.OnClose = deps.Session.ClosePanel

	ti := textinput.New()
	ti.Placeholder = "Написать сообщение..."
	ti.CharLimit = 1000
	ti.Prompt = "› "

	vp := viewport.New(80, 20)

	m := MessengerModel{
		session:      deps.Session,
		panel:        deps.Panel,
		outbox:       deps.Outbox,
		log:          deps.Log,
		list:         newChatList(),
		viewport:     vp,
		input:        ti,
		spinner:      newRecordingSpinner(),
		effects:      &effectsView{panel: deps.Panel},
		windowWidth:  100,
		windowHeight: 30,
	}
	m.setChatItems(m.outbox.Chats())
	m.layout()
	return m
}

// newRecordingSpinner returns a spinner with a fresh id, so ticks from an
// earlier recording are rejected.
func newRecordingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Pulse
	s.Style = lipgloss.NewStyle().Foreground(colorRecording)
	return s
}

func (m MessengerModel) Init() tea.Cmd {
	return m.loadThreadCmd(m.session.SelectedID())
}

// loadThreadCmd marks the chat read and snapshots its thread and the chat
// list off the update loop.
func (m MessengerModel) loadThreadCmd(chatID string) tea.Cmd {
	ob := m.outbox
	return func() tea.Msg {
		ob.MarkRead(chatID)
		return threadLoadedMsg{
			chatID:   chatID,
			messages: ob.Thread(chatID),
			chats:    ob.Chats(),
		}
	}
}

func (m MessengerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *MessengerModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return nil

	case threadLoadedMsg:
		cmd := m.setChatItems(msg.chats)
		if msg.chatID != m.session.SelectedID() {
			return cmd
		}
		m.messages = msg.messages
		m.viewport.SetContent(renderThread(m.messages, m.viewport.Width))
		m.viewport.GotoBottom()
		return cmd

	case list.FilterMatchesMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if m.list.FilterState() != list.Filtering {
			m.selectActiveItem()
		}
		return cmd

	case spinner.TickMsg:
		if !m.session.Recording() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other widget messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *MessengerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == keyCtrlC {
		return tea.Quit
	}

	if m.session.PanelVisible() {
		return m.handlePanelKey(key)
	}

	switch key {
	case keyRecord:
		return m.toggleRecording()
	case keyEffects:
		if m.session.Recording() {
			m.session.TogglePanelVisible()
		}
		return nil
	case keyTab:
		if m.list.FilterState() != list.Filtering {
			m.setFocus((m.focus + 1) % 2)
			return nil
		}
	}

	if m.focus == focusComposer {
		return m.handleComposerKey(msg)
	}
	return m.handleSidebarKey(msg)
}

func (m *MessengerModel) handlePanelKey(key string) tea.Cmd {
	switch key {
	case keyEsc, keyEffects:
		m.panel.Close()
	case keyRecord:
		return m.toggleRecording()
	case keyEnter, keySpace:
		id, ok, err := m.effects.activate()
		if !ok {
			return nil
		}
		if errors.Is(err, effects.ErrEffectNotFound) {
			m.log.Debug("ignoring unknown voice effect", "effect_id", id)
		}
	default:
		m.effects.move(key)
	}
	return nil
}

func (m *MessengerModel) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}

	switch msg.String() {
	case keyQuit:
		return tea.Quit
	case keyPrevTab, keyNextTab:
		n := sidebarTab(len(tabTitles))
		if msg.String() == keyPrevTab {
			m.tab = (m.tab + n - 1) % n
		} else {
			m.tab = (m.tab + 1) % n
		}
		return m.setChatItems(m.outbox.Chats())
	case keyEnter:
		item, ok := m.list.SelectedItem().(chatItem)
		if !ok {
			return nil
		}
		return m.selectChat(item.chat.ID)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *MessengerModel) handleComposerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEsc:
		m.setFocus(focusSidebar)
		return nil
	case keyEnter:
		m.session.UpdateDraft(m.input.Value())
		chatID := m.session.SelectedID()
		if !m.session.Send() {
			return nil
		}
		m.input.Reset()
		m.log.Info("message sent", "chat_id", chatID)
		return m.loadThreadCmd(chatID)
	case keyPageUp, keyPageDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.UpdateDraft(m.input.Value())
	return cmd
}

func (m *MessengerModel) selectChat(id string) tea.Cmd {
	if !m.session.SelectChat(id) {
		m.log.Debug("ignoring unknown chat", "chat_id", id)
		return nil
	}
	m.log.Info("chat selected", "chat_id", id)
	m.messages = nil
	m.setFocus(focusComposer)
	return m.loadThreadCmd(id)
}

func (m *MessengerModel) toggleRecording() tea.Cmd {
	if !m.session.Recording() {
		m.session.ToggleRecording()
		m.log.Info("recording started", "chat_id", m.session.RecordingChatID())
		m.spinner = newRecordingSpinner()
		return m.spinner.Tick
	}
	chatID := m.session.RecordingChatID()
	m.session.ToggleRecording()
	m.log.Info("recording stopped", "chat_id", chatID, "effect", m.session.ActiveEffect())
	return m.loadThreadCmd(m.session.SelectedID())
}

func (m *MessengerModel) setFocus(f focus) {
	m.focus = f
	if f == focusComposer {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// setChatItems refreshes the sidebar and keeps the cursor on the active chat.
// With a filter applied the list is re-filtered by the returned command.
func (m *MessengerModel) setChatItems(chats []models.Chat) tea.Cmd {
	cmd := m.list.SetItems(chatItems(chats, m.tab))
	m.selectActiveItem()
	return cmd
}

// selectActiveItem puts the cursor on the active chat among the visible
// items.
func (m *MessengerModel) selectActiveItem() {
	for i, item := range m.list.VisibleItems() {
		if item.(chatItem).chat.ID == m.session.SelectedID() {
			m.list.Select(i)
			return
		}
	}
}

func (m *MessengerModel) layout() {
	threadWidth := m.windowWidth - sidebarWidth - 2
	if threadWidth < 20 {
		threadWidth = 20
	}

	panelHeight := 0
	if m.session.PanelVisible() {
		panelHeight = lipgloss.Height(m.effects.View())
	}

	threadHeight := m.windowHeight - headerHeight - composerHeight - helpHeight - panelHeight
	if threadHeight < 3 {
		threadHeight = 3
	}

	m.list.SetSize(sidebarWidth, m.windowHeight-sidebarTabRows-helpHeight)
	m.input.Width = threadWidth - 44
	if m.input.Width < 10 {
		m.input.Width = 10
	}

	if m.viewport.Width != threadWidth || m.viewport.Height != threadHeight {
		atBottom := m.viewport.AtBottom()
		m.viewport.Width = threadWidth
		m.viewport.Height = threadHeight
		m.viewport.SetContent(renderThread(m.messages, threadWidth))
		if atBottom {
			m.viewport.GotoBottom()
		}
	}
}

func (m MessengerModel) View() string {
	sidebar := sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		renderTabs(m.tab),
		m.list.View(),
	))

	selected, ok := m.session.Selected()
	sections := []string{headerStyle.Width(m.viewport.Width).Render(renderHeader(selected, ok))}

	if len(m.messages) == 0 {
		sections = append(sections, lipgloss.NewStyle().Height(m.viewport.Height).
			Render(normalStyle.Render("  Сообщений пока нет.")))
	} else {
		sections = append(sections, m.viewport.View())
	}

	if m.session.PanelVisible() {
		sections = append(sections, m.effects.View())
	}
	sections = append(sections, composerStyle.Width(m.viewport.Width).Render(m.composerView()))

	thread := lipgloss.JoinVertical(lipgloss.Left, sections...)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", thread)
	return body + "\n" + helpStyle.Render(m.helpText())
}

func (m MessengerModel) composerView() string {
	line := m.input.View()
	if !m.session.Recording() {
		return line + "  " + mutedStyle.Render("🎤")
	}

	rec := recordingStyle.Render("● REC " + outbox.FormatDuration(m.session.RecordingFor().Truncate(time.Second)))
	status := fmt.Sprintf("%s %s %s", m.spinner.View(), rec, accentStyle.Render("✦ Эффекты"))
	if effect := m.session.ActiveEffect(); effect != "" {
		status += " " + accentStyle.Render(effect)
	}
	return line + "  " + status
}

func (m MessengerModel) helpText() string {
	switch {
	case m.session.PanelVisible():
		return "↑↓←→: choose • enter: apply • esc/ctrl+e: close • ctrl+r: stop recording • ctrl+c: quit"
	case m.focus == focusComposer:
		help := "enter: send • ctrl+r: record • pgup/pgdn: scroll • tab/esc: chats • ctrl+c: quit"
		if m.session.Recording() {
			help = "enter: send • ctrl+r: stop • ctrl+e: effects • tab/esc: chats • ctrl+c: quit"
		}
		return help
	default:
		return "↑↓/jk: navigate • enter: open • /: search • [ ]: tabs • tab: composer • ctrl+r: record • q: quit"
	}
}
