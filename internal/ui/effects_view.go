package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/wore/internal/effects"
)

const (
	effectCellWidth = 16
	sliderWidth     = 16
	gridColumns     = 2
)

type slider int

const (
	sliderVolume slider = iota
	sliderSpeed
	sliderPitch
	sliderCount
)

var iconGlyphs = map[string]string{
	"Bot":     "🤖",
	"Radio":   "📻",
	"Volume2": "🔊",
	"VolumeX": "🔇",
	"Volume1": "🔉",
	"Zap":     "⚡",
}

// effectsView is the keyboard cursor over the panel: catalog cells first,
// then the three sliders.
type effectsView struct {
	panel  *effects.Panel
	cursor int
}

func (v *effectsView) cells() int { return v.panel.Len() }

// focusedSlider reports which slider the cursor is on, if any.
func (v *effectsView) focusedSlider() (slider, bool) {
	if v.cursor < v.cells() {
		return 0, false
	}
	return slider(v.cursor - v.cells()), true
}

func (v *effectsView) move(key string) {
	n := v.cells()
	onGrid := v.cursor < n

	switch key {
	case keyUp, keyK:
		switch {
		case onGrid && v.cursor >= gridColumns:
			v.cursor -= gridColumns
		case !onGrid && v.cursor == n && n > 0:
			v.cursor = n - 1
		case !onGrid && v.cursor > n:
			v.cursor--
		}
	case keyDown, keyJ:
		switch {
		case onGrid && v.cursor+gridColumns < n:
			v.cursor += gridColumns
		case onGrid:
			v.cursor = n
		case v.cursor < n+int(sliderCount)-1:
			v.cursor++
		}
	case keyLeft, keyH:
		if onGrid {
			if v.cursor%gridColumns > 0 {
				v.cursor--
			}
			return
		}
		v.nudge(-1)
	case keyRight, keyL:
		if onGrid {
			if v.cursor%gridColumns < gridColumns-1 && v.cursor+1 < n {
				v.cursor++
			}
			return
		}
		v.nudge(1)
	}
}

func (v *effectsView) nudge(steps int) {
	s, ok := v.focusedSlider()
	if !ok {
		return
	}
	switch s {
	case sliderVolume:
		v.panel.NudgeVolume(steps)
	case sliderSpeed:
		v.panel.NudgeSpeed(steps)
	case sliderPitch:
		v.panel.NudgePitch(steps)
	}
}

// activate toggles the effect under the cursor. It returns the effect id
// and the Toggle error; sliders are not activatable.
func (v *effectsView) activate() (id string, ok bool, err error) {
	e, ok := v.panel.At(v.cursor)
	if !ok {
		return "", false, nil
	}
	return e.ID, true, v.panel.Toggle(e.ID)
}

func (v *effectsView) View() string {
	var b strings.Builder

	title := titleStyle.Render("Голосовые эффекты")
	closeHint := mutedStyle.Render("esc ✕")
	gap := effectCellWidth*gridColumns + 1 - lipgloss.Width(title) - lipgloss.Width(closeHint)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(title + strings.Repeat(" ", gap) + closeHint + "\n\n")

	states := v.panel.Effects()
	for row := 0; row < len(states); row += gridColumns {
		cells := make([]string, 0, gridColumns)
		for i := row; i < row+gridColumns && i < len(states); i++ {
			cells = append(cells, v.renderCell(i, states[i]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(v.renderSlider(sliderVolume, "Громкость", v.panel.Volume(), effects.MinVolume, effects.MaxVolume) + "\n")
	b.WriteString(v.renderSlider(sliderSpeed, "Скорость", v.panel.Speed(), effects.MinSpeed, effects.MaxSpeed) + "\n")
	b.WriteString(v.renderSlider(sliderPitch, "Тон", v.panel.Pitch(), effects.MinPitch, effects.MaxPitch) + "\n\n")

	b.WriteString(helpStyle.Render("←↑↓→: move • enter: apply • ←/→ on slider: adjust"))

	return panelStyle.Render(b.String())
}

func (v *effectsView) renderCell(i int, state effects.EffectState) string {
	glyph, ok := iconGlyphs[state.Icon]
	if !ok {
		glyph = "♪"
	}

	style := effectStyle
	if state.Active {
		style = effectActiveStyle
	}

	label := fmt.Sprintf("%s %s", glyph, state.Name)
	if i == v.cursor {
		label = "›" + label + "‹"
	}
	cell := style.Render(label)
	return lipgloss.NewStyle().PaddingRight(1).Render(cell)
}

func (v *effectsView) renderSlider(s slider, label string, value, lo, hi int) string {
	filled := 0
	if hi > lo {
		filled = (value - lo) * sliderWidth / (hi - lo)
	}
	bar := accentStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", sliderWidth-filled))

	name := fmt.Sprintf("%-10s", label)
	if focused, ok := v.focusedSlider(); ok && focused == s {
		name = cursorStyle.Render("› " + name)
	} else {
		name = normalStyle.Render("  " + name)
	}
	return fmt.Sprintf("%s %s %s", name, bar, mutedStyle.Render(fmt.Sprintf("%d%%", value)))
}
