// Package effects holds the voice effect catalog, the single active
// selection and the volume/speed/pitch controls.
package effects

import (
	"errors"
	"fmt"

	"github.com/saravenpi/wore/internal/models"
)

// ErrEffectNotFound is returned by Toggle for ids missing from the catalog.
var ErrEffectNotFound = errors.New("voice effect not found")

const (
	MinVolume = 0
	MaxVolume = 100
	MinSpeed  = 50
	MaxSpeed  = 200
	MinPitch  = 50
	MaxPitch  = 200

	VolumeStep = 1
	SpeedStep  = 5
	PitchStep  = 5

	DefaultVolume = 80
	DefaultSpeed  = 100
	DefaultPitch  = 100
)

// EffectState pairs a catalog entry with its active flag for rendering.
type EffectState struct {
	models.VoiceEffect
	Active bool
}

// Panel is the voice effect selector. At most one effect is active; the
// selection is stored as an index into the catalog (-1 for none).
type Panel struct {
	catalog  []models.VoiceEffect
	index    map[string]int
	selected int

	volume int
	speed  int
	pitch  int

	// OnApplyEffect fires with the display name on every successful Toggle.
	OnApplyEffect func(name string)
	// OnClose fires when the panel asks to be hidden.
	OnClose func()
}

// NewPanel builds a panel over catalog. Duplicate ids keep the first entry.
func NewPanel(catalog []models.VoiceEffect) *Panel {
	p := &Panel{
		catalog:  make([]models.VoiceEffect, 0, len(catalog)),
		index:    make(map[string]int, len(catalog)),
		selected: -1,
		volume:   DefaultVolume,
		speed:    DefaultSpeed,
		pitch:    DefaultPitch,
	}
	for _, e := range catalog {
		if _, dup := p.index[e.ID]; dup {
			continue
		}
		p.index[e.ID] = len(p.catalog)
		p.catalog = append(p.catalog, e)
	}
	return p
}

// Toggle makes effectID the only active effect and emits its name. Selecting
// the already active effect re-applies it rather than clearing it.
func (p *Panel) Toggle(effectID string) error {
	i, ok := p.index[effectID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEffectNotFound, effectID)
	}
	p.selected = i
	if p.OnApplyEffect != nil {
		p.OnApplyEffect(p.catalog[i].Name)
	}
	return nil
}

func (p *Panel) Close() {
	if p.OnClose != nil {
		p.OnClose()
	}
}

// Active returns the active effect, if any.
func (p *Panel) Active() (models.VoiceEffect, bool) {
	if p.selected < 0 {
		return models.VoiceEffect{}, false
	}
	return p.catalog[p.selected], true
}

func (p *Panel) IsActive(effectID string) bool {
	i, ok := p.index[effectID]
	return ok && i == p.selected
}

// Effects returns the catalog in order with active flags filled in.
func (p *Panel) Effects() []EffectState {
	out := make([]EffectState, len(p.catalog))
	for i, e := range p.catalog {
		out[i] = EffectState{VoiceEffect: e, Active: i == p.selected}
	}
	return out
}

func (p *Panel) Len() int { return len(p.catalog) }

// At returns the catalog entry at position i.
func (p *Panel) At(i int) (models.VoiceEffect, bool) {
	if i < 0 || i >= len(p.catalog) {
		return models.VoiceEffect{}, false
	}
	return p.catalog[i], true
}

func (p *Panel) Volume() int { return p.volume }
func (p *Panel) Speed() int  { return p.speed }
func (p *Panel) Pitch() int  { return p.pitch }

func (p *Panel) SetVolume(v int) { p.volume = clamp(v, MinVolume, MaxVolume) }
func (p *Panel) SetSpeed(v int)  { p.speed = clamp(v, MinSpeed, MaxSpeed) }
func (p *Panel) SetPitch(v int)  { p.pitch = clamp(v, MinPitch, MaxPitch) }

// NudgeVolume moves volume by steps slider increments.
func (p *Panel) NudgeVolume(steps int) { p.SetVolume(p.volume + steps*VolumeStep) }
func (p *Panel) NudgeSpeed(steps int)  { p.SetSpeed(p.speed + steps*SpeedStep) }
func (p *Panel) NudgePitch(steps int)  { p.SetPitch(p.pitch + steps*PitchStep) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
