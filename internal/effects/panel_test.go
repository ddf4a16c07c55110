package effects

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravenpi/wore/internal/models"
)

func testCatalog() []models.VoiceEffect {
	return []models.VoiceEffect{
		{ID: "robot", Name: "Робот", Icon: "Bot", Description: "Механический голос"},
		{ID: "echo", Name: "Эхо", Icon: "Radio", Description: "Эффект эха"},
		{ID: "chipmunk", Name: "Бурундук", Icon: "Volume2", Description: "Высокий тон"},
		{ID: "deep", Name: "Глубокий", Icon: "VolumeX", Description: "Низкий тон"},
	}
}

func activeCount(p *Panel) int {
	n := 0
	for _, e := range p.Effects() {
		if e.Active {
			n++
		}
	}
	return n
}

func TestNewPanelDefaults(t *testing.T) {
	p := NewPanel(testCatalog())

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, DefaultVolume, p.Volume())
	assert.Equal(t, DefaultSpeed, p.Speed())
	assert.Equal(t, DefaultPitch, p.Pitch())
	assert.Zero(t, activeCount(p))

	_, ok := p.Active()
	assert.False(t, ok)
}

func TestNewPanelSkipsDuplicateIDs(t *testing.T) {
	catalog := append(testCatalog(), models.VoiceEffect{ID: "robot", Name: "Другой"})
	p := NewPanel(catalog)

	require.Equal(t, 4, p.Len())
	require.NoError(t, p.Toggle("robot"))
	active, _ := p.Active()
	assert.Equal(t, "Робот", active.Name)
}

func TestToggleIsExclusive(t *testing.T) {
	p := NewPanel(testCatalog())
	ids := []string{"robot", "echo", "chipmunk", "deep", "missing"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		_ = p.Toggle(ids[rng.Intn(len(ids))])
		assert.LessOrEqual(t, activeCount(p), 1, "after call %d", i)
	}
}

func TestToggleSwitchesSelection(t *testing.T) {
	p := NewPanel(testCatalog())

	require.NoError(t, p.Toggle("robot"))
	require.NoError(t, p.Toggle("echo"))

	assert.False(t, p.IsActive("robot"))
	assert.True(t, p.IsActive("echo"))
	assert.Equal(t, 1, activeCount(p))
}

func TestToggleSameIDTwiceReapplies(t *testing.T) {
	p := NewPanel(testCatalog())
	var applied []string
	p.OnApplyEffect = func(name string) { applied = append(applied, name) }

	require.NoError(t, p.Toggle("deep"))
	require.NoError(t, p.Toggle("deep"))

	assert.True(t, p.IsActive("deep"))
	assert.Equal(t, []string{"Глубокий", "Глубокий"}, applied)
}

func TestToggleUnknownID(t *testing.T) {
	p := NewPanel(testCatalog())
	fired := false
	p.OnApplyEffect = func(string) { fired = true }
	require.NoError(t, p.Toggle("echo"))
	fired = false

	err := p.Toggle("alien")

	assert.ErrorIs(t, err, ErrEffectNotFound)
	assert.Contains(t, err.Error(), "alien")
	assert.False(t, fired)
	assert.True(t, p.IsActive("echo"), "miss must not disturb the selection")
}

func TestClampedSetters(t *testing.T) {
	p := NewPanel(nil)

	p.SetVolume(150)
	assert.Equal(t, 100, p.Volume())
	p.SetVolume(-3)
	assert.Equal(t, 0, p.Volume())

	p.SetSpeed(10)
	assert.Equal(t, 50, p.Speed())
	p.SetSpeed(500)
	assert.Equal(t, 200, p.Speed())

	p.SetPitch(49)
	assert.Equal(t, 50, p.Pitch())
	p.SetPitch(120)
	assert.Equal(t, 120, p.Pitch())
}

func TestNudgeUsesSliderSteps(t *testing.T) {
	p := NewPanel(nil)

	p.NudgeVolume(3)
	assert.Equal(t, 83, p.Volume())
	p.NudgeSpeed(-2)
	assert.Equal(t, 90, p.Speed())
	p.NudgePitch(40)
	assert.Equal(t, MaxPitch, p.Pitch())
}

func TestCloseFiresCallback(t *testing.T) {
	p := NewPanel(testCatalog())
	closed := 0
	p.OnClose = func() { closed++ }

	p.Close()

	assert.Equal(t, 1, closed)
}

func TestStatePersistsWithoutCallbacks(t *testing.T) {
	p := NewPanel(testCatalog())
	require.NoError(t, p.Toggle("chipmunk"))
	p.SetVolume(10)
	p.Close()

	assert.True(t, p.IsActive("chipmunk"))
	assert.Equal(t, 10, p.Volume())
}

func TestAt(t *testing.T) {
	p := NewPanel(testCatalog())

	e, ok := p.At(1)
	require.True(t, ok)
	assert.Equal(t, "echo", e.ID)

	_, ok = p.At(4)
	assert.False(t, ok)
	_, ok = p.At(-1)
	assert.False(t, ok)
}
