package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	assert.True(t, Exists("stub_a"))
	assert.False(t, Exists("missing"))

	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	_, err = Create("missing")
	assert.Error(t, err)

	ids := IDs()
	assert.Subset(t, ids, []string{"stub_a", "stub_b"})
	assert.IsNonDecreasing(t, ids)
}

func TestTitle(t *testing.T) {
	Register("stub_title", func() Game { return &stubGame{id: "stub_title"} })

	assert.Equal(t, "Stub stub_title", Title("stub_title"))
	assert.Equal(t, "nope", Title("nope"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	})
}
