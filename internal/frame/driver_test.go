package frame

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/led"
	"github.com/coreman2200/funtimes-strandfx/internal/playlist"
	"github.com/coreman2200/funtimes-strandfx/internal/power"
	"github.com/coreman2200/funtimes-strandfx/internal/selector"
	"github.com/coreman2200/funtimes-strandfx/model"
)

type paintOnce struct {
	name    string
	buf     effect.Buffer
	color   model.ColorVal
	ticks   int
	resets  int
	painted bool
}

func (p *paintOnce) Name() string { return p.name }
func (p *paintOnce) Reset()       { p.resets++ }

func (p *paintOnce) AdvanceAndRender() {
	p.ticks++
	if !p.painted {
		p.buf.SetPixel(0, p.color)
		p.painted = true
	}
}

type failing struct{ err error }

func (f failing) Write([]byte) error { return f.err }
func (f failing) Close() error       { return nil }

func setup(t *testing.T) (*Driver, *led.Sim, *effect.ManualClock, []*paintOnce) {
	t.Helper()
	strand := model.NewStrand(3)
	a := &paintOnce{name: "a", buf: strand, color: model.RedMask}
	b := &paintOnce{name: "b", buf: strand, color: model.BlueMask}
	reg := effect.NewRegistry()
	reg.Register(a)
	reg.Register(b)
	sim := led.NewSim(3)
	clk := &effect.ManualClock{}
	d := New(strand, reg, selector.New(reg.Len(), 0), sim, clk)
	return d, sim, clk, []*paintOnce{a, b}
}

func TestTickClearsBeforeEachFrame(t *testing.T) {
	d, sim, _, fx := setup(t)

	require.NoError(t, d.Tick())
	assert.Equal(t, []byte{255, 0, 0, 0, 0, 0, 0, 0, 0}, sim.Last)

	require.NoError(t, d.Tick())
	assert.Equal(t, make([]byte, 9), sim.Last, "stale pixels are cleared")
	assert.Equal(t, 2, fx[0].ticks)
	assert.Equal(t, 0, fx[1].ticks, "only the selected routine runs")
}

func TestSelectionPreservesStateByDefault(t *testing.T) {
	d, _, _, fx := setup(t)
	require.NoError(t, d.Tick())
	d.Selector.Next()
	require.NoError(t, d.Tick())
	d.Selector.Next()
	require.NoError(t, d.Tick())

	assert.Equal(t, 0, fx[0].resets)
	assert.Equal(t, 2, fx[0].ticks)
	assert.Equal(t, 1, fx[1].ticks)
}

func TestResetOnSelect(t *testing.T) {
	d, _, _, fx := setup(t)
	d.ResetOnSelect = true
	require.NoError(t, d.Tick())
	require.NoError(t, d.Tick())
	d.Selector.Next()
	require.NoError(t, d.Tick())

	assert.Equal(t, 1, fx[0].resets)
	assert.Equal(t, 1, fx[1].resets)
}

func TestLimiterShapesOutputOnly(t *testing.T) {
	d, sim, clk, _ := setup(t)
	d.Limiter = &power.Limiter{SoftStartMs: 100}
	clk.Set(10)

	require.NoError(t, d.Tick())
	assert.Equal(t, make([]byte, 9), sim.Last, "soft start begins dark")
	assert.Equal(t, model.RedMask, d.Strand.GetPixel(0), "routine colors are untouched")
}

func TestPlaylistSwitchesRoutines(t *testing.T) {
	d, _, clk, fx := setup(t)
	p := playlist.NewPlayer(d.PlaylistHooks())
	require.NoError(t, p.Load(playlist.Program{Loop: true, Clips: []playlist.Clip{
		{Routine: "b", DurationS: 1},
		{Routine: "a", DurationS: 1},
	}}, nil))
	d.Playlist = p
	p.Start()
	assert.Equal(t, 1, d.Selector.Current())

	require.NoError(t, d.Tick())
	clk.Advance(1000)
	require.NoError(t, d.Tick())
	assert.Equal(t, 0, d.Selector.Current())
	assert.Equal(t, 1, fx[1].ticks)
	assert.Equal(t, 1, fx[0].ticks)
}

func TestTickReportsErrors(t *testing.T) {
	d, _, _, _ := setup(t)
	boom := errors.New("spi gone")
	d.Out = failing{err: boom}
	assert.ErrorIs(t, d.Tick(), boom)

	d.Selector = selector.New(5, 4)
	assert.ErrorIs(t, d.Tick(), ErrNoRoutine)
}

func TestRunBlanksOnShutdown(t *testing.T) {
	d, sim, _, _ := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, d.Run(ctx, 200))
	assert.Greater(t, sim.Frames, 1)
	assert.Equal(t, make([]byte, 9), sim.Last)
}

func TestRunRestartsSoftStart(t *testing.T) {
	d, _, clk, _ := setup(t)
	d.Limiter = &power.Limiter{SoftStartMs: 100}
	require.NoError(t, d.Tick())
	clk.Set(500)
	require.NoError(t, d.Tick())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx, 60))

	rgb := []byte{255, 255, 255}
	d.Limiter.Apply(rgb, 600)
	assert.Equal(t, []byte{0, 0, 0}, rgb, "a new run ramps up from dark")
}
