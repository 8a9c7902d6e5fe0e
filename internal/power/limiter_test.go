package power

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func white(n int) []byte {
	return bytes.Repeat([]byte{255}, n*3)
}

func TestZeroLimiterPassesThrough(t *testing.T) {
	var l Limiter
	frame := white(10)
	l.Apply(frame, 0)
	assert.Equal(t, white(10), frame)
}

func TestEstimateAmps(t *testing.T) {
	assert.InDelta(t, 0.6, EstimateAmps(white(10), 20), 1e-9, "ten white LEDs at 60mA")
	assert.InDelta(t, 0.0, EstimateAmps(make([]byte, 30), 20), 1e-9)
}

func TestBudgetClamp(t *testing.T) {
	l := Limiter{LimitAmps: 0.3, ChanmA: 20}
	frame := white(10)
	l.Apply(frame, 0)
	assert.LessOrEqual(t, EstimateAmps(frame, 20), 0.3)
	assert.Equal(t, byte(127), frame[0])
}

func TestBudgetKnee(t *testing.T) {
	l := Limiter{LimitAmps: 1, ChanmA: 20, Knee: 0.5}

	under := white(5) // 0.3A, below the knee
	l.Apply(under, 0)
	assert.Equal(t, white(5), under)

	near := white(15) // 0.9A, between knee and budget
	l.Apply(near, 0)
	amps := EstimateAmps(near, 20)
	assert.Less(t, amps, 0.9)
	assert.Greater(t, amps, 0.5)
}

func TestWhiteCap(t *testing.T) {
	l := Limiter{WhiteCap: 0.5}
	frame := []byte{255, 255, 255, 200, 0, 0}
	l.Apply(frame, 0)
	sum := int(frame[0]) + int(frame[1]) + int(frame[2])
	assert.LessOrEqual(t, sum, 383)
	assert.Equal(t, []byte{200, 0, 0}, frame[3:], "pixels under the cap are untouched")
}

func TestSoftStart(t *testing.T) {
	l := Limiter{SoftStartMs: 1000}

	frame := white(1)
	l.Apply(frame, 5000)
	assert.Equal(t, []byte{0, 0, 0}, frame, "first frame is dark")

	frame = white(1)
	l.Apply(frame, 5500)
	assert.Equal(t, []byte{128, 128, 128}, frame)

	frame = white(1)
	l.Apply(frame, 7000)
	assert.Equal(t, white(1), frame)

	l.Restart()
	frame = white(1)
	l.Apply(frame, 9000)
	assert.Equal(t, []byte{0, 0, 0}, frame)
}
