// Package power keeps a frame inside the strand's power supply budget. It
// works on the serialized frame just before it is written, so routines
// never see the scaled colors.
package power

import "math"

// Limiter applies a per-LED white cap, a global current budget with a soft
// knee and a soft start ramp. The zero value passes frames through.
type Limiter struct {
	// WhiteCap limits r+g+b per LED to this fraction of full white. Values
	// outside (0,1) disable the cap.
	WhiteCap float64
	// LimitAmps is the supply budget. Zero disables the budget.
	LimitAmps float64
	// ChanmA is the current one channel draws at full scale.
	ChanmA float64
	// Knee is the fraction of the budget where soft limiting begins. The
	// limited frame never reaches the budget itself.
	Knee float64
	// SoftStartMs ramps brightness up from zero after the first frame.
	SoftStartMs int

	start   int64
	started bool
}

const (
	DefaultChanmA = 20.0
	DefaultKnee   = 0.9
)

// EstimateAmps returns the current an RGB frame draws with chanmA per
// channel at full scale.
func EstimateAmps(rgb []byte, chanmA float64) float64 {
	if chanmA <= 0 {
		chanmA = DefaultChanmA
	}
	var sum float64
	for _, b := range rgb {
		sum += float64(b)
	}
	return sum / 255 * chanmA / 1000
}

// Apply limits rgb in place. nowMs is a monotonic millisecond timestamp used
// by the soft start ramp.
func (l *Limiter) Apply(rgb []byte, nowMs int64) {
	l.whiteCap(rgb)

	scale := l.budgetScale(rgb)
	if s := l.softStart(nowMs); s < scale {
		scale = s
	}
	if scale >= 1 {
		return
	}
	for i, b := range rgb {
		rgb[i] = byte(math.Round(float64(b) * scale))
	}
}

// Restart rearms the soft start ramp.
func (l *Limiter) Restart() { l.started = false }

func (l *Limiter) whiteCap(rgb []byte) {
	if l.WhiteCap <= 0 || l.WhiteCap >= 1 {
		return
	}
	limit := l.WhiteCap * 3 * 255
	for i := 0; i+2 < len(rgb); i += 3 {
		s := float64(rgb[i]) + float64(rgb[i+1]) + float64(rgb[i+2])
		if s > limit {
			k := limit / s
			rgb[i] = byte(float64(rgb[i]) * k)
			rgb[i+1] = byte(float64(rgb[i+1]) * k)
			rgb[i+2] = byte(float64(rgb[i+2]) * k)
		}
	}
}

func (l *Limiter) budgetScale(rgb []byte) float64 {
	if l.LimitAmps <= 0 {
		return 1
	}
	total := EstimateAmps(rgb, l.ChanmA)
	if total <= 0 {
		return 1
	}
	knee := l.Knee
	if knee <= 0 || knee >= 1 {
		knee = DefaultKnee
	}
	ratio := total / l.LimitAmps
	if ratio <= knee {
		return 1
	}
	// above the knee the output approaches the budget asymptotically
	out := knee + (1-knee)*(1-math.Exp(-(ratio-knee)/(1-knee)))
	return out / ratio
}

func (l *Limiter) softStart(nowMs int64) float64 {
	if l.SoftStartMs <= 0 {
		return 1
	}
	if !l.started {
		l.started = true
		l.start = nowMs
	}
	elapsed := nowMs - l.start
	if elapsed <= 0 {
		return 0
	}
	return math.Min(1, float64(elapsed)/float64(l.SoftStartMs))
}
