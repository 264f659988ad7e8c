package plot

import (
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// scale is a linear axis extended to whole tick steps.
type scale struct {
	lo, hi float64
	step   float64
	ticks  []float64
	digits int // fraction digits needed to tell ticks apart
}

// niceScale covers [lo, hi] with about n ticks spaced 1, 2 or 5 times a
// power of ten.
func niceScale(lo, hi float64, n int) scale {
	if n < 2 {
		n = 2
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		pad := math.Max(math.Abs(lo), 1) / 2
		lo, hi = lo-pad, hi+pad
	}
	step := niceStep((hi - lo) / float64(n-1))
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step
	count := int(math.Round((end - start) / step))

	s := scale{lo: start, hi: end, step: step}
	for i := 0; i <= count; i++ {
		t := start + float64(i)*step
		if math.Abs(t) < step*1e-9 {
			t = 0
		}
		s.ticks = append(s.ticks, t)
	}
	if d := -int(math.Floor(math.Log10(step))); d > 0 {
		s.digits = d
	}
	return s
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// label formats a tick value for the printer's locale.
func (s scale) label(p *message.Printer, v float64) string {
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(s.digits),
		number.MaxFractionDigits(s.digits),
	))
}
