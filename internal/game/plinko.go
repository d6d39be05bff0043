package game

import (
	"math"
	"math/rand/v2"
)

// Slots is the number of outcome buckets per mode, indexed 0..8.
const Slots = 9

type Mode int

const (
	Easy Mode = iota
	Medium
	Hard
	Extreme
)

var modeNames = [...]string{"easy", "medium", "hard", "extreme"}

func (m Mode) String() string {
	if m < Easy || m > Extreme {
		return "unknown"
	}
	return modeNames[m]
}

// ModeFromCode maps a wire-level mode code to a Mode.
func ModeFromCode(code int32) (Mode, bool) {
	if code < 0 || code > int32(Extreme) {
		return 0, false
	}
	return Mode(code), true
}

// Multiplier is an exact payout ratio. Keeping numerator and denominator
// separate lets payout math stay in integers.
type Multiplier struct {
	Num int64
	Den int64
}

var multipliers = [4][Slots]Multiplier{
	Easy:    {{50, 1}, {10, 1}, {3, 1}, {1, 1}, {1, 5}, {1, 1}, {3, 1}, {10, 1}, {50, 1}},
	Medium:  {{250, 1}, {34, 1}, {1, 1}, {1, 2}, {1, 5}, {1, 2}, {1, 1}, {34, 1}, {250, 1}},
	Hard:    {{1000, 1}, {25, 1}, {1, 1}, {1, 5}, {1, 5}, {1, 5}, {1, 1}, {25, 1}, {1000, 1}},
	Extreme: {{50000, 1}, {4, 1}, {1, 1}, {1, 5}, {1, 5}, {1, 5}, {1, 1}, {4, 1}, {50000, 1}},
}

// weights are relative odds per slot; they are normalized by their own sum,
// so each row need not add up to 1.
var weights = [4][Slots]float64{
	Easy:    {0.03, 0.3, 6.0, 22.0, 43.35, 22.0, 6.0, 0.3, 0.03},
	Medium:  {0.02, 0.6, 10.0, 19.4, 40.0, 19.4, 10.0, 0.6, 0.02},
	Hard:    {0.013, 0.8, 10.0, 19.4, 40.0, 19.4, 10.0, 0.8, 0.013},
	Extreme: {0.0006, 0.8, 10.0, 19.4, 40.0, 19.4, 10.0, 0.8, 0.0006},
}

// Source supplies the uniform draw in [0, 1) used to pick a slot.
type Source interface {
	Float64() float64
}

type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// SystemSource returns a Source backed by the process-wide generator,
// safe for concurrent callers.
func SystemSource() Source { return systemSource{} }

// Simulate runs one drop: picks a slot weighted by the mode's odds table
// and returns the integer payout floor(bet * num / den) for that slot.
func Simulate(mode Mode, bet int64, src Source) (payout int64, slot int) {
	w := &weights[mode]
	var total float64
	for _, v := range w {
		total += v
	}

	r := src.Float64() * total
	// Float residue can keep r positive after the full walk; land on the
	// last slot then, not the first.
	slot = Slots - 1
	for i, v := range w {
		r -= v
		if r <= 0 {
			slot = i
			break
		}
	}

	m := multipliers[mode][slot]
	return mulSat(bet, m.Num) / m.Den, slot
}

// mulSat multiplies two non-negative int64 values, saturating to
// math.MaxInt64 instead of wrapping.
func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		return math.MaxInt64
	}
	return p
}
