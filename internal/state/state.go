// Package state holds the interpreter's own state: the editor mode, the
// pending-prefix protocol, the count accumulator, and the small amount of
// memory needed for repeatable search and accelerated scrolling
// (spec.md §3).
package state

import "time"

// Mode is one of the five editor modes (spec.md §3).
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeCommand
)

// String returns the mode's status-line-free name, used for logging/tests.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual-line"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Operator is a pending operator awaiting a motion (spec.md §3).
type Operator uint8

const (
	OpNone Operator = iota
	OpDelete
	OpYank
	OpChange
)

// CharSearchDir is the direction of a pending f/F character search.
type CharSearchDir uint8

const (
	CharSearchNone CharSearchDir = iota
	CharSearchForward
	CharSearchBackward
)

// GGTimeout, JKAccelWindow, and JKAccelCap are the tunables spec.md §3,
// §4.7, and §4.8 name as defaults. PendingGExpired and AccelMultiplier
// take these as parameters rather than reading them from here, so a
// host loading config.Settings actually changes timing behavior instead
// of only validating unused numbers.
const (
	GGTimeout     = 500 * time.Millisecond
	JKAccelWindow = 150 * time.Millisecond
	JKAccelCap    = 4 // multiplier = 1 + min(repeatCount/2, JKAccelCap)
)

// State is the interpreter's own state, distinct from the buffer it edits.
// New returns a fresh State; the zero value is equivalent, since
// ModeNormal is the zero Mode.
type State struct {
	Mode Mode

	PendingOperator Operator
	PendingG        bool
	PendingGArmedAt time.Time
	PendingR        bool
	PendingF        CharSearchDir

	CountPrefix uint32

	VisualAnchor int

	CommandBuffer string

	SearchPattern string
	SearchForward bool

	LastFChar    rune
	LastFHasChar bool
	LastFForward bool

	LastJKTime    time.Time
	HasLastJKTime bool
	JKRepeatCount uint32
}

// New returns a fresh interpreter state in Normal mode (spec.md §3: "initial:
// Normal").
func New() *State {
	return &State{Mode: ModeNormal}
}

// EffectiveCount returns the count to repeat a command by: count_prefix if
// set, otherwise 1 (spec.md §3: "initial 0 (meaning '1 implicit')").
func (s *State) EffectiveCount() uint32 {
	if s.CountPrefix == 0 {
		return 1
	}
	return s.CountPrefix
}

// AccumulateDigit folds a decimal digit into count_prefix (spec.md §4.2
// rule 1). Callers are responsible for the "0 starts a count only if
// count_prefix > 0" rule (spec.md §4.2, §9).
func (s *State) AccumulateDigit(d uint32) {
	s.CountPrefix = s.CountPrefix*10 + d
}

// ClearCount resets count_prefix. Called after every completed command
// (spec.md §3).
func (s *State) ClearCount() {
	s.CountPrefix = 0
}

// ClearPending clears every armed pending-prefix flag without touching mode
// or count (spec.md §3 invariant: at most one pending flag armed at a time).
func (s *State) ClearPending() {
	s.PendingOperator = OpNone
	s.PendingG = false
	s.PendingR = false
	s.PendingF = CharSearchNone
}

// EnterMode transitions to mode, clearing all pending state and the count
// prefix (spec.md §4.1: "Every transition clears pending_* and
// count_prefix").
func (s *State) EnterMode(m Mode) {
	s.ClearPending()
	s.ClearCount()
	s.Mode = m
}

// ArmPendingG sets pending_g and starts its 500ms timeout window.
func (s *State) ArmPendingG(now time.Time) {
	s.PendingG = true
	s.PendingGArmedAt = now
}

// PendingGExpired reports whether the pending_g window has elapsed
// (spec.md §3, §4.8: "a lone g... with a 500ms timeout"). timeout is the
// configured GGTimeout (config.Settings.GGTimeout()).
func (s *State) PendingGExpired(now time.Time, timeout time.Duration) bool {
	return s.PendingG && now.Sub(s.PendingGArmedAt) >= timeout
}

// ResetAccel clears the j/k acceleration counter. Any mode change or any
// non-j/k key resets acceleration (spec.md §4.7).
func (s *State) ResetAccel() {
	s.JKRepeatCount = 0
	s.HasLastJKTime = false
}

// AccelMultiplier records a j or k press at now and returns the multiplier
// to apply to the base count (spec.md §4.7). Either key feeds the same
// timer; a press arriving window or later after the previous one resets
// the repeat count here, and ResetAccel clears it for any non-j/k key.
// window and cap
// are the configured JKAccelWindow and JKAccelCap
// (config.Settings.JKAccelWindow(), config.Settings.JKAccelCap).
func (s *State) AccelMultiplier(now time.Time, window time.Duration, cap uint32) uint32 {
	if s.HasLastJKTime && now.Sub(s.LastJKTime) < window {
		s.JKRepeatCount++
	} else {
		s.JKRepeatCount = 0
	}
	s.LastJKTime = now
	s.HasLastJKTime = true

	mult := s.JKRepeatCount / 2
	if mult > cap {
		mult = cap
	}
	return 1 + mult
}
