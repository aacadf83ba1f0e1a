// Package schedule defines the fixed, alternating draft format that a
// search runs over: an ordered sequence of stages, each naming a team and a
// selection type. The schedule is a property of the draft format, not of any
// particular search state, mirroring how the chess engine's board package
// keeps static rules (castling masks, promotion ranks) separate from the
// mutable board.Position.
package schedule

import "fmt"

// Side identifies one of the two drafting teams.
type Side uint8

const (
	A Side = iota
	B
)

func (s Side) Opponent() Side {
	if s == A {
		return B
	}
	return A
}

func (s Side) String() string {
	if s == A {
		return "A"
	}
	return "B"
}

// Kind is a stage's selection type.
type Kind uint8

const (
	Pick Kind = iota
	Ban
	PickPick
	PickBan
	BanPick
	BanBan
)

// Width returns how many selections a stage of this kind consumes: 2 for the
// double kinds, 1 otherwise.
func (k Kind) Width() int {
	switch k {
	case PickPick, PickBan, BanPick, BanBan:
		return 2
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case Pick:
		return "PICK"
	case Ban:
		return "BAN"
	case PickPick:
		return "PICK_PICK"
	case PickBan:
		return "PICK_BAN"
	case BanPick:
		return "BAN_PICK"
	case BanBan:
		return "BAN_BAN"
	default:
		return "?"
	}
}

// MaxDraftLen is the largest supported schedule length.
const MaxDraftLen = 24

// Stage is one entry in a draft schedule.
type Stage struct {
	Team      Side
	Selection Kind
}

// Schedule is the ordered sequence of stages for a draft format. Length L is
// the number of selection slots consumed (stages.Width() summed), not the
// number of Stage entries.
type Schedule struct {
	Stages []Stage
}

// Len returns the total number of selection slots (spec.md's L).
func (s Schedule) Len() int {
	n := 0
	for _, st := range s.Stages {
		n += st.Selection.Width()
	}
	return n
}

// Validate checks the schedule against the configuration limits of spec.md
// S6 and S7: reject at setup time, before any search can run.
func (s Schedule) Validate() error {
	if len(s.Stages) == 0 {
		return fmt.Errorf("schedule: empty")
	}
	if s.Len() > MaxDraftLen {
		return fmt.Errorf("schedule: length %d exceeds MaxDraftLen=%d", s.Len(), MaxDraftLen)
	}
	return nil
}

// StageAt returns the stage and its constituent single-selection offset (0
// or 1 for doubles) that covers selection-slot index `stage` in [0, L).
func (s Schedule) StageAt(stage int) (Stage, int, bool) {
	n := 0
	for _, st := range s.Stages {
		w := st.Selection.Width()
		if stage < n+w {
			return st, stage - n, true
		}
		n += w
	}
	return Stage{}, 0, false
}
