// Package search implements the alpha-beta negamax recursion over the fixed
// draft schedule (inner negamax, S4.3), its flex extension for ambiguous
// starting lineups (S4.4), and the parallel root dispatch (S4.5). Modeled on
// the chess engine's search.AlphaBeta and search.TranspositionTable this
// module started from, with the global reward/Zobrist/TT state those types
// read off board.Board replaced by the explicit Engine value recommended in
// spec.md S9's redesign note.
package search

import (
	"errors"

	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/state"
	"github.com/draftbeta/draftbeta/pkg/tt"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

// Inf is the sentinel bound; a genuine terminal score never reaches it.
const Inf = 30000

// MaxTTStage caps how deep the transposition table is consulted; see
// spec.md S4.3's rationale ("why cap TT at stage 7").
const MaxTTStage = 7

// NoHero marks an absent second hero in a Result, and the "no legal
// candidate at root" sentinel of spec.md S9's first open question.
const NoHero = -1

// ErrNoCandidate is returned by the root search when no legal first
// selection exists for the side to move.
var ErrNoCandidate = errors.New("search: no legal candidate at root")

// Engine bundles everything a search needs to run: the reward/hero-info
// rules, the fixed draft schedule and the shared transposition table. None
// of these may change during a search (spec.md S5); they may be mutated
// only between searches, which invalidates the TT and requires Clear.
type Engine struct {
	Rules    state.Rules
	Schedule schedule.Schedule
	TT       *tt.Table
}

// Options configures a root search.
type Options struct {
	// Workers bounds the number of concurrent root-candidate evaluators.
	// Unset (lang.Optional's zero value) defaults to runtime.GOMAXPROCS(0);
	// an explicit lang.Some(1) forces the root serial, the deterministic
	// mode SPEC_FULL.md supplements for reproducible benchmarking and
	// spec.md S8 scenario 6's single-threaded baseline -- distinct from
	// merely "not set", the way searchctl.Options distinguishes an unset
	// lang.Optional[uint] depth limit from an explicit zero.
	Workers lang.Optional[int]
}

// Stats reports node and TT-hit counts. The original core keeps none of
// this (spec.md S7: "no runtime logging or telemetry inside the core");
// it is a supplemented diagnostic surface, not part of the search value.
type Stats struct {
	Nodes  atomic.Uint64
	TTHits atomic.Uint64
}

// Result is the outcome of a root search: the value from the root mover's
// perspective, and its best selection(s). Hero2 is meaningful only when
// the root stage is a double-selection.
type Result struct {
	Value int
	Hero  int
	Hero2 int
}
