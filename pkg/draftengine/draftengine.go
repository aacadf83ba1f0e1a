// Package draftengine is the entry point of spec.md S4.6: it groups the
// setup operations of S6, the hero/reward/schedule/Zobrist configuration
// they populate, and the transposition table, into one explicit value
// passed by reference into every search -- replacing the source's
// process-wide globals per spec.md S9's redesign note. Modeled on
// engine.Engine in the chess engine this module is adapted from: a
// mutex-guarded configuration object that validates setup eagerly and
// delegates the actual tree search to a stateless package (search, here;
// search.AlphaBeta/searchctl there).
package draftengine

import (
	"sync"

	"github.com/draftbeta/draftbeta/pkg/heroid"
	"github.com/draftbeta/draftbeta/pkg/reward"
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/search"
	"github.com/draftbeta/draftbeta/pkg/tt"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
	"github.com/seekerror/build"
)

// Version is the module's build version, stamped the way engine.Engine
// stamps build.NewVersion(...) into its Name().
var Version = build.NewVersion(0, 1, 0)

// Limits mirror spec.md S6's configuration limits.
const (
	MaxHeroes    = heroid.MaxHeroes
	MaxSynergies = 50
	MaxCounters  = 50
	MaxDraftLen  = schedule.MaxDraftLen
	Inf          = search.Inf
)

// Engine bundles the reward tables, hero-info masks, draft schedule,
// Zobrist keys and transposition table that spec.md S5 says are
// "read-only during a search; they may be mutated only between searches."
// Every field but TT is guarded by mu, held for writing only by the setup
// operations in setup.go and for reading only for the duration of a
// RunSearch call -- TT itself stays lock-free (spec.md S5), since its
// whole design point is concurrent access during search.
type Engine struct {
	mu sync.RWMutex

	numHeroes    int
	numSynergies int
	numCounters  int

	info     heroid.Table
	reward   reward.Model
	schedule schedule.Schedule
	zt       *zobrist.Table
	tt       *tt.Table

	configured bool
}

// New creates an unconfigured engine. Call SetSizes before any other setup
// operation; RunSearch rejects an unconfigured engine with ErrNotConfigured.
func New() *Engine {
	return &Engine{tt: &tt.Table{}}
}

// SetSizes declares the hero/synergy/counter/draft-length bounds every
// later setup call is validated against, per spec.md S6's set_sizes
// operation. Re-calling SetSizes resets the engine's entire configuration
// (rewards, hero info, schedule, Zobrist keys) and clears the TT, since
// those are sized off the old bounds and would otherwise be stale.
func (e *Engine) SetSizes(numHeroes, numSynergies, numCounters, draftLen int) error {
	if numHeroes <= 0 || numHeroes > MaxHeroes {
		return ErrOutOfRange
	}
	if numSynergies < 0 || numSynergies > MaxSynergies {
		return ErrTermSlotOutOfRange
	}
	if numCounters < 0 || numCounters > MaxCounters {
		return ErrTermSlotOutOfRange
	}
	if draftLen <= 0 || draftLen > MaxDraftLen {
		return ErrScheduleTooLong
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.numHeroes = numHeroes
	e.numSynergies = numSynergies
	e.numCounters = numCounters
	e.info = heroid.Table{}
	e.reward = reward.Model{
		Synergy: make([]reward.SynergyTerm, numSynergies),
		Counter: make([]reward.CounterTerm, numCounters),
	}
	e.schedule = schedule.Schedule{Stages: make([]schedule.Stage, draftLen)}
	e.zt = zobrist.NewTable(0)
	e.tt.Clear()
	e.configured = true
	return nil
}
