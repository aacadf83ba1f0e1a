package draftengine

import (
	"fmt"

	"github.com/draftbeta/draftbeta/pkg/bitset"
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/search"
	"github.com/draftbeta/draftbeta/pkg/state"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// Options configures a RunSearch call.
type Options = search.Options

// Result is the outcome of a search: the value from the root mover's
// perspective and its best selection(s), per spec.md S6's run_search
// return shape. Hero2 is NoHero unless the root stage is a double.
type Result = search.Result

// Stats reports node/TT-hit counters, the supplemented diagnostic surface
// described under SPEC_FULL.md's "Node/TT-hit counters".
type Stats = search.Stats

// NoHero marks an absent second hero in a Result.
const NoHero = search.NoHero

// heroMask returns the set of every configured hero index, the correct
// "everything legal" starting point -- bitset.Full would leave the unused
// high bits above numHeroes permanently legal and enumerable as phantom
// candidates.
func (e *Engine) heroMask() bitset.Set {
	if e.numHeroes >= 64 {
		return bitset.Full
	}
	return bitset.Set(1)<<uint(e.numHeroes) - 1
}

// buildLineup builds one starting lineup from the side's own selections,
// narrowing its legality by diff_h of every hero in otherSample (heroes
// already committed on the opposite side) and of every banned hero.
// diff_h is defined per underlying identity, not per role-variant index, so
// it is safe to read off any one lineup of the opposing ambiguity set (spec.md
// S4.4): every lineup in that set shares the same identities, differing only
// in which role index represents an ambiguous hero.
func (e *Engine) buildLineup(own []int, otherSample, banned []int, isA bool) state.Lineup {
	l := state.Lineup{Team: bitset.Of(own...), Legal: e.heroMask()}
	for _, h := range own {
		inf := e.info.Get(h)
		l.Legal &= inf.DiffRoleAndHero
		l.RoleValue += e.reward.RoleDelta(h, isA)
		l.Hash ^= e.zt.Key(zobrist.RowForTeam(isA), h)
	}
	for _, h := range otherSample {
		l.Legal &= e.info.Get(h).DiffHero
	}
	for _, h := range banned {
		l.Legal &= e.info.Get(h).DiffHero
	}
	return l
}

// RunSearch is the entry point of spec.md S4.6: given every possible
// starting lineup for each side (ambiguous only insofar as already-selected
// heroes have more than one legal role assignment) and the ban list, it
// builds starting bitsets/hashes/role-value sums, determines the side to
// move from the schedule at the resulting stage, and dispatches to the root
// search with the mover's arguments first.
func (e *Engine) RunSearch(startA, startB [][]int, banned []int, opts Options) (Result, Stats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var stats Stats
	if !e.configured {
		return Result{Hero: NoHero, Hero2: NoHero}, stats, ErrNotConfigured
	}

	// A side with no prior selections has exactly one (empty) starting
	// lineup, not zero; a caller passing nil/empty for "nobody has picked
	// yet" must not be confused with "no legal lineup exists".
	if len(startA) == 0 {
		startA = [][]int{{}}
	}
	if len(startB) == 0 {
		startB = [][]int{{}}
	}

	lenA, lenB := 0, 0
	if len(startA) > 0 {
		lenA = len(startA[0])
	}
	if len(startB) > 0 {
		lenB = len(startB[0])
	}
	stageIdx := lenA + lenB + len(banned)

	st, _, ok := e.schedule.StageAt(stageIdx)
	if !ok {
		return Result{Hero: NoHero, Hero2: NoHero}, stats, fmt.Errorf("%w: stage %d beyond schedule length %d", ErrOutOfRange, stageIdx, e.schedule.Len())
	}
	moverIsA := st.Team == schedule.A

	sampleA, sampleB := firstOr(startA), firstOr(startB)

	lineupsA := make([]state.Lineup, len(startA))
	for i, own := range startA {
		lineupsA[i] = e.buildLineup(own, sampleB, banned, true)
	}
	lineupsB := make([]state.Lineup, len(startB))
	for i, own := range startB {
		lineupsB[i] = e.buildLineup(own, sampleA, banned, false)
	}

	var bansHash zobrist.Hash
	for _, h := range banned {
		bansHash ^= e.zt.Key(zobrist.Ban, h)
	}

	eng := &search.Engine{
		Rules:    state.Rules{Info: &e.info, ZT: e.zt, Reward: &e.reward},
		Schedule: e.schedule,
		TT:       e.tt,
	}

	mover, opp := lineupsA, lineupsB
	if !moverIsA {
		mover, opp = lineupsB, lineupsA
	}

	result, err := eng.Root(mover, opp, bansHash, moverIsA, stageIdx, opts, &stats)
	return result, stats, err
}

func firstOr(lineups [][]int) []int {
	if len(lineups) == 0 {
		return nil
	}
	return lineups[0]
}
