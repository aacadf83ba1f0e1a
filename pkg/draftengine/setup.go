package draftengine

import (
	"fmt"

	"github.com/draftbeta/draftbeta/pkg/bitset"
	"github.com/draftbeta/draftbeta/pkg/reward"
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

func (e *Engine) checkHero(h int) error {
	if h < 0 || h >= e.numHeroes {
		return fmt.Errorf("%w: hero %d (numHeroes=%d)", ErrOutOfRange, h, e.numHeroes)
	}
	return nil
}

func (e *Engine) checkHeroes(hs []int) error {
	for _, h := range hs {
		if err := e.checkHero(h); err != nil {
			return err
		}
	}
	return nil
}

// SetRoleReward stores the per-hero role-reward pair of spec.md S3/S4.1,
// per the set_role_r setup operation of S6.
func (e *Engine) SetRoleReward(hero int, a, b int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if err := e.checkHero(hero); err != nil {
		return err
	}
	e.reward.SetRole(hero, reward.Pair{A: a, B: b})
	return nil
}

// SetSynergyReward stores a synergy term at slot, per set_synergy_r (S6).
func (e *Engine) SetSynergyReward(slot int, heroes []int, a, b int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if slot < 0 || slot >= len(e.reward.Synergy) {
		return fmt.Errorf("%w: synergy slot %d (numSynergies=%d)", ErrTermSlotOutOfRange, slot, len(e.reward.Synergy))
	}
	if err := e.checkHeroes(heroes); err != nil {
		return err
	}
	e.reward.Synergy[slot] = reward.SynergyTerm{Heroes: bitset.Of(heroes...), Value: reward.Pair{A: a, B: b}}
	return nil
}

// SetCounterReward stores a counter term at slot, per set_counter_r (S6).
func (e *Engine) SetCounterReward(slot int, heroes, foes []int, a, b int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if slot < 0 || slot >= len(e.reward.Counter) {
		return fmt.Errorf("%w: counter slot %d (numCounters=%d)", ErrTermSlotOutOfRange, slot, len(e.reward.Counter))
	}
	if err := e.checkHeroes(heroes); err != nil {
		return err
	}
	if err := e.checkHeroes(foes); err != nil {
		return err
	}
	e.reward.Counter[slot] = reward.CounterTerm{
		Heroes: bitset.Of(heroes...),
		Foes:   bitset.Of(foes...),
		Value:  reward.Pair{A: a, B: b},
	}
	return nil
}

// SetHeroInfo stores the precomputed diff_role_and_h/diff_h complements of
// a hero index, per set_h_info (S6): the core stores the complements of
// the given raw union masks.
func (e *Engine) SetHeroInfo(hero int, sameRoleAndHero, sameHero []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if err := e.checkHero(hero); err != nil {
		return err
	}
	if err := e.checkHeroes(sameRoleAndHero); err != nil {
		return err
	}
	if err := e.checkHeroes(sameHero); err != nil {
		return err
	}
	e.info.Set(hero, bitset.Of(sameRoleAndHero...), bitset.Of(sameHero...))
	return nil
}

// SetDraftStage stores the team/selection-type of one schedule stage, per
// set_draft_stage (S6). Rejects a schedule that would exceed
// schedule.MaxDraftLen selection slots once widths are summed.
func (e *Engine) SetDraftStage(stageIndex int, team schedule.Side, kind schedule.Kind) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if stageIndex < 0 || stageIndex >= len(e.schedule.Stages) {
		return fmt.Errorf("%w: stage index %d (draftLen=%d)", ErrOutOfRange, stageIndex, len(e.schedule.Stages))
	}

	prev := e.schedule.Stages[stageIndex]
	e.schedule.Stages[stageIndex] = schedule.Stage{Team: team, Selection: kind}
	if err := e.schedule.Validate(); err != nil {
		e.schedule.Stages[stageIndex] = prev
		return fmt.Errorf("%w: %v", ErrScheduleTooLong, err)
	}
	return nil
}

// SetZobristKey stores an explicit key for (row, hero), per set_zobrist_key
// (S6) -- used for reproducible keys across a persistence round-trip,
// instead of the random seeding NewTable otherwise performs.
func (e *Engine) SetZobristKey(row zobrist.Row, hero int, key uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.configured {
		return ErrNotConfigured
	}
	if err := e.checkHero(hero); err != nil {
		return err
	}
	e.zt.Set(row, hero, key)
	return nil
}

// ClearTT zeroes every TT entry's tag so no entry can ever hit, per the
// clear_tt setup operation (S6). Callers must clear after any setup call
// that changes rewards, since the TT is keyed only by the selections made
// and its stored values were computed under the old rewards; stale entries
// are undefined behavior per spec.md S7.
func (e *Engine) ClearTT() {
	e.tt.Clear()
}
