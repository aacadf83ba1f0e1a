// Package state implements the bit-set state transitions of spec.md S4.2:
// pure, undo-free functions from one recursive call's (team, e_team, legal,
// e_legal) tuple to the next, for each of the six selection types. Modeled
// on how board.Position plus board.ZobristTable.Move let the chess search
// advance a position incrementally rather than rebuild it from scratch, but
// -- per spec.md S3's Lifecycle note -- states here live only on the call
// stack: children are built by pure functions of their parent, never
// mutated and undone.
package state

import (
	"github.com/draftbeta/draftbeta/pkg/bitset"
	"github.com/draftbeta/draftbeta/pkg/heroid"
	"github.com/draftbeta/draftbeta/pkg/reward"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// Rules bundles the read-only configuration a transition needs: hero-info
// masks, Zobrist keys and the reward model. Read-only during a search, per
// spec.md S5's shared-state contract.
type Rules struct {
	Info   *heroid.Table
	ZT     *zobrist.Table
	Reward *reward.Model
}

// Position is a single, unambiguous draft state, labeled in "mover first"
// (negamax) convention: Team/Legal belong to whichever side acts next at
// Stage; TeamIsA records which physical side that is, so that role-reward
// sign and the terminal evaluation (spec.md S4.1, S4.3) can be computed
// correctly regardless of how many plies deep the recursion is.
type Position struct {
	Team, ETeam   bitset.Set
	Legal, ELegal bitset.Set
	TeamIsA       bool
	RoleValue     int // A-relative running sum of role rewards, per spec.md S4.3
	Hash          zobrist.Hash
	Stage         int
}

// applyPick narrows the mover's own legal mask by diff_role_and_h[h] (which
// also eliminates h's filled role and every role-variant of the same
// identity) and the opponent's by the weaker diff_h[h] (every role-variant
// of h's hero is now taken, but h's role stays open to the opponent), per the PICK row
// of spec.md S4.2's transition table. Accrues role value and hash without
// yet swapping perspective for the next recursive call.
func (r Rules) applyPick(p Position, h int) Position {
	inf := r.Info.Get(h)
	row := zobrist.RowForTeam(p.TeamIsA)
	p.Team = p.Team.With(h)
	p.Legal = p.Legal & inf.DiffRoleAndHero
	p.ELegal = p.ELegal & inf.DiffHero
	p.RoleValue += r.Reward.RoleDelta(h, p.TeamIsA)
	p.Hash ^= r.ZT.Key(row, h)
	return p
}

// applyBan narrows both sides' legal masks (diff_h[h]) and accrues the ban
// row's hash key, without yet swapping perspective.
func (r Rules) applyBan(p Position, h int) Position {
	diff := r.Info.Get(h).DiffHero
	p.Legal &= diff
	p.ELegal &= diff
	p.Hash ^= r.ZT.Key(zobrist.Ban, h)
	return p
}

// swap flips the mover/opponent labeling for the child call and advances
// Stage by delta (1 for singles, 2 for doubles), per spec.md S4.2: "the
// mover for the next stage is always the opponent of the current stage."
func (p Position) swap(delta int) Position {
	return Position{
		Team:      p.ETeam,
		ETeam:     p.Team,
		Legal:     p.ELegal,
		ELegal:    p.Legal,
		TeamIsA:   !p.TeamIsA,
		RoleValue: p.RoleValue,
		Hash:      p.Hash,
		Stage:     p.Stage + delta,
	}
}

// Pick applies a single PICK of hero h.
func (r Rules) Pick(p Position, h int) Position {
	return r.applyPick(p, h).swap(1)
}

// Ban applies a single BAN of hero h.
func (r Rules) Ban(p Position, h int) Position {
	return r.applyBan(p, h).swap(1)
}

// PickPick applies an ordered pair of picks by the same mover (h then h'),
// per spec.md S4.2; callers restrict h' > h for the dedupe rule themselves.
func (r Rules) PickPick(p Position, h, h2 int) Position {
	return r.applyPick(r.applyPick(p, h), h2).swap(2)
}

// PickBan applies a pick of h followed by a ban of h' by the same mover.
func (r Rules) PickBan(p Position, h, h2 int) Position {
	return r.applyBan(r.applyPick(p, h), h2).swap(2)
}

// BanPick applies a ban of h followed by a pick of h' by the same mover.
func (r Rules) BanPick(p Position, h, h2 int) Position {
	return r.applyPick(r.applyBan(p, h), h2).swap(2)
}

// BanBan applies an ordered pair of bans (h then h'); callers restrict
// h' > h for the dedupe rule themselves.
func (r Rules) BanBan(p Position, h, h2 int) Position {
	return r.applyBan(r.applyBan(p, h), h2).swap(2)
}

// Terminal scores a Position at Stage == L, returning the value in Team's
// own perspective (the negamax convention every other return in this
// package follows). spec.md S4.3 notes that, for the reference schedule
// shape, Team is physically A at every terminal by construction; this
// implementation does not depend on that shape holding -- it recovers the
// true physical (A, B) order from TeamIsA and sign-corrects the A-relative
// evaluator result, so an irregular or asymmetric schedule (e.g. a single
// lone stage belonging to one side, as in spec.md S8 scenario 1) still
// scores correctly.
func (r Rules) Terminal(p Position) int {
	a, b := p.Team, p.ETeam
	if !p.TeamIsA {
		a, b = p.ETeam, p.Team
	}
	raw := r.Reward.Terminal(a, b, p.RoleValue)
	if p.TeamIsA {
		return raw
	}
	return -raw
}
