// Lineup supports the flex extension of spec.md S4.4: a candidate team
// assignment among several still-ambiguous role assignments for heroes
// already selected at the root. Unlike Position, a Lineup does not carry
// its own opponent-side fields -- flex-negamax holds parallel slices of
// Lineups for each side and a single shared bans_hash, per spec.md S4.4's
// Inputs.
package state

import (
	"github.com/draftbeta/draftbeta/pkg/bitset"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// Lineup is one candidate team composition plus its running role value and
// lineup-specific hash contribution (bans are tracked separately, since all
// role variants of a hero share the same ban-row identity).
type Lineup struct {
	Team      bitset.Set
	Legal     bitset.Set
	RoleValue int
	Hash      zobrist.Hash
}

// NarrowLegal ANDs Legal with diff_h[h], the shared update applied to every
// lineup on both sides by a BAN, and to the opponent's lineups by a mover
// PICK (spec.md S4.4's recursive case).
func (r Rules) NarrowLegal(l Lineup, h int) Lineup {
	l.Legal &= r.Info.Get(h).DiffHero
	return l
}

// PickLineup applies a mover PICK of h to a single candidate lineup of the
// mover's side, returning ok=false if h is not legal in this lineup (such
// lineups are dropped from the updated set entirely, per spec.md S4.4).
func (r Rules) PickLineup(l Lineup, h int, isA bool) (Lineup, bool) {
	if !l.Legal.IsSet(h) {
		return Lineup{}, false
	}
	inf := r.Info.Get(h)
	row := zobrist.RowForTeam(isA)
	l.Team = l.Team.With(h)
	l.Legal &= inf.DiffRoleAndHero
	l.RoleValue += r.Reward.RoleDelta(h, isA)
	l.Hash ^= r.ZT.Key(row, h)
	return l, true
}

// BanHash returns the updated shared ban-row hash for a ban of hero h.
func (r Rules) BanHash(bansHash zobrist.Hash, h int) zobrist.Hash {
	return bansHash ^ r.ZT.Key(zobrist.Ban, h)
}

// ToPosition fuses a single pair of lineups (one per side) and the shared
// bans hash into a plain Position, used when flex-negamax's ambiguity
// collapses to a single candidate per side (spec.md S4.4's nE==1 base case,
// and its recursive case once nS==nE==1 too).
func ToPosition(mover, opp Lineup, bansHash zobrist.Hash, moverIsA bool, stage int) Position {
	return Position{
		Team:      mover.Team,
		ETeam:     opp.Team,
		Legal:     mover.Legal,
		ELegal:    opp.Legal,
		TeamIsA:   moverIsA,
		RoleValue: mover.RoleValue + opp.RoleValue,
		Hash:      bansHash ^ mover.Hash ^ opp.Hash,
		Stage:     stage,
	}
}
