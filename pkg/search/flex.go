package search

import (
	"github.com/draftbeta/draftbeta/pkg/bitset"
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/state"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// unionLegal returns the union of every lineup's Legal mask: the candidate
// universe for a selection that must remain possible under at least one
// surviving interpretation of ambiguous history.
func unionLegal(lineups []state.Lineup) bitset.Set {
	var u bitset.Set
	for _, l := range lineups {
		u |= l.Legal
	}
	return u
}

// pickLineups applies a mover PICK of h across every lineup, keeping only
// those in which h was legal (spec.md S4.4's recursive case).
func (e *Engine) pickLineups(lineups []state.Lineup, h int, isA bool) []state.Lineup {
	var out []state.Lineup
	for _, l := range lineups {
		if nl, ok := e.Rules.PickLineup(l, h, isA); ok {
			out = append(out, nl)
		}
	}
	return out
}

// narrowLineupsFor applies the shared diff_h[h] update across every lineup,
// without dropping any (used for both sides on a ban, and for the
// opponent's lineups on a mover pick).
func (e *Engine) narrowLineupsFor(lineups []state.Lineup, h int) []state.Lineup {
	out := make([]state.Lineup, len(lineups))
	for i, l := range lineups {
		out[i] = e.Rules.NarrowLegal(l, h)
	}
	return out
}

// applyPickStep applies a mover PICK of h to both sides' lineup sets. ok is
// false if no mover lineup survives (h illegal in every one), matching
// spec.md S4.4's "if the updated length is zero, skip h".
func (e *Engine) applyPickStep(mover, opp []state.Lineup, h int, moverIsA bool) (moverOut, oppOut []state.Lineup, ok bool) {
	moverOut = e.pickLineups(mover, h, moverIsA)
	if len(moverOut) == 0 {
		return nil, nil, false
	}
	oppOut = e.narrowLineupsFor(opp, h)
	return moverOut, oppOut, true
}

// applyBanStep applies a BAN of h, valid iff h is legal in at least one
// opponent lineup (spec.md S4.4's redundancy rule generalized across the
// ambiguity set).
func (e *Engine) applyBanStep(mover, opp []state.Lineup, bansHash zobrist.Hash, h int) (moverOut, oppOut []state.Lineup, hashOut zobrist.Hash, ok bool) {
	if !unionLegal(opp).IsSet(h) {
		return nil, nil, 0, false
	}
	moverOut = e.narrowLineupsFor(mover, h)
	oppOut = e.narrowLineupsFor(opp, h)
	hashOut = e.Rules.BanHash(bansHash, h)
	return moverOut, oppOut, hashOut, true
}

// v evaluates one (mover lineup, opponent lineup) pairing at a terminal
// state. This assumes mover is physically A and opp physically B at
// stage == L, per spec.md S4.3 step 1 ("B always has the last pick"); it
// is an unchecked domain assumption about the reference schedule shape,
// not something schedule.Schedule.Validate enforces (Validate only checks
// non-emptiness and the MaxDraftLen bound). state.Rules.Terminal does not
// share this assumption -- it recovers the true physical order from
// TeamIsA instead, so it scores correctly even when this shape doesn't hold.
func (e *Engine) v(mover, opp []state.Lineup, i, j int) int {
	return e.Rules.Reward.Terminal(mover[i].Team, opp[j].Team, mover[i].RoleValue+opp[j].RoleValue)
}

// flexTerminal resolves irreducible lineup ambiguity at stage == L via the
// guaranteed max-min/min-max value of spec.md S4.4. rootIsA is the fixed
// physical identity of the side that initiated the search (threaded
// explicitly through every call, per spec.md S9's redesign note rejecting
// the source's process-wide root-mover variable).
func (e *Engine) flexTerminal(mover, opp []state.Lineup, rootIsA bool) int {
	if rootIsA {
		best := -Inf
		for i := range mover {
			worst := Inf
			for j := range opp {
				if s := e.v(mover, opp, i, j); s < worst {
					worst = s
				}
			}
			if worst > best {
				best = worst
			}
		}
		return best
	}

	best := Inf
	for j := range opp {
		worst := -Inf
		for i := range mover {
			if s := e.v(mover, opp, i, j); s > worst {
				worst = s
			}
		}
		if worst < best {
			best = worst
		}
	}
	return best
}

// Flex runs the flex-negamax recursion of spec.md S4.4 from a pair of
// lineup-ambiguity sets, returning the value from mover's perspective.
// Grounded on the same runAlphaBeta shape as Negamax, generalized from a
// single board position to parallel arrays of candidate lineups.
func (e *Engine) Flex(mover, opp []state.Lineup, bansHash zobrist.Hash, moverIsA, rootIsA bool, stage int, alpha, beta int, stats *Stats) int {
	if len(opp) == 1 {
		value := -Inf
		for _, m := range mover {
			pos := state.ToPosition(m, opp[0], bansHash, moverIsA, stage)
			score := e.Negamax(pos, alpha, beta, stats)
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	if stage >= e.Schedule.Len() {
		return e.flexTerminal(mover, opp, rootIsA)
	}

	st, _, ok := e.Schedule.StageAt(stage)
	if !ok {
		return e.flexTerminal(mover, opp, rootIsA)
	}

	value := -Inf

	recurse := func(m2, o2 []state.Lineup, bh2 zobrist.Hash, delta int) bool {
		score := -e.Flex(o2, m2, bh2, !moverIsA, rootIsA, stage+delta, -beta, -alpha, stats)
		if score > value {
			value = score
		}
		if value > alpha {
			alpha = value
		}
		return alpha < beta
	}

	switch st.Selection {
	case schedule.Pick:
		unionLegal(mover).Iter(func(h int) bool {
			m2, o2, ok := e.applyPickStep(mover, opp, h, moverIsA)
			if !ok {
				return true
			}
			return recurse(m2, o2, bansHash, 1)
		})

	case schedule.Ban:
		unionLegal(opp).Iter(func(h int) bool {
			m2, o2, bh2, ok := e.applyBanStep(mover, opp, bansHash, h)
			if !ok {
				return true
			}
			return recurse(m2, o2, bh2, 1)
		})

	case schedule.PickPick:
		unionLegal(mover).Iter(func(h int) bool {
			m1, o1, ok := e.applyPickStep(mover, opp, h, moverIsA)
			if !ok {
				return true
			}
			cont := true
			unionLegal(m1).Iter(func(h2 int) bool {
				if h2 <= h {
					return true
				}
				m2, o2, ok2 := e.applyPickStep(m1, o1, h2, moverIsA)
				if !ok2 {
					return true
				}
				cont = recurse(m2, o2, bansHash, 2)
				return cont
			})
			return cont
		})

	case schedule.PickBan:
		unionLegal(mover).Iter(func(h int) bool {
			m1, o1, ok := e.applyPickStep(mover, opp, h, moverIsA)
			if !ok {
				return true
			}
			cont := true
			unionLegal(o1).Iter(func(h2 int) bool {
				m2, o2, bh2, ok2 := e.applyBanStep(m1, o1, bansHash, h2)
				if !ok2 {
					return true
				}
				cont = recurse(m2, o2, bh2, 2)
				return cont
			})
			return cont
		})

	case schedule.BanPick:
		unionLegal(opp).Iter(func(h int) bool {
			m1, o1, bh1, ok := e.applyBanStep(mover, opp, bansHash, h)
			if !ok {
				return true
			}
			cont := true
			unionLegal(m1).Iter(func(h2 int) bool {
				m2, o2, ok2 := e.applyPickStep(m1, o1, h2, moverIsA)
				if !ok2 {
					return true
				}
				cont = recurse(m2, o2, bh1, 2)
				return cont
			})
			return cont
		})

	case schedule.BanBan:
		unionLegal(opp).Iter(func(h int) bool {
			m1, o1, bh1, ok := e.applyBanStep(mover, opp, bansHash, h)
			if !ok {
				return true
			}
			cont := true
			unionLegal(o1).Iter(func(h2 int) bool {
				if h2 <= h {
					return true
				}
				m2, o2, bh2, ok2 := e.applyBanStep(m1, o1, bh1, h2)
				if !ok2 {
					return true
				}
				cont = recurse(m2, o2, bh2, 2)
				return cont
			})
			return cont
		})
	}

	return value
}
