package search

import (
	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/state"
	"github.com/draftbeta/draftbeta/pkg/tt"
)

// Negamax runs the inner alpha-beta recursion of spec.md S4.3 from p,
// returning the value from p's mover's perspective. Grounded on
// runAlphaBeta.search in the chess engine this package is adapted from: the
// same TT-probe / recurse / TT-store shape, with board.MoveList's move
// ordering and quiescence dropped since the draft schedule has no notion of
// "quiet" positions -- every stage is forced to resolve by exactly the
// selection kind the schedule names for it.
func (e *Engine) Negamax(p state.Position, alpha, beta int, stats *Stats) int {
	if p.Stage >= e.Schedule.Len() {
		return e.Rules.Terminal(p)
	}

	st, _, ok := e.Schedule.StageAt(p.Stage)
	if !ok {
		return e.Rules.Terminal(p)
	}

	useTT := p.Stage < MaxTTStage
	if useTT {
		if flag, stored, hit := e.TT.Read(p.Hash); hit {
			stats.TTHits.Add(1)
			v := int(stored)
			switch flag {
			case tt.Exact:
				return v
			case tt.LowerBound:
				if v > alpha {
					alpha = v
				}
			case tt.UpperBound:
				if v < beta {
					beta = v
				}
			}
			if alpha >= beta {
				return v
			}
		}
	}

	stats.Nodes.Add(1)
	originalAlpha := alpha
	value := -Inf

	// consider evaluates one candidate child, folding it into (value, alpha)
	// under the negamax sign flip, and reports whether the search should
	// keep iterating (false on a beta cutoff).
	consider := func(child state.Position) bool {
		score := -e.Negamax(child, -beta, -alpha, stats)
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
		p.Legal.Iter(func(h int) bool {
			return consider(e.Rules.Pick(p, h))
		})

	case schedule.Ban:
		p.ELegal.Iter(func(h int) bool {
			return consider(e.Rules.Ban(p, h))
		})

	case schedule.PickPick:
		p.Legal.Iter(func(h int) bool {
			inner := p.Legal & e.Rules.Info.Get(h).DiffRoleAndHero
			cont := true
			inner.Iter(func(h2 int) bool {
				if h2 <= h {
					return true // dedupe: restrict to h2 > h
				}
				cont = consider(e.Rules.PickPick(p, h, h2))
				return cont
			})
			return cont
		})

	case schedule.PickBan:
		p.Legal.Iter(func(h int) bool {
			inner := p.ELegal & e.Rules.Info.Get(h).DiffHero
			cont := true
			inner.Iter(func(h2 int) bool {
				cont = consider(e.Rules.PickBan(p, h, h2))
				return cont
			})
			return cont
		})

	case schedule.BanPick:
		p.ELegal.Iter(func(h int) bool {
			inner := p.Legal & e.Rules.Info.Get(h).DiffHero
			cont := true
			inner.Iter(func(h2 int) bool {
				cont = consider(e.Rules.BanPick(p, h, h2))
				return cont
			})
			return cont
		})

	case schedule.BanBan:
		p.ELegal.Iter(func(h int) bool {
			inner := p.ELegal & e.Rules.Info.Get(h).DiffHero
			cont := true
			inner.Iter(func(h2 int) bool {
				if h2 <= h {
					return true
				}
				cont = consider(e.Rules.BanBan(p, h, h2))
				return cont
			})
			return cont
		})
	}

	if useTT {
		var flag tt.Flag
		switch {
		case value <= originalAlpha:
			flag = tt.UpperBound
		case value >= beta:
			flag = tt.LowerBound
		default:
			flag = tt.Exact
		}
		e.TT.Write(p.Hash, flag, int16(value))
	}
	return value
}
