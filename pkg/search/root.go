package search

import (
	"runtime"

	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/draftbeta/draftbeta/pkg/state"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// candidate is one first-ply selection at the root: the hero(es) chosen,
// and the lineup sets/bans-hash/stage delta that result, ready to recurse
// into the ordinary (single-threaded) Flex continuation.
type candidate struct {
	hero, hero2 int
	mover, opp  []state.Lineup
	bansHash    zobrist.Hash
	delta       int
}

// enumerateCandidates builds the full first-ply candidate list for stage
// st, using the same per-selection-kind rules as Flex's recursive case
// (S4.2/S4.4). Root always expands this enumeration directly -- even when
// the opponent's lineup history happens to already be unambiguous (nE==1)
// -- because root, unlike an ordinary continuation, must report which
// hero(es) produced the best value; dispatching through Flex's nE==1
// shortcut would hide that breakdown. The two paths agree on value by
// construction, since narrowing a singleton lineup array is equivalent to
// applying the pick/ban directly to the one concrete Position.
func (e *Engine) enumerateCandidates(mover, opp []state.Lineup, bansHash zobrist.Hash, moverIsA bool, st schedule.Stage) []candidate {
	var out []candidate

	switch st.Selection {
	case schedule.Pick:
		unionLegal(mover).Iter(func(h int) bool {
			if m2, o2, ok := e.applyPickStep(mover, opp, h, moverIsA); ok {
				out = append(out, candidate{hero: h, hero2: NoHero, mover: m2, opp: o2, bansHash: bansHash, delta: 1})
			}
			return true
		})

	case schedule.Ban:
		unionLegal(opp).Iter(func(h int) bool {
			if m2, o2, bh2, ok := e.applyBanStep(mover, opp, bansHash, h); ok {
				out = append(out, candidate{hero: h, hero2: NoHero, mover: m2, opp: o2, bansHash: bh2, delta: 1})
			}
			return true
		})

	case schedule.PickPick:
		unionLegal(mover).Iter(func(h int) bool {
			m1, o1, ok := e.applyPickStep(mover, opp, h, moverIsA)
			if !ok {
				return true
			}
			unionLegal(m1).Iter(func(h2 int) bool {
				if h2 <= h {
					return true
				}
				if m2, o2, ok2 := e.applyPickStep(m1, o1, h2, moverIsA); ok2 {
					out = append(out, candidate{hero: h, hero2: h2, mover: m2, opp: o2, bansHash: bansHash, delta: 2})
				}
				return true
			})
			return true
		})

	case schedule.PickBan:
		unionLegal(mover).Iter(func(h int) bool {
			m1, o1, ok := e.applyPickStep(mover, opp, h, moverIsA)
			if !ok {
				return true
			}
			unionLegal(o1).Iter(func(h2 int) bool {
				if m2, o2, bh2, ok2 := e.applyBanStep(m1, o1, bansHash, h2); ok2 {
					out = append(out, candidate{hero: h, hero2: h2, mover: m2, opp: o2, bansHash: bh2, delta: 2})
				}
				return true
			})
			return true
		})

	case schedule.BanPick:
		unionLegal(opp).Iter(func(h int) bool {
			m1, o1, bh1, ok := e.applyBanStep(mover, opp, bansHash, h)
			if !ok {
				return true
			}
			unionLegal(m1).Iter(func(h2 int) bool {
				if m2, o2, ok2 := e.applyPickStep(m1, o1, h2, moverIsA); ok2 {
					out = append(out, candidate{hero: h, hero2: h2, mover: m2, opp: o2, bansHash: bh1, delta: 2})
				}
				return true
			})
			return true
		})

	case schedule.BanBan:
		unionLegal(opp).Iter(func(h int) bool {
			m1, o1, bh1, ok := e.applyBanStep(mover, opp, bansHash, h)
			if !ok {
				return true
			}
			unionLegal(o1).Iter(func(h2 int) bool {
				if h2 <= h {
					return true
				}
				if m2, o2, bh2, ok2 := e.applyBanStep(m1, o1, bh1, h2); ok2 {
					out = append(out, candidate{hero: h, hero2: h2, mover: m2, opp: o2, bansHash: bh2, delta: 2})
				}
				return true
			})
			return true
		})
	}

	return out
}

func packResult(value, hero, hero2 int) uint64 {
	hv := uint8(hero)
	if hero == NoHero {
		hv = 0xFF
	}
	h2v := uint8(hero2)
	if hero2 == NoHero {
		h2v = 0xFF
	}
	return uint64(uint16(int16(value))) | uint64(hv)<<16 | uint64(h2v)<<24
}

func unpackResult(w uint64) (value, hero, hero2 int) {
	value = int(int16(uint16(w)))
	hv := uint8(w >> 16)
	h2v := uint8(w >> 24)
	hero = int(hv)
	if hv == 0xFF {
		hero = NoHero
	}
	hero2 = int(h2v)
	if h2v == 0xFF {
		hero2 = NoHero
	}
	return
}

// Root runs the root-level search of spec.md S4.5: identical to Flex's
// recursive case, except that (a) it records the best-scoring hero(s)
// alongside the value, and (b) each first-ply candidate may be evaluated
// by a bounded pool of concurrent workers. The best-value/best-hero
// triple is packed into a single word and updated via a CAS loop rather
// than a mutex, per spec.md S5 and S9's concurrency-primitive note; ties
// are resolved by keeping the first (lowest hero index) value to win
// under strict greater-than, matching the serial reference's tie-break --
// deterministic only when Options.Workers <= 1, since concurrent
// candidates may complete in any order (spec.md S5).
func (e *Engine) Root(mover, opp []state.Lineup, bansHash zobrist.Hash, moverIsA bool, stage int, opts Options, stats *Stats) (Result, error) {
	if stage >= e.Schedule.Len() {
		return Result{Value: e.flexTerminal(mover, opp, moverIsA), Hero: NoHero, Hero2: NoHero}, nil
	}

	st, _, ok := e.Schedule.StageAt(stage)
	if !ok {
		return Result{Value: e.flexTerminal(mover, opp, moverIsA), Hero: NoHero, Hero2: NoHero}, nil
	}

	candidates := e.enumerateCandidates(mover, opp, bansHash, moverIsA, st)
	if len(candidates) == 0 {
		return Result{Value: -Inf, Hero: NoHero, Hero2: NoHero}, ErrNoCandidate
	}

	workers, ok := opts.Workers.V()
	if !ok {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	best := atomic.NewUint64(packResult(-Inf, NoHero, NoHero))

	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range candidates {
		c := c
		g.Go(func() error {
			cur, _, _ := unpackResult(best.Load())
			beta := -cur

			score := -e.Flex(c.opp, c.mover, c.bansHash, !moverIsA, moverIsA, stage+c.delta, -Inf, beta, stats)

			for {
				old := best.Load()
				ov, _, _ := unpackResult(old)
				if score <= ov {
					return nil
				}
				if best.CompareAndSwap(old, packResult(score, c.hero, c.hero2)) {
					return nil
				}
			}
		})
	}
	_ = g.Wait()

	value, hero, hero2 := unpackResult(best.Load())
	return Result{Value: value, Hero: hero, Hero2: hero2}, nil
}
