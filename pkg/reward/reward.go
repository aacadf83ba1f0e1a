// Package reward implements the terminal scoring rule of spec.md S4.1: a
// pure function from a pair of disjoint team bitsets to a signed score from
// A's perspective. Modeled on eval.Material in the chess engine this module
// is adapted from -- a stateless Evaluator over a position snapshot -- but
// scores a completed two-team draft instead of a single side to move.
package reward

import "github.com/draftbeta/draftbeta/pkg/bitset"

// Pair holds the two values a reward term grants, since A and B may value
// the same term differently.
type Pair struct {
	A, B int
}

// SynergyTerm grants Value when a team's bitset is a superset of Heroes.
type SynergyTerm struct {
	Heroes bitset.Set
	Value  Pair
}

// CounterTerm grants Value when one team is a superset of Heroes and the
// opponent is a superset of Foes.
type CounterTerm struct {
	Heroes, Foes bitset.Set
	Value        Pair
}

// Model is the full reward table for a draft: per-hero role rewards plus
// synergy and counter terms.
type Model struct {
	Role     [64]Pair
	Synergy  []SynergyTerm
	Counter  []CounterTerm
}

// SetRole stores the role-reward pair for hero index i.
func (m *Model) SetRole(i int, value Pair) {
	m.Role[i] = value
}

// RoleDelta returns the running_role_value contribution of a single PICK of
// hero h by the given side, per spec.md S4.3: +A_value when A picks, -B_value
// when B picks.
func (m *Model) RoleDelta(h int, aPicks bool) int {
	if aPicks {
		return m.Role[h].A
	}
	return -m.Role[h].B
}

// Terminal scores a completed pair of disjoint team bitsets from A's
// perspective, per spec.md S4.1. roleValue is the already-accumulated running
// role-value sum (see RoleDelta); Terminal adds only the synergy and counter
// contributions on top of it.
func (m *Model) Terminal(a, b bitset.Set, roleValue int) int {
	return roleValue + m.SynergyAndCounter(a, b)
}

// SynergyAndCounter scores only the synergy and counter terms, used both by
// Terminal and directly by the flex search's ambiguous-terminal max-min
// lattice (spec.md S4.4), which adds role values from each side separately.
func (m *Model) SynergyAndCounter(a, b bitset.Set) int {
	score := 0

	for _, s := range m.Synergy {
		switch {
		case a.IsSuperset(s.Heroes):
			score += s.Value.A
		case b.IsSuperset(s.Heroes):
			score -= s.Value.B
		}
	}

	for _, c := range m.Counter {
		switch {
		case a.IsSuperset(c.Heroes) && b.IsSuperset(c.Foes):
			score += c.Value.A
		case b.IsSuperset(c.Heroes) && a.IsSuperset(c.Foes):
			score -= c.Value.B
		}
	}

	return score
}
