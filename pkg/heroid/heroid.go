// Package heroid defines hero indices and the precomputed per-hero masks
// used to update legality bitsets after a pick or ban. A real hero that
// plays K roles is represented by K distinct indices sharing an underlying
// identity; expanding and numbering those indices is the preprocessor's job
// (out of scope, per spec.md S1) -- this package only stores the masks the
// preprocessor derives for each index.
package heroid

import "github.com/draftbeta/draftbeta/pkg/bitset"

// MaxHeroes is the largest number of hero indices the engine supports,
// dictated by the 64-bit bitset representation.
const MaxHeroes = 64

// Index identifies a hero-role slot in [0, MaxHeroes).
type Index = int

// Info holds the precomputed complements described in spec.md S3.
type Info struct {
	// DiffRoleAndHero is the complement of the union of indices that share
	// this index's role OR its underlying identity. ANDed with a team's
	// legality mask after that team picks this index.
	DiffRoleAndHero bitset.Set
	// DiffHero is the complement of the union of indices sharing this
	// index's underlying identity. ANDed after a ban or an enemy pick.
	DiffHero bitset.Set
}

// Table holds Info for every configured hero index.
type Table struct {
	info [MaxHeroes]Info
}

// Set stores the complements of the given raw union masks for index i, per
// the set_h_info setup operation of spec.md S6.
func (t *Table) Set(i Index, sameRoleAndHero, sameHero bitset.Set) {
	t.info[i] = Info{
		DiffRoleAndHero: ^sameRoleAndHero,
		DiffHero:        ^sameHero,
	}
}

// Get returns the Info for hero index i.
func (t *Table) Get(i Index) Info {
	return t.info[i]
}
