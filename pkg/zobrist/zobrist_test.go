package zobrist_test

import (
	"testing"

	"github.com/draftbeta/draftbeta/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func TestNewTableIsDeterministicForSeed(t *testing.T) {
	t1 := zobrist.NewTable(42)
	t2 := zobrist.NewTable(42)

	assert.Equal(t, t1.Key(zobrist.APick, 3), t2.Key(zobrist.APick, 3))
	assert.Equal(t, t1.Key(zobrist.Ban, 10), t2.Key(zobrist.Ban, 10))
}

func TestDifferentRowsAndHeroesDifferWithHighProbability(t *testing.T) {
	tbl := zobrist.NewTable(1)

	assert.NotEqual(t, tbl.Key(zobrist.APick, 0), tbl.Key(zobrist.BPick, 0))
	assert.NotEqual(t, tbl.Key(zobrist.APick, 0), tbl.Key(zobrist.APick, 1))
}

func TestSetOverridesKey(t *testing.T) {
	tbl := zobrist.NewTable(1)
	tbl.Set(zobrist.Ban, 5, 0xdeadbeef)
	assert.Equal(t, zobrist.Hash(0xdeadbeef), tbl.Key(zobrist.Ban, 5))
}

func TestRowForTeam(t *testing.T) {
	assert.Equal(t, zobrist.APick, zobrist.RowForTeam(true))
	assert.Equal(t, zobrist.BPick, zobrist.RowForTeam(false))
}
