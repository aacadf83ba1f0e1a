package tt_test

import (
	"testing"

	"github.com/draftbeta/draftbeta/pkg/tt"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	var table tt.Table

	h := zobrist.Hash(0x1234_5678_9abc_def0)
	table.Write(h, tt.LowerBound, -1234)

	flag, value, ok := table.Read(h)
	require.True(t, ok)
	assert.Equal(t, tt.LowerBound, flag)
	assert.Equal(t, int16(-1234), value)
}

func TestReadMissesOnUnwrittenEntry(t *testing.T) {
	var table tt.Table

	_, _, ok := table.Read(zobrist.Hash(42))
	assert.False(t, ok)
}

func TestReadMissesOnTagCollisionAtSameIndex(t *testing.T) {
	var table tt.Table

	h1 := zobrist.Hash(0x0000_0000_0010_0001)
	h2 := zobrist.Hash(0x0000_0001_0010_0001) // same low 20 bits, different tag
	require.Equal(t, uint64(h1)&(tt.Size-1), uint64(h2)&(tt.Size-1))

	table.Write(h1, tt.Exact, 7)

	_, _, ok := table.Read(h2)
	assert.False(t, ok)
}

func TestWriteAlwaysReplaces(t *testing.T) {
	var table tt.Table

	h := zobrist.Hash(99)
	table.Write(h, tt.Exact, 1)
	table.Write(h, tt.UpperBound, 2)

	flag, value, ok := table.Read(h)
	require.True(t, ok)
	assert.Equal(t, tt.UpperBound, flag)
	assert.Equal(t, int16(2), value)
}

func TestClearRemovesAllEntries(t *testing.T) {
	var table tt.Table

	h := zobrist.Hash(555)
	table.Write(h, tt.Exact, 3)
	table.Clear()

	_, _, ok := table.Read(h)
	assert.False(t, ok)
}

func TestRawRoundTripsForPersistence(t *testing.T) {
	var src, dst tt.Table

	h := zobrist.Hash(0xabc)
	src.Write(h, tt.LowerBound, -7)

	for i := 0; i < tt.Size; i++ {
		dst.SetRaw(i, src.Raw(i))
	}

	flag, value, ok := dst.Read(h)
	require.True(t, ok)
	assert.Equal(t, tt.LowerBound, flag)
	assert.Equal(t, int16(-7), value)
}
