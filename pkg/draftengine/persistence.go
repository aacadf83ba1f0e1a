package draftengine

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/draftbeta/draftbeta/pkg/tt"
	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// SaveTT writes the (Zobrist keys, TT) pair to path as a single binary
// blob, per spec.md S6's persistence operation. The two must always be
// saved and loaded together because TT contents are keyed by the specific
// Zobrist keys in effect when they were written. The byte layout is
// exactly spec.md S6's mandated wire format -- Zobrist keys (3xMaxHeroes
// 64-bit LE) followed by the TT (2^20 packed 64-bit LE), with no header
// of any kind, since S6 states this layout unconditionally as the file's
// entire contents: a file written by any spec-conformant writer must be
// loadable here, and vice versa.
func (e *Engine) SaveTT(path string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceIO, err)
	}
	defer f.Close()

	w := bufWriter{w: f}
	for row := zobrist.APick; row < zobrist.Ban+1; row++ {
		for h := 0; h < MaxHeroes; h++ {
			w.u64(uint64(e.zt.Key(row, h)))
		}
	}
	for i := 0; i < tt.Size; i++ {
		w.u64(e.tt.Raw(i))
	}
	if w.err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceIO, w.err)
	}
	return nil
}

// LoadTT reads back a (Zobrist keys, TT) pair saved by SaveTT, replacing
// the engine's current keys and TT contents in place. Reads exactly the
// same header-less S6 layout SaveTT writes.
func (e *Engine) LoadTT(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceIO, err)
	}
	defer f.Close()

	r := bufReader{r: f}
	zt := zobrist.NewTable(0)
	for row := zobrist.APick; row < zobrist.Ban+1; row++ {
		for h := 0; h < MaxHeroes; h++ {
			zt.Set(row, h, r.u64())
		}
	}
	newTT := &tt.Table{}
	for i := 0; i < tt.Size; i++ {
		newTT.SetRaw(i, r.u64())
	}
	if r.err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceIO, r.err)
	}

	e.zt = zt
	e.tt = newTT
	return nil
}

// bufWriter/bufReader are minimal little-endian helpers over an io.Writer/
// io.Reader that latch the first error, so callers can check once after a
// sequence of fixed-width writes/reads instead of after every call --
// mirroring the "return success iff the full expected byte count was
// transferred" contract of spec.md S6.
type bufWriter struct {
	w   io.Writer
	err error
}

func (b *bufWriter) u64(v uint64) {
	if b.err != nil {
		return
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, b.err = b.w.Write(buf[:])
}

type bufReader struct {
	r   io.Reader
	err error
}

func (b *bufReader) u64() uint64 {
	if b.err != nil {
		return 0
	}
	var buf [8]byte
	if _, b.err = io.ReadFull(b.r, buf[:]); b.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}
