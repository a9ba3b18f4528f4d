package session

import (
	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/calc"
)

// Snapshot is a read-only copy of what the renderer needs.
type Snapshot struct {
	Lines   []string
	Cursor  buffer.Pos
	Version uint64

	Message    calc.Result
	HasMessage bool

	Functions int
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Lines:     s.buf.Lines(),
		Cursor:    s.buf.Cursor(),
		Version:   s.buf.Version(),
		Functions: s.nb.Table().Len(),
	}
	if s.message != nil {
		snap.Message = *s.message
		snap.HasMessage = true
	}
	return snap
}
