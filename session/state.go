package session

import (
	"strings"

	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/calc"
	"github.com/iw2rmb/calcpad/internal/grapheme"
)

// Outcome tells the front end whether to keep going after a key.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Exit records how the session ended.
type Exit int

const (
	// Running means no terminal key has been handled yet.
	Running Exit = iota
	// ExitSave asks the caller to write Serialize() back to the file.
	ExitSave
	// ExitDiscard ends the session without writing.
	ExitDiscard
)

// State is the whole mutable session. It is not safe for concurrent use;
// the front end calls it from its single update loop.
type State struct {
	buf  *buffer.Buffer
	nb   calc.Notebook
	opts Options

	message *calc.Result
	exit    Exit
}

// New starts a session over text, usually the file contents read at startup.
func New(text string, opts Options) *State {
	return &State{
		buf:  buffer.New(text),
		opts: opts.withDefaults(),
	}
}

func (s *State) Buffer() *buffer.Buffer { return s.buf }

func (s *State) Notebook() *calc.Notebook { return &s.nb }

func (s *State) Options() Options { return s.opts }

func (s *State) Exit() Exit { return s.exit }

// Message returns the transient result, if any.
func (s *State) Message() (calc.Result, bool) {
	if s.message == nil {
		return calc.Result{}, false
	}
	return *s.message, true
}

// HandleKey applies one key event. Keys after the session has ended are
// ignored.
func (s *State) HandleKey(k Key) Outcome {
	if s.exit != Running {
		return Quit
	}

	switch k.Kind {
	case KeyRune:
		if k.Text == "" {
			return Continue
		}
		s.message = nil
		for _, g := range grapheme.Split(k.Text) {
			s.buf.InsertGrapheme(g)
		}
	case KeyBackspace:
		s.message = nil
		s.buf.DeleteBackward()
	case KeyLeft:
		s.buf.Move(buffer.Move{Dir: buffer.DirLeft})
	case KeyRight:
		s.buf.Move(buffer.Move{Dir: buffer.DirRight})
	case KeyUp:
		s.buf.Move(buffer.Move{Dir: buffer.DirUp})
	case KeyDown:
		s.buf.Move(buffer.Move{Dir: buffer.DirDown})
	case KeyHome:
		s.buf.Move(buffer.Move{Dir: buffer.DirHome})
	case KeyEnd:
		s.buf.Move(buffer.Move{Dir: buffer.DirEnd})
	case KeyEnter:
		s.enter()
	case KeyEscape:
		s.exit = ExitSave
		s.opts.Logger.Info("session end", "exit", "save", "lines", s.buf.LineCount())
		return Quit
	case KeyAbort:
		s.exit = ExitDiscard
		s.opts.Logger.Info("session end", "exit", "discard")
		return Quit
	}
	return Continue
}

// IsComment reports whether line starts with the comment prefix, ignoring
// leading whitespace.
func (s *State) IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), s.opts.CommentPrefix)
}

func (s *State) enter() {
	line := s.buf.CurrentLine()
	if strings.TrimSpace(line) == "" || s.IsComment(line) {
		s.message = nil
		s.buf.InsertLineBelow()
		return
	}

	res := s.nb.Commit(line)
	s.opts.Logger.Debug("commit",
		"kind", res.Kind.String(),
		"name", res.Name,
		"severity", res.Severity.String(),
		"text", res.Text,
	)

	switch s.opts.Placement {
	case PlaceInline:
		s.message = nil
		row := s.buf.Cursor().Row
		if row+1 < s.buf.LineCount() && s.staleResult(s.buf.Line(row+1), res.Name) {
			s.buf.RemoveLine(row + 1)
		}
		s.buf.InsertLineAfter(row, s.opts.CommentPrefix+" "+res.Text)
		s.buf.SetCursor(buffer.Pos{Row: row + 1})
		s.buf.InsertLineBelow()
	default:
		s.message = &res
		s.buf.InsertLineBelow()
	}
}

// staleResult reports whether line is an inline result written by an earlier
// commit of a statement named name. Re-committing replaces it.
func (s *State) staleResult(line, name string) bool {
	text, ok := strings.CutPrefix(line, s.opts.CommentPrefix+" ")
	if !ok {
		return false
	}
	if name == "" {
		return text == calc.ErrSyntax.Error()
	}
	return strings.HasPrefix(text, "defined "+name+"(") ||
		strings.HasPrefix(text, name+"(") ||
		strings.HasPrefix(text, name+": ")
}

// Serialize joins the document with '\n', dropping comment lines when
// StripComments is set.
func (s *State) Serialize() string {
	lines := s.buf.Lines()
	if !s.opts.StripComments {
		return strings.Join(lines, "\n")
	}
	kept := lines[:0]
	for _, line := range lines {
		if s.IsComment(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
