package session

import (
	"io"
	"log/slog"
)

// Placement selects where commit results go.
type Placement int

const (
	// PlaceMessage shows results in the transient message area.
	PlaceMessage Placement = iota
	// PlaceInline inserts results into the document as comment lines.
	PlaceInline
)

func (p Placement) String() string {
	if p == PlaceInline {
		return "inline"
	}
	return "message"
}

const DefaultCommentPrefix = "#"

type Options struct {
	// CommentPrefix marks lines that Enter never evaluates. Default "#".
	CommentPrefix string
	// StripComments drops comment lines from Serialize output.
	StripComments bool
	Placement     Placement
	Logger        *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.CommentPrefix == "" {
		o.CommentPrefix = DefaultCommentPrefix
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
