package view

import (
	"context"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/data/parser"
	"github.com/penwyp/go-log-timeline/internal/data/source"
)

// Loader turns a source into events. File sources go through the parser
// cache so that unchanged files are not parsed twice.
type Loader struct {
	parser *parser.Parser
	src    source.Source
}

func NewLoader(src source.Source) *Loader {
	return &Loader{parser: parser.NewParser(), src: src}
}

// Source returns the loader's source.
func (l *Loader) Source() source.Source {
	return l.src
}

// Load reads and parses the source.
func (l *Loader) Load(ctx context.Context) ([]model.Event, error) {
	if w, ok := l.src.(source.Watchable); ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return l.parser.ParseFile(w.Path())
	}

	text, err := l.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return parser.Parse(text), nil
}

// Invalidate forgets cached results so the next Load rereads the source.
func (l *Loader) Invalidate() {
	if w, ok := l.src.(source.Watchable); ok {
		l.parser.Invalidate(w.Path())
	}
}

// WatchPaths returns the files to watch for this source, if any.
func (l *Loader) WatchPaths() []string {
	if w, ok := l.src.(source.Watchable); ok {
		return []string{w.Path()}
	}
	return nil
}
