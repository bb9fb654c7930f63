// Package tcy rewrites HTML for vertical (tategaki) display. Short
// digit runs and doubled !/? pairs are wrapped so they render
// horizontally within the vertical flow (tate-chu-yoko), and
// rotation-sensitive symbols are pinned sideways or upright. URLs,
// email addresses and HTML character references pass through verbatim,
// as does anything inside code, pre, math or svg elements or under a
// tcy/upright/sideways class marker.
package tcy

import (
	"log/slog"

	"github.com/lostandfound/tcy/internal/htmltree"
	"github.com/lostandfound/tcy/internal/walker"
)

// Config controls one transform.
type Config struct {
	// TCYDigit is the longest digit run converted to tate-chu-yoko.
	// Longer runs are left alone entirely, never split; 0 disables
	// digit conversion. Doubled-punctuation conversion is unaffected.
	TCYDigit int

	// AutoTextOrientation pins the fixed symbol set sideways and
	// Greek/Cyrillic letters upright, one span per character.
	AutoTextOrientation bool
}

// DefaultConfig returns the standard settings: digit runs up to two
// characters, orientation rules on.
func DefaultConfig() Config {
	return Config{TCYDigit: 2, AutoTextOrientation: true}
}

// Engine applies the transform. It holds no per-call state, so a
// single Engine is safe for concurrent use across documents.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// New creates an Engine. log may be nil to disable logging.
func New(cfg Config, log *slog.Logger) *Engine {
	if cfg.TCYDigit < 0 {
		cfg.TCYDigit = 0
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg, log: log}
}

// Transform rewrites input with the default configuration.
func Transform(input string) string {
	return New(DefaultConfig(), nil).Transform(input)
}

// Transform rewrites a document or fragment and returns the resulting
// markup. It never fails: input the tree provider cannot make sense of
// is returned unchanged rather than corrupted.
func (e *Engine) Transform(input string) string {
	if input == "" {
		return ""
	}
	if htmltree.HasUnclosedTag(input) {
		e.log.Debug("unusable top-level markup, returning input unchanged")
		return input
	}

	doc, err := htmltree.ParseDocument(input)
	if err != nil {
		e.log.Debug("parse failed, returning input unchanged", "error", err)
		return input
	}
	body := htmltree.Body(doc)
	if body == nil {
		e.log.Debug("no body element, returning input unchanged")
		return input
	}

	w := &walker.Walker{
		DigitMax:    e.cfg.TCYDigit,
		Orientation: e.cfg.AutoTextOrientation,
		Log:         e.log,
	}
	w.Transform(body)

	// Fragment and bare-text input round-trips without the
	// synthesized html/head/body wrapper.
	var out string
	if htmltree.IsDocument(input) {
		out, err = htmltree.Render(doc)
	} else {
		out, err = htmltree.RenderChildren(body)
	}
	if err != nil {
		e.log.Debug("render failed, returning input unchanged", "error", err)
		return input
	}
	return out
}
