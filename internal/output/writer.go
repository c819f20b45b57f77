// Package output writes analysis results and replayed games as text or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/game"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// ResultWriter is the interface for writing results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes the analysis of one position.
	WriteResult(result worker.ProcessResult) error

	// WriteGame writes a replayed game.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes results as tag pairs followed by a wrapped move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a position analysis in text format.
func (tw *TextWriter) WriteResult(result worker.ProcessResult) error {
	return writeResultText(tw.w, result, tw.cfg)
}

// WriteGame writes a game in text format.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	return writeGameText(tw.w, g, tw.cfg)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONPosition
	games     []*JSONGame
	single    bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as one document on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteResult buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(result worker.ProcessResult) error {
	pos := ResultToJSON(result)
	if jw.single {
		return jw.encode(pos)
	}
	jw.positions = append(jw.positions, pos)
	return nil
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jg := GameToJSON(g, jw.cfg)
	if jw.single {
		return jw.encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered results as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.positions) == 0 && len(jw.games) == 0) {
		return nil
	}

	err := jw.encode(&JSONOutput{Positions: jw.positions, Games: jw.games})

	// Clear buffers after writing
	jw.positions = jw.positions[:0]
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if jw.cfg.Output.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
