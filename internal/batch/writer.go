package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits one JSON line per result, or a single summary table on Close.
type Writer struct {
	out     *bufio.Writer
	format  string
	encoder *json.Encoder
	summary *Summary
	logger  *zerolog.Logger
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported output format %q, supported: %s, %s", format, FormatJSONL, FormatSummary)
	}

	out := bufio.NewWriter(output)
	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		summary: NewSummary(),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result Result) error {
	w.summary.Add(result)
	if w.format != FormatJSONL {
		return nil
	}

	if err := w.encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result line %d: %w", result.LineNumber, err)
	}
	return nil
}

// Summary returns the statistics gathered so far.
func (w *Writer) Summary() *Summary {
	return w.summary
}

func (w *Writer) Close() error {
	if w.format == FormatSummary {
		if _, err := w.summary.WriteTo(w.out); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	w.logger.Debug().Str("format", w.format).Int("records", w.summary.Total).Msg("Writer closed")
	return nil
}
