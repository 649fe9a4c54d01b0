package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// WriterStrategy turns a raw sink into a format-specific log writer
type WriterStrategy interface {
	CreateWriter(sink io.Writer) io.Writer
}

// JSONWriterStrategy writes structured JSON lines as-is
type JSONWriterStrategy struct{}

// CreateWriter returns the sink unchanged; zerolog already emits JSON
func (s *JSONWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return sink
}

// ConsoleWriterStrategy writes human-readable, optionally colored output
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter wraps the sink in a zerolog console writer
func (s *ConsoleWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        sink,
		NoColor:    s.NoColor,
		TimeFormat: time.RFC3339,
	}
}

// TextWriterStrategy writes plain text output without color
type TextWriterStrategy struct{}

// CreateWriter wraps the sink in an uncolored console writer
func (s *TextWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        sink,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
}
