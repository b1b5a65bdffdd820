package output

import (
	"fmt"
	"io"
	"strings"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// TextWriter writes human-readable reports.
type TextWriter struct {
	w       io.Writer
	diagram bool
}

// NewTextWriter creates a text writer. With diagram set each report
// includes an 8x8 board drawing.
func NewTextWriter(w io.Writer, diagram bool) *TextWriter {
	return &TextWriter{w: w, diagram: diagram}
}

// WriteReport writes r as a block of lines followed by a blank line.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %d", r.Index+1)
	if r.Source != "" {
		fmt.Fprintf(&sb, " %s", r.Source)
	}
	sb.WriteByte('\n')

	if r.Err != nil {
		fmt.Fprintf(&sb, "error: %v\n\n", r.Err)
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	if r.GameID != "" {
		fmt.Fprintf(&sb, "game:  %s\n", r.GameID)
	}
	fmt.Fprintf(&sb, "state: %s\n", r.State)
	fmt.Fprintf(&sb, "fen:   %s\n", r.FEN())
	if tw.diagram {
		sb.WriteString(Diagram(r.State))
	}
	fmt.Fprintf(&sb, "moves (%s, %d): %s\n", r.ToMove, len(r.Moves), strings.Join(moveNames(r.Moves), " "))
	if r.Check != nil {
		verdict := "illegal"
		if r.Check.Legal {
			verdict = "legal"
		}
		fmt.Fprintf(&sb, "%s%s: %s\n", r.Check.From, r.Check.To, verdict)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports as JSON.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport writes or buffers r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return encodeJSON(jw.w, ReportToJSON(r))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes buffered reports as an array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	out := JSONOutput{Reports: make([]*JSONReport, len(jw.reports))}
	for i, r := range jw.reports {
		out.Reports[i] = ReportToJSON(r)
	}
	jw.reports = jw.reports[:0]
	return encodeJSON(jw.w, out)
}

// Close writes any pending output.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
