package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/popwire/internal/styles"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer handles formatted output with colors and styles
type Printer struct {
	writer io.Writer
	render func(lipgloss.Style, string) string
}

// New creates a new Printer that writes to the given writer
func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		render: func(s lipgloss.Style, text string) string { return s.Render(text) },
	}
}

// NewPlain creates a Printer that never emits escape codes.
func NewPlain(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		render: func(_ lipgloss.Style, text string) string { return text },
	}
}

// NewContext returns a context with the printer attached
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx retrieves the printer from context, or creates a default one
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// FatalError prints a formatted error box and does NOT exit
// Caller should handle exit code
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	// Check if the error contains criterio.FieldErrors for better formatting
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.printValidationErrors(err, fieldErrs)
		return
	}

	lines := []string{
		p.render(styles.ErrorStyle, "╭ Error"),
		p.render(styles.ErrorStyle, "│") + " " + p.render(styles.MutedStyle, err.Error()),
		p.render(styles.ErrorStyle, "╵"),
	}

	p.write(strings.Join(lines, "\n"))
}

// printValidationErrors formats criterio.FieldErrors nicely
func (p *Printer) printValidationErrors(wrappedErr error, fieldErrs criterio.FieldErrors) {
	// Extract the context from the wrapped error (e.g., "load config: invalid config:")
	errStr := wrappedErr.Error()
	fieldErrStr := fieldErrs.Error()

	errContext := ""
	if idx := strings.Index(errStr, fieldErrStr); idx > 0 {
		errContext = strings.TrimSuffix(errStr[:idx], ": ")
	}

	bar := p.render(styles.ErrorStyle, "│")
	p.write(p.render(styles.ErrorStyle, "╭ Validation Error"))

	if errContext != "" {
		p.write(bar + " " + p.render(styles.MutedStyle, errContext))
		p.write(bar)
	}

	for _, fe := range fieldErrs {
		line := bar + " " + p.render(styles.ErrorStyle, Cross) + " "
		if fe.Field != "" {
			line += p.render(styles.MutedStyle, fe.Field+": ")
		}
		line += fe.Err.Error()
		p.write(line)
	}

	p.write(p.render(styles.ErrorStyle, "╵"))
}

// Errorf prints an error message in red
func (p *Printer) Errorf(format string, args ...any) {
	p.write(p.render(styles.ErrorStyle, Cross+" "+fmt.Sprintf(format, args...)))
}

// Successf prints a success message in green
func (p *Printer) Successf(format string, args ...any) {
	p.write(p.render(styles.SuccessStyle, Check+" "+fmt.Sprintf(format, args...)))
}

// Success prints a success message with details on a separate line
func (p *Printer) Success(message string, details string) {
	p.write(p.render(styles.SuccessStyle, Check+" "+message))
	if details != "" {
		p.write("  " + p.render(styles.MutedStyle, details))
	}
}

// Infof prints an info message in gray
func (p *Printer) Infof(format string, args ...any) {
	p.write(p.render(styles.MutedStyle, Dot+" "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning message in yellow
func (p *Printer) Warnf(format string, args ...any) {
	p.write(p.render(styles.WarnStyle, Dot+" "+fmt.Sprintf(format, args...)))
}

// Printf prints a plain message without colors
func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

// Section prints a section header (bold + underlined)
func (p *Printer) Section(title string) {
	p.write(p.render(styles.SectionStyle, title))
}

// CheckItem prints a success item with green checkmark
func (p *Printer) CheckItem(label, detail string) {
	p.printItem(styles.SuccessStyle, Check, label, detail)
}

// WarnItem prints a warning item with yellow dot
func (p *Printer) WarnItem(label, detail string) {
	p.printItem(styles.WarnStyle, Dot, label, detail)
}

// FailItem prints a failure item with red cross
func (p *Printer) FailItem(label, detail string) {
	p.printItem(styles.ErrorStyle, Cross, label, detail)
}

// DiffLine prints one line of a diff. op is '+', '-' or ' '.
func (p *Printer) DiffLine(op byte, text string) {
	line := string(op) + " " + text
	switch op {
	case '+':
		line = p.render(styles.DiffAddStyle, line)
	case '-':
		line = p.render(styles.DiffDeleteStyle, line)
	}
	p.write(line)
}

// DiffHeader prints the "--- a / +++ b" header of a diff.
func (p *Printer) DiffHeader(a, b string) {
	p.write(p.render(styles.DiffHeaderStyle, "--- "+a))
	p.write(p.render(styles.DiffHeaderStyle, "+++ "+b))
}

func (p *Printer) printItem(style lipgloss.Style, symbol, label, detail string) {
	line := "  " + p.render(style, symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}
	p.write(line)
}

func (p *Printer) write(line string) {
	_, _ = io.WriteString(p.writer, line+"\n")
}

// StatusOK returns a green checkmark with "ok" for use in tables.
func StatusOK() string {
	return styles.SuccessStyle.Render(Check) + " ok"
}

// StatusFailed returns a red cross with the given message for use in tables.
func StatusFailed(msg string) string {
	return styles.ErrorStyle.Render(Cross) + " " + msg
}

// StatusWarn returns a yellow dot with the given message for use in tables.
func StatusWarn(msg string) string {
	return styles.WarnStyle.Render(Dot) + " " + msg
}
