package report

import "fmt"

// Enumeration of diagnostic kinds.
const (
	LexError = iota
	ParseError
	UnitError
	DuplicateDeclaration
	UndefinedVariable
	UndefinedOperator
	DimensionMismatch
)

// kindStrings maps diagnostic kinds to their display labels.
var kindStrings = map[int]string{
	LexError:             "lex error",
	ParseError:           "parse error",
	UnitError:            "unit error",
	DuplicateDeclaration: "duplicate declaration",
	UndefinedVariable:    "undefined variable",
	UndefinedOperator:    "undefined operator",
	DimensionMismatch:    "dimension mismatch",
}

// Diagnostic is a single compilation fault detected in a physc source text.
// It carries enough context to locate and explain the fault without the
// source text being reopened.
type Diagnostic struct {
	// The kind of the diagnostic.  This must be one of the enumerated
	// diagnostic kinds.
	Kind int

	// The diagnostic message.
	Message string

	// The span over which the fault occurs.  This may be nil for faults with
	// no single source location.
	Span *TextSpan
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// KindString returns the display label for the diagnostic's kind.
func (d *Diagnostic) KindString() string {
	return kindStrings[d.Kind]
}

// Raise creates a new diagnostic of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}
