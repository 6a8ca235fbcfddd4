package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// DisplayDiagnostic prints a diagnostic to the console.  The source text the
// diagnostic was produced from is passed in directly: the diagnostic's span
// indexes into it, so no file has to be reopened for display.  The name is
// the representative name of the source (eg. its file name).
func DisplayDiagnostic(name, source string, d *Diagnostic) {
	displayBanner(name, d)
	fmt.Println(d.Message)

	if d.Span != nil {
		displayCodeSelection(source, d.Span)
	}
}

// displayBanner displays the banner on top of a diagnostic.
func displayBanner(name string, d *Diagnostic) {
	fmt.Print("\n\n-- ")
	kindStr := d.KindString()

	ErrorStyleBG.Print(kindStr)

	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(name) - len(kindStr) - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(name)
}

// displayCodeSelection displays the erroneous source text (with line numbers)
// and underlines the spanned section.
func displayCodeSelection(source string, span *TextSpan) {
	fmt.Println()

	// Collect the source lines containing the span.
	var lines []string
	for ln, line := range strings.Split(source, "\n") {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(line, "\t", "    "))
		}
	}

	// Calculate the minimum line indentation.
	minIndent := -1
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if minIndent == -1 || lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the amount to pad line numbers by.
	maxLineNumLen := len(strconv.Itoa(span.EndLine+1)) + 1
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v"

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Print("|  ")
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), "|  ")

		// For the first line, underlining starts at the start column; for
		// every later line it continues from the line start.
		var carretPrefixCount int
		if i == 0 {
			carretPrefixCount = span.StartCol - minIndent
		}

		// For the last line, underlining stops at the end column; for every
		// earlier line it runs to the end of the line.
		carretCount := len(line) - minIndent - carretPrefixCount
		if i == len(lines)-1 {
			carretCount = span.EndCol - minIndent - carretPrefixCount
		}
		if carretCount < 1 {
			carretCount = 1
		}

		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", carretCount))
	}

	fmt.Println()
}

// DisplayCompileHeader displays the compiler configuration before a
// compilation begins.
func DisplayCompileHeader(version, compileID string) {
	fmt.Print("physc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- compile ")
	InfoColorFG.Println(compileID)
}

// DisplayCompileFinished displays a concluding message for a compilation.
func DisplayCompileFinished(success bool, errorCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	switch errorCount {
	case 0:
		fmt.Print("(")
		SuccessColorFG.Print(0)
		fmt.Println(" errors)")
	case 1:
		fmt.Print("(")
		ErrorColorFG.Print(1)
		fmt.Println(" error)")
	default:
		fmt.Print("(")
		ErrorColorFG.Print(errorCount)
		fmt.Println(" errors)")
	}
}
