package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK and Fail, e.g. to a cobra command's writers.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func OK(msg string) {
	t := Current()
	fmt.Fprintln(stdout, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(stderr, t.Error.Render(t.SymFail+" "+msg))
}

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) {
	fmt.Fprintln(stderr, Current().Muted.Render(msg))
}

// PanelString frames lines with the theme border.
func PanelString(lines ...string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines...))
}

// ProgressBar renders a bar with a percentage, e.g. "█████░░░░░  50%".
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	if width < 5 {
		width = 5
	}
	t := Current()
	filled := done * width / total
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	pct := done * 100 / total
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
