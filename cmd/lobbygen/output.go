package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/handiism/lobbygen/internal/generate"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// printer renders progress events, styled only when writing to a terminal.
type printer struct {
	w        io.Writer
	verbose  bool
	colorize bool
}

func newPrinter(w io.Writer, verbose bool) *printer {
	return &printer{w: w, verbose: verbose, colorize: shouldColorize(w)}
}

func (p *printer) header(title string) {
	if !p.colorize {
		fmt.Fprintln(p.w, title)
		return
	}
	fmt.Fprintln(p.w, headerStyle.Render("♪ "+title))
	fmt.Fprintln(p.w, dimStyle.Render(strings.Repeat("─", 40)))
}

func (p *printer) event(event generate.ProgressEvent) {
	if event.Level == generate.LevelVerbose && !p.verbose {
		return
	}

	prefix, style := levelPrefix(event.Level)
	if !p.colorize {
		fmt.Fprintln(p.w, prefix+" "+event.Message)
		return
	}
	fmt.Fprintln(p.w, style.Render(prefix+" "+event.Message))
}

func levelPrefix(level generate.ProgressLevel) (string, lipgloss.Style) {
	switch level {
	case generate.LevelError:
		return "✗", errorStyle
	case generate.LevelWarning:
		return "!", warningStyle
	case generate.LevelSuccess:
		return "✓", successStyle
	case generate.LevelInfo:
		return "›", infoStyle
	default:
		return "•", dimStyle
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
