package report

import (
	"io"
	"os"

	"github.com/funvibe/patcover/internal/config"
	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// UseColor decides whether output to out gets ANSI colours. In auto mode
// colour is used only for a terminal, and never when NO_COLOR is set.
func UseColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if config.IsTestMode {
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// ValidColorMode reports whether mode is one of auto, always and never.
func ValidColorMode(mode string) bool {
	return mode == config.ColorAuto || mode == config.ColorAlways || mode == config.ColorNever
}
