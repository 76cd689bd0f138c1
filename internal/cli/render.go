package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/lockhart9/stresscheck/internal/scoring"
	"github.com/lockhart9/stresscheck/internal/utils"
)

// useColor reports whether w is a terminal that should receive color.
func useColor(w io.Writer, noColor bool) bool {
	if noColor || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

var (
	highStressColor = color.New(color.FgRed, color.Bold)
	okColor         = color.New(color.FgGreen)
)

// printScore writes one method's domain totals and verdict.
func printScore(w io.Writer, locale, methodKey string, score scoring.Score, colored bool) {
	fmt.Fprintf(w, "[%s]\n", utils.T(locale, methodKey))
	a, b, c := score.Domains()
	fmt.Fprintf(w, utils.T(locale, "result.domains")+"\n", a, b, c)
	verdictKey := "verdict.low"
	verdictColor := okColor
	if score.HighStress() {
		verdictKey = "verdict.high"
		verdictColor = highStressColor
	}
	if colored {
		verdictColor.Fprintln(w, utils.T(locale, verdictKey))
	} else {
		fmt.Fprintln(w, utils.T(locale, verdictKey))
	}
}
