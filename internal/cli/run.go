package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lockhart9/stresscheck/internal/catalog"
	"github.com/lockhart9/stresscheck/internal/config"
	"github.com/lockhart9/stresscheck/internal/scoring"
	"github.com/lockhart9/stresscheck/internal/utils"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the questionnaire interactively and score it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if method == "" {
				method = opts.cfg.Method
			}
			if err := validMethod(method); err != nil {
				return err
			}
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), cat, opts.cfg, method)
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "aggregation method: sumup, conversion or both")
	return cmd
}

// runInteractive walks the catalog theme by theme, reading one answer per
// line. A line that does not parse, or that the sheet rejects, is
// re-prompted; the respondent cannot skip a question.
func runInteractive(in io.Reader, out io.Writer, cat *catalog.Catalog, cfg *config.Config, method string) error {
	sheet := scoring.NewAnswerSheet()
	scanner := bufio.NewScanner(in)
	locale := cfg.Locale

	for _, theme := range cat.Themes {
		fmt.Fprintln(out, theme.Theme)
		for _, block := range theme.Blocks {
			if block.Title != "" {
				fmt.Fprintln(out, block.Title)
			}
			for _, q := range block.Questions {
				fmt.Fprintf(out, "%s %s\n",
					fmt.Sprintf(utils.T(locale, "prompt.progress"), q.ID, scoring.QuestionCount), q.Text)
				var line strings.Builder
				for _, choice := range q.Choices {
					fmt.Fprintf(&line, "  %d) %s", choice.Score, choice.Label)
				}
				fmt.Fprintln(out, line.String())
				if err := readAnswer(scanner, out, sheet, locale); err != nil {
					return err
				}
			}
			fmt.Fprintln(out)
		}
	}

	if method == "sumup" || method == "both" {
		score, err := sheet.SumupScore()
		if err != nil {
			return err
		}
		printScore(out, locale, "method.sumup", score, useColor(out, cfg.NoColor))
	}
	if method == "conversion" || method == "both" {
		score, err := sheet.ConversionScore()
		if err != nil {
			return err
		}
		printScore(out, locale, "method.conversion", score, useColor(out, cfg.NoColor))
	}
	return nil
}

func readAnswer(scanner *bufio.Scanner, out io.Writer, sheet *scoring.AnswerSheet, locale string) error {
	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("input ended after %d answers: %w", sheet.Answered(), scoring.ErrNotFulfilled)
		}
		answer, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			err = sheet.Push(answer)
		}
		if err == nil {
			return nil
		}
		fmt.Fprintln(out, utils.T(locale, "prompt.retry"))
	}
}
