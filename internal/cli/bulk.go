package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lockhart9/stresscheck/internal/bulk"
	"github.com/lockhart9/stresscheck/internal/config"
	"github.com/lockhart9/stresscheck/internal/scoring"
	"github.com/lockhart9/stresscheck/internal/utils"
)

func newBulkCmd(opts *rootOptions) *cobra.Command {
	var (
		method  string
		format  string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "bulk <file>",
		Short: "Score answer records from a CSV file",
		Long: "bulk reads records of the form id,a1,...,a57 (one respondent per\n" +
			"line, answers 1-4) and scores each with the selected method. Rows that\n" +
			"fail to parse are reported and skipped. Pass - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if method == "" {
				method = opts.cfg.Method
			}
			if method == "both" {
				return fmt.Errorf("bulk scores with one method at a time: sumup or conversion")
			}
			if err := validMethod(method); err != nil {
				return err
			}
			if format == "" {
				format = opts.cfg.Format
			}
			if format != "text" && format != "csv" {
				return fmt.Errorf("invalid format %q: want text or csv", format)
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runBulk(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.cfg, method, format, summary)
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "aggregation method: sumup or conversion")
	cmd.Flags().StringVar(&format, "format", "", "output format: text or csv")
	cmd.Flags().BoolVar(&summary, "summary", false, "append batch summary statistics")
	return cmd
}

func runBulk(in io.Reader, out, errOut io.Writer, cfg *config.Config, method, format string, summary bool) error {
	locale := cfg.Locale
	records, rowErrs := bulk.NewReader(in).ReadAll()
	for _, err := range rowErrs {
		fmt.Fprintf(errOut, utils.T(locale, "bulk.rowerror")+"\n", err)
	}

	var (
		results []bulk.Result
		entries []bulk.Entry
	)
	for _, rec := range records {
		score, err := scoreSheet(rec.Sheet, method)
		if err != nil {
			fmt.Fprintf(errOut, utils.T(locale, "bulk.rowerror")+"\n",
				fmt.Errorf("line %d: %w", rec.Line, err))
			continue
		}
		results = append(results, bulk.Result{ID: rec.ID, Score: score})
		entries = append(entries, bulk.Entry{Sheet: rec.Sheet, Score: score})
	}

	switch format {
	case "csv":
		var (
			data []byte
			err  error
		)
		if method == "conversion" {
			data, err = bulk.ExportConversionCSV(results)
		} else {
			data, err = bulk.ExportScoreCSV(results)
		}
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	default:
		for _, r := range results {
			a, b, c := r.Score.Domains()
			fmt.Fprintf(out, utils.T(locale, "bulk.row")+"\n", r.ID, a, b, c, r.Score.HighStress())
		}
	}

	if summary {
		// With CSV on stdout the summary goes to stderr to keep the data clean.
		dst := out
		if format == "csv" {
			dst = errOut
		}
		printSummary(dst, locale, bulk.Summarize(entries))
	}
	return nil
}

func scoreSheet(sheet *scoring.AnswerSheet, method string) (scoring.Score, error) {
	if method == "conversion" {
		return sheet.ConversionScore()
	}
	return sheet.SumupScore()
}

func printSummary(w io.Writer, locale string, s *bulk.Summary) {
	fmt.Fprintln(w, utils.T(locale, "bulk.summary.header"))
	rate := 0.0
	if s.Respondents > 0 {
		rate = 100 * float64(s.HighStress) / float64(s.Respondents)
	}
	fmt.Fprintf(w, utils.T(locale, "bulk.summary.count")+"\n", s.Respondents, s.HighStress, rate)
	fmt.Fprintf(w, utils.T(locale, "bulk.summary.means")+"\n", s.MeanA, s.MeanB, s.MeanC)
	fmt.Fprintf(w, utils.T(locale, "bulk.summary.alpha")+"\n", s.Alpha, s.Respondents)
}
