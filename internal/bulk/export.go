package bulk

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lockhart9/stresscheck/internal/scoring"
)

// Result pairs a respondent with the score produced by one aggregation
// method.
type Result struct {
	ID    string
	Score scoring.Score
}

// ExportScoreCSV renders results as CSV with one respondent per row:
// id, the three domain totals, and the high-stress verdict.
func ExportScoreCSV(results []Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "sum_a", "sum_b", "sum_c", "high_stress"})
	for _, r := range results {
		a, b, c := r.Score.Domains()
		rec := []string{
			r.ID,
			strconv.Itoa(a),
			strconv.Itoa(b),
			strconv.Itoa(c),
			strconv.FormatBool(r.Score.HighStress()),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportConversionCSV renders conversion results with the 18 evaluation
// points spelled out per respondent, ahead of the domain totals.
func ExportConversionCSV(results []Result) ([]byte, error) {
	header := []string{"id"}
	for sub := scoring.Subscale(0); sub < scoring.SubscaleCount; sub++ {
		header = append(header, sub.String())
	}
	header = append(header, "sum_a", "sum_b", "sum_c", "high_stress")

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(header)
	for _, r := range results {
		cs, ok := r.Score.(*scoring.ConversionScore)
		if !ok {
			continue
		}
		rec := make([]string, 0, len(header))
		rec = append(rec, r.ID)
		for sub := scoring.Subscale(0); sub < scoring.SubscaleCount; sub++ {
			rec = append(rec, strconv.Itoa(cs.Point(sub)))
		}
		a, b, c := cs.Domains()
		rec = append(rec, strconv.Itoa(a), strconv.Itoa(b), strconv.Itoa(c),
			strconv.FormatBool(cs.HighStress()))
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
