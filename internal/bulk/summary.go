package bulk

import "github.com/lockhart9/stresscheck/internal/scoring"

// Entry is one scored respondent feeding the batch summary.
type Entry struct {
	Sheet *scoring.AnswerSheet
	Score scoring.Score
}

// Summary aggregates a batch: headcount, high-stress selection, mean
// domain totals, and Cronbach's alpha over the 57 raw items as an
// internal-consistency check on the collected sample.
type Summary struct {
	Respondents int
	HighStress  int
	MeanA       float64
	MeanB       float64
	MeanC       float64
	Alpha       float64
}

// Summarize computes the batch summary. An empty batch yields a zero
// Summary.
func Summarize(entries []Entry) *Summary {
	s := &Summary{Respondents: len(entries)}
	if len(entries) == 0 {
		return s
	}
	matrix := make([][]float64, 0, len(entries))
	var sumA, sumB, sumC int
	for _, e := range entries {
		a, b, c := e.Score.Domains()
		sumA += a
		sumB += b
		sumC += c
		if e.Score.HighStress() {
			s.HighStress++
		}
		answers := e.Sheet.Answers()
		row := make([]float64, len(answers))
		for i, v := range answers {
			row[i] = float64(v)
		}
		matrix = append(matrix, row)
	}
	n := float64(len(entries))
	s.MeanA = float64(sumA) / n
	s.MeanB = float64(sumB) / n
	s.MeanC = float64(sumC) / n
	s.Alpha = CronbachAlpha(matrix)
	return s
}

// CronbachAlpha computes Cronbach's alpha for a [respondents][items]
// response matrix using population variance throughout, so perfectly
// correlated items yield exactly 1. The result is clamped to [0,1];
// degenerate inputs (no rows, fewer than two items, zero total variance,
// ragged rows) yield 0.
func CronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	means := make([]float64, k)
	totals := make([]float64, n)
	for i, row := range matrix {
		if len(row) != k {
			return 0
		}
		for j, v := range row {
			means[j] += v
			totals[i] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	var sumItemVars float64
	for j := 0; j < k; j++ {
		var sq float64
		for i := 0; i < n; i++ {
			d := matrix[i][j] - means[j]
			sq += d * d
		}
		sumItemVars += sq / float64(n)
	}

	var totalMean float64
	for _, t := range totals {
		totalMean += t
	}
	totalMean /= float64(n)
	var totalVar float64
	for _, t := range totals {
		d := t - totalMean
		totalVar += d * d
	}
	totalVar /= float64(n)
	if totalVar == 0 {
		return 0
	}

	kf := float64(k)
	alpha := (kf / (kf - 1)) * (1 - sumItemVars/totalVar)
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
