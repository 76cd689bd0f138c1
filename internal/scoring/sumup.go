package scoring

// Score is the common surface of both aggregation methods: the three
// domain totals and the high-stress verdict derived from them.
type Score interface {
	// Domains returns the totals for domain A (job stressors), B
	// (stress reactions) and C (support).
	Domains() (a, b, c int)
	// HighStress applies the method's selection thresholds.
	HighStress() bool
}

// SumupScore holds the domain totals of the sum-up method: reverse-adjusted
// raw answers summed per domain. A covers questions 1-17, B covers 18-46,
// C covers 47-55. Questions 56-57 (satisfaction) are not scored.
type SumupScore struct {
	SumA int
	SumB int
	SumC int
}

// SumupScore aggregates the sheet with the sum-up method. It fails with
// ErrNotFulfilled unless all 57 questions are answered.
func (s *AnswerSheet) SumupScore() (*SumupScore, error) {
	if !s.Complete() {
		return nil, ErrNotFulfilled
	}
	var score SumupScore
	for i, raw := range s.values {
		questionNo := i + 1
		v := Adjust(questionNo, raw)
		switch {
		case questionNo <= 17:
			score.SumA += v
		case questionNo <= 46:
			score.SumB += v
		case questionNo <= 55:
			score.SumC += v
		}
	}
	return &score, nil
}

// Domains returns the three domain totals.
func (s *SumupScore) Domains() (a, b, c int) {
	return s.SumA, s.SumB, s.SumC
}

// HighStress applies the sum-up selection rule.
func (s *SumupScore) HighStress() bool {
	return HighStressSumup(s.Domains())
}

// HighStressSumup is the manual's numeric selection rule for raw domain
// totals (example 1): domain B at 77 points or more, or domains A+C at 76
// or more combined with B at 63 or more.
func HighStressSumup(a, b, c int) bool {
	return b >= 77 || (a+c >= 76 && b >= 63)
}

// HighStressConversion is the manual's selection rule for evaluation-point
// domain totals (example 2): lower points mean higher stress, so domain B
// at 12 or less, or A+C at 26 or less combined with B at 17 or less.
func HighStressConversion(a, b, c int) bool {
	return b <= 12 || (a+c <= 26 && b <= 17)
}
