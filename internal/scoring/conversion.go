package scoring

import "fmt"

// Subscale identifies one of the 18 named sub-scales of the conversion
// table (素点換算表): 9 in domain A, 6 in domain B, 3 in domain C.
type Subscale int

const (
	QuantitativeJobOverload Subscale = iota
	QualitativeJobOverload
	PhysicalDemands
	InterpersonalConflict
	PoorWorkEnvironment
	JobControl
	SkillUtilization
	JobSuitability
	JobMeaningfulness
	Vigor
	Irritability
	Fatigue
	Anxiety
	Depression
	SomaticComplaints
	SupervisorSupport
	CoworkerSupport
	FamilySupport

	SubscaleCount = iota
)

var subscaleKeys = [SubscaleCount]string{
	"quantitative_job_overload",
	"qualitative_job_overload",
	"physical_demands",
	"interpersonal_conflict",
	"poor_work_environment",
	"job_control",
	"skill_utilization",
	"job_suitability",
	"job_meaningfulness",
	"vigor",
	"irritability",
	"fatigue",
	"anxiety",
	"depression",
	"somatic_complaints",
	"supervisor_support",
	"coworker_support",
	"family_support",
}

func (s Subscale) String() string {
	if s < 0 || s >= SubscaleCount {
		return fmt.Sprintf("subscale(%d)", int(s))
	}
	return subscaleKeys[s]
}

// Domain names one of the three aggregation domains.
type Domain int

const (
	DomainA Domain = iota // job stressors
	DomainB               // stress reactions
	DomainC               // support
)

// Domain returns the domain the sub-scale is aggregated into.
func (s Subscale) Domain() Domain {
	switch {
	case s <= JobMeaningfulness:
		return DomainA
	case s <= SomaticComplaints:
		return DomainB
	default:
		return DomainC
	}
}

// formula computes a sub-scale raw sum from unadjusted answers:
// raw = base + Σ answer(plus) − Σ answer(minus). Question numbers are
// 1-based. Reverse-keyed items appear in minus with a matching base so
// the inversion is baked into the arithmetic, as in the official table.
type formula struct {
	base  int
	plus  []int
	minus []int
}

var formulas = [SubscaleCount]formula{
	QuantitativeJobOverload: {base: 15, minus: []int{1, 2, 3}},
	QualitativeJobOverload:  {base: 15, minus: []int{4, 5, 6}},
	PhysicalDemands:         {base: 5, minus: []int{7}},
	InterpersonalConflict:   {base: 10, minus: []int{12, 13}, plus: []int{14}},
	PoorWorkEnvironment:     {base: 5, minus: []int{15}},
	JobControl:              {base: 15, minus: []int{8, 9, 10}},
	SkillUtilization:        {plus: []int{11}},
	JobSuitability:          {base: 5, minus: []int{16}},
	JobMeaningfulness:       {base: 5, minus: []int{17}},
	Vigor:                   {plus: []int{18, 19, 20}},
	Irritability:            {plus: []int{21, 22, 23}},
	Fatigue:                 {plus: []int{24, 25, 26}},
	Anxiety:                 {plus: []int{27, 28, 29}},
	Depression:              {plus: []int{30, 31, 32, 33, 34, 35}},
	SomaticComplaints:       {plus: []int{36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46}},
	SupervisorSupport:       {base: 15, minus: []int{47, 50, 53}},
	CoworkerSupport:         {base: 15, minus: []int{48, 51, 54}},
	FamilySupport:           {base: 15, minus: []int{49, 52, 55}},
}

// band maps the inclusive raw-sum range [lo, hi] to an evaluation point.
type band struct {
	lo, hi, point int
}

// conversionBands reproduces the official conversion table verbatim. The
// point direction is intrinsic to each row: for stressor sub-scales a low
// raw sum earns a high point, for resource sub-scales the opposite. Two
// sub-scales never reach point 5 and two never emit point 4; that is how
// the table is printed, not a gap.
var conversionBands = [SubscaleCount][]band{
	QuantitativeJobOverload: {{3, 5, 5}, {6, 7, 4}, {8, 9, 3}, {10, 11, 2}, {12, 12, 1}},
	QualitativeJobOverload:  {{3, 5, 5}, {6, 7, 4}, {8, 9, 3}, {10, 11, 2}, {12, 12, 1}},
	PhysicalDemands:         {{1, 1, 4}, {2, 2, 3}, {3, 3, 2}, {4, 4, 1}},
	InterpersonalConflict:   {{3, 3, 5}, {4, 5, 4}, {6, 7, 3}, {8, 9, 2}, {10, 12, 1}},
	PoorWorkEnvironment:     {{1, 1, 4}, {2, 2, 3}, {3, 3, 2}, {4, 4, 1}},
	JobControl:              {{3, 4, 1}, {5, 6, 2}, {7, 8, 3}, {9, 10, 4}, {11, 12, 5}},
	SkillUtilization:        {{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}},
	JobSuitability:          {{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 5}},
	JobMeaningfulness:       {{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 5}},
	Vigor:                   {{3, 3, 1}, {4, 5, 2}, {6, 7, 3}, {8, 9, 4}, {10, 12, 5}},
	Irritability:            {{3, 3, 5}, {4, 5, 4}, {6, 7, 3}, {8, 9, 2}, {10, 12, 1}},
	Fatigue:                 {{3, 3, 5}, {4, 4, 4}, {5, 7, 3}, {8, 10, 2}, {11, 12, 1}},
	Anxiety:                 {{3, 3, 5}, {4, 4, 4}, {5, 7, 3}, {8, 9, 2}, {10, 12, 1}},
	Depression:              {{6, 6, 5}, {7, 8, 4}, {9, 12, 3}, {13, 16, 2}, {17, 24, 1}},
	SomaticComplaints:       {{11, 11, 5}, {12, 15, 4}, {16, 21, 3}, {22, 26, 2}, {27, 44, 1}},
	SupervisorSupport:       {{3, 4, 1}, {5, 6, 2}, {7, 8, 3}, {9, 10, 4}, {11, 12, 5}},
	CoworkerSupport:         {{3, 5, 1}, {6, 7, 2}, {8, 9, 3}, {10, 11, 4}, {12, 12, 5}},
	FamilySupport:           {{3, 6, 1}, {7, 8, 2}, {9, 9, 3}, {10, 11, 4}, {12, 12, 5}},
}

// ConversionScore holds the 18 evaluation points of the conversion-table
// method, each in 1..5.
type ConversionScore struct {
	points [SubscaleCount]int
}

// ConversionScore aggregates the sheet with the conversion-table method:
// sub-scale raw sums from the unadjusted answers, then the banded lookup
// into evaluation points. It fails with ErrNotFulfilled unless all 57
// questions are answered, and with ErrIllegalAnswer should a raw sum land
// outside its table (unreachable for a validly populated sheet).
func (s *AnswerSheet) ConversionScore() (*ConversionScore, error) {
	if !s.Complete() {
		return nil, ErrNotFulfilled
	}
	var score ConversionScore
	for sub := Subscale(0); sub < SubscaleCount; sub++ {
		raw, err := s.rawSubscaleSum(sub)
		if err != nil {
			return nil, err
		}
		point, ok := lookupPoint(sub, raw)
		if !ok {
			return nil, fmt.Errorf("%s: raw sum %d outside conversion table: %w", sub, raw, ErrIllegalAnswer)
		}
		score.points[sub] = point
	}
	return &score, nil
}

func (s *AnswerSheet) rawSubscaleSum(sub Subscale) (int, error) {
	f := formulas[sub]
	raw := f.base
	for _, q := range f.plus {
		if q < 1 || q > QuestionCount {
			return 0, ErrIllegalAnswer
		}
		raw += s.values[q-1]
	}
	for _, q := range f.minus {
		if q < 1 || q > QuestionCount {
			return 0, ErrIllegalAnswer
		}
		raw -= s.values[q-1]
	}
	return raw, nil
}

func lookupPoint(sub Subscale, raw int) (int, bool) {
	for _, b := range conversionBands[sub] {
		if raw >= b.lo && raw <= b.hi {
			return b.point, true
		}
	}
	return 0, false
}

// Point returns the evaluation point of one sub-scale.
func (s *ConversionScore) Point(sub Subscale) int {
	return s.points[sub]
}

// Domains returns the evaluation points summed per domain.
func (s *ConversionScore) Domains() (a, b, c int) {
	for sub := Subscale(0); sub < SubscaleCount; sub++ {
		switch sub.Domain() {
		case DomainA:
			a += s.points[sub]
		case DomainB:
			b += s.points[sub]
		case DomainC:
			c += s.points[sub]
		}
	}
	return a, b, c
}

// HighStress applies the evaluation-point selection rule.
func (s *ConversionScore) HighStress() bool {
	return HighStressConversion(s.Domains())
}
