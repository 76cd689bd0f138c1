package scoring

import (
	"errors"
	"testing"
)

func TestConversionAllOnes(t *testing.T) {
	score, err := filledSheet(1).ConversionScore()
	if err != nil {
		t.Fatal(err)
	}
	wantPoints := map[Subscale]int{
		QuantitativeJobOverload: 1,
		QualitativeJobOverload:  1,
		PhysicalDemands:         1,
		InterpersonalConflict:   2,
		PoorWorkEnvironment:     1,
		JobControl:              5,
		SkillUtilization:        1,
		JobSuitability:          5,
		JobMeaningfulness:       5,
		Vigor:                   1,
		Irritability:            5,
		Fatigue:                 5,
		Anxiety:                 5,
		Depression:              5,
		SomaticComplaints:       5,
		SupervisorSupport:       5,
		CoworkerSupport:         5,
		FamilySupport:           5,
	}
	for sub, want := range wantPoints {
		if got := score.Point(sub); got != want {
			t.Fatalf("%s point = %d, want %d", sub, got, want)
		}
	}
	a, b, c := score.Domains()
	if a != 22 || b != 26 || c != 15 {
		t.Fatalf("domains = (%d,%d,%d), want (22,26,15)", a, b, c)
	}
	if score.HighStress() {
		t.Fatal("all-ones sheet classified as high stress")
	}
}

func TestConversionAllFours(t *testing.T) {
	score, err := filledSheet(4).ConversionScore()
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := score.Domains()
	if a != 28 || b != 10 || c != 3 {
		t.Fatalf("domains = (%d,%d,%d), want (28,10,3)", a, b, c)
	}
	if !score.HighStress() {
		t.Fatal("all-fours sheet not classified as high stress")
	}
}

func TestConversionMixedPattern(t *testing.T) {
	s := NewAnswerSheet()
	for q := 1; q <= QuestionCount; q++ {
		if err := s.Insert(q, (q-1)%4+1); err != nil {
			t.Fatal(err)
		}
	}
	score, err := s.ConversionScore()
	if err != nil {
		t.Fatal(err)
	}
	wantPoints := map[Subscale]int{
		QuantitativeJobOverload: 3,
		QualitativeJobOverload:  3,
		PhysicalDemands:         3,
		InterpersonalConflict:   3,
		PoorWorkEnvironment:     3,
		JobControl:              3,
		SkillUtilization:        3,
		JobSuitability:          1,
		JobMeaningfulness:       5,
		Vigor:                   4,
		Irritability:            3,
		Fatigue:                 3,
		Anxiety:                 2,
		Depression:              2,
		SomaticComplaints:       1,
		SupervisorSupport:       4,
		CoworkerSupport:         2,
		FamilySupport:           2,
	}
	for sub, want := range wantPoints {
		if got := score.Point(sub); got != want {
			t.Fatalf("%s point = %d, want %d", sub, got, want)
		}
	}
	a, b, c := score.Domains()
	if a != 27 || b != 15 || c != 8 {
		t.Fatalf("domains = (%d,%d,%d), want (27,15,8)", a, b, c)
	}
	if score.HighStress() {
		t.Fatal("mixed pattern classified as high stress")
	}
}

func TestConversionIncomplete(t *testing.T) {
	s := NewAnswerSheet()
	if err := s.Push(1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ConversionScore(); !errors.Is(err, ErrNotFulfilled) {
		t.Fatalf("err = %v, want ErrNotFulfilled", err)
	}
}

func TestConversionDeterministic(t *testing.T) {
	s := filledSheet(2)
	first, err := s.ConversionScore()
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.ConversionScore()
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Fatalf("repeated scoring differs: %+v vs %+v", first, second)
	}
}

// Every conversion table must cover its sub-scale's feasible raw domain
// with sorted, gap-free inclusive ranges, so no valid sheet can ever fall
// between bands.
func TestConversionBandsCoverFeasibleDomain(t *testing.T) {
	for sub := Subscale(0); sub < SubscaleCount; sub++ {
		f := formulas[sub]
		minRaw := f.base + len(f.plus) - 4*len(f.minus)
		maxRaw := f.base + 4*len(f.plus) - len(f.minus)
		bands := conversionBands[sub]
		if len(bands) == 0 {
			t.Fatalf("%s: no bands", sub)
		}
		if bands[0].lo != minRaw {
			t.Fatalf("%s: first band starts at %d, feasible min is %d", sub, bands[0].lo, minRaw)
		}
		if bands[len(bands)-1].hi != maxRaw {
			t.Fatalf("%s: last band ends at %d, feasible max is %d", sub, bands[len(bands)-1].hi, maxRaw)
		}
		for i, b := range bands {
			if b.lo > b.hi {
				t.Fatalf("%s: band %d is inverted: %+v", sub, i, b)
			}
			if b.point < 1 || b.point > 5 {
				t.Fatalf("%s: band %d point %d outside 1..5", sub, i, b.point)
			}
			if i > 0 && b.lo != bands[i-1].hi+1 {
				t.Fatalf("%s: gap or overlap between bands %d and %d", sub, i-1, i)
			}
		}
		for raw := minRaw; raw <= maxRaw; raw++ {
			if _, ok := lookupPoint(sub, raw); !ok {
				t.Fatalf("%s: raw sum %d not covered", sub, raw)
			}
		}
	}
}

func TestSubscaleDomainPartition(t *testing.T) {
	counts := map[Domain]int{}
	for sub := Subscale(0); sub < SubscaleCount; sub++ {
		counts[sub.Domain()]++
	}
	if counts[DomainA] != 9 || counts[DomainB] != 6 || counts[DomainC] != 3 {
		t.Fatalf("domain partition = A:%d B:%d C:%d, want 9/6/3",
			counts[DomainA], counts[DomainB], counts[DomainC])
	}
}
