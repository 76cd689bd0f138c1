package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lockhart9/stresscheck/internal/catalog"
	"github.com/lockhart9/stresscheck/internal/config"
	"github.com/lockhart9/stresscheck/internal/scoring"
	"github.com/lockhart9/stresscheck/internal/utils"
)

func testConfig(locale string) *config.Config {
	return &config.Config{Locale: locale, Method: "sumup", Format: "text", NoColor: true}
}

func answerInput(answer string, garbage ...string) string {
	var b strings.Builder
	for _, g := range garbage {
		b.WriteString(g + "\n")
	}
	for i := 0; i < scoring.QuestionCount; i++ {
		b.WriteString(answer + "\n")
	}
	return b.String()
}

func TestRunInteractiveAllOnes(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	in := strings.NewReader(answerInput("1"))
	if err := runInteractive(in, out, cat, testConfig("en"), "both"); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "domain A: 50 / domain B: 38 / domain C: 9") {
		t.Fatalf("sum-up domains missing from output:\n%s", got)
	}
	if !strings.Contains(got, "domain A: 22 / domain B: 26 / domain C: 15") {
		t.Fatalf("conversion domains missing from output:\n%s", got)
	}
	if strings.Contains(got, utils.T("en", "verdict.high")) {
		t.Fatalf("all-ones session classified high stress:\n%s", got)
	}
	if n := strings.Count(got, utils.T("en", "verdict.low")); n != 2 {
		t.Fatalf("got %d low-stress verdicts, want 2", n)
	}
}

func TestRunInteractiveRetriesBadInput(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	in := strings.NewReader(answerInput("4", "x", "9", ""))
	if err := runInteractive(in, out, cat, testConfig("ja"), "sumup"); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if n := strings.Count(got, utils.T("ja", "prompt.retry")); n != 3 {
		t.Fatalf("got %d retry prompts, want 3:\n%s", n, got)
	}
	if !strings.Contains(got, utils.T("ja", "verdict.high")) {
		t.Fatalf("all-fours session not classified high stress:\n%s", got)
	}
}

func TestRunInteractiveTruncatedInput(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader("1\n2\n3\n")
	err = runInteractive(in, &bytes.Buffer{}, cat, testConfig("ja"), "sumup")
	if !errors.Is(err, scoring.ErrNotFulfilled) {
		t.Fatalf("err = %v, want ErrNotFulfilled", err)
	}
}

func TestRunInteractivePrintsEveryQuestion(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := runInteractive(strings.NewReader(answerInput("2")), out, cat, testConfig("ja"), "sumup"); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, q := range cat.Questions() {
		if !strings.Contains(got, q.Text) {
			t.Fatalf("question %d text not shown", q.ID)
		}
	}
	for _, theme := range cat.Themes {
		if !strings.Contains(got, theme.Theme) {
			t.Fatalf("theme instruction %q not shown", theme.Theme)
		}
	}
}
