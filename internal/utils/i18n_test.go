package utils

import "testing"

func TestT(t *testing.T) {
	if got := T("ja", "verdict.high"); got != "あなたは高ストレス状態です。" {
		t.Fatalf("T(ja, verdict.high) = %q", got)
	}
	if got := T("en", "verdict.high"); got == "" || got == "verdict.high" {
		t.Fatalf("T(en, verdict.high) = %q", got)
	}
	// unknown locale falls back to Japanese
	if got := T("fr", "verdict.low"); got != T("ja", "verdict.low") {
		t.Fatalf("T(fr, verdict.low) = %q", got)
	}
	// unknown key falls through to the key itself
	if got := T("ja", "no.such.key"); got != "no.such.key" {
		t.Fatalf("T(ja, no.such.key) = %q", got)
	}
}

func TestSafeEnv(t *testing.T) {
	t.Setenv("STRESSCHECK_TEST_KEY", "")
	if got := SafeEnv("STRESSCHECK_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("SafeEnv fallback = %q", got)
	}
	t.Setenv("STRESSCHECK_TEST_KEY", "ja")
	if got := SafeEnv("STRESSCHECK_TEST_KEY", "fallback"); got != "ja" {
		t.Fatalf("SafeEnv = %q", got)
	}
}
