package report

import (
	"bytes"
	"strings"
	"testing"

	"termquiz/internal/session"
)

func summaryFor(score, total int, threshold, player string) session.Summary {
	s := session.New(player)
	s.Score = score
	return session.Summarize(s, total, session.MustParseThreshold(threshold))
}

// TestRenderGoodTier verifies a 2/3 score with a 2/3 threshold gets encouragement.
func TestRenderGoodTier(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, summaryFor(2, 3, "2/3", ""), Options{NoColor: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Your final score is: 2/3") {
		t.Fatalf("expected score line, got %q", output)
	}
	if !strings.Contains(output, session.TierGood.Message()) {
		t.Fatalf("expected good tier message, got %q", output)
	}
	if strings.Contains(output, "Thanks for playing") {
		t.Fatalf("did not expect a farewell without a player name")
	}
}

// TestRenderPracticeTier verifies a stricter threshold drops to the low tier.
func TestRenderPracticeTier(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, summaryFor(2, 3, "0.75", ""), Options{NoColor: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), session.TierPractice.Message()) {
		t.Fatalf("expected practice tier message, got %q", out.String())
	}
}

// TestRenderPerfectWithPlayer verifies the perfect tier and the personalized farewell.
func TestRenderPerfectWithPlayer(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, summaryFor(1, 1, "2/3", "Ada"), Options{NoColor: true, ShowPercent: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	output := out.String()
	for _, want := range []string{"Your final score is: 1/1 (100%)", session.TierPerfect.Message(), "Thanks for playing, Ada!"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in %q", want, output)
		}
	}
}

// TestRenderNoColorHasNoEscapes verifies plain output carries no ANSI codes.
func TestRenderNoColorHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, summaryFor(0, 2, "2/3", "Bo"), Options{NoColor: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected no escape codes, got %q", out.String())
	}
}
