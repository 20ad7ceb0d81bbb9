package session

import (
	"fmt"
	"math/big"
	"strings"
)

// Tier is the qualitative band of a final score.
type Tier int

const (
	// TierPractice is shown below the good threshold.
	TierPractice Tier = iota
	// TierGood is shown at or above the good threshold.
	TierGood
	// TierPerfect is shown when every answer was correct.
	TierPerfect
)

// Message returns the closing remark for the tier.
func (tier Tier) Message() string {
	switch tier {
	case TierPerfect:
		return "Perfect! 🏆"
	case TierGood:
		return "Good job! Keep learning! 📚"
	default:
		return "Keep practicing! You'll get better! 💪"
	}
}

// String returns a short label for the tier.
func (tier Tier) String() string {
	switch tier {
	case TierPerfect:
		return "perfect"
	case TierGood:
		return "good"
	default:
		return "practice"
	}
}

// DefaultThreshold is the fraction of correct answers needed for TierGood.
const DefaultThreshold = "2/3"

// Threshold is an exact fraction in [0, 1]. The zero value behaves as DefaultThreshold.
type Threshold struct {
	ratio *big.Rat
}

// ParseThreshold accepts a fraction ("2/3") or a decimal ("0.5").
func ParseThreshold(value string) (Threshold, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = DefaultThreshold
	}
	ratio, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Threshold{}, fmt.Errorf("invalid threshold %q (expected a fraction like 2/3 or a decimal like 0.5)", value)
	}
	if ratio.Sign() < 0 || ratio.Cmp(big.NewRat(1, 1)) > 0 {
		return Threshold{}, fmt.Errorf("threshold %q must be between 0 and 1", value)
	}
	return Threshold{ratio: ratio}, nil
}

// MustParseThreshold is ParseThreshold for constant inputs.
func MustParseThreshold(value string) Threshold {
	threshold, err := ParseThreshold(value)
	if err != nil {
		panic(err)
	}
	return threshold
}

// Met reports whether score/total reaches the threshold.
func (t Threshold) Met(score, total int) bool {
	if total <= 0 {
		return false
	}
	return big.NewRat(int64(score), int64(total)).Cmp(t.value()) >= 0
}

// String renders the threshold as a reduced fraction.
func (t Threshold) String() string {
	return t.value().RatString()
}

func (t Threshold) value() *big.Rat {
	if t.ratio == nil {
		return big.NewRat(2, 3)
	}
	return t.ratio
}

// Summary is the final report of a session.
type Summary struct {
	SessionID  string
	PlayerName string
	Score      int
	Total      int
	Tier       Tier
	Threshold  Threshold
}

// Summarize grades a finished session against total questions.
func Summarize(s *Session, total int, threshold Threshold) Summary {
	summary := Summary{
		SessionID:  s.ID,
		PlayerName: s.PlayerName,
		Score:      s.Score,
		Total:      total,
		Threshold:  threshold,
	}
	summary.Tier = Classify(s.Score, total, threshold)
	return summary
}

// Classify picks the tier for a score out of total.
func Classify(score, total int, threshold Threshold) Tier {
	switch {
	case total > 0 && score == total:
		return TierPerfect
	case threshold.Met(score, total):
		return TierGood
	default:
		return TierPractice
	}
}
