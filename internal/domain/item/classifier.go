package item

import "strings"

// riskRules is an ordered table; the first rule whose keywords match wins.
// Order matters because categories overlap ("test-fraud" is a test item,
// not a fraud item).
var riskRules = []struct {
	keywords []string
	score    int
}{
	{[]string{"test", "dummy"}, 10},
	{[]string{"fraud", "scam"}, 90},
	{[]string{"risky", "flag"}, 70},
}

const defaultRiskScore = 30

// Classify maps an item name to a risk score in [0,100] and a categorical
// risk level. Pure and total: any string, including the empty string, gets
// a result. Matching is case-insensitive via ASCII lower-casing; the rule
// keywords are ASCII, so non-ASCII case variants (e.g. Unicode uppercase
// forms) will not match them.
func Classify(name string) (score int, level string) {
	lower := strings.ToLower(name)

	score = defaultRiskScore
	for _, rule := range riskRules {
		if containsAny(lower, rule.keywords) {
			score = rule.score
			break
		}
	}

	return score, riskLevel(score)
}

func riskLevel(score int) string {
	switch {
	case score >= 80:
		return RiskLevelHigh
	case score >= 50:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
