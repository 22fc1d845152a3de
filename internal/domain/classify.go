package domain

import "strings"

// Verdict is the outcome of classifying an issue.
type Verdict string

const (
	VerdictGood Verdict = "good" // Suitable for contribution
	VerdictSkip Verdict = "skip" // Excluded from the recommended list
)

// Skip reasons, in rule order.
const (
	ReasonNeedsMoreInfo   = "Needs more info"
	ReasonLowScoreNoTalk  = "Low score, no activity"
	ReasonLikelyAQuestion = "Likely a question"
)

const (
	// LowActivityScore is the score below which an issue without comments is skipped.
	LowActivityScore = 0.80
	// questionPrefixRunes bounds the title prefix inspected by the question rule.
	questionPrefixRunes = 20
)

// Classification pairs an issue with its verdict.
type Classification struct {
	Issue   *Issue
	Verdict Verdict
	Reason  string // Empty for good issues
}

// IsGood reports whether the issue was accepted.
func (c Classification) IsGood() bool {
	return c.Verdict == VerdictGood
}

// Classify applies the triage rules in order; the first match wins.
func Classify(issue *Issue) Classification {
	title := strings.ToLower(issue.Title)

	switch {
	case strings.Contains(issue.RawLabels, "needs more info"),
		strings.Contains(title, "question"),
		strings.Contains(title, "help"):
		return skip(issue, ReasonNeedsMoreInfo)

	case issue.HasComments && issue.Comments == 0 && issue.Score < LowActivityScore:
		return skip(issue, ReasonLowScoreNoTalk)

	// Unreachable while the first rule matches "question" anywhere in the
	// title. Kept so the rule set stays identical to the one users know.
	case strings.Contains(TruncateRunes(title, questionPrefixRunes), "question"):
		return skip(issue, ReasonLikelyAQuestion)
	}

	return Classification{Issue: issue, Verdict: VerdictGood}
}

// ClassifyAll classifies issues preserving input order.
func ClassifyAll(issues []*Issue) []Classification {
	out := make([]Classification, 0, len(issues))
	for _, issue := range issues {
		out = append(out, Classify(issue))
	}
	return out
}

func skip(issue *Issue, reason string) Classification {
	return Classification{Issue: issue, Verdict: VerdictSkip, Reason: reason}
}
