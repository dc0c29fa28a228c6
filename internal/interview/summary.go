package interview

import "fmt"

// AverageScore is the rounded integer mean of scores, 0 when empty.
func AverageScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	// round half up for non-negative sums
	return (sum + len(scores)/2) / len(scores)
}

// Summarize renders the completion sentence for a candidate.
func Summarize(name string, scores []int) string {
	if name == "" {
		name = "Candidate"
	}
	return fmt.Sprintf("%s demonstrated strengths in React/Node fundamentals with an overall score of %d.", name, AverageScore(scores))
}
