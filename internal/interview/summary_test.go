package interview

import (
	"strings"
	"testing"
)

func TestAverageScore(t *testing.T) {
	cases := []struct {
		scores []int
		want   int
	}{
		{nil, 0},
		{[]int{}, 0},
		{[]int{80}, 80},
		{[]int{74, 74, 79, 79, 84, 84}, 79},
		{[]int{1, 2}, 2}, // 1.5 rounds up
		{[]int{0, 0, 100}, 33},
	}
	for _, c := range cases {
		if got := AverageScore(c.scores); got != c.want {
			t.Errorf("AverageScore(%v) = %d, want %d", c.scores, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("Jane Doe", []int{74, 74, 79, 79, 84, 84})
	if !strings.Contains(s, "Jane Doe") || !strings.Contains(s, "79") {
		t.Errorf("summary missing name or average: %q", s)
	}
	if got := Summarize("", nil); !strings.Contains(got, "Candidate") || !strings.Contains(got, "0") {
		t.Errorf("empty-name summary = %q", got)
	}
}
