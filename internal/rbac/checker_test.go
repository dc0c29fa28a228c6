package rbac

import "testing"

func TestCheckerDefaults(t *testing.T) {
	c := NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"candidate", "interview:answer", true},
		{"candidate", "candidate:view-all", false},
		{"interviewer", "candidate:view-all", true},
		{"interviewer", "interview:begin", false},
		{"admin", "anything:at-all", true},
		{"", "session:view", false},
		{"ghost", "session:view", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCheckerWildcardPrefix(t *testing.T) {
	c := NewChecker(map[string][]string{"bot": {"interview:*"}})
	if !c.Has("bot", "interview:tick") {
		t.Error("prefix wildcard should match")
	}
	if c.Has("bot", "session:view") {
		t.Error("prefix wildcard matched a foreign permission")
	}
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("interviewer", "interview:begin", "session:view") {
		t.Error("Any should pass when one permission matches")
	}
	if c.Any("interviewer", "interview:begin", "interview:answer") {
		t.Error("Any passed with no matching permission")
	}
}
