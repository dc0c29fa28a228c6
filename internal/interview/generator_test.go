package interview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	g := NewGenerator(nil)
	qs := g.Generate()
	if len(qs) != NumQuestions {
		t.Fatalf("generated %d questions, want %d", len(qs), NumQuestions)
	}
	wantTiers := []Difficulty{
		DifficultyEasy, DifficultyEasy,
		DifficultyMedium, DifficultyMedium,
		DifficultyHard, DifficultyHard,
	}
	wantSeconds := []int{20, 20, 60, 60, 120, 120}
	seen := map[string]bool{}
	for i, q := range qs {
		if q.Difficulty != wantTiers[i] {
			t.Errorf("question %d tier = %s, want %s", i, q.Difficulty, wantTiers[i])
		}
		if q.Seconds != wantSeconds[i] {
			t.Errorf("question %d seconds = %d, want %d", i, q.Seconds, wantSeconds[i])
		}
		if q.Text == "" {
			t.Errorf("question %d has no text", i)
		}
		if q.ID == "" || seen[q.ID] {
			t.Errorf("question %d ID %q not unique", i, q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateDeterministicTexts(t *testing.T) {
	g := NewGenerator(nil)
	a, b := g.Generate(), g.Generate()
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Errorf("question %d text differs between calls: %q vs %q", i, a[i].Text, b[i].Text)
		}
		if a[i].ID == b[i].ID {
			t.Errorf("question %d ID reused across sessions", i)
		}
	}
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "bank.yaml")
	if err := os.WriteFile(good, []byte(`
easy:
  - "What is a slice?"
  - "What is a map?"
medium:
  - "Explain goroutines."
  - "Explain channels."
hard:
  - "Design a rate limiter."
  - "Explain the scheduler."
`), 0o600); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBank(good)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	qs := NewGenerator(b).Generate()
	if qs[0].Text != "What is a slice?" {
		t.Errorf("first question = %q", qs[0].Text)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("easy:\n  - \"only one\"\nmedium: []\nhard: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBank(bad); err == nil {
		t.Error("LoadBank accepted a bank with too few questions")
	}
	if _, err := LoadBank(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBank accepted a missing file")
	}
}
