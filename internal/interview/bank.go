package interview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bank is the static question catalog, keyed by tier.
type Bank struct {
	Easy   []string `yaml:"easy"`
	Medium []string `yaml:"medium"`
	Hard   []string `yaml:"hard"`
}

// DefaultBank returns the built-in full-stack catalog.
func DefaultBank() *Bank {
	return &Bank{
		Easy: []string{
			"What is the difference between var, let, and const in JavaScript?",
			"Explain how React components receive props.",
			"What is the purpose of package.json?",
		},
		Medium: []string{
			"Describe how React hooks like useEffect and useMemo differ and when to use them.",
			"How does Node.js handle concurrency and what is the event loop?",
			"Design a REST endpoint for listing and creating users. What status codes?",
		},
		Hard: []string{
			"How would you implement SSR with React and handle data fetching efficiently?",
			"Explain horizontal scaling a Node.js service behind a load balancer. Challenges?",
			"Describe a strategy to optimize a large React app's bundle size and runtime.",
		},
	}
}

// LoadBank reads a catalog override from a YAML file and validates it.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file %s: %w", path, err)
	}
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse bank file %s: %w", path, err)
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("bank file %s: %w", path, err)
	}
	return &b, nil
}

func (b *Bank) validate() error {
	for _, tier := range []struct {
		d Difficulty
		q []string
	}{
		{DifficultyEasy, b.Easy},
		{DifficultyMedium, b.Medium},
		{DifficultyHard, b.Hard},
	} {
		if len(tier.q) < NumQuestions/3 {
			return fmt.Errorf("tier %s needs at least %d questions, has %d", tier.d, NumQuestions/3, len(tier.q))
		}
	}
	return nil
}

func (b *Bank) tier(d Difficulty) []string {
	switch d {
	case DifficultyEasy:
		return b.Easy
	case DifficultyMedium:
		return b.Medium
	case DifficultyHard:
		return b.Hard
	}
	return nil
}
