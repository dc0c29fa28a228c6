// Package grading scores free-text interview answers. An Engine sums the
// points of its installed components and clamps the result to a maximum;
// scoring is pure and total, so every answer gets a number.
package grading

import (
	"math"
	"strings"
)

// Tier names accepted by the difficulty bonus. The engine deliberately takes
// plain strings so callers don't have to depend on this package's view of
// difficulties.
const (
	TierEasy   = "easy"
	TierMedium = "medium"
	TierHard   = "hard"
)

// Component contributes part of an answer's score.
type Component interface {
	Points(answer string, difficulty string) float64
}

type Engine struct {
	components []Component
	max        float64
}

// Score returns the clamped, rounded total for an answer at a difficulty.
func (e *Engine) Score(answer string, difficulty string) int {
	sum := 0.0
	for _, c := range e.components {
		sum += c.Points(answer, difficulty)
	}
	return int(math.Round(math.Min(sum, e.max)))
}

type Option func(*config)

type config struct {
	Keywords      []string
	KeywordPoints float64
	KeywordCap    float64
	Saturation    int
	LengthCap     float64
}

// WithKeywords replaces the default keyword set.
func WithKeywords(kw []string) Option { return func(c *config) { c.Keywords = kw } }

// WithSaturation changes the answer length at which the length component
// stops growing.
func WithSaturation(n int) Option { return func(c *config) { c.Saturation = n } }

// DefaultKeywords is the fixed set the keyword component counts hits against.
var DefaultKeywords = []string{
	"react", "hooks", "state", "props", "node", "express",
	"async", "await", "performance", "scaling", "api", "typescript",
}

// NewDefaultEngine installs the built-in components: answer length saturating
// at 200 characters (up to 50 points), keyword hits at 8 points each (capped
// at 40), and a flat difficulty bonus of 0/5/10.
func NewDefaultEngine(opts ...Option) *Engine {
	cfg := &config{
		Keywords:      DefaultKeywords,
		KeywordPoints: 8,
		KeywordCap:    40,
		Saturation:    200,
		LengthCap:     50,
	}
	for _, o := range opts {
		o(cfg)
	}
	return &Engine{
		max: 100,
		components: []Component{
			lengthComponent{saturation: cfg.Saturation, max: cfg.LengthCap},
			keywordComponent{keywords: cfg.Keywords, per: cfg.KeywordPoints, max: cfg.KeywordCap},
			difficultyBonus{},
		},
	}
}

// --- Components ---

type lengthComponent struct {
	saturation int
	max        float64
}

func (l lengthComponent) Points(answer string, _ string) float64 {
	n := len([]rune(strings.TrimSpace(answer)))
	frac := float64(n) / float64(l.saturation)
	if frac > 1 {
		frac = 1
	}
	return frac * l.max
}

type keywordComponent struct {
	keywords []string
	per      float64
	max      float64
}

func (k keywordComponent) Points(answer string, _ string) float64 {
	low := strings.ToLower(answer)
	hits := 0
	for _, kw := range k.keywords {
		if strings.Contains(low, kw) {
			hits++
		}
	}
	pts := float64(hits) * k.per
	if pts > k.max {
		pts = k.max
	}
	return pts
}

type difficultyBonus struct{}

func (difficultyBonus) Points(_ string, difficulty string) float64 {
	switch difficulty {
	case TierMedium:
		return 5
	case TierHard:
		return 10
	}
	return 0
}
