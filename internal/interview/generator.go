package interview

import "github.com/google/uuid"

// Generator selects the fixed six-question set for a session.
type Generator struct {
	bank *Bank
}

func NewGenerator(bank *Bank) *Generator {
	if bank == nil {
		bank = DefaultBank()
	}
	return &Generator{bank: bank}
}

// Generate returns two easy, two medium and two hard questions, in that
// order. Selection is deterministic (first entries per tier); only the IDs
// are fresh per call.
func (g *Generator) Generate() []Question {
	out := make([]Question, 0, NumQuestions)
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		texts := g.bank.tier(d)
		for i := 0; i < NumQuestions/3; i++ {
			out = append(out, Question{
				ID:         uuid.NewString(),
				Difficulty: d,
				Text:       texts[i],
				Seconds:    d.Seconds(),
			})
		}
	}
	return out
}
