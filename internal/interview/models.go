package interview

// Difficulty tier of a question. The tier fixes the time allowance.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Seconds returns the countdown allowance for the tier.
func (d Difficulty) Seconds() int {
	switch d {
	case DifficultyEasy:
		return 20
	case DifficultyMedium:
		return 60
	case DifficultyHard:
		return 120
	}
	return 0
}

type CandidateProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Complete reports whether every field needed to begin an interview is set.
func (p CandidateProfile) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Phone != ""
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type Question struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text"`
	Seconds    int        `json:"seconds"`
}

type AnswerRecord struct {
	QuestionID  string `json:"question_id"`
	AnswerText  string `json:"answer_text"`
	SubmittedAt int64  `json:"submitted_at"`
	Score       *int   `json:"score"`
}

type Candidate struct {
	ID         string           `json:"id"`
	Profile    CandidateProfile `json:"profile"`
	Questions  []Question       `json:"questions"`
	Answers    []AnswerRecord   `json:"answers"`
	FinalScore *int             `json:"final_score"`
	Summary    string           `json:"summary,omitempty"`
	CreatedAt  int64            `json:"created_at"`
}

type Status string

const (
	StatusIdle              Status = "idle"
	StatusCollectingProfile Status = "collecting_profile"
	StatusInProgress        Status = "in_progress"
	StatusPaused            Status = "paused" // reserved, never produced by a transition
	StatusCompleted         Status = "completed"
)

// Session is the runtime state tracking which candidate is active and how far
// along the interview is. WelcomeBack is transient: set when a persisted
// in-progress session is restored, never stored.
type Session struct {
	CurrentCandidateID string `json:"current_candidate_id"`
	Status             Status `json:"status"`
	CurrentIndex       int    `json:"current_index"`
	Draft              string `json:"draft,omitempty"`
	WelcomeBack        bool   `json:"welcome_back,omitempty"`
}

// NumQuestions is the fixed interview length: two questions per tier.
const NumQuestions = 6
