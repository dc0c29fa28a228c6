package interview

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interviewd/internal/grading"
)

// Scorer maps an answer at a difficulty to a 0-100 score.
type Scorer interface {
	Score(answer string, difficulty string) int
}

// Auditor records applied events. Failures are logged, never fatal.
type Auditor interface {
	Record(ctx context.Context, typ, key, dataJSON string) error
}

// Snapshot is the state returned from every operation: the session, a copy
// of the candidate it concerns, and the seconds left on the active countdown
// (0 when none is running).
type Snapshot struct {
	Session   Session    `json:"session"`
	Candidate *Candidate `json:"candidate,omitempty"`
	Remaining int        `json:"remaining_seconds"`
}

// countdown is the single active per-question timer. It is keyed by the
// question ID so a stale tick can never fire against a superseded question.
type countdown struct {
	questionID string
	remaining  int
}

// Service is the single entry point for all session mutations. Triggers are
// serialized by the mutex, so transitions apply atomically and no two
// countdowns can be live at once.
type Service struct {
	mu    sync.Mutex
	state State
	timer *countdown

	store  Store
	gen    *Generator
	scorer Scorer
	audit  Auditor
	now    func() time.Time
}

type ServiceOption func(*Service)

func WithGenerator(g *Generator) ServiceOption { return func(s *Service) { s.gen = g } }
func WithScorer(sc Scorer) ServiceOption       { return func(s *Service) { s.scorer = sc } }
func WithAuditor(a Auditor) ServiceOption      { return func(s *Service) { s.audit = a } }
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService restores state from the store. A restored in-progress session
// gets the welcome-back flag and a fresh countdown for its current question;
// questions are never regenerated and recorded answers never rescored.
func NewService(ctx context.Context, store Store, opts ...ServiceOption) (*Service, error) {
	s := &Service{
		store:  store,
		gen:    NewGenerator(nil),
		scorer: grading.NewDefaultEngine(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	st, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.state = st
	if s.state.Session.Status == "" {
		s.state.Session.Status = StatusIdle
	}
	if s.state.Session.Status == StatusInProgress {
		s.state.Session.WelcomeBack = true
		if q := s.state.CurrentQuestion(); q != nil {
			s.timer = &countdown{questionID: q.ID, remaining: q.Seconds}
		}
	}
	return s, nil
}

// CreateCandidate admits a parsed resume: a new candidate becomes current
// and the session starts collecting the profile.
func (s *Service) CreateCandidate(ctx context.Context, profile CandidateProfile) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Candidate{
		ID:        uuid.NewString(),
		Profile:   profile,
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.apply(ctx, Event{Type: EventCandidateCreated, CandidateID: c.ID, Candidate: &c}); err != nil {
		return Snapshot{}, err
	}
	s.timer = nil
	return s.snapshot(), s.persist(ctx, c.ID)
}

// UpdateProfile merges a partial profile into a candidate.
func (s *Service) UpdateProfile(ctx context.Context, candidateID string, patch ProfilePatch) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Candidate(candidateID) == nil {
		return s.snapshot(), ErrNotFound
	}
	if err := s.apply(ctx, Event{Type: EventProfileUpdated, CandidateID: candidateID, Patch: &patch}); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), s.persist(ctx, candidateID)
}

// SetCurrentCandidate switches which candidate the session points at.
func (s *Service) SetCurrentCandidate(ctx context.Context, candidateID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if candidateID != "" && s.state.Candidate(candidateID) == nil {
		return s.snapshot(), ErrNotFound
	}
	if err := s.apply(ctx, Event{Type: EventCurrentCandidateSet, CandidateID: candidateID}); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), s.persist(ctx, "")
}

// BeginInterview generates the six questions and moves to in_progress. It is
// rejected with ErrProfileIncomplete until name, email and phone are all
// set. A candidate whose questions already exist is a guarded no-op:
// completed is terminal and an interview is never regenerated.
func (s *Service) BeginInterview(ctx context.Context, candidateID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.state.Candidate(candidateID)
	if c == nil {
		return s.snapshot(), ErrNotFound
	}
	if len(c.Questions) > 0 {
		return s.snapshot(), nil
	}
	if !c.Profile.Complete() {
		return s.snapshot(), ErrProfileIncomplete
	}
	if s.state.Session.CurrentCandidateID != candidateID {
		if err := s.apply(ctx, Event{Type: EventCurrentCandidateSet, CandidateID: candidateID}); err != nil {
			return Snapshot{}, err
		}
	}
	questions := s.gen.Generate()
	if err := s.apply(ctx, Event{Type: EventInterviewStarted, CandidateID: candidateID, Questions: questions}); err != nil {
		return Snapshot{}, err
	}
	s.timer = &countdown{questionID: questions[0].ID, remaining: questions[0].Seconds}
	return s.snapshot(), s.persist(ctx, candidateID)
}

// SaveDraft stores the answer text typed so far; a later timer expiry
// submits it. Outside in_progress this is a guarded no-op.
func (s *Service) SaveDraft(ctx context.Context, candidateID, text string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isActive(candidateID) {
		return s.snapshot(), nil
	}
	if err := s.apply(ctx, Event{Type: EventDraftSaved, CandidateID: candidateID, Draft: text}); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), s.persist(ctx, "")
}

// SubmitAnswer records the answer for the current question and advances.
// With no current candidate or question it is a guarded no-op.
func (s *Service) SubmitAnswer(ctx context.Context, candidateID, text string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isActive(candidateID) {
		return s.snapshot(), nil
	}
	if err := s.recordAnswer(ctx, candidateID, text); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), s.persist(ctx, candidateID)
}

// Tick decrements the active countdown by one second. At zero it forces a
// submission of the draft text, advancing exactly as a manual submit would.
// Ticks for a non-current candidate or a superseded question are no-ops.
func (s *Service) Tick(ctx context.Context, candidateID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isActive(candidateID) || s.timer == nil {
		return s.snapshot(), nil
	}
	q := s.state.CurrentQuestion()
	if q == nil || q.ID != s.timer.questionID {
		return s.snapshot(), nil
	}
	s.timer.remaining--
	if s.timer.remaining > 0 {
		return s.snapshot(), nil
	}
	if err := s.recordAnswer(ctx, candidateID, s.state.Session.Draft); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), s.persist(ctx, candidateID)
}

// AcknowledgeWelcomeBack clears the restored-session flag.
func (s *Service) AcknowledgeWelcomeBack(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(ctx, Event{Type: EventWelcomeBackSet, WelcomeBack: false}); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// Session returns a copy of the current session state.
func (s *Service) Session() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// CandidateByID returns a copy of one candidate.
func (s *Service) CandidateByID(id string) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.state.Candidate(id)
	if c == nil {
		return Candidate{}, ErrNotFound
	}
	return copyCandidate(c), nil
}

// Candidates returns copies of every candidate.
func (s *Service) Candidates() []Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Candidate, 0, len(s.state.Candidates))
	for _, c := range s.state.Candidates {
		out = append(out, copyCandidate(c))
	}
	return out
}

// --- internals (mutex held) ---

// isActive reports whether candidateID is the current candidate of an
// in-progress session with a question left to answer.
func (s *Service) isActive(candidateID string) bool {
	if s.state.Session.Status != StatusInProgress {
		return false
	}
	if s.state.Session.CurrentCandidateID != candidateID {
		return false
	}
	return s.state.CurrentQuestion() != nil
}

// recordAnswer scores and appends the answer for the current question, then
// either arms the next countdown or finalizes the interview.
func (s *Service) recordAnswer(ctx context.Context, candidateID, text string) error {
	c := s.state.Candidate(candidateID)
	q := s.state.CurrentQuestion()
	score := s.scorer.Score(text, string(q.Difficulty))
	rec := AnswerRecord{
		QuestionID:  q.ID,
		AnswerText:  text,
		SubmittedAt: s.now().UnixMilli(),
		Score:       &score,
	}
	if err := s.apply(ctx, Event{Type: EventAnswerRecorded, CandidateID: candidateID, Answer: &rec}); err != nil {
		return err
	}
	s.timer = nil

	if len(c.Answers) < len(c.Questions) {
		next := s.state.CurrentQuestion()
		s.timer = &countdown{questionID: next.ID, remaining: next.Seconds}
		return nil
	}

	scores := make([]int, 0, len(c.Answers))
	for _, a := range c.Answers {
		if a.Score != nil {
			scores = append(scores, *a.Score)
		} else {
			scores = append(scores, 0)
		}
	}
	final := AverageScore(scores)
	return s.apply(ctx, Event{
		Type:        EventInterviewCompleted,
		CandidateID: candidateID,
		FinalScore:  &final,
		Summary:     Summarize(c.Profile.Name, scores),
	})
}

// apply transitions the state and records the event for audit.
func (s *Service) apply(ctx context.Context, ev Event) error {
	ev.At = s.now().UnixMilli()
	if err := s.state.Apply(ev); err != nil {
		return err
	}
	if s.audit != nil {
		data, _ := json.Marshal(ev)
		if err := s.audit.Record(ctx, string(ev.Type), ev.CandidateID, string(data)); err != nil {
			log.Printf("event log append failed: %v", err)
		}
	}
	return nil
}

// persist writes the session and, when candidateID is set, that candidate.
func (s *Service) persist(ctx context.Context, candidateID string) error {
	if candidateID != "" {
		if c := s.state.Candidate(candidateID); c != nil {
			if err := s.store.SaveCandidate(ctx, copyCandidate(c)); err != nil {
				return err
			}
		}
	}
	return s.store.SaveSession(ctx, s.state.Session)
}

func (s *Service) snapshot() Snapshot {
	snap := Snapshot{Session: s.state.Session}
	if c := s.state.Current(); c != nil {
		cc := copyCandidate(c)
		snap.Candidate = &cc
	}
	if s.timer != nil {
		snap.Remaining = s.timer.remaining
	}
	return snap
}

func copyCandidate(c *Candidate) Candidate {
	out := *c
	out.Questions = append([]Question(nil), c.Questions...)
	out.Answers = append([]AnswerRecord(nil), c.Answers...)
	if c.FinalScore != nil {
		v := *c.FinalScore
		out.FinalScore = &v
	}
	return out
}
