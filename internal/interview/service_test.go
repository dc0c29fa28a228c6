package interview

import (
	"context"
	"strings"
	"testing"
)

// fakeAuditor collects recorded events like the SQL-backed event log would.
type fakeAuditor struct {
	types []string
}

func (f *fakeAuditor) Record(_ context.Context, typ, _, _ string) error {
	f.types = append(f.types, typ)
	return nil
}

func newTestService(t *testing.T, store Store, opts ...ServiceOption) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), store, opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func completeProfile(t *testing.T, svc *Service, id string) {
	t.Helper()
	name, email, phone := "Jane Doe", "jane@x.com", "555-1234"
	_, err := svc.UpdateProfile(context.Background(), id, ProfilePatch{Name: &name, Email: &email, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
}

func TestCreateCandidateMovesToCollectingProfile(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	snap, err := svc.CreateCandidate(context.Background(), CandidateProfile{Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}
	if snap.Session.Status != StatusCollectingProfile {
		t.Errorf("status = %s, want %s", snap.Session.Status, StatusCollectingProfile)
	}
	if snap.Candidate == nil || snap.Session.CurrentCandidateID != snap.Candidate.ID {
		t.Error("new candidate should become current")
	}
}

func TestBeginInterviewBlockedUntilProfileComplete(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()
	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{Name: "Jane Doe"})
	id := snap.Candidate.ID

	if _, err := svc.BeginInterview(ctx, id); err != ErrProfileIncomplete {
		t.Fatalf("BeginInterview with partial profile: err = %v, want ErrProfileIncomplete", err)
	}
	completeProfile(t, svc, id)

	snap, err := svc.BeginInterview(ctx, id)
	if err != nil {
		t.Fatalf("BeginInterview: %v", err)
	}
	if snap.Session.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", snap.Session.Status)
	}
	if snap.Session.CurrentIndex != 0 {
		t.Errorf("index = %d, want 0", snap.Session.CurrentIndex)
	}
	if len(snap.Candidate.Questions) != NumQuestions {
		t.Errorf("questions = %d, want %d", len(snap.Candidate.Questions), NumQuestions)
	}
	if snap.Remaining != 20 {
		t.Errorf("first countdown = %d, want 20 (easy)", snap.Remaining)
	}
}

func TestBeginInterviewUnknownCandidate(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	if _, err := svc.BeginInterview(context.Background(), "nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFullInterviewScenario(t *testing.T) {
	audit := &fakeAuditor{}
	svc := newTestService(t, NewInMemoryStore(), WithAuditor(audit))
	ctx := context.Background()

	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	id := snap.Candidate.ID
	completeProfile(t, svc, id)
	if _, err := svc.BeginInterview(ctx, id); err != nil {
		t.Fatal(err)
	}

	answer := strings.Repeat("x", 276) + " react state performance"
	for i := 0; i < NumQuestions; i++ {
		var err error
		snap, err = svc.SubmitAnswer(ctx, id, answer)
		if err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}

	if snap.Session.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", snap.Session.Status)
	}
	c := snap.Candidate
	if len(c.Answers) != NumQuestions {
		t.Fatalf("answers = %d, want %d", len(c.Answers), NumQuestions)
	}
	for i, a := range c.Answers {
		if a.QuestionID != c.Questions[i].ID {
			t.Errorf("answer %d question ID mismatch", i)
		}
		if a.Score == nil {
			t.Fatalf("answer %d not scored", i)
		}
	}
	// 50 length + 24 keywords + bonus: easy 74, medium 79, hard 84 -> avg 79
	if c.FinalScore == nil || *c.FinalScore != 79 {
		t.Errorf("final score = %v, want 79", c.FinalScore)
	}
	if !strings.Contains(c.Summary, "Jane Doe") || !strings.Contains(c.Summary, "79") {
		t.Errorf("summary = %q", c.Summary)
	}

	// completion happened exactly once
	completed := 0
	for _, typ := range audit.types {
		if typ == string(EventInterviewCompleted) {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("InterviewCompleted recorded %d times, want 1", completed)
	}

	// terminal: further submissions and a re-begin change nothing
	after, err := svc.SubmitAnswer(ctx, id, "late answer")
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Candidate.Answers) != NumQuestions {
		t.Error("submission after completion mutated answers")
	}
	rebegin, err := svc.BeginInterview(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if rebegin.Candidate.Questions[0].ID != c.Questions[0].ID {
		t.Error("re-begin regenerated questions")
	}
}

func TestTimerExpiryForcesSubmission(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()

	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	id := snap.Candidate.ID
	completeProfile(t, svc, id)
	snap, _ = svc.BeginInterview(ctx, id)
	q0 := snap.Candidate.Questions[0]

	for i := 0; i < q0.Seconds; i++ {
		var err error
		snap, err = svc.Tick(ctx, id)
		if err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}

	if snap.Session.CurrentIndex != 1 {
		t.Fatalf("index after expiry = %d, want 1", snap.Session.CurrentIndex)
	}
	a := snap.Candidate.Answers[0]
	if a.AnswerText != "" {
		t.Errorf("forced answer text = %q, want empty", a.AnswerText)
	}
	if a.Score == nil || *a.Score != 0 {
		t.Errorf("forced empty easy answer score = %v, want 0", a.Score)
	}
	if snap.Remaining != snap.Candidate.Questions[1].Seconds {
		t.Errorf("next countdown = %d, want %d", snap.Remaining, snap.Candidate.Questions[1].Seconds)
	}
}

func TestTimerExpirySubmitsDraft(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()

	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	id := snap.Candidate.ID
	completeProfile(t, svc, id)
	snap, _ = svc.BeginInterview(ctx, id)

	if _, err := svc.SaveDraft(ctx, id, "typed so far: react"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < snap.Candidate.Questions[0].Seconds; i++ {
		snap, _ = svc.Tick(ctx, id)
	}
	if got := snap.Candidate.Answers[0].AnswerText; got != "typed so far: react" {
		t.Errorf("forced answer = %q, want the saved draft", got)
	}
	if snap.Session.Draft != "" {
		t.Error("draft should be cleared after advancing")
	}
}

func TestManualSubmitCancelsCountdown(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()

	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	id := snap.Candidate.ID
	completeProfile(t, svc, id)
	snap, _ = svc.BeginInterview(ctx, id)

	// burn most of the first question's time, then answer manually
	for i := 0; i < snap.Candidate.Questions[0].Seconds-1; i++ {
		snap, _ = svc.Tick(ctx, id)
	}
	snap, err := svc.SubmitAnswer(ctx, id, "manual")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Session.CurrentIndex != 1 {
		t.Fatalf("index = %d, want 1", snap.Session.CurrentIndex)
	}
	// the old countdown is gone; the next one belongs to question 2
	if snap.Remaining != snap.Candidate.Questions[1].Seconds {
		t.Errorf("countdown = %d, want full allowance of question 2", snap.Remaining)
	}
	// one extra tick must not double-advance past question 2's countdown
	snap, _ = svc.Tick(ctx, id)
	if snap.Session.CurrentIndex != 1 || len(snap.Candidate.Answers) != 1 {
		t.Error("stale tick advanced the interview")
	}
}

func TestGuardedNoOps(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()

	// no candidate at all
	snap, err := svc.SubmitAnswer(ctx, "ghost", "hello")
	if err != nil {
		t.Fatalf("submit with no session: %v", err)
	}
	if snap.Session.Status != StatusIdle {
		t.Errorf("status = %s, want idle", snap.Session.Status)
	}
	if _, err := svc.Tick(ctx, "ghost"); err != nil {
		t.Fatalf("tick with no session: %v", err)
	}

	// candidate exists but interview not started
	created, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	snap, err = svc.SubmitAnswer(ctx, created.Candidate.ID, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Candidate.Answers) != 0 {
		t.Error("submit before begin recorded an answer")
	}

	// draft outside in_progress is ignored
	snap, _ = svc.SaveDraft(ctx, created.Candidate.ID, "ignored")
	if snap.Session.Draft != "" {
		t.Error("draft saved while collecting profile")
	}
}

func TestWelcomeBackOnRestore(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	svc := newTestService(t, store)
	snap, _ := svc.CreateCandidate(ctx, CandidateProfile{})
	id := snap.Candidate.ID
	completeProfile(t, svc, id)
	snap, _ = svc.BeginInterview(ctx, id)
	for i := 0; i < 3; i++ {
		snap, _ = svc.SubmitAnswer(ctx, id, "an answer about state and props")
	}
	beforeQuestions := snap.Candidate.Questions

	restored := newTestService(t, store)
	got := restored.Session()
	if !got.Session.WelcomeBack {
		t.Error("restored in-progress session should set welcome-back")
	}
	if got.Session.CurrentIndex != 3 {
		t.Errorf("restored index = %d, want 3", got.Session.CurrentIndex)
	}
	for i := range beforeQuestions {
		if got.Candidate.Questions[i].ID != beforeQuestions[i].ID {
			t.Fatalf("question %d regenerated on restore", i)
		}
	}
	if len(got.Candidate.Answers) != 3 {
		t.Errorf("restored answers = %d, want 3", len(got.Candidate.Answers))
	}
	if got.Remaining != got.Candidate.Questions[3].Seconds {
		t.Errorf("restored countdown = %d, want full allowance", got.Remaining)
	}

	ack, err := restored.AcknowledgeWelcomeBack(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ack.Session.WelcomeBack {
		t.Error("acknowledge did not clear welcome-back")
	}
}

func TestSetCurrentCandidate(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore())
	ctx := context.Background()

	a, _ := svc.CreateCandidate(ctx, CandidateProfile{Name: "A"})
	b, _ := svc.CreateCandidate(ctx, CandidateProfile{Name: "B"})
	if svc.Session().Session.CurrentCandidateID != b.Candidate.ID {
		t.Fatal("latest created candidate should be current")
	}
	snap, err := svc.SetCurrentCandidate(ctx, a.Candidate.ID)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Session.CurrentCandidateID != a.Candidate.ID {
		t.Error("switch did not take")
	}
	if _, err := svc.SetCurrentCandidate(ctx, "ghost"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
