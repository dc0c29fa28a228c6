package interview

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced candidate does not exist.
	ErrNotFound = errors.New("candidate not found")
	// ErrProfileIncomplete blocks BeginInterview until name, email and
	// phone are all present.
	ErrProfileIncomplete = errors.New("profile incomplete: name, email and phone are required")
)

type EventType string

const (
	EventCandidateCreated    EventType = "CandidateCreated"
	EventProfileUpdated      EventType = "ProfileUpdated"
	EventCurrentCandidateSet EventType = "CurrentCandidateSet"
	EventInterviewStarted    EventType = "InterviewStarted"
	EventDraftSaved          EventType = "DraftSaved"
	EventAnswerRecorded      EventType = "AnswerRecorded"
	EventInterviewCompleted  EventType = "InterviewCompleted"
	EventWelcomeBackSet      EventType = "WelcomeBackSet"
)

// Event is one state-machine trigger. Only the fields relevant to its Type
// are set; the whole struct is JSON-serializable for the audit log.
type Event struct {
	Type        EventType     `json:"type"`
	CandidateID string        `json:"candidate_id,omitempty"`
	Candidate   *Candidate    `json:"candidate,omitempty"`
	Patch       *ProfilePatch `json:"patch,omitempty"`
	Questions   []Question    `json:"questions,omitempty"`
	Answer      *AnswerRecord `json:"answer,omitempty"`
	FinalScore  *int          `json:"final_score,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	Draft       string        `json:"draft,omitempty"`
	WelcomeBack bool          `json:"welcome_back,omitempty"`
	At          int64         `json:"at,omitempty"`
}

// State is the explicit, serializable interview state: the session plus all
// candidates seen by this deployment. All mutation goes through Apply, so a
// sequence of events replays to the same state.
type State struct {
	Session    Session      `json:"session"`
	Candidates []*Candidate `json:"candidates"`
}

func NewState() State {
	return State{Session: Session{Status: StatusIdle}}
}

func (s *State) Candidate(id string) *Candidate {
	for _, c := range s.Candidates {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Current returns the session's current candidate, or nil.
func (s *State) Current() *Candidate {
	if s.Session.CurrentCandidateID == "" {
		return nil
	}
	return s.Candidate(s.Session.CurrentCandidateID)
}

// CurrentQuestion returns the active question while the interview is in
// progress, or nil.
func (s *State) CurrentQuestion() *Question {
	if s.Session.Status != StatusInProgress {
		return nil
	}
	c := s.Current()
	if c == nil || s.Session.CurrentIndex >= len(c.Questions) {
		return nil
	}
	return &c.Questions[s.Session.CurrentIndex]
}

// Apply transitions the state by one event. It performs no I/O and never
// leaves the state partially mutated: validation happens before any write.
func (s *State) Apply(ev Event) error {
	switch ev.Type {
	case EventCandidateCreated:
		if ev.Candidate == nil {
			return errors.New("CandidateCreated requires a candidate")
		}
		c := *ev.Candidate
		s.Candidates = append(s.Candidates, &c)
		s.Session.CurrentCandidateID = c.ID
		s.Session.Status = StatusCollectingProfile
		s.Session.CurrentIndex = 0
		s.Session.Draft = ""

	case EventProfileUpdated:
		c := s.Candidate(ev.CandidateID)
		if c == nil {
			return ErrNotFound
		}
		if ev.Patch != nil {
			if ev.Patch.Name != nil {
				c.Profile.Name = *ev.Patch.Name
			}
			if ev.Patch.Email != nil {
				c.Profile.Email = *ev.Patch.Email
			}
			if ev.Patch.Phone != nil {
				c.Profile.Phone = *ev.Patch.Phone
			}
		}

	case EventCurrentCandidateSet:
		if ev.CandidateID != "" && s.Candidate(ev.CandidateID) == nil {
			return ErrNotFound
		}
		s.Session.CurrentCandidateID = ev.CandidateID

	case EventInterviewStarted:
		c := s.Candidate(ev.CandidateID)
		if c == nil {
			return ErrNotFound
		}
		c.Questions = ev.Questions
		s.Session.Status = StatusInProgress
		s.Session.CurrentIndex = 0
		s.Session.Draft = ""

	case EventDraftSaved:
		s.Session.Draft = ev.Draft

	case EventAnswerRecorded:
		c := s.Candidate(ev.CandidateID)
		if c == nil {
			return ErrNotFound
		}
		if ev.Answer == nil {
			return errors.New("AnswerRecorded requires an answer")
		}
		c.Answers = append(c.Answers, *ev.Answer)
		if s.Session.CurrentIndex+1 < len(c.Questions) {
			s.Session.CurrentIndex++
		}
		s.Session.Draft = ""

	case EventInterviewCompleted:
		c := s.Candidate(ev.CandidateID)
		if c == nil {
			return ErrNotFound
		}
		c.FinalScore = ev.FinalScore
		c.Summary = ev.Summary
		s.Session.Status = StatusCompleted

	case EventWelcomeBackSet:
		s.Session.WelcomeBack = ev.WelcomeBack

	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}
