package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hireloop/interviewd/internal/interview"
)

func writeSnapshot(w http.ResponseWriter, snap interview.Snapshot, err error) {
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, interview.ErrProfileIncomplete):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// GET /session
func GetSessionHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSnapshot(w, svc.Session(), nil)
	}
}

// POST /session/current  { "candidate_id": "..." }
func SetCurrentCandidateHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CandidateID string `json:"candidate_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := svc.SetCurrentCandidate(r.Context(), req.CandidateID)
		writeSnapshot(w, snap, err)
	}
}

// POST /session/ack-welcome
func AckWelcomeBackHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.AcknowledgeWelcomeBack(r.Context())
		writeSnapshot(w, snap, err)
	}
}

// PATCH /candidates/{candidateID}/profile
func UpdateProfileHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		var patch interview.ProfilePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := svc.UpdateProfile(r.Context(), id, patch)
		writeSnapshot(w, snap, err)
	}
}

// POST /candidates/{candidateID}/begin
func BeginInterviewHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		snap, err := svc.BeginInterview(r.Context(), id)
		writeSnapshot(w, snap, err)
	}
}

// POST /candidates/{candidateID}/draft  { "text": "..." }
func SaveDraftHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := svc.SaveDraft(r.Context(), id, req.Text)
		writeSnapshot(w, snap, err)
	}
}

// POST /candidates/{candidateID}/answer  { "text": "..." }
func SubmitAnswerHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := svc.SubmitAnswer(r.Context(), id, req.Text)
		writeSnapshot(w, snap, err)
	}
}

// POST /candidates/{candidateID}/tick
func TickHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		snap, err := svc.Tick(r.Context(), id)
		writeSnapshot(w, snap, err)
	}
}

// GET /candidates/{candidateID}
func GetCandidateHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "candidateID")
		c, err := svc.CandidateByID(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(c)
	}
}
