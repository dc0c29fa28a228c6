package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hireloop/interviewd/internal/interview"
	"github.com/hireloop/interviewd/internal/resume"
)

const maxResumeBytes = 10 << 20 // 10 MiB

// POST /resume takes a multipart field "file". Parses the document, guesses the
// identity fields and admits the candidate; missing fields are confirmed via
// the profile endpoint before the interview can begin.
func UploadResumeHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
			http.Error(w, "bad multipart form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
		if err != nil {
			http.Error(w, "read upload", http.StatusBadRequest)
			return
		}

		text, err := resume.Extract(data, header.Header.Get("Content-Type"), header.Filename)
		if err != nil {
			if errors.Is(err, resume.ErrUnsupportedFormat) {
				http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		fields := resume.ExtractFields(text)
		snap, err := svc.CreateCandidate(r.Context(), interview.CandidateProfile{
			Name:  fields.Name,
			Email: fields.Email,
			Phone: fields.Phone,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(snap)
	}
}
