package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/hireloop/interviewd/internal/interview"
)

// GET /candidates?q=...
// Interviewer dashboard: highest final score first, unscored candidates
// last, ties broken by name.
func ListCandidatesHandler(svc *interview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
		list := svc.Candidates()
		if q != "" {
			filtered := list[:0]
			for _, c := range list {
				if strings.Contains(strings.ToLower(c.Profile.Name), q) ||
					strings.Contains(strings.ToLower(c.Profile.Email), q) {
					filtered = append(filtered, c)
				}
			}
			list = filtered
		}
		sort.SliceStable(list, func(i, j int) bool {
			si, sj := list[i].FinalScore, list[j].FinalScore
			switch {
			case si != nil && sj != nil && *si != *sj:
				return *si > *sj
			case (si != nil) != (sj != nil):
				return si != nil
			default:
				return list[i].Profile.Name < list[j].Profile.Name
			}
		})
		_ = json.NewEncoder(w).Encode(list)
	}
}
