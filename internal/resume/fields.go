package resume

import (
	"regexp"
	"strings"
)

// Fields are best-effort identity guesses; empty means the caller has to
// collect the field from the candidate.
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var (
	nameRe  = regexp.MustCompile(`(?i)Name[:\s]+([A-Za-z ,.'-]{2,})`)
	emailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d[\d\-\s]{7,}\d)`)
)

// ExtractFields guesses name, email and phone from raw resume text.
func ExtractFields(text string) Fields {
	var f Fields
	if m := nameRe.FindStringSubmatch(text); m != nil {
		f.Name = strings.TrimSpace(m[1])
	}
	if m := emailRe.FindString(text); m != "" {
		f.Email = strings.TrimSpace(m)
	}
	if m := phoneRe.FindString(text); m != "" {
		f.Phone = strings.TrimSpace(m)
	}
	return f
}
