package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/redmonkez12/holdings-api/internal/httputil"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 100
	maxEmailLength    = 254
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Issues []httputil.FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Field+": "+issue.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// ValidateCredentials checks the register/login body: a syntactically valid
// email and a password of 6 to 100 characters. It returns nil when both pass.
func ValidateCredentials(email, password string) error {
	var issues []httputil.FieldIssue

	if msg := validateEmail(email); msg != "" {
		issues = append(issues, httputil.FieldIssue{Field: "email", Message: msg})
	}

	switch n := utf8.RuneCountInString(password); {
	case n < minPasswordLength:
		issues = append(issues, httputil.FieldIssue{Field: "password", Message: "must be at least 6 characters"})
	case n > maxPasswordLength:
		issues = append(issues, httputil.FieldIssue{Field: "password", Message: "must be at most 100 characters"})
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func validateEmail(email string) string {
	if email == "" {
		return "is required"
	}
	if len(email) > maxEmailLength {
		return "must be a valid email address"
	}
	// ParseAddress also accepts display-name forms; only a bare address is valid.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "must be a valid email address"
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return "must be a valid email address"
	}
	return ""
}
