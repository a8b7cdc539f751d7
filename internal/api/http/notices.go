package http

import (
	"errors"
	"net/http"
	"net/url"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
)

const genericFailure = "An unexpected error occurred. Please try again later."

type notice struct {
	Code    string
	Message string
	Status  int
}

var errorNotices = []struct {
	err error
	notice
}{
	{domain.ErrUnauthenticated, notice{"unauthenticated", "You need to sign in first.", http.StatusUnauthorized}},
	{domain.ErrUnauthorized, notice{"unauthorized", "You are not allowed to act on that request.", http.StatusForbidden}},
	{domain.ErrInvalidHospital, notice{"invalid_hospital", "Invalid Hospital ID. Please enter a valid Hospital ID.", http.StatusUnprocessableEntity}},
	{domain.ErrDuplicatePhone, notice{"duplicate_phone", "Phone number already exists. Please choose a different phone number.", http.StatusConflict}},
	{domain.ErrDuplicateHospital, notice{"duplicate_hospital", "Hospital ID already exists. Please choose a different ID.", http.StatusConflict}},
	{domain.ErrInvalidPhoneFormat, notice{"invalid_phone", "Phone number must be exactly 10 digits.", http.StatusBadRequest}},
	{domain.ErrCredentialMismatch, notice{"credential_mismatch", "Invalid credentials. Please try again.", http.StatusUnauthorized}},
	{domain.ErrNotFound, notice{"not_found", "That request no longer exists.", http.StatusNotFound}},
	{domain.ErrInvalidInput, notice{"invalid_input", "Some fields are missing or invalid.", http.StatusBadRequest}},
	{domain.ErrInvalidTransition, notice{"invalid_transition", "That request has already been decided.", http.StatusConflict}},
}

var infoNotices = map[string]string{
	"signed_up":  "Account created. Please sign in.",
	"signed_out": "You have been signed out.",
}

func noticeFor(err error) (notice, bool) {
	for _, n := range errorNotices {
		if errors.Is(err, n.err) {
			return n.notice, true
		}
	}
	return notice{}, false
}

// noticeMessage turns the notice query parameter into display text. Unknown
// codes render nothing.
func noticeMessage(code string) string {
	if code == "" {
		return ""
	}
	for _, n := range errorNotices {
		if n.Code == code {
			return n.Message
		}
	}
	return infoNotices[code]
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, target, code string) {
	if code != "" {
		target += "?notice=" + url.QueryEscape(code)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// fail reports a workflow error to the caller: a redirect back to the form
// with a notice, a JSON error body for API clients, or a 500 page when the
// failure is not one the caller can fix.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, back string) {
	n, known := noticeFor(err)
	if !known {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		s.renderError(w, r, http.StatusInternalServerError, genericFailure)
		return
	}

	logger.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "notice", n.Code)
	if wantsJSON(r) {
		writeJSON(w, n.Status, errorBody{Error: n.Code, Message: n.Message})
		return
	}
	redirectWithNotice(w, r, back, n.Code)
}
