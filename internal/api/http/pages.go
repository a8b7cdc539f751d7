package http

import (
	"net/http"

	"lifeline/internal/domain"
)

type formPage struct {
	Notice      string
	BloodGroups []string
}

func newFormPage(r *http.Request) formPage {
	return formPage{
		Notice:      noticeMessage(r.URL.Query().Get("notice")),
		BloodGroups: domain.BloodGroups(),
	}
}

func (s *Server) handleSigninPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "signin.html", newFormPage(r))
}

func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "signup.html", newFormPage(r))
}

func (s *Server) handleHospitalSigninPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "hospital_signin.html", newFormPage(r))
}

func (s *Server) handleHospitalSignupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "hospital_signup.html", newFormPage(r))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, "Page not found.")
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusMethodNotAllowed, "Method not allowed.")
}
