package http

import (
	"net/http"
	"strconv"
	"strings"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/service"
)

func parseHospitalID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	user, err := s.identity.LoginUser(r.Context(), r.PostFormValue("number"), r.PostFormValue("password"))
	if err != nil {
		s.fail(w, r, err, "/")
		return
	}

	err = s.startSession(w, r, func(sess *domain.Session) {
		sess.UserLoggedIn = true
		sess.UserNumber = user.PhoneNumber
	})
	if err != nil {
		s.fail(w, r, err, "/")
		return
	}
	http.Redirect(w, r, "/success", http.StatusSeeOther)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	_, err := s.identity.SignupUser(r.Context(), service.UserSignup{
		FirstName:   r.PostFormValue("firstName"),
		BloodGroup:  r.PostFormValue("BloodGroup"),
		PhoneNumber: r.PostFormValue("number"),
		Password:    r.PostFormValue("password"),
	})
	if err != nil {
		s.fail(w, r, err, "/signup")
		return
	}
	redirectWithNotice(w, r, "/", "signed_up")
}

func (s *Server) handleHospitalSignin(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := parseHospitalID(r.PostFormValue("hospID"))
	if !ok {
		s.fail(w, r, domain.ErrCredentialMismatch, "/hospitals/signin")
		return
	}

	hospital, err := s.identity.LoginHospital(r.Context(), hospitalID, r.PostFormValue("password"))
	if err != nil {
		s.fail(w, r, err, "/hospitals/signin")
		return
	}

	err = s.startSession(w, r, func(sess *domain.Session) {
		sess.HospitalLoggedIn = true
		sess.HospitalID = hospital.HospitalID
	})
	if err != nil {
		s.fail(w, r, err, "/hospitals/signin")
		return
	}
	http.Redirect(w, r, "/hospitals/dashboard", http.StatusSeeOther)
}

func (s *Server) handleHospitalSignup(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := parseHospitalID(r.PostFormValue("hospID"))
	if !ok {
		s.fail(w, r, domain.ErrInvalidInput, "/hospitals/signup")
		return
	}

	_, err := s.identity.SignupHospital(r.Context(), service.HospitalSignup{
		HospitalName: r.PostFormValue("HospName"),
		DoctorName:   r.PostFormValue("DocName"),
		HospitalID:   hospitalID,
		Password:     r.PostFormValue("password"),
	})
	if err != nil {
		s.fail(w, r, err, "/hospitals/signup")
		return
	}
	redirectWithNotice(w, r, "/hospital", "signed_up")
}

func (s *Server) handleSignout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess.ID != "" {
		if err := s.sessions.Destroy(r.Context(), sess.ID); err != nil {
			logger.WarnContext(r.Context(), "failed to destroy session", "error", err)
		}
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
