package http

import (
	"errors"
	"net/http"
	"time"

	"lifeline/internal/config"
	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/session"

	"github.com/gorilla/mux"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// unmatchedRoute labels requests no route matched, keeping arbitrary paths out
// of metric labels.
const unmatchedRoute = "unmatched"

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return unmatchedRoute
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic while serving request", "path", r.URL.Path, "panic", rec)
				s.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.HTTPRequest(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
		s.metrics.ObserveHTTP(r.Method, routeTemplate(r), rec.status, start)
	})
}

// authorize loads the caller's session and enforces the route's security level.
// Public routes still see the session so sign-in can extend it.
func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.GetSecurityLevel(r.Method, routeTemplate(r))

		sess, err := s.loadSession(r)
		if err != nil {
			if level != config.SecurityPublic {
				logger.ErrorContext(r.Context(), "failed to load session", "error", err)
				s.renderError(w, r, http.StatusInternalServerError, genericFailure)
				return
			}
			logger.WarnContext(r.Context(), "session backend unavailable, continuing anonymously", "error", err)
			sess = domain.Session{}
		}

		switch level {
		case config.SecurityRequester:
			if _, ok := sess.Requester(); !ok {
				s.fail(w, r, domain.ErrUnauthenticated, "/signin")
				return
			}
		case config.SecurityHospital:
			if _, ok := sess.Hospital(); !ok {
				s.fail(w, r, domain.ErrUnauthenticated, "/hospitals/signin")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

// loadSession resolves the cookie to a stored session. A missing, expired,
// tampered or unknown cookie yields an anonymous session and no error.
func (s *Server) loadSession(r *http.Request) (domain.Session, error) {
	cookie, err := r.Cookie(s.cookie.Name)
	if err != nil || cookie.Value == "" {
		return domain.Session{}, nil
	}

	claims, err := s.tokens.ValidateToken(cookie.Value)
	if err != nil {
		logger.Debug("ignoring session cookie", "reason", err)
		return domain.Session{}, nil
	}

	sess, err := s.sessions.Load(r.Context(), claims.SessionID())
	if errors.Is(err, session.ErrNotFound) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}
	return *sess, nil
}

// startSession rotates the session ID, applies mutate and sets the cookie.
// Identities already present in the session are kept.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, mutate func(*domain.Session)) error {
	sess := SessionFromContext(r.Context())
	previousID := sess.ID
	sess.ID = ""
	mutate(&sess)

	if err := s.sessions.Save(r.Context(), &sess); err != nil {
		return err
	}
	if previousID != "" {
		if err := s.sessions.Destroy(r.Context(), previousID); err != nil {
			logger.WarnContext(r.Context(), "failed to drop previous session", "error", err)
		}
	}

	token, err := s.tokens.GenerateSessionToken(sess.ID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
