package domain

// Session is the caller's authenticated identity. A single session may carry a
// requester identity, a hospital identity, both, or neither.
type Session struct {
	ID               string `json:"id"`
	UserLoggedIn     bool   `json:"user_logged_in"`
	UserNumber       string `json:"user_number,omitempty"`
	HospitalLoggedIn bool   `json:"hospital_logged_in"`
	HospitalID       int64  `json:"hospital_id,omitempty"`
}

// Requester returns the signed-in requester's phone number.
func (s Session) Requester() (string, bool) {
	if !s.UserLoggedIn || s.UserNumber == "" {
		return "", false
	}
	return s.UserNumber, true
}

// Hospital returns the signed-in hospital's ID.
func (s Session) Hospital() (int64, bool) {
	if !s.HospitalLoggedIn || s.HospitalID <= 0 {
		return 0, false
	}
	return s.HospitalID, true
}

func (s Session) Anonymous() bool {
	_, user := s.Requester()
	_, hosp := s.Hospital()
	return !user && !hosp
}
