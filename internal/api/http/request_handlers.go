package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/service"
)

type requesterDashboard struct {
	User            *domain.User          `json:"user"`
	Requests        []domain.BloodRequest `json:"requests"`
	Approved        []domain.BloodRequest `json:"approved"`
	ShowFindSection bool                  `json:"show_find_section"`
	Donors          []domain.Donor        `json:"donors"`
	Notice          string                `json:"-"`
	BloodGroups     []string              `json:"-"`
}

type hospitalDashboard struct {
	Hospital *domain.Hospital      `json:"hospital"`
	Pending  []domain.BloodRequest `json:"pending"`
	Approved []domain.BloodRequest `json:"approved"`
	Rejected []domain.BloodRequest `json:"rejected"`
	Notice   string                `json:"-"`
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := parseHospitalID(r.PostFormValue("HosptialID"))
	if !ok {
		s.fail(w, r, domain.ErrInvalidInput, "/success")
		return
	}

	_, err := s.workflow.CreateRequest(r.Context(), SessionFromContext(r.Context()), service.NewRequest{
		PatientName:  r.PostFormValue("patientname"),
		HospitalName: r.PostFormValue("HospitalName"),
		HospitalID:   hospitalID,
		BloodGroup:   r.PostFormValue("BloodGroup"),
		Location:     r.PostFormValue("Location"),
	})
	if errors.Is(err, domain.ErrUnauthenticated) {
		s.fail(w, r, err, "/signin")
		return
	}
	if err != nil {
		s.fail(w, r, err, "/success")
		return
	}
	http.Redirect(w, r, "/success", http.StatusSeeOther)
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	_, err := s.donors.CreateDonor(r.Context(), service.NewDonor{
		DonorName:   r.PostFormValue("donorName"),
		BloodGroup:  r.PostFormValue("bloodGroup"),
		Location:    r.PostFormValue("location"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
	})
	if err != nil {
		s.fail(w, r, err, "/success")
		return
	}
	http.Redirect(w, r, "/success", http.StatusSeeOther)
}

func (s *Server) handleRequesterDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	phone, _ := SessionFromContext(ctx).Requester()

	user, err := s.identity.FindUserByPhone(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.fail(w, r, err, "/signin")
		return
	}

	requests, err := s.workflow.ListForRequester(ctx, phone)
	if err != nil {
		s.fail(w, r, err, "/signin")
		return
	}
	matches, err := s.matching.FindMatches(ctx, phone)
	if err != nil {
		s.fail(w, r, err, "/signin")
		return
	}

	view := requesterDashboard{
		User:            user,
		Requests:        requests.All,
		Approved:        requests.Approved,
		ShowFindSection: matches.Visible(),
		Donors:          matches.Donors,
		Notice:          noticeMessage(r.URL.Query().Get("notice")),
		BloodGroups:     domain.BloodGroups(),
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, view)
		return
	}
	s.render(w, r, http.StatusOK, "success.html", view)
}

// loadHospitalView fetches the signed-in hospital and its three request lists.
// It returns false after writing a response.
func (s *Server) loadHospitalView(w http.ResponseWriter, r *http.Request) (*hospitalDashboard, bool) {
	ctx := r.Context()
	hospitalID, _ := SessionFromContext(ctx).Hospital()

	hospital, err := s.identity.FindHospitalByID(ctx, hospitalID)
	if errors.Is(err, domain.ErrNotFound) {
		http.Redirect(w, r, "/hospitals/signin", http.StatusSeeOther)
		return nil, false
	}
	if err != nil {
		s.fail(w, r, err, "/hospitals/signin")
		return nil, false
	}

	lists, err := s.workflow.ListForHospital(ctx, hospitalID)
	if err != nil {
		s.fail(w, r, err, "/hospitals/signin")
		return nil, false
	}

	return &hospitalDashboard{
		Hospital: hospital,
		Pending:  lists.Pending,
		Approved: lists.Approved,
		Rejected: lists.Rejected,
		Notice:   noticeMessage(r.URL.Query().Get("notice")),
	}, true
}

func (s *Server) handleHospitalDashboard(w http.ResponseWriter, r *http.Request) {
	view, ok := s.loadHospitalView(w, r)
	if !ok {
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, view)
		return
	}
	s.render(w, r, http.StatusOK, "hospital_dashboard.html", view)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view, ok := s.loadHospitalView(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := writeRequestsWorkbook(&buf, &domain.HospitalRequests{
		Pending:  view.Pending,
		Approved: view.Approved,
		Rejected: view.Rejected,
	})
	if err != nil {
		s.fail(w, r, err, "/hospitals/dashboard")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="requests-%d.xlsx"`, view.Hospital.HospitalID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.WarnContext(r.Context(), "failed to write export", "hospitalID", view.Hospital.HospitalID, "error", err)
	}
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	outcome := domain.OutcomeApprove
	if strings.HasSuffix(r.URL.Path, "/reject") {
		outcome = domain.OutcomeReject
	}

	_, err := s.workflow.Decide(r.Context(), SessionFromContext(r.Context()), r.PostFormValue("requestId"), outcome)
	if errors.Is(err, domain.ErrUnauthenticated) {
		s.fail(w, r, err, "/hospitals/signin")
		return
	}
	if err != nil {
		s.fail(w, r, err, "/hospitals/dashboard")
		return
	}
	http.Redirect(w, r, "/hospitals/dashboard", http.StatusSeeOther)
}
