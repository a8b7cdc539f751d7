package domain

// Hospital is a validating institution. HospitalID is chosen by the hospital at signup.
type Hospital struct {
	HospitalID   int64  `json:"hospital_id"`
	HospitalName string `json:"hospital_name"`
	DoctorName   string `json:"doctor_name"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}
