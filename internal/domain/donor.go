package domain

type Donor struct {
	ID          int64  `json:"id"`
	DonorName   string `json:"donor_name"`
	BloodGroup  string `json:"blood_group"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
	CreatedOn   string `json:"created_on"`
}

// Matches is what a requester sees in the "find donor" section: the blood
// groups of their approved requests and the donors carrying one of them.
type Matches struct {
	BloodGroups []string `json:"blood_groups"`
	Donors      []Donor  `json:"donors"`
}

// Visible reports whether the requester has any approved request at all.
func (m Matches) Visible() bool {
	return len(m.BloodGroups) > 0
}
