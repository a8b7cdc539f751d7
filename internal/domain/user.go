package domain

// User is a requester account. PhoneNumber is the login identifier and is unique.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	BloodGroup   string `json:"blood_group"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}
