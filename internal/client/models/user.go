package models

// UserRecord is the user identity returned by the auth endpoints. Exactly one
// of Email/Phone is populated. The record is immutable within a session and
// replaced wholesale on the next login.
type UserRecord struct {
	ID              string `json:"id"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// Contact returns the single contact line shown on the profile panel,
// preferring email over phone over a placeholder.
func (u UserRecord) Contact() string {
	if u.Email != "" {
		return u.Email
	}
	if u.Phone != "" {
		return u.Phone
	}
	return "No contact info"
}
