package domain

import "strings"

// Jamaah is a registered attendee. Phone is optional and unique when present.
type Jamaah struct {
	ID    string  `json:"id" bson:"id"`
	Nama  string  `json:"nama" bson:"nama"`
	Phone *string `json:"hp" bson:"hp,omitempty"`
}

// PhoneOrEmpty returns the phone number, or "" when none is stored.
func (j *Jamaah) PhoneOrEmpty() string {
	if j.Phone == nil {
		return ""
	}
	return *j.Phone
}

// NormalizePhone trims the input and maps blank values to nil so that an empty
// phone never takes part in uniqueness checks.
func NormalizePhone(hp *string) *string {
	if hp == nil {
		return nil
	}
	v := strings.TrimSpace(*hp)
	if v == "" {
		return nil
	}
	return &v
}
