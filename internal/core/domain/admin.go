package domain

// Admin is an operator allowed to manage jamaah, kajian and reports.
type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
