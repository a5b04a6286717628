package entity

// User is an account on the platform: customers, staff and administrators.
type User struct {
	Base
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
	Status  Status `json:"status"`
}
