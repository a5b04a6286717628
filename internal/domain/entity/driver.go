package entity

// Driver is a delivery driver registered on the platform.
type Driver struct {
	Base
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	Image         string `json:"image,omitempty"`
	Status        Status `json:"status"`
}

// DriverRef is the nested driver summary the backend embeds in orders.
type DriverRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
