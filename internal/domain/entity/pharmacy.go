package entity

// Pharmacy is a partner pharmacy fulfilling prescriptions.
type Pharmacy struct {
	Base
	Name          string `json:"name"`
	OwnerName     string `json:"ownerName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ZipCode       string `json:"zipCode"`
	LicenseNumber string `json:"licenseNumber"`
	Logo          string `json:"logo,omitempty"`
	Status        Status `json:"status"`
}

// PartnerKind distinguishes the partner application forms.
type PartnerKind string

const (
	PartnerIndependentPharmacy PartnerKind = "independent-pharmacy"
	PartnerInvestor            PartnerKind = "investor"
	PartnerOtherBusiness       PartnerKind = "other-business"
)

// Partner is an inbound partnership application: an independent pharmacy, an investor or another business.
type Partner struct {
	Base
	Kind         PartnerKind `json:"kind,omitempty"`
	BusinessName string      `json:"businessName"`
	ContactName  string      `json:"contactName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Message      string      `json:"message,omitempty"`
	Status       Status      `json:"status"`
}
