package entity

// Payment is a settled or attempted charge.
type Payment struct {
	Base
	TransactionID string  `json:"transactionId"`
	CustomerName  string  `json:"customerName"`
	Email         string  `json:"email"`
	PharmacyName  string  `json:"pharmacyName"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"`
	Status        Status  `json:"status"`
}
