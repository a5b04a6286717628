package entity

import "time"

// OrderKind distinguishes the prescription request flows served by separate endpoints.
type OrderKind string

const (
	OrderKindOrder    OrderKind = "order"
	OrderKindTransfer OrderKind = "transfer"
	OrderKindRefill   OrderKind = "refill"
	OrderKindSchedule OrderKind = "schedule"
)

// UnassignedDriver is displayed when the backend has not attached a driver.
const UnassignedDriver = "Unassigned"

// PrescriptionOrder is a prescription delivery order or a transfer/refill/schedule request.
type PrescriptionOrder struct {
	Base
	Kind             OrderKind  `json:"kind,omitempty"`
	OrderNumber      string     `json:"orderNumber"`
	PatientName      string     `json:"patientName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	ZipCode          string     `json:"zipCode"`
	PharmacyName     string     `json:"pharmacyName"`
	PreviousPharmacy string     `json:"previousPharmacy,omitempty"` // transfer requests
	RxNumber         string     `json:"rxNumber,omitempty"`         // refill requests
	Medication       string     `json:"medication"`
	ScheduledAt      *time.Time `json:"scheduledAt,omitempty"` // schedule requests
	AssignedDriver   *DriverRef `json:"assignedDriver,omitempty"`
	Status           Status     `json:"status"`
}

// DriverName returns the assigned driver's name as provided by the backend.
func (o *PrescriptionOrder) DriverName() string {
	if o.AssignedDriver == nil || o.AssignedDriver.Name == "" {
		return UnassignedDriver
	}

	return o.AssignedDriver.Name
}
