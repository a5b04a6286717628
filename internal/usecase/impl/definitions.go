package impl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rxconsole/internal/domain/entity"
)

// Names of the console's tables.
const (
	ResourceDrivers               = "drivers"
	ResourcePharmacies            = "pharmacies"
	ResourceIndependentPharmacies = "independent-pharmacies"
	ResourceInvestors             = "investors"
	ResourceOtherBusinesses       = "other-businesses"
	ResourcePayments              = "payments"
	ResourcePrescriptions         = "prescriptions"
	ResourceTransferRequests      = "transfer-requests"
	ResourceRefillRequests        = "refill-requests"
	ResourceScheduleRequests      = "schedule-requests"
	ResourceZipCodes              = "zip-codes"
	ResourceDeliveryZones         = "delivery-zones"
	ResourceUsers                 = "users"
	ResourceBlogs                 = "blogs"
)

var (
	accountStatuses     = []entity.Status{entity.StatusActive, entity.StatusInactive, entity.StatusPending, entity.StatusSuspended, entity.StatusBlocked}
	applicationStatuses = []entity.Status{entity.StatusPending, entity.StatusApproved, entity.StatusRejected}
	paymentStatuses     = []entity.Status{entity.StatusPaid, entity.StatusPending, entity.StatusFailed, entity.StatusRefunded}
	orderStatuses       = []entity.Status{entity.StatusPending, entity.StatusProcessing, entity.StatusScheduled, entity.StatusDelivered, entity.StatusCompleted, entity.StatusCancelled}
	toggleStatuses      = []entity.Status{entity.StatusActive, entity.StatusInactive}
	blogStatuses        = []entity.Status{entity.StatusPublished, entity.StatusDraft}
)

func statusOptions(statuses []entity.Status) []string {
	options := make([]string, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, string(s))
	}

	return options
}

func statusField(statuses []entity.Status, def entity.Status) Field {
	return Field{Name: "status", Label: "Status", Kind: FieldSelect, Default: string(def), Options: statusOptions(statuses)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DriversDefinition is the driver table.
func DriversDefinition() Definition[entity.Driver] {
	return Definition[entity.Driver]{
		Name:  ResourceDrivers,
		Path:  "drivers",
		Label: "driver",
		Search: func(d entity.Driver) []string {
			return []string{d.Name, d.Email, d.Phone, d.Address, d.LicenseNumber, d.VehicleNumber}
		},
		Status:   func(d entity.Driver) entity.Status { return d.Status },
		Statuses: accountStatuses,
		Columns:  []string{"Name", "Email", "Phone", "Address", "License Number", "Vehicle", "Status", "Joined"},
		Row: func(d entity.Driver) []string {
			vehicle := strings.TrimSpace(d.VehicleType + " " + d.VehicleNumber)

			return []string{d.Name, d.Email, d.Phone, d.Address, d.LicenseNumber, vehicle, string(d.Status), formatTime(d.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: FieldText, Required: true},
				{Name: "email", Label: "Email", Kind: FieldEmail, Required: true},
				{Name: "phone", Label: "Phone", Kind: FieldPhone, Required: true},
				{Name: "address", Label: "Address", Kind: FieldText, Required: true},
				{Name: "licenseNumber", Label: "License number", Kind: FieldText, Required: true},
				{Name: "vehicleType", Label: "Vehicle type", Kind: FieldText},
				{Name: "vehicleNumber", Label: "Vehicle number", Kind: FieldText},
				statusField(accountStatuses, entity.StatusPending),
				{Name: "image", Label: "Photo", Kind: FieldFile},
			},
			AttachmentField: "image",
		},
	}
}

// PharmaciesDefinition is the partner pharmacy table.
func PharmaciesDefinition() Definition[entity.Pharmacy] {
	return Definition[entity.Pharmacy]{
		Name:  ResourcePharmacies,
		Path:  "pharmacies",
		Label: "pharmacy",
		Search: func(p entity.Pharmacy) []string {
			return []string{p.Name, p.OwnerName, p.Email, p.Phone, p.Address, p.ZipCode}
		},
		Status:   func(p entity.Pharmacy) entity.Status { return p.Status },
		Statuses: append(append([]entity.Status{}, toggleStatuses...), applicationStatuses...),
		Columns:  []string{"Name", "Owner", "Email", "Phone", "Address", "Zip Code", "License Number", "Status", "Joined"},
		Row: func(p entity.Pharmacy) []string {
			return []string{p.Name, p.OwnerName, p.Email, p.Phone, p.Address, p.ZipCode, p.LicenseNumber, string(p.Status), formatTime(p.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "name", Label: "Pharmacy name", Kind: FieldText, Required: true},
				{Name: "ownerName", Label: "Owner name", Kind: FieldText, Required: true},
				{Name: "email", Label: "Email", Kind: FieldEmail, Required: true},
				{Name: "phone", Label: "Phone", Kind: FieldPhone, Required: true},
				{Name: "address", Label: "Address", Kind: FieldText, Required: true},
				{Name: "zipCode", Label: "Zip code", Kind: FieldZipCode, Required: true},
				{Name: "licenseNumber", Label: "License number", Kind: FieldText},
				statusField(append(append([]entity.Status{}, toggleStatuses...), applicationStatuses...), entity.StatusPending),
				{Name: "logo", Label: "Logo", Kind: FieldFile},
			},
			AttachmentField: "logo",
		},
	}
}

func partnerDefinition(name string, kind entity.PartnerKind, label string) Definition[entity.Partner] {
	return Definition[entity.Partner]{
		Name:  name,
		Path:  "partners/" + string(kind),
		Label: label,
		Search: func(p entity.Partner) []string {
			return []string{p.BusinessName, p.ContactName, p.Email, p.Phone, p.Address}
		},
		Status:   func(p entity.Partner) entity.Status { return p.Status },
		Statuses: applicationStatuses,
		Columns:  []string{"Business", "Contact", "Email", "Phone", "Address", "Status", "Submitted"},
		Row: func(p entity.Partner) []string {
			return []string{p.BusinessName, p.ContactName, p.Email, p.Phone, p.Address, string(p.Status), formatTime(p.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "businessName", Label: "Business name", Kind: FieldText, Required: true},
				{Name: "contactName", Label: "Contact name", Kind: FieldText, Required: true},
				{Name: "email", Label: "Email", Kind: FieldEmail, Required: true},
				{Name: "phone", Label: "Phone", Kind: FieldPhone, Required: true},
				{Name: "address", Label: "Address", Kind: FieldText},
				{Name: "message", Label: "Message", Kind: FieldText},
				statusField(applicationStatuses, entity.StatusPending),
			},
		},
	}
}

// IndependentPharmaciesDefinition is the independent pharmacy application table.
func IndependentPharmaciesDefinition() Definition[entity.Partner] {
	return partnerDefinition(ResourceIndependentPharmacies, entity.PartnerIndependentPharmacy, "independent pharmacy")
}

// InvestorsDefinition is the investor application table.
func InvestorsDefinition() Definition[entity.Partner] {
	return partnerDefinition(ResourceInvestors, entity.PartnerInvestor, "investor")
}

// OtherBusinessesDefinition is the table of other business partnership applications.
func OtherBusinessesDefinition() Definition[entity.Partner] {
	return partnerDefinition(ResourceOtherBusinesses, entity.PartnerOtherBusiness, "business")
}

// PaymentsDefinition is the payment table.
func PaymentsDefinition() Definition[entity.Payment] {
	return Definition[entity.Payment]{
		Name:  ResourcePayments,
		Path:  "payments",
		Label: "payment",
		Search: func(p entity.Payment) []string {
			return []string{p.TransactionID, p.CustomerName, p.Email, p.PharmacyName, p.Method}
		},
		Status:   func(p entity.Payment) entity.Status { return p.Status },
		Statuses: paymentStatuses,
		Columns:  []string{"Transaction", "Customer", "Email", "Pharmacy", "Amount", "Method", "Status", "Date"},
		Row: func(p entity.Payment) []string {
			amount := strings.TrimSpace(formatAmount(p.Amount) + " " + strings.ToUpper(p.Currency))

			return []string{p.TransactionID, p.CustomerName, p.Email, p.PharmacyName, amount, p.Method, string(p.Status), formatTime(p.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				statusField(paymentStatuses, entity.StatusPending),
			},
		},
	}
}

func prescriptionDefinition(name, path, label string, extra ...Field) Definition[entity.PrescriptionOrder] {
	fields := []Field{
		{Name: "patientName", Label: "Patient name", Kind: FieldText, Required: true},
		{Name: "email", Label: "Email", Kind: FieldEmail, Required: true},
		{Name: "phone", Label: "Phone", Kind: FieldPhone, Required: true},
		{Name: "address", Label: "Address", Kind: FieldText, Required: true},
		{Name: "zipCode", Label: "Zip code", Kind: FieldZipCode, Required: true},
		{Name: "pharmacyName", Label: "Pharmacy", Kind: FieldText},
		{Name: "medication", Label: "Medication", Kind: FieldText},
	}
	fields = append(fields, extra...)
	fields = append(fields, statusField(orderStatuses, entity.StatusPending))

	return Definition[entity.PrescriptionOrder]{
		Name:  name,
		Path:  path,
		Label: label,
		Search: func(o entity.PrescriptionOrder) []string {
			return []string{o.OrderNumber, o.PatientName, o.Email, o.Phone, o.Address, o.PharmacyName, o.Medication}
		},
		Status:   func(o entity.PrescriptionOrder) entity.Status { return o.Status },
		Statuses: orderStatuses,
		Columns:  []string{"Order", "Patient", "Email", "Phone", "Address", "Pharmacy", "Driver", "Status", "Created"},
		Row: func(o entity.PrescriptionOrder) []string {
			return []string{o.OrderNumber, o.PatientName, o.Email, o.Phone, o.Address, o.PharmacyName, o.DriverName(), string(o.Status), formatTime(o.CreatedAt)}
		},
		Form: FormSchema{Fields: fields},
	}
}

// PrescriptionsDefinition is the prescription delivery order table.
func PrescriptionsDefinition() Definition[entity.PrescriptionOrder] {
	return prescriptionDefinition(ResourcePrescriptions, "prescriptions", "prescription")
}

// TransferRequestsDefinition is the prescription transfer request table.
func TransferRequestsDefinition() Definition[entity.PrescriptionOrder] {
	return prescriptionDefinition(ResourceTransferRequests, "prescriptions/transfer", "transfer request",
		Field{Name: "previousPharmacy", Label: "Previous pharmacy", Kind: FieldText, Required: true})
}

// RefillRequestsDefinition is the prescription refill request table.
func RefillRequestsDefinition() Definition[entity.PrescriptionOrder] {
	return prescriptionDefinition(ResourceRefillRequests, "prescriptions/refill", "refill request",
		Field{Name: "rxNumber", Label: "Rx number", Kind: FieldText, Required: true})
}

// ScheduleRequestsDefinition is the scheduled delivery request table, dated by the requested slot.
func ScheduleRequestsDefinition() Definition[entity.PrescriptionOrder] {
	def := prescriptionDefinition(ResourceScheduleRequests, "prescriptions/schedule", "schedule request",
		Field{Name: "scheduledAt", Label: "Delivery time", Kind: FieldText, Required: true})
	def.Date = func(o entity.PrescriptionOrder) time.Time {
		if o.ScheduledAt != nil {
			return *o.ScheduledAt
		}

		return o.CreatedAt
	}

	return def
}

// ZipCodesDefinition is the serviceable zip code table.
func ZipCodesDefinition() Definition[entity.ZipCode] {
	return Definition[entity.ZipCode]{
		Name:  ResourceZipCodes,
		Path:  "zip-codes",
		Label: "zip code",
		Search: func(z entity.ZipCode) []string {
			return []string{z.Code, z.City, z.State, z.Zone}
		},
		Status:   func(z entity.ZipCode) entity.Status { return z.Status },
		Statuses: toggleStatuses,
		Columns:  []string{"Zip Code", "City", "State", "Zone", "Status", "Added"},
		Row: func(z entity.ZipCode) []string {
			return []string{z.Code, z.City, z.State, z.Zone, string(z.Status), formatTime(z.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "zipCode", Label: "Zip code", Kind: FieldZipCode, Required: true},
				{Name: "city", Label: "City", Kind: FieldText, Required: true},
				{Name: "state", Label: "State", Kind: FieldText, Required: true},
				{Name: "zone", Label: "Zone", Kind: FieldText},
				statusField(toggleStatuses, entity.StatusActive),
			},
		},
		OnFetchError: ClearOnError,
	}
}

// DeliveryZonesDefinition is the delivery zone table.
func DeliveryZonesDefinition() Definition[entity.DeliveryZone] {
	return Definition[entity.DeliveryZone]{
		Name:  ResourceDeliveryZones,
		Path:  "delivery-zones",
		Label: "delivery zone",
		Search: func(z entity.DeliveryZone) []string {
			return append([]string{z.Name}, z.ZipCodes...)
		},
		Status:   func(z entity.DeliveryZone) entity.Status { return z.Status },
		Statuses: toggleStatuses,
		Columns:  []string{"Name", "Zip Codes", "Delivery Fee", "Area (km2)", "Status", "Added"},
		Row: func(z entity.DeliveryZone) []string {
			return []string{
				z.Name,
				strings.Join(z.ZipCodes, ", "),
				formatAmount(z.DeliveryFee),
				fmt.Sprintf("%.2f", z.AreaKm2()),
				string(z.Status),
				formatTime(z.CreatedAt),
			}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "name", Label: "Zone name", Kind: FieldText, Required: true},
				{Name: "zipCodes", Label: "Zip codes", Kind: FieldList, Item: FieldZipCode, Required: true},
				{Name: "deliveryFee", Label: "Delivery fee", Kind: FieldNumber, Required: true, Default: "0"},
				{Name: "boundary", Label: "Boundary", Kind: FieldGeoJSON},
				statusField(toggleStatuses, entity.StatusActive),
			},
		},
		OnFetchError: ClearOnError,
	}
}

// UsersDefinition is the platform account table.
func UsersDefinition() Definition[entity.User] {
	return Definition[entity.User]{
		Name:  ResourceUsers,
		Path:  "users",
		Label: "user",
		Search: func(u entity.User) []string {
			return []string{u.Name, u.Email, u.Phone, u.Address, u.Role}
		},
		Status:   func(u entity.User) entity.Status { return u.Status },
		Statuses: accountStatuses,
		Columns:  []string{"Name", "Email", "Phone", "Address", "Role", "Status", "Joined"},
		Row: func(u entity.User) []string {
			return []string{u.Name, u.Email, u.Phone, u.Address, u.Role, string(u.Status), formatTime(u.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: FieldText, Required: true},
				{Name: "email", Label: "Email", Kind: FieldEmail, Required: true},
				{Name: "phone", Label: "Phone", Kind: FieldPhone},
				{Name: "address", Label: "Address", Kind: FieldText},
				{Name: "role", Label: "Role", Kind: FieldSelect, Required: true, Default: "customer", Options: []string{"customer", "driver", "pharmacy", "admin"}},
				statusField(accountStatuses, entity.StatusActive),
			},
		},
	}
}

// BlogsDefinition is the blog post table.
func BlogsDefinition() Definition[entity.Blog] {
	return Definition[entity.Blog]{
		Name:  ResourceBlogs,
		Path:  "blogs",
		Label: "blog",
		Search: func(b entity.Blog) []string {
			return []string{b.Title, b.Author, b.Category, b.Slug}
		},
		Status:   func(b entity.Blog) entity.Status { return b.Status },
		Statuses: blogStatuses,
		Columns:  []string{"Title", "Author", "Category", "Status", "Created"},
		Row: func(b entity.Blog) []string {
			return []string{b.Title, b.Author, b.Category, string(b.Status), formatTime(b.CreatedAt)}
		},
		Form: FormSchema{
			Fields: []Field{
				{Name: "title", Label: "Title", Kind: FieldText, Required: true},
				{Name: "slug", Label: "Slug", Kind: FieldText},
				{Name: "author", Label: "Author", Kind: FieldText, Required: true},
				{Name: "category", Label: "Category", Kind: FieldText},
				{Name: "content", Label: "Content", Kind: FieldHTML, Required: true},
				statusField(blogStatuses, entity.StatusDraft),
				{Name: "image", Label: "Cover image", Kind: FieldFile, Required: true},
			},
			AttachmentField: "image",
		},
	}
}
