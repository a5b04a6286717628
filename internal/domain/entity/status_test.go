package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Severity(t *testing.T) {
	tests := []struct {
		status Status
		want   Severity
	}{
		{status: "Active", want: SeverityPositive},
		{status: StatusPending, want: SeverityWarning},
		{status: "canceled", want: SeverityNegative},
		{status: StatusRefunded, want: SeverityNeutral},
		{status: "mystery", want: SeverityNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Severity())
		})
	}
}

func TestStatus_Matches(t *testing.T) {
	assert.True(t, Status("Approved").Matches("approved"))
	assert.True(t, StatusPending.Matches(StatusAll))
	assert.True(t, StatusPending.Matches(""))
	assert.False(t, StatusPending.Matches("approved"))
}

func TestPrescriptionOrder_DriverName(t *testing.T) {
	order := &PrescriptionOrder{}
	assert.Equal(t, UnassignedDriver, order.DriverName())

	order.AssignedDriver = &DriverRef{ID: "d1", Name: "Sam Carter"}
	assert.Equal(t, "Sam Carter", order.DriverName())
}
