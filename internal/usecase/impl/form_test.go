package impl

import (
	"encoding/json"
	"testing"

	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareBoundary = `{"type":"Polygon","coordinates":[[[-73.99,40.73],[-73.98,40.73],[-73.98,40.74],[-73.99,40.74],[-73.99,40.73]]]}`

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	return verr.Fields()
}

func TestFormValidator_ZipCodeMustBeNumeric(t *testing.T) {
	fv := NewFormValidator()
	schema := ZipCodesDefinition().Form

	err := fv.Validate(schema, map[string]string{"zipCode": "12a45", "city": "Austin", "state": "TX"})

	fields := validationFields(t, err)
	assert.Equal(t, map[string]string{"zipCode": "Zip code must contain only numbers"}, fields)
}

func TestFormValidator_Rules(t *testing.T) {
	fv := NewFormValidator()
	schema := DriversDefinition().Form

	t.Run("valid", func(t *testing.T) {
		err := fv.Validate(schema, map[string]string{
			"name":          "John Doe",
			"email":         "john@example.com",
			"phone":         "5551234",
			"address":       "1 Main St",
			"licenseNumber": "D-1",
			"status":        "active",
		})
		assert.NoError(t, err)
	})

	t.Run("required and email", func(t *testing.T) {
		err := fv.Validate(schema, map[string]string{
			"name":          "  ",
			"email":         "not-an-email",
			"phone":         "5551234",
			"address":       "1 Main St",
			"licenseNumber": "D-1",
		})

		fields := validationFields(t, err)
		assert.Equal(t, "Name is required", fields["name"])
		assert.Equal(t, "Enter a valid email address", fields["email"])
		assert.Len(t, fields, 2)
	})

	t.Run("unknown status", func(t *testing.T) {
		err := fv.Validate(schema, map[string]string{
			"name":          "John Doe",
			"email":         "john@example.com",
			"phone":         "5551234",
			"address":       "1 Main St",
			"licenseNumber": "D-1",
			"status":        "retired",
		})

		fields := validationFields(t, err)
		assert.Contains(t, fields["status"], "Status must be one of")
	})
}

func TestFormValidator_GeoJSONBoundary(t *testing.T) {
	fv := NewFormValidator()
	schema := DeliveryZonesDefinition().Form
	base := map[string]string{"name": "Downtown", "zipCodes": "10001", "deliveryFee": "4.5"}

	tests := []struct {
		name     string
		boundary string
		valid    bool
	}{
		{name: "absent", boundary: "", valid: true},
		{name: "closed polygon", boundary: squareBoundary, valid: true},
		{name: "open ring", boundary: `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`, valid: false},
		{name: "point", boundary: `{"type":"Point","coordinates":[0,0]}`, valid: false},
		{name: "not json", boundary: "downtown", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]string{"boundary": tt.boundary}
			for k, v := range base {
				values[k] = v
			}

			err := fv.Validate(schema, values)
			if tt.valid {
				assert.NoError(t, err)

				return
			}
			assert.Equal(t, "Boundary must be a GeoJSON polygon", validationFields(t, err)["boundary"])
		})
	}
}

func TestFormValidator_ZipCodeListItems(t *testing.T) {
	fv := NewFormValidator()
	schema := DeliveryZonesDefinition().Form

	tests := []struct {
		name     string
		zipCodes string
		want     string
	}{
		{name: "digits", zipCodes: "10001, 10002", want: ""},
		{name: "blank entries ignored", zipCodes: "10001,, 10002 ,", want: ""},
		{name: "letters in one item", zipCodes: "10001, 10a02", want: "Each of the zip codes must contain only numbers"},
		{name: "missing", zipCodes: " ", want: "Zip codes is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fv.Validate(schema, map[string]string{"name": "Downtown", "zipCodes": tt.zipCodes, "deliveryFee": "4.5"})
			if tt.want == "" {
				assert.NoError(t, err)

				return
			}
			assert.Equal(t, map[string]string{"zipCodes": tt.want}, validationFields(t, err))
		})
	}
}

func TestFormValidator_RequiredAttachment(t *testing.T) {
	fv := NewFormValidator()
	schema := BlogsDefinition().Form
	values := map[string]string{"title": "Hello", "author": "Ann", "content": "<p>Hello</p>"}

	err := fv.ValidateInput(schema, usecase.FormInput{Values: values}, true)
	assert.Equal(t, map[string]string{"image": "Cover image is required"}, validationFields(t, err))

	err = fv.ValidateInput(schema, usecase.FormInput{Values: values}, false)
	assert.NoError(t, err)

	err = fv.ValidateInput(schema, usecase.FormInput{
		Values:     values,
		Attachment: &repository.Attachment{Filename: "cover.jpg", Data: []byte("jpg")},
	}, true)
	assert.NoError(t, err)
}

func TestFormSchema_PrefillRejectsUnencodable(t *testing.T) {
	_, err := DriversDefinition().Form.Prefill(map[string]any{"name": make(chan int)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode record")
}

func TestFormSchema_Payload(t *testing.T) {
	schema := DeliveryZonesDefinition().Form

	payload := schema.Payload(usecase.FormInput{Values: map[string]string{
		"name":        " Downtown ",
		"zipCodes":    "10001, 10002,,",
		"deliveryFee": "4.50",
		"boundary":    squareBoundary,
		"status":      "",
		"unexpected":  "dropped",
	}})

	assert.False(t, payload.IsMultipart())
	assert.Equal(t, "Downtown", payload.Values["name"])
	assert.Equal(t, []string{"10001", "10002"}, payload.Values["zipCodes"])
	assert.Equal(t, 4.5, payload.Values["deliveryFee"])
	assert.Equal(t, json.RawMessage(squareBoundary), payload.Values["boundary"])
	assert.NotContains(t, payload.Values, "status")
	assert.NotContains(t, payload.Values, "unexpected")
}

func TestFormSchema_PayloadAttachment(t *testing.T) {
	attachment := &repository.Attachment{Filename: "cover.png", ContentType: "image/png", Data: []byte{0x89}}

	blog := BlogsDefinition().Form.Payload(usecase.FormInput{
		Values:     map[string]string{"title": "Hello"},
		Attachment: attachment,
	})
	require.True(t, blog.IsMultipart())
	assert.Equal(t, "image", blog.Attachment.Field)
	assert.Equal(t, "cover.png", blog.Attachment.Filename)
	assert.Empty(t, attachment.Field)

	zip := ZipCodesDefinition().Form.Payload(usecase.FormInput{
		Values:     map[string]string{"zipCode": "10001"},
		Attachment: attachment,
	})
	assert.False(t, zip.IsMultipart())
}

func TestFormSchema_PrefillAndDefaults(t *testing.T) {
	schema := DeliveryZonesDefinition().Form

	values, err := schema.Prefill(deliveryZone("z-1", "Downtown"))
	require.NoError(t, err)
	assert.Equal(t, "Downtown", values["name"])
	assert.Equal(t, "10001, 10002", values["zipCodes"])
	assert.Equal(t, "4.5", values["deliveryFee"])
	assert.Equal(t, "active", values["status"])

	defaults := schema.Defaults()
	assert.Equal(t, "0", defaults["deliveryFee"])
	assert.Equal(t, "active", defaults["status"])
	assert.Equal(t, "", defaults["name"])
}
