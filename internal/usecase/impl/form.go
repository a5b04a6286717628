package impl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/errors"
	"rxconsole/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FieldKind decides how a form value is validated and encoded.
type FieldKind string

const (
	FieldText    FieldKind = "text"
	FieldEmail   FieldKind = "email"
	FieldPhone   FieldKind = "phone"
	FieldZipCode FieldKind = "zipcode"
	FieldNumber  FieldKind = "number"
	FieldSelect  FieldKind = "select"
	FieldList    FieldKind = "list"    // comma separated
	FieldGeoJSON FieldKind = "geojson" // Polygon or MultiPolygon
	FieldHTML    FieldKind = "html"    // editor output, passed through
	FieldFile    FieldKind = "file"
)

// Field is one input of a resource form.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Default  string
	Options  []string
	// Item is the kind each element of a FieldList must satisfy.
	Item FieldKind
}

// FormSchema lists a resource's inputs. AttachmentField names the multipart file part, if any.
type FormSchema struct {
	Fields          []Field
	AttachmentField string
}

// Info describes the schema for clients.
func (s FormSchema) Info() []usecase.FormField {
	fields := make([]usecase.FormField, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, usecase.FormField{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     string(f.Kind),
			Required: f.Required,
			Options:  f.Options,
		})
	}

	return fields
}

// Defaults returns the initial values of a create form.
func (s FormSchema) Defaults() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == FieldFile {
			continue
		}
		values[f.Name] = f.Default
	}

	return values
}

// Prefill returns the form values of an existing record.
func (s FormSchema) Prefill(record any) (map[string]string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode record")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode record")
	}

	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == FieldFile {
			continue
		}
		values[f.Name] = formValue(fields[f.Name])
	}

	return values, nil
}

func formValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formValue(item))
		}

		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}

		return string(raw)
	}
}

// FormValidator checks form values locally before anything is sent.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator registers the console's custom rules on a validator instance.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "digits", validateDigits)
	mustRegister(v, "geojson_polygon", validateGeoJSONPolygon)

	return &FormValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate returns a *domainerrors.ValidationError naming every invalid field.
func (fv *FormValidator) Validate(schema FormSchema, values map[string]string) error {
	invalid := fv.invalidFields(schema, values)
	if len(invalid) > 0 {
		return domainerrors.NewValidationError(invalid)
	}

	return nil
}

// ValidateInput validates the values and, when creating, the presence of
// required attachments.
func (fv *FormValidator) ValidateInput(schema FormSchema, input usecase.FormInput, creating bool) error {
	invalid := fv.invalidFields(schema, input.Values)
	if creating && input.Attachment == nil {
		for _, f := range schema.Fields {
			if f.Kind == FieldFile && f.Required {
				invalid[f.Name] = f.message("required")
			}
		}
	}

	if len(invalid) > 0 {
		return domainerrors.NewValidationError(invalid)
	}

	return nil
}

func (fv *FormValidator) invalidFields(schema FormSchema, values map[string]string) map[string]string {
	invalid := map[string]string{}
	for _, f := range schema.Fields {
		value := strings.TrimSpace(values[f.Name])
		if tag := f.tag(); tag != "" {
			if err := fv.validate.Var(value, tag); err != nil {
				invalid[f.Name] = f.failure(err)

				continue
			}
		}

		if tag := f.itemTag(); tag != "" {
			if err := fv.validate.Var(listItems(value), tag); err != nil {
				invalid[f.Name] = f.failure(err)
			}
		}
	}

	return invalid
}

func (f Field) failure(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return f.message(verrs[0].Tag())
	}

	return fmt.Sprintf("%s is invalid", f.Label)
}

func (f Field) tag() string {
	rules := []string{"omitempty"}
	if f.Required && f.Kind != FieldFile {
		rules = []string{"required"}
	}

	switch f.Kind {
	case FieldEmail:
		rules = append(rules, "email")
	case FieldZipCode:
		rules = append(rules, "digits")
	case FieldNumber:
		rules = append(rules, "numeric")
	case FieldGeoJSON:
		rules = append(rules, "geojson_polygon")
	case FieldSelect:
		if len(f.Options) > 0 {
			rules = append(rules, "oneof="+strings.Join(f.Options, " "))
		}
	}

	if len(rules) == 1 && rules[0] == "omitempty" {
		return ""
	}

	return strings.Join(rules, ",")
}

// itemTag validates every element of a list field.
func (f Field) itemTag() string {
	if f.Kind != FieldList {
		return ""
	}

	switch f.Item {
	case FieldZipCode:
		return "dive,digits"
	case FieldEmail:
		return "dive,email"
	case FieldNumber:
		return "dive,numeric"
	default:
		return ""
	}
}

func (f Field) message(tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", f.Label)
	case "email":
		return "Enter a valid email address"
	case "digits":
		if f.Kind == FieldList {
			return fmt.Sprintf("Each of the %s must contain only numbers", strings.ToLower(f.Label))
		}

		return fmt.Sprintf("%s must contain only numbers", f.Label)
	case "numeric":
		return fmt.Sprintf("%s must be a number", f.Label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Label, strings.Join(f.Options, ", "))
	case "geojson_polygon":
		return fmt.Sprintf("%s must be a GeoJSON polygon", f.Label)
	default:
		return fmt.Sprintf("%s is invalid", f.Label)
	}
}

func validateDigits(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func validateGeoJSONPolygon(fl validator.FieldLevel) bool {
	geometry, err := geojson.UnmarshalGeometry([]byte(fl.Field().String()))
	if err != nil || geometry.Coordinates == nil {
		return false
	}

	switch g := geometry.Geometry().(type) {
	case orb.Polygon:
		return validPolygon(g)
	case orb.MultiPolygon:
		if len(g) == 0 {
			return false
		}
		for _, p := range g {
			if !validPolygon(p) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func validPolygon(p orb.Polygon) bool {
	if len(p) == 0 {
		return false
	}
	for _, ring := range p {
		if len(ring) < 4 || !ring.Closed() {
			return false
		}
	}

	return true
}

// Payload converts validated form values into a request body.
// Empty optional values are omitted and unknown keys are dropped.
func (s FormSchema) Payload(input usecase.FormInput) repository.Payload {
	values := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == FieldFile {
			continue
		}

		raw, ok := input.Values[f.Name]
		raw = strings.TrimSpace(raw)
		if !ok || (raw == "" && !f.Required) {
			continue
		}

		values[f.Name] = encodeValue(f.Kind, raw)
	}

	payload := repository.Payload{Values: values}
	if input.Attachment != nil && s.AttachmentField != "" {
		attachment := *input.Attachment
		attachment.Field = s.AttachmentField
		payload.Attachment = &attachment
	}

	return payload
}

func encodeValue(kind FieldKind, raw string) any {
	switch kind {
	case FieldNumber:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return n
		}

		return raw
	case FieldList:
		return listItems(raw)
	case FieldGeoJSON:
		return json.RawMessage(raw)
	default:
		return raw
	}
}

// listItems splits a comma separated value, dropping blank entries.
func listItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	return items
}
