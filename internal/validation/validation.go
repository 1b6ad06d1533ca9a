// Package validation checks mutation payloads before anything touches
// storage. Each check returns either nil or an *Error carrying every
// field-level violation found, so a caller never applies a partially valid
// payload.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation is one failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates all violations for one payload.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations against the json field names the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// isoDatePattern accepts an ISO-8601 UTC timestamp with millisecond
// precision, or an empty string (the date then defaults server-side).
var isoDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z)?$`)

// AddItem validates an item create payload.
func (p *AddItem) Validate() error {
	violations := required("Item",
		requirement{"categoryId", p.CategoryID != nil},
		requirement{"supplierId", p.SupplierID != nil},
		requirement{"name", p.Name != nil},
		requirement{"description", p.Description != nil},
		requirement{"price", p.Price != nil},
		requirement{"dateCreated", p.DateCreated != nil},
	)
	violations = append(violations, bounds("Item", p)...)
	if p.DateCreated != nil && !isoDatePattern.MatchString(*p.DateCreated) {
		violations = append(violations, Violation{
			Field:   "dateCreated",
			Message: "Item dateCreated must be an ISO-8601 timestamp like 2024-09-04T21:39:36.605Z",
		})
	}
	return asError(violations)
}

// UpdateItem validates an item patch.
func (p *UpdateItem) Validate() error {
	violations := required("Item",
		requirement{"categoryId", p.CategoryID != nil},
		requirement{"supplierId", p.SupplierID != nil},
		requirement{"name", p.Name != nil},
		requirement{"description", p.Description != nil},
		requirement{"price", p.Price != nil},
	)
	violations = append(violations, bounds("Item", p)...)
	return asError(violations)
}

// AddSupplier validates a supplier create payload.
func (p *AddSupplier) Validate() error {
	violations := required("Supplier",
		requirement{"supplierName", p.SupplierName != nil},
		requirement{"contactInformation", p.ContactInformation != nil},
		requirement{"address", p.Address != nil},
	)
	violations = append(violations, bounds("Supplier", p)...)
	return asError(violations)
}

// AddCategory validates a category create payload.
func (p *AddCategory) Validate() error {
	violations := required("Category",
		requirement{"categoryId", p.CategoryID != nil},
		requirement{"categoryName", p.CategoryName != nil},
		requirement{"description", p.Description != nil},
	)
	violations = append(violations, bounds("Category", p)...)
	return asError(violations)
}

// UpdateCategory validates a category patch; every field is optional.
func (p *UpdateCategory) Validate() error {
	return asError(bounds("Category", p))
}

type requirement struct {
	field   string
	present bool
}

func required(entity string, reqs ...requirement) []Violation {
	var violations []Violation
	for _, r := range reqs {
		if !r.present {
			violations = append(violations, Violation{
				Field:   r.field,
				Message: fmt.Sprintf("%s %s is required", entity, r.field),
			})
		}
	}
	return violations
}

// bounds runs the struct's validate tags and converts the field errors to
// violations with human-readable messages.
func bounds(entity string, payload any) []Violation {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Message: message(entity, fe),
		})
	}
	return violations
}

func message(entity string, fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s %s must be at least %s characters", entity, field, fe.Param())
	case "max":
		return fmt.Sprintf("%s %s cannot exceed %s characters", entity, field, fe.Param())
	case "len":
		return fmt.Sprintf("%s %s must be exactly %s characters", entity, field, fe.Param())
	case "gte":
		return fmt.Sprintf("Negative %s is not allowed", field)
	default:
		return fmt.Sprintf("%s %s is invalid", entity, field)
	}
}

func asError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}
