package validation

import (
	"fmt"
	"strings"

	"github.com/dcastaneda/security-admin/internal"
)

type ValidatorFunc func(interface{}) *internal.FieldError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type Builder struct {
	fields []FieldValidator
}

func NewValidator() *Builder {
	return &Builder{fields: make([]FieldValidator, 0)}
}

func (b *Builder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	b.fields = append(b.fields, fv)
	return &b.fields[len(b.fields)-1]
}

// Required rejects empty strings after trimming and nil pointers. Whitespace
// only values count as empty.
func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *internal.FieldError {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return &internal.FieldError{
					Field:   fv.FieldName,
					Message: fmt.Sprintf("%s must not be empty", fv.FieldName),
					Code:    string(internal.ErrCodeRequiredField),
				}
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return &internal.FieldError{
					Field:   fv.FieldName,
					Message: fmt.Sprintf("%s must not be empty", fv.FieldName),
					Code:    string(internal.ErrCodeRequiredField),
				}
			}
		}
		return nil
	})
	return fv
}

// Reference rejects foreign key values that cannot name a row (<= 0).
func (fv *FieldValidator) Reference() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *internal.FieldError {
		if v, ok := value.(int64); ok {
			if v <= 0 {
				return &internal.FieldError{
					Field:   fv.FieldName,
					Message: fmt.Sprintf("%s must reference an existing record", fv.FieldName),
					Code:    string(internal.ErrCodeInvalidReference),
				}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *internal.FieldError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				return &internal.FieldError{
					Field:   fv.FieldName,
					Message: fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max),
					Code:    string(internal.ErrCodeValidationFailed),
				}
			}
		}
		return nil
	})
	return fv
}

// Email performs a minimal shape check; full address verification belongs to
// delivery, not storage.
func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *internal.FieldError {
		if v, ok := value.(string); ok && v != "" {
			at := strings.Index(v, "@")
			if at <= 0 || at == len(v)-1 || strings.Contains(v, " ") {
				return &internal.FieldError{
					Field:   fv.FieldName,
					Message: fmt.Sprintf("%s is not a valid email address", fv.FieldName),
					Code:    string(internal.ErrCodeInvalidEmail),
				}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator ValidatorFunc) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs every registered check and aggregates the failures into a
// single validation AppError, or returns nil when all pass.
func (b *Builder) Validate() *internal.AppError {
	var fieldErrors []internal.FieldError

	for _, field := range b.fields {
		for _, validator := range field.Validators {
			if fe := validator(field.Value); fe != nil {
				fieldErrors = append(fieldErrors, *fe)
			}
		}
	}

	if len(fieldErrors) > 0 {
		return internal.NewValidationError("validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.FieldErrors{Errors: fieldErrors})
	}
	return nil
}
