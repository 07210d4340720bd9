package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-store-locator/models"
)

// Field names accepted by [LocationValidator.Validate]. They match the JSON
// names of the location fields.
const (
	FieldStoreNumber = "storeNumber"
	FieldStoreName   = "storeName"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldState       = "state"
	FieldZipCode     = "zipCode"
	FieldHours       = "hours"
)

// requiredFields are the location fields that may never be blank.
var requiredFields = []string{
	FieldStoreNumber,
	FieldStoreName,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZipCode,
}

// hh:mm, 24-hour clock
var timeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type LocationValidator struct {
}

func NewLocationValidator() Validator {
	return &LocationValidator{}
}

func (v *LocationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Location:
		return v.validateLocation(value, fields...)
	case *models.Location:
		return v.validateLocation(*value, fields...)

	case models.CreateLocationRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateLocationRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.LocationUpdate:
		return v.validateUpdate(value, fields...)
	case *models.LocationUpdate:
		return v.validateUpdate(*value, fields...)

	case []models.StoreHours:
		return validateHours(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *LocationValidator) validateLocation(l models.Location, fields ...string) error {
	if len(fields) == 0 {
		fields = requiredFields
	}

	for _, f := range fields {
		value, ok := locationField(l, f)
		if !ok {
			return ErrUnknownField
		}
		if strings.TrimSpace(value) == "" {
			return &MissingFieldError{Field: f}
		}
	}

	return nil
}

func (v *LocationValidator) validateCreateRequest(request models.CreateLocationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = append(append([]string{}, requiredFields...), FieldHours)
	}

	for _, f := range fields {
		if f == FieldHours {
			if err := validateHours(request.Hours); err != nil {
				return err
			}
			continue
		}
		if err := v.validateLocation(request.Location, f); err != nil {
			return err
		}
	}

	return nil
}

// validateUpdate only checks the fields present in the update: a required
// field may change but never become blank.
func (v *LocationValidator) validateUpdate(update models.LocationUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = append(append([]string{}, requiredFields...), FieldHours)
	}

	for _, f := range fields {
		if f == FieldHours {
			if update.Hours != nil {
				if err := validateHours(*update.Hours); err != nil {
					return err
				}
			}
			continue
		}

		value, ok := updateField(update, f)
		if !ok {
			return ErrUnknownField
		}
		if value != nil && strings.TrimSpace(*value) == "" {
			return &MissingFieldError{Field: f}
		}
	}

	return nil
}

// validateHours checks a weekly schedule. Days are 0 (Sunday) to 6 and
// appear at most once. Closed days need no times; open days need both.
func validateHours(hours []models.StoreHours) error {
	seen := make(map[int]bool, len(hours))

	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("%w: day of week %d", ErrInvalidStoreHours, h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("%w: day of week %d given twice", ErrInvalidStoreHours, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true

		if h.IsClosed {
			continue
		}
		if h.OpenTime == nil || h.CloseTime == nil ||
			!timeOfDay.MatchString(*h.OpenTime) || !timeOfDay.MatchString(*h.CloseTime) {
			return fmt.Errorf("%w: open and close time must be HH:MM on day %d", ErrInvalidStoreHours, h.DayOfWeek)
		}
	}

	return nil
}

func locationField(l models.Location, field string) (string, bool) {
	switch field {
	case FieldStoreNumber:
		return l.StoreNumber, true
	case FieldStoreName:
		return l.StoreName, true
	case FieldAddress:
		return l.Address, true
	case FieldCity:
		return l.City, true
	case FieldState:
		return l.State, true
	case FieldZipCode:
		return l.ZipCode, true
	}
	return "", false
}

func updateField(u models.LocationUpdate, field string) (*string, bool) {
	switch field {
	case FieldStoreNumber:
		return u.StoreNumber, true
	case FieldStoreName:
		return u.StoreName, true
	case FieldAddress:
		return u.Address, true
	case FieldCity:
		return u.City, true
	case FieldState:
		return u.State, true
	case FieldZipCode:
		return u.ZipCode, true
	}
	return nil, false
}
