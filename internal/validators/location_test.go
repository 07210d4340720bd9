// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-store-locator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

func validLocation() models.Location {
	return models.Location{
		StoreNumber: "101",
		StoreName:   "Main St",
		Address:     "1 Main St",
		City:        "Austin",
		State:       "TX",
		ZipCode:     "78701",
	}
}

func openDay(day int, open, closeAt string) models.StoreHours {
	return models.StoreHours{DayOfWeek: day, OpenTime: strPtr(open), CloseTime: strPtr(closeAt)}
}

func missingField(t *testing.T, err error) string {
	t.Helper()
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing), "expected MissingFieldError, got %v", err)
	return missing.Field
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNewLocationValidator(t *testing.T) {
	v := NewLocationValidator()
	require.NotNil(t, v)
	_, ok := v.(*LocationValidator)
	assert.True(t, ok)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewLocationValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "location"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_PointerAndValue(t *testing.T) {
	v := NewLocationValidator()
	l := validLocation()

	assert.NoError(t, v.Validate(context.Background(), l))
	assert.NoError(t, v.Validate(context.Background(), &l))
}

// ---------------------------------------------------------------------------
// Location
// ---------------------------------------------------------------------------

func TestValidate_Location_RequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(l *models.Location)
	}{
		{FieldStoreNumber, func(l *models.Location) { l.StoreNumber = "" }},
		{FieldStoreName, func(l *models.Location) { l.StoreName = "   " }},
		{FieldAddress, func(l *models.Location) { l.Address = "" }},
		{FieldCity, func(l *models.Location) { l.City = "\t" }},
		{FieldState, func(l *models.Location) { l.State = "" }},
		{FieldZipCode, func(l *models.Location) { l.ZipCode = "" }},
	}

	v := NewLocationValidator()
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			l := validLocation()
			tt.mutate(&l)

			err := v.Validate(context.Background(), l)
			require.ErrorIs(t, err, ErrMissingRequiredField)
			assert.Equal(t, tt.field, missingField(t, err))
		})
	}
}

func TestValidate_Location_FieldScoping(t *testing.T) {
	v := NewLocationValidator()
	l := validLocation()
	l.City = ""

	assert.NoError(t, v.Validate(context.Background(), l, FieldStoreName))
	assert.ErrorIs(t, v.Validate(context.Background(), l, FieldCity), ErrMissingRequiredField)
	assert.ErrorIs(t, v.Validate(context.Background(), l, "phoneNumber"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CreateLocationRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateRequest(t *testing.T) {
	v := NewLocationValidator()

	request := models.CreateLocationRequest{
		Location: validLocation(),
		Hours: []models.StoreHours{
			openDay(1, "06:00", "22:00"),
			{DayOfWeek: 0, IsClosed: true},
		},
	}
	assert.NoError(t, v.Validate(context.Background(), request))

	request.Hours = append(request.Hours, openDay(2, "6am", "10pm"))
	assert.ErrorIs(t, v.Validate(context.Background(), &request), ErrInvalidStoreHours)

	request.Location.StoreName = ""
	err := v.Validate(context.Background(), request)
	assert.ErrorIs(t, err, ErrMissingRequiredField, "required fields are checked before hours")
}

// ---------------------------------------------------------------------------
// LocationUpdate
// ---------------------------------------------------------------------------

func TestValidate_Update(t *testing.T) {
	v := NewLocationValidator()

	tests := []struct {
		name      string
		update    models.LocationUpdate
		wantErr   error
		wantField string
	}{
		{
			name:   "empty update",
			update: models.LocationUpdate{ID: "loc-1"},
		},
		{
			name:   "changed required field",
			update: models.LocationUpdate{ID: "loc-1", StoreName: strPtr("New name")},
		},
		{
			name:      "blanked required field",
			update:    models.LocationUpdate{ID: "loc-1", ZipCode: strPtr("  ")},
			wantErr:   ErrMissingRequiredField,
			wantField: FieldZipCode,
		},
		{
			name:   "optional field cleared",
			update: models.LocationUpdate{ID: "loc-1", PhoneNumber: strPtr("")},
		},
		{
			name: "valid hours",
			update: models.LocationUpdate{ID: "loc-1", Hours: &[]models.StoreHours{
				openDay(3, "09:00", "17:30"),
			}},
		},
		{
			name: "hours with bad day",
			update: models.LocationUpdate{ID: "loc-1", Hours: &[]models.StoreHours{
				openDay(7, "09:00", "17:30"),
			}},
			wantErr: ErrInvalidStoreHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, missingField(t, err))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Hours
// ---------------------------------------------------------------------------

func TestValidate_Hours(t *testing.T) {
	tests := []struct {
		name    string
		hours   []models.StoreHours
		wantErr bool
	}{
		{name: "empty schedule", hours: nil},
		{name: "full week", hours: []models.StoreHours{
			openDay(0, "10:00", "18:00"),
			openDay(1, "06:00", "22:00"),
			openDay(2, "06:00", "22:00"),
			openDay(3, "06:00", "22:00"),
			openDay(4, "06:00", "22:00"),
			openDay(5, "06:00", "23:59"),
			{DayOfWeek: 6, IsClosed: true},
		}},
		{name: "closed day with leftover times", hours: []models.StoreHours{
			{DayOfWeek: 0, IsClosed: true, OpenTime: strPtr("garbage")},
		}},
		{name: "negative day", hours: []models.StoreHours{openDay(-1, "06:00", "22:00")}, wantErr: true},
		{name: "duplicate day", hours: []models.StoreHours{
			openDay(2, "06:00", "22:00"),
			openDay(2, "07:00", "21:00"),
		}, wantErr: true},
		{name: "missing close time", hours: []models.StoreHours{
			{DayOfWeek: 1, OpenTime: strPtr("06:00")},
		}, wantErr: true},
		{name: "hour out of range", hours: []models.StoreHours{openDay(1, "24:00", "22:00")}, wantErr: true},
		{name: "single digit hour", hours: []models.StoreHours{openDay(1, "6:00", "22:00")}, wantErr: true},
	}

	v := NewLocationValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.hours)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStoreHours)
				return
			}
			assert.NoError(t, err)
		})
	}
}
