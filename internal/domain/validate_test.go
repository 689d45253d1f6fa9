package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

func validBooking() *Booking {
	return &Booking{
		Date:         date(2025, 11, 3),
		Time:         types.TimeString("10:00"),
		Company:      "Aqua Systems LLC",
		ContactName:  "Ivan Petrov",
		ContactEmail: "ivan.petrov@aquasystems.ru",
		ContactPhone: "+7 900 123-45-67",
		Purpose:      "consultation",
		Location:     "office",
		Product:      "water_treatment",
		Status:       StatusPending,
	}
}

func TestValidateBookingFields_Valid(t *testing.T) {
	assert.Nil(t, ValidateBookingFields(validBooking()))
}

func TestValidateBookingFields_RequiredFields(t *testing.T) {
	b := &Booking{}
	errs := ValidateBookingFields(b)
	require.NotNil(t, errs)

	for _, field := range []string{
		"company", "contactName", "contactEmail", "contactPhone",
		"date", "time", "purpose", "location", "product",
	} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateBookingFields_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.org", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"user@nodot", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			b := validBooking()
			b.ContactEmail = tt.email
			errs := ValidateBookingFields(b)
			if tt.valid {
				assert.NotContains(t, errs, "contactEmail")
			} else {
				assert.Contains(t, errs, "contactEmail")
			}
		})
	}
}

func TestValidateBookingFields_TimeOnGrid(t *testing.T) {
	b := validBooking()
	b.Time = types.TimeString("10:15")

	errs := ValidateBookingFields(b)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "time")
}

func TestValidateBookingFields_ClosedLists(t *testing.T) {
	b := validBooking()
	b.Purpose = "coffee"
	b.Location = "moon"
	b.Product = "rockets"

	errs := ValidateBookingFields(b)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "purpose")
	assert.Contains(t, errs, "location")
	assert.Contains(t, errs, "product")
}

func TestValidateBookingFields_AdditionalInfoTooLong(t *testing.T) {
	tooLong := strings.Repeat("x", MaxAdditionalInfoLength+1)
	b := validBooking()
	b.AdditionalInfo = &tooLong

	errs := ValidateBookingFields(b)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "additionalInfo")
}

func TestFieldErrors_ErrorDeterministicOrder(t *testing.T) {
	errs := FieldErrors{
		"time":    "time is required",
		"company": "company is required",
		"date":    "date is required",
	}

	want := "validation failed: company: company is required; date: date is required; time: time is required"
	assert.Equal(t, want, errs.Error())
}

func TestFieldErrors_Empty(t *testing.T) {
	assert.Equal(t, "validation failed", FieldErrors{}.Error())
}
