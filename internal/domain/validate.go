package domain

import (
	"regexp"
	"sort"
	"strings"
)

// FieldErrors ошибки валидации, привязанные к конкретным полям
// Сериализуются в HTTP ответ как объект {field: message}, чтобы UI мог
// подсветить конкретное поле формы
type FieldErrors map[string]string

// Error реализует error; поля перечисляются в детерминированном порядке
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateBookingFields проверяет обязательные поля бронирования
// Запускается при создании и при полном редактировании записи; узкие операции
// (cancel/reschedule/complete) валидируют только собственные входные данные
func ValidateBookingFields(b *Booking) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(b.Company) == "" {
		errs["company"] = "company is required"
	}
	if strings.TrimSpace(b.ContactName) == "" {
		errs["contactName"] = "contact name is required"
	}

	email := strings.TrimSpace(b.ContactEmail)
	if email == "" {
		errs["contactEmail"] = "contact email is required"
	} else if !emailPattern.MatchString(email) {
		errs["contactEmail"] = "contact email is not a valid email address"
	}

	if strings.TrimSpace(b.ContactPhone) == "" {
		errs["contactPhone"] = "contact phone is required"
	}

	if b.Date.IsZero() {
		errs["date"] = "date is required"
	}

	if b.Time.IsZero() {
		errs["time"] = "time is required"
	} else if err := b.Time.Validate(); err != nil {
		errs["time"] = "time must be in HH:MM format"
	} else if !IsOnSlotGrid(b.Time) {
		errs["time"] = "time must align to the 08:00-17:00 half-hour slot grid"
	}

	if b.Purpose == "" {
		errs["purpose"] = "purpose is required"
	} else if !contains(ValidPurposes, b.Purpose) {
		errs["purpose"] = "purpose is not in the list of allowed values"
	}

	if b.Location == "" {
		errs["location"] = "location is required"
	} else if !contains(ValidLocations, b.Location) {
		errs["location"] = "location is not in the list of allowed values"
	}

	if b.Product == "" {
		errs["product"] = "product is required"
	} else if !contains(ValidProducts, b.Product) {
		errs["product"] = "product is not in the list of allowed values"
	}

	if b.AdditionalInfo != nil && len(*b.AdditionalInfo) > MaxAdditionalInfoLength {
		errs["additionalInfo"] = "additional info is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
