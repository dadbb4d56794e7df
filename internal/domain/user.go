package domain

import "regexp"

// Телефон: опциональный '+' и 10-15 цифр
var phoneNumberRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// User represents a clinic client who owns bookings
type User struct {
	ID          int64
	Name        string
	PhoneNumber string
}

// ValidPhoneNumber проверяет формат номера телефона
func ValidPhoneNumber(phone string) bool {
	return phoneNumberRe.MatchString(phone)
}
