package types

import (
	"errors"
	"fmt"
	"time"
)

// Format формат времени HH:MM (24-часовой)
const Format = "15:04"

var errInvalidFormat = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM"
// Используется для временных слотов вместо time.Time, чтобы не тащить дату и таймзону
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Format))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidFormat, s)
	}
	return NewTimeString(t), nil
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(Format, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", errInvalidFormat, string(ts))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// Hour возвращает часовую компоненту
func (ts TimeString) Hour() int {
	t, err := time.Parse(Format, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()
}

// Minute возвращает минутную компоненту
func (ts TimeString) Minute() int {
	t, err := time.Parse(Format, string(ts))
	if err != nil {
		return 0
	}
	return t.Minute()
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ошибку при выходе за пределы суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(Format, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidFormat, string(ts))
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", ts, minutes)
	}

	return NewTimeString(shifted), nil
}

// Format12Hour возвращает представление в 12-часовом формате, например "10:05 AM"
// Используется в текстах SMS-напоминаний
func (ts TimeString) Format12Hour() string {
	t, err := time.Parse(Format, string(ts))
	if err != nil {
		return string(ts)
	}
	return t.Format("03:04 PM")
}
