package scheduling

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Rules неизменяемые правила бронирования из конфигурации
type Rules struct {
	// OpenTime ежедневное время открытия записи: до него любые брони отклоняются
	OpenTime types.TimeString
	// SlotDurationMinutes шаг сетки слотов, минуты слота должны быть ему кратны
	SlotDurationMinutes int
	// Schedule сессии дня
	Schedule domain.Schedule
}

// Validator проверяет запрошенный слот по фиксированной цепочке правил
// Без побочных эффектов: зависит только от правил и переданного текущего времени
type Validator struct {
	rules Rules
}

// NewValidator создает валидатор слотов
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidateSlot прогоняет цепочку проверок в строгом порядке и возвращает
// имя сессии слота. Порядок важен для специфичности ошибок пользователю:
//  1. запись на сегодня уже открыта (глобальный гейт, не зависит от запрошенной даты)
//  2. дата не в прошлом
//  3. для сегодняшней даты слот не в прошлом
//  4. минуты слота кратны длительности слота
//  5. слот попадает в одну из сессий
func (v *Validator) ValidateSlot(date time.Time, timeslot types.TimeString, now time.Time) (string, error) {
	nowTime := types.NewTimeString(now)

	if nowTime.IsBefore(v.rules.OpenTime) {
		return "", ErrBookingNotOpen
	}

	if dateOnly(date).Before(dateOnly(now)) {
		return "", ErrPastDate
	}

	if sameDay(date, now) && timeslot.IsBefore(nowTime) {
		return "", ErrPastTime
	}

	if timeslot.Minute()%v.rules.SlotDurationMinutes != 0 {
		return "", ErrInvalidInterval
	}

	session, ok := v.rules.Schedule.Classify(timeslot)
	if !ok {
		return "", ErrOutsideSessions
	}

	return session, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
