package domain

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Booking represents a reserved timeslot within a daily session
//
// OrderNumber — порядковый номер по порядку создания брони в рамках (date, session),
// никогда не пересчитывается. TurnNumber — номер очереди по хронологии слота
// в рамках (date, session), пересчитывается при каждой вставке и образует
// плотную последовательность 1..K
type Booking struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Timeslot    types.TimeString
	Session     string
	OrderNumber int
	TurnNumber  int

	// Владелец брони, заполняется join-ом в репозитории
	User *User

	CreatedAt time.Time
}

// SameSlot возвращает true, если бронь занимает указанный слот
func (b *Booking) SameSlot(date time.Time, timeslot types.TimeString) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 && b.Timeslot == timeslot
}
