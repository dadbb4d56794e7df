package create_booking_with_user

import "errors"

var (
	// ErrBookingNotOpen возвращается до наступления времени открытия записи
	ErrBookingNotOpen = errors.New("create_booking_with_user: booking is not open yet")

	// ErrPastDate возвращается при попытке брони на прошедшую дату
	ErrPastDate = errors.New("create_booking_with_user: cannot book past dates")

	// ErrPastTime возвращается при попытке брони на прошедший слот сегодняшнего дня
	ErrPastTime = errors.New("create_booking_with_user: timeslot has already passed")

	// ErrInvalidInterval возвращается, когда минуты слота не кратны длительности слота
	ErrInvalidInterval = errors.New("create_booking_with_user: invalid timeslot interval")

	// ErrOutsideHours возвращается, когда слот не попадает ни в одну сессию
	ErrOutsideHours = errors.New("create_booking_with_user: timeslot is outside of booking hours")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking_with_user: timeslot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking_with_user: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking_with_user: internal error")
)
