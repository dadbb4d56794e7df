package create_booking

import "errors"

var (
	// ErrBookingNotOpen возвращается до наступления времени открытия записи
	ErrBookingNotOpen = errors.New("create_booking: booking is not open yet")

	// ErrPastDate возвращается при попытке брони на прошедшую дату
	ErrPastDate = errors.New("create_booking: cannot book past dates")

	// ErrPastTime возвращается при попытке брони на прошедший слот сегодняшнего дня
	ErrPastTime = errors.New("create_booking: timeslot has already passed")

	// ErrInvalidInterval возвращается, когда минуты слота не кратны длительности слота
	ErrInvalidInterval = errors.New("create_booking: invalid timeslot interval")

	// ErrOutsideHours возвращается, когда слот не попадает ни в одну сессию
	ErrOutsideHours = errors.New("create_booking: timeslot is outside of booking hours")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking: timeslot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
