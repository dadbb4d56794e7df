package scheduling

import "errors"

var (
	// ErrBookingNotOpen возвращается до наступления времени открытия записи
	ErrBookingNotOpen = errors.New("scheduling: booking is not open yet")

	// ErrPastDate возвращается при попытке брони на прошедшую дату
	ErrPastDate = errors.New("scheduling: cannot book past dates")

	// ErrPastTime возвращается при попытке брони на прошедший слот сегодняшнего дня
	ErrPastTime = errors.New("scheduling: timeslot has already passed")

	// ErrInvalidInterval возвращается, когда минуты слота не кратны длительности слота
	ErrInvalidInterval = errors.New("scheduling: timeslot is not aligned to slot duration")

	// ErrOutsideSessions возвращается, когда слот не попадает ни в одну сессию
	ErrOutsideSessions = errors.New("scheduling: timeslot is outside of booking hours")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("scheduling: slot is already booked")

	// ErrNoSession возвращается, когда классификатор не нашел сессию уже после
	// успешной валидации. Это ошибка консистентности сервера, а не пользователя
	ErrNoSession = errors.New("scheduling: no session for validated timeslot")

	// ErrInternal возвращается при внутренних ошибках аллокации
	ErrInternal = errors.New("scheduling: internal error")
)
