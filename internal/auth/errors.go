package auth

import "errors"

var (
	// ErrInvalidToken возвращается при невалидном, просроченном токене
	// или токене с нераспознанной ролью. Причина намеренно не детализируется
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSign возвращается при ошибке подписи токена
	ErrSign = errors.New("auth: failed to sign token")
)
