package admins

import "errors"

var (
	// ErrInvalidCredentials возвращается при любой неудаче аутентификации
	// Причина (нет пользователя / неверный пароль) намеренно не раскрывается
	ErrInvalidCredentials = errors.New("admins: invalid credentials")

	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("admins: username already registered")

	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admins: admin not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admins: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admins: internal error")
)
