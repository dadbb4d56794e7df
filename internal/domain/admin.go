package domain

// Role роль административного пользователя
// Закрытое перечисление: только admin и superadmin
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// IsValid возвращает true для распознанной роли
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole парсит строку в Role
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// Admin административный пользователь (роль admin или superadmin)
// Хранится в отдельных таблицах admins / super_admins
type Admin struct {
	ID             int64
	Username       string
	HashedPassword string
}
