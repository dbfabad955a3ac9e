package entities

type Role string

const (
	RolePatient    Role = "patient"
	RolePharmacy   Role = "pharmacy"
	RoleDispatcher Role = "dispatcher"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

// legacyDriverRole - старое имя роли водителя, встречается в токенах
// выданных до миграции. Нормализуем только на границе парсинга.
const legacyDriverRole = "delivery_person"

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RolePharmacy, RoleDispatcher, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseRole(raw string) (Role, bool) {
	if raw == legacyDriverRole {
		return RoleDriver, true
	}

	role := Role(raw)
	if !role.IsValid() {
		return "", false
	}
	return role, true
}

type Actor struct {
	ID   int64
	Role Role
}
