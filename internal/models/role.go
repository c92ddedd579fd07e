// Package models содержит доменные структуры CareConnect: пользователей и их роли,
// подопечных и доноров, добавленных администратором, пожертвования и выплаты,
// а также модели представлений для дашбордов.
package models

import "fmt"

// Role: закрытое перечисление ролей пользователя. Роль фиксируется при регистрации.
type Role string

const (
	// RoleDonor: донор, вносит пожертвования.
	RoleDonor Role = "donor"
	// RoleSenior: пожилой человек, получатель выплат.
	RoleSenior Role = "senior"
	// RoleSpecial: человек с особыми потребностями, получатель выплат.
	RoleSpecial Role = "special"
	// RoleAdmin: администратор.
	RoleAdmin Role = "admin"
)

// ParseRole разбирает строку в Role. Неизвестное значение: ошибка валидации.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleDonor, RoleSenior, RoleSpecial, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// SelfRegistrable сообщает, можно ли выбрать роль при самостоятельной регистрации.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleDonor, RoleSenior, RoleSpecial:
		return true
	case RoleAdmin:
		return false
	}
	return false
}

// BeneficiaryKind возвращает вид подопечного для ролей senior и special.
func (r Role) BeneficiaryKind() (BeneficiaryKind, bool) {
	switch r {
	case RoleSenior:
		return KindSenior, true
	case RoleSpecial:
		return KindSpecial, true
	case RoleDonor, RoleAdmin:
		return "", false
	}
	return "", false
}

// In проверяет, входит ли роль в набор.
func (r Role) In(roles ...Role) bool {
	for _, v := range roles {
		if r == v {
			return true
		}
	}
	return false
}
