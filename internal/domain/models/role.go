package models

import "strings"

// UserRole enumerates the cooperative roles that can record an operation.
type UserRole string

const (
	RolePresidente    UserRole = "presidente"
	RoleAdministrador UserRole = "administrador"
	RoleSecretaria    UserRole = "secretaria"
	RoleTesorero      UserRole = "tesorero"
	RoleSocio         UserRole = "socio"
)

// UserRoleLabels maps roles to their display names.
var UserRoleLabels = map[UserRole]string{
	RolePresidente:    "Presidente",
	RoleAdministrador: "Administrador",
	RoleSecretaria:    "Secretaria",
	RoleTesorero:      "Tesorero",
	RoleSocio:         "Socio",
}

// Valid reports whether the role is one of the known cooperative roles.
func (r UserRole) Valid() bool {
	_, ok := UserRoleLabels[r]
	return ok
}

// RequiresPartnerName reports whether records created by the role must carry the
// partner's name. Only socios record on behalf of a named partner.
func RequiresPartnerName(role UserRole) bool {
	return role == RoleSocio
}

// NormalizePartnerName applies the role gate: the partner name is kept (trimmed)
// only when the recording role requires one, otherwise it is cleared.
func NormalizePartnerName(role UserRole, name string) string {
	if !RequiresPartnerName(role) {
		return ""
	}
	return strings.TrimSpace(name)
}
