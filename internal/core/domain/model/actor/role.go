package actor

import (
	"shipping/internal/pkg/errs"
)

// Role defines what a caller is allowed to do.
type Role int

const (
	RoleUnknown Role = iota
	Admin
	Customer
	DeliveryAgent
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		Admin:         "Admin",
		Customer:      "Customer",
		DeliveryAgent: "DeliveryAgent",
	}
}

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		Admin:         "Admin",
		Customer:      "Customer",
		DeliveryAgent: "DeliveryAgent",
	}
}

func (r Role) Validate() error {
	_, ok := getValidRoleStrings()[r]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", errs.NewValueIsInvalidError(r.String()))
	}
	return nil
}

func (r Role) String() string {
	s, ok := getRoleStrings()[r]
	if !ok {
		return getRoleStrings()[RoleUnknown]
	}
	return s
}

// RoleFromString parses a role name as it appears on the wire.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if s == str {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", errs.NewValueIsInvalidError(s))
}
