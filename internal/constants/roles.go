package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the login roles of the operations portal.
type Role string

const (
	RoleChief  Role = "chief"
	RoleAtsep  Role = "atsep"
	RoleClient Role = "client"
)

// String makes Role convenient for fmt and logs.
func (r Role) String() string { return string(r) }

// DisplayName returns the portal-facing label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleChief:
		return "Chief of Unit"
	case RoleAtsep:
		return "ATSEP"
	case RoleClient:
		return "Client"
	}
	return string(r)
}

// ParseRole maps either the short form or the portal label to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "chief", "Chief of Unit":
		return RoleChief, nil
	case "atsep", "ATSEP":
		return RoleAtsep, nil
	case "client", "Client":
		return RoleClient, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

/* ---------- DB adapters so database/sql scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
