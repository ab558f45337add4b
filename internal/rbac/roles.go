package rbac

// Role represents a principal category from the closed backend role set.
type Role string

const (
	RoleAdmin            Role = "admin"             // Full control, including settings
	RoleWarehouseManager Role = "warehouse_manager" // Inventory, procurement, sales, reports
	RoleTeamLead         Role = "team_lead"         // Inventory items and distribution
	RoleApprover         Role = "approver"          // Procurement requests
)

// RoleUnknown is returned by ParseRole for any string outside the closed set.
// It matches no required-role set, so an unrecognized role sees nothing.
const RoleUnknown Role = ""

// allRoles is the closed set of recognized roles.
var allRoles = map[Role]struct{}{
	RoleAdmin:            {},
	RoleWarehouseManager: {},
	RoleTeamLead:         {},
	RoleApprover:         {},
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole maps a backend role string onto the closed set.
// Unknown strings map to RoleUnknown: role checks fail closed rather
// than granting a future or misspelled role accidental visibility.
func ParseRole(s string) Role {
	r := Role(s)
	if !r.Valid() {
		return RoleUnknown
	}
	return r
}

// Roles returns all recognized roles, for display and validation.
func Roles() []Role {
	return []Role{RoleAdmin, RoleWarehouseManager, RoleTeamLead, RoleApprover}
}
