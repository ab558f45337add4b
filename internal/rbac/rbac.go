// Package rbac decides which navigation sections and actions a user's role
// may see. The policy lives in a single static table (nav.go); every check
// goes through CanSee so the rules are testable in one place.
package rbac

// CanSee reports whether a role may see a target gated by the required set.
//
// Fail-closed semantics: an unknown or absent role never matches, an empty
// required set means "nobody", and required entries outside the closed role
// set are ignored rather than matched.
func CanSee(role Role, required []Role) bool {
	if !role.Valid() {
		return false
	}
	for _, want := range required {
		if !want.Valid() {
			continue
		}
		if role == want {
			return true
		}
	}
	return false
}
