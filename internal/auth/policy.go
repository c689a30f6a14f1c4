package auth

import (
	"slices"

	"absss-backend/internal/models"
)

// adminOnly capabilities are never granted through the permission list,
// including the "all" wildcard.
var adminOnly = []string{models.CapUsers}

// Authorize is the single authorization policy. Admins hold every
// capability, an empty capability is open to any authenticated account,
// and the "all" permission acts as a wildcard for everything but account
// management.
func Authorize(role string, permissions []string, capability string) bool {
	if role == models.RoleAdmin || capability == "" {
		return true
	}
	if slices.Contains(adminOnly, capability) {
		return false
	}
	if slices.Contains(permissions, models.CapAll) {
		return true
	}
	return slices.Contains(permissions, capability)
}
