// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package sec

// # Admin Roles

// Role represents the authorization level granted to a dashboard account.
type Role string

const (
	// Unrestricted access, including permanent deletes from the archive.
	RoleAdmin Role = "admin"

	// Can create and edit catalog content but not permanently delete it.
	RoleEditor Role = "editor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 20
	default:
		return 0
	}
}
