package auth

import "schoolhub_backend/internal/models"

// Capability names an operation a role is allowed to perform. Checks happen
// at the HTTP boundary; client-supplied role claims are never trusted for
// access decisions, only the role inside a verified token.
type Capability string

const (
	CapUsersManage   Capability = "users:manage"
	CapEventsWrite   Capability = "events:write"
	CapNotifAnnounce Capability = "notifications:announce"
	CapSchemaInit    Capability = "schema:init"
)

var adminCapabilities = []Capability{
	CapUsersManage, CapEventsWrite, CapNotifAnnounce, CapSchemaInit,
}

// Capabilities maps each role to its allowed operations. Roles absent from
// the map hold no capabilities beyond their own profile.
var Capabilities = map[models.UserRole][]Capability{
	models.UserRoleAdmin:       adminCapabilities,
	models.UserRoleSuperAdmin:  adminCapabilities,
	models.UserRolePrincipal:   {CapUsersManage, CapEventsWrite, CapNotifAnnounce},
	models.UserRoleSchoolAdmin: {CapUsersManage, CapEventsWrite, CapNotifAnnounce},
	models.UserRoleTeacher:     {CapEventsWrite},
	models.UserRoleClub:        {CapEventsWrite},
	models.UserRoleAdmission:   {CapUsersManage},
}

// HasCapability reports whether the role may perform the operation.
func HasCapability(role models.UserRole, capability Capability) bool {
	for _, c := range Capabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// CanPerformAction checks token claims against a capability.
func CanPerformAction(claims *Claims, capability Capability) bool {
	return HasCapability(models.UserRole(claims.Role), capability)
}
