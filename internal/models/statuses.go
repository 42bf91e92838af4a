package models

type UserRole string
type UserStatus string
type NotificationType string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleSuperAdmin  UserRole = "super-admin"
	UserRolePrincipal   UserRole = "principal"
	UserRoleSchoolAdmin UserRole = "school-admin"
	UserRoleTeacher     UserRole = "teacher"
	UserRoleStudent     UserRole = "student"
	UserRoleParent      UserRole = "parent"
	UserRoleFinancial   UserRole = "financial"
	UserRoleLibrary     UserRole = "library"
	UserRoleLabs        UserRole = "labs"
	UserRoleAdmission   UserRole = "admission"
	UserRoleClub        UserRole = "club"

	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"

	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeSuccess NotificationType = "success"
)

// AllRoles is the closed role set accepted by the users table CHECK
// constraint. Keep in sync with database.Initialize.
var AllRoles = []UserRole{
	UserRoleAdmin, UserRoleSuperAdmin, UserRolePrincipal, UserRoleSchoolAdmin,
	UserRoleTeacher, UserRoleStudent, UserRoleParent, UserRoleFinancial,
	UserRoleLibrary, UserRoleLabs, UserRoleAdmission, UserRoleClub,
}

func ValidRole(role UserRole) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func ValidStatus(status UserStatus) bool {
	switch status {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeError, NotificationTypeSuccess:
		return true
	}
	return false
}
