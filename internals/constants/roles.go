package constants

import "fmt"

// Roles follow the users.role column
const (
	RoleSuperuser  = "SUPERUSER"
	RoleEduCenter  = "EDU_CENTER"
	RoleBranch     = "BRANCH"
	RoleStudent    = "STUDENT"
	RoleAccountant = "ACCOUNTANT"
)

// Role error message templates
const (
	ErrOnlySuperuserCanAccess  = "❌ Only a superuser may access %s."
	ErrOnlyCenterAdminsAccess  = "❌ Only education center or branch admins may access %s."
	ErrOnlyAccountantCanAccess = "❌ Only an accountant may access %s."
	ErrOnlyEduCenterCanAccess  = "❌ Only an education center owner may access %s."
)

func RoleErrorSuperuser(feature string) string {
	return fmt.Sprintf(ErrOnlySuperuserCanAccess, feature)
}

func RoleErrorCenterAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyCenterAdminsAccess, feature)
}

func RoleErrorAccountant(feature string) string {
	return fmt.Sprintf(ErrOnlyAccountantCanAccess, feature)
}

func RoleErrorEduCenter(feature string) string {
	return fmt.Sprintf(ErrOnlyEduCenterCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperuser,
		RoleEduCenter,
		RoleBranch,
		RoleStudent,
		RoleAccountant,
	}

	CenterAdminRoles = []string{
		RoleEduCenter,
		RoleBranch,
	}

	SuperuserOnly = []string{
		RoleSuperuser,
	}

	AccountantOnly = []string{
		RoleAccountant,
	}

	EduCenterOnly = []string{
		RoleEduCenter,
	}
)
