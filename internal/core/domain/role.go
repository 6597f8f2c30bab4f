package domain

// Role is the permission level of a user across the whole billing system.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleProjectManager  Role = "projectManager"
	RoleQC              Role = "qc"
	RoleBillingEngineer Role = "billingEngineer"
	RoleSiteEngineer    Role = "siteEngineer"
	RoleViewer          Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleQC, RoleBillingEngineer, RoleSiteEngineer, RoleViewer:
		return true
	}
	return false
}

// CanRaiseUnit reports whether the role may create bills and weekly records.
func (r Role) CanRaiseUnit() bool {
	return r == RoleAdmin || r == RoleSiteEngineer
}

func (r Role) CanApprovePM() bool {
	return r == RoleAdmin || r == RoleProjectManager
}

func (r Role) CanApproveQC() bool {
	return r == RoleAdmin || r == RoleQC
}

func (r Role) CanApproveBilling() bool {
	return r == RoleAdmin || r == RoleBillingEngineer
}

// CanRecordPayment reports whether the role may settle approved bills.
func (r Role) CanRecordPayment() bool {
	return r == RoleAdmin || r == RoleBillingEngineer
}

// CanDelete reports whether the role may invoke any destructive operation.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanManageMasterData reports whether the role may register projects and contractors.
func (r Role) CanManageMasterData() bool {
	return r == RoleAdmin || r == RoleProjectManager
}

func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}
