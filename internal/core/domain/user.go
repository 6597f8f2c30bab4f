package domain

// User is a principal known to the billing system together with its role.
type User struct {
	UserID   string `json:"userID"` // Primary Key, the JWT subject
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// EffectiveRole is the role used for authorization; inactive users are viewers.
func (u User) EffectiveRole() Role {
	if !u.IsActive || !u.Role.Valid() {
		return RoleViewer
	}
	return u.Role
}
