package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
)

// Supervisor is a console account. Labourers never log in; supervisors run
// attendance, loans and settlements on their behalf.
type Supervisor struct {
	ID              string
	FullName        string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Supervisor) IsAdmin() bool {
	return s.Role == RoleAdmin
}
