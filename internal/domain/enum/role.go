package enum

// Role decides what a signed-in user may do
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}
