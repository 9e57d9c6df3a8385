package enum

// Role identifies what a user is allowed to do. The system has exactly two
// roles: ADMIN manages the catalog, cashiers, reports and settings; CAIXA
// only operates the sales screen.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCashier Role = "CAIXA"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}
