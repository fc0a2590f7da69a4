package constants

// User roles carried in JWT claims
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleFinance = "finance"
	RoleStaff   = "staff"
)
