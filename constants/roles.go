package constants

// Account roles
const (
	RoleUser  = 0
	RoleChef  = 1
	RoleAdmin = 2
)
