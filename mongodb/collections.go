package mongodb

const (
	SessionsCollection = "sessions"
	UsersCollection    = "users"
	TenantsCollection  = "tenants"
	RolesCollection    = "roles"
)
