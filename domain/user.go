package domain

import "time"

// User is an account within a tenant. The password hash is never exposed
// through any externally-visible representation.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	RoleID       string    `bson:"role_id,omitempty" json:"roleId,omitempty"`
	TenantID     string    `bson:"tenant_id,omitempty" json:"tenantId,omitempty"`
	IsVerified   bool      `bson:"is_verified" json:"isVerified"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	LoginAttempt int       `bson:"login_attempt,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Tenant is an organization that owns users and their design assets.
type Tenant struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Role names a permission bundle assigned to users. Permission evaluation
// itself lives outside this module.
type Role struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
