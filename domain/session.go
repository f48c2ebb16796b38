package domain

import "time"

// Session represents one authenticated browser/device session for a user,
// from login until logout (or still open). Sessions are never physically
// deleted by the application; retention is an operational concern.
type Session struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	UserID         string     `bson:"user_id" json:"userId"`
	LoginTime      time.Time  `bson:"login_time" json:"loginTime"`
	LogoutTime     *time.Time `bson:"logout_time,omitempty" json:"logoutTime,omitempty"`
	ExpiresAt      *time.Time `bson:"expires_at,omitempty" json:"expiresAt,omitempty"`
	IsActive       bool       `bson:"is_active" json:"isActive"`
	KeepMeLoggedIn bool       `bson:"keep_me_logged_in" json:"keepMeLoggedIn"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
}

// SessionFilter narrows ListSessionsByUserID results.
type SessionFilter struct {
	FromDate time.Time
	ToDate   time.Time
	// ActiveOnly selects sessions that have no logout time yet.
	ActiveOnly bool
}
