package models

import "time"

// Role is an authorization role resolved from the users collection.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsAdmin reports whether the role grants admin access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User maps an authentication identity to a role. Documents are keyed by the
// Firebase Auth UID and provisioned out-of-band; this system only reads them.
type User struct {
	ID        string    `json:"id" firestore:"-"` // Firebase Auth UID
	Email     string    `json:"email" firestore:"email"`
	Role      Role      `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func UserFromDoc(id string, data map[string]interface{}) *User {
	role := Role(asString(data["role"]))
	if role != RoleAdmin {
		role = RoleUser
	}
	return &User{
		ID:        id,
		Email:     asString(data["email"]),
		Role:      role,
		CreatedAt: asTime(data["createdAt"]),
	}
}
