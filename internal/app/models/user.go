package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"resident@ibookee.co.kr"`
	Password    string     `json:"-" db:"password"` // Hashed; excluded from JSON
	Name        string     `json:"name" db:"name" example:"김하늘"`
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"USER"`
	Provider    *string    `json:"provider,omitempty" db:"provider" example:"kakao"`
	ProviderID  *string    `json:"-" db:"provider_id"`
	IsVerified  bool       `json:"isVerified" db:"is_verified" example:"true"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// RefreshToken is an opaque token persisted per login session.
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
