package models

import "time"

// User represents a platform account (student or tutor).
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role" json:"role"` // "student" or "tutor"
	FCMToken     string `bson:"fcmToken,omitempty" json:"-"`

	// Wallet fields. WalletAddress is the address on file, set once during
	// wallet linking; balance sync may only ever write to the owning record.
	WalletAddress   string    `bson:"walletAddress,omitempty" json:"walletAddress,omitempty"`
	TokenBalance    float64   `bson:"tokenBalance" json:"tokenBalance"`
	BalanceSyncedAt time.Time `bson:"balanceSyncedAt,omitempty" json:"balanceSyncedAt,omitempty"`

	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}
