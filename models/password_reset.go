package models

import "time"

// PasswordReset is a single-use ticket backing the reset-link flow. A ticket
// is consumed at most once and rejected after its expiry.
type PasswordReset struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ResetToken string    `gorm:"size:500;not null;index" json:"-"`
	Expiry     time.Time `gorm:"not null" json:"expiry"`
	Used       bool      `gorm:"default:false;not null" json:"used"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
}
