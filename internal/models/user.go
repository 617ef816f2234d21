package models

import "time"

// User is a restaurant owner account. Accounts are created unverified and
// flip to verified exactly once, when a one-time code is confirmed.
//
// VerificationCode and VerificationCodeExpiry travel together: both set
// while a code is outstanding, both nil once the code is consumed.
type User struct {
	BaseModel

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `gorm:"not null" json:"fullName"`
	Country  string `gorm:"not null" json:"country"`

	Verified               bool       `gorm:"default:false" json:"verified"`
	VerificationCode       *string    `json:"-"`
	VerificationCodeExpiry *time.Time `json:"-"`

	Restaurants []Restaurant `gorm:"foreignKey:UserID" json:"restaurants,omitempty"`
}

// HasOutstandingCode reports whether a one-time code is currently stored.
func (u *User) HasOutstandingCode() bool {
	return u.VerificationCode != nil && u.VerificationCodeExpiry != nil
}
