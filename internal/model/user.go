package model

import "time"

// User represents an authenticated account in the system. Emails are
// stored lowercase; uniqueness is enforced by the database index.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name" gorm:"size:255;not null;check:chk_users_full_name_not_blank,TRIM(full_name) <> ''"`
	Role         string    `json:"role" gorm:"size:50;not null;default:'buyer'"` // free-form: buyer/seller/agent
	CreatedAt    time.Time `json:"created_at"`
}
