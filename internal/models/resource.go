package models

import "time"

// Resource is a community-submitted link. Code is an optional secret chosen
// by the submitter to prove ownership later; it is unrelated to the admin
// secret.
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `gorm:"not null" json:"url"`
	Description string    `json:"description"`
	Code        string    `json:"code,omitempty"`
	Verified    bool      `gorm:"default:false" json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}
