package models

import (
	"time"
)

// Post represents a blog entry authored by the administrator.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"unique;not null" json:"title"`
	Subtitle string `gorm:"not null" json:"subtitle"`
	// Date is the display date, fixed at creation and never touched by edits.
	Date      string    `gorm:"not null" json:"date"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ImageURL  string    `json:"image_url"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateLayout is the display format for Post.Date.
const DateLayout = "January 2, 2006"
