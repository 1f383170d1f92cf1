package model

import "time"

// Event is a single calendar entry owned by one user. Date and the two
// time fields are kept as strings ("2024-01-02", "09:30") so ordering and
// comparison match the values the client sent.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Date        string    `gorm:"size:32;not null" json:"date"`
	StartTime   string    `gorm:"size:32;not null" json:"startTime"`
	EndTime     string    `gorm:"size:32;not null" json:"endTime"`
	Image       string    `json:"image,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
