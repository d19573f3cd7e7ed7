package domain

import "time"

// Recommendation is one ranked entry returned to the client.
type Recommendation struct {
	VideoID string  `json:"video_id"`
	Score   float64 `json:"score"`
}

// Rating is the persisted log of one rating event. Weight is the
// midpoint-centered value actually absorbed into the profile.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	VideoID   string    `gorm:"column:video_id;not null" json:"video_id"`
	Rating    float64   `gorm:"column:rating;not null" json:"rating"`
	Weight    float64   `gorm:"column:weight;not null" json:"weight"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

// QueueItem is one entry in a user's watch queue.
type QueueItem struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	VideoID   string    `gorm:"column:video_id;not null" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QueueItem) TableName() string {
	return "watch_queue"
}
