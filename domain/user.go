package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint       `gorm:"primaryKey"`
	FullName  string     `gorm:"column:full_name;not null"`
	Email     string     `gorm:"column:email;unique;not null"`
	Password  string     `gorm:"column:password;not null"`
	Role      string     `gorm:"column:role;default:member"`
	Interests StringList `gorm:"column:interests;type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile is the per-user learned state driving recommendations.
// AverageVideo and TotalRatings are written only on rating events,
// VideosSeen only after a recommendation call.
type UserProfile struct {
	UserID       uint              `gorm:"column:user_id;primaryKey" json:"user_id"`
	AverageVideo FeatureEmbeddings `gorm:"column:average_video;type:jsonb" json:"average_video"`
	TotalRatings float64           `gorm:"column:total_ratings;default:0" json:"total_ratings"`
	TotalVideos  int               `gorm:"column:total_videos;default:0" json:"total_videos"`
	VideosSeen   StringList        `gorm:"column:videos_seen;type:jsonb" json:"videos_seen"`
	CreatedAt    time.Time         `json:"-"`
	UpdatedAt    time.Time         `json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// NewUserProfile returns the empty profile created at registration:
// no ratings absorbed, nothing seen.
func NewUserProfile(userID uint) UserProfile {
	return UserProfile{
		UserID: userID,
		AverageVideo: FeatureEmbeddings{
			FeatureTitle:        {},
			FeatureDescription:  {},
			FeatureChannelTitle: {},
			FeatureCategory:     {},
		},
		VideosSeen: StringList{},
	}
}
