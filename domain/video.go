package domain

import "time"

// Video is an immutable catalog entry created at ingestion time. The
// engine never mutates it.
type Video struct {
	ID              uint       `gorm:"primaryKey" json:"-"`
	VideoID         string     `gorm:"column:video_id;unique;not null" json:"video_id"`
	Title           string     `gorm:"column:title" json:"title"`
	Description     string     `gorm:"column:description" json:"description"`
	ChannelTitle    string     `gorm:"column:channel_title" json:"channel_title"`
	ChannelID       string     `gorm:"column:channel_id" json:"channel_id"`
	Category        string     `gorm:"column:category" json:"category"`
	Tags            StringList `gorm:"column:tags;type:jsonb" json:"tags"`
	ThumbnailURL    string     `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	DurationSeconds int        `gorm:"column:duration_seconds;not null" json:"duration_seconds"`
	PublishedAt     string     `gorm:"column:published_at" json:"published_at"`

	TitleEmbedding        Vector `gorm:"column:title_embedding;type:jsonb" json:"-"`
	DescriptionEmbedding  Vector `gorm:"column:description_embedding;type:jsonb" json:"-"`
	ChannelTitleEmbedding Vector `gorm:"column:channel_title_embedding;type:jsonb" json:"-"`
	TagsEmbedding         Vector `gorm:"column:tags_embedding;type:jsonb" json:"-"`
	CategoryEmbedding     Vector `gorm:"column:category_embedding;type:jsonb" json:"-"`

	CreatedAt time.Time `json:"-"`
}

func (Video) TableName() string {
	return "videos"
}

// FeatureEmbedding returns the named feature vector, empty when the
// video carries no usable metadata for that feature.
func (v Video) FeatureEmbedding(name string) Vector {
	switch name {
	case FeatureTitle:
		return v.TitleEmbedding
	case FeatureDescription:
		return v.DescriptionEmbedding
	case FeatureChannelTitle:
		return v.ChannelTitleEmbedding
	case FeatureTags:
		return v.TagsEmbedding
	case FeatureCategory:
		return v.CategoryEmbedding
	default:
		return nil
	}
}
