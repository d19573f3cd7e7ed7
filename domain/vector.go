package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Vector is a fixed-length text embedding produced by the embedding
// service. Stored as jsonb.
type Vector []float64

func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal(Vector{})
	}
	return json.Marshal(v)
}

func (v *Vector) Scan(value any) error {
	if value == nil {
		*v = Vector{}
		return nil
	}

	var raw []byte
	switch t := value.(type) {
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return fmt.Errorf("unsupported type for Vector: %T", value)
	}

	return json.Unmarshal(raw, v)
}

// Feature names tracked on both videos and user profiles.
const (
	FeatureTitle        = "title"
	FeatureDescription  = "description"
	FeatureChannelTitle = "channel_title"
	FeatureTags         = "tags"
	FeatureCategory     = "category"
)

// FeatureEmbeddings maps a feature name to its embedding. A user
// profile starts with every vector empty until a first rating lands.
type FeatureEmbeddings map[string]Vector

func (f FeatureEmbeddings) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(FeatureEmbeddings{})
	}
	return json.Marshal(f)
}

func (f *FeatureEmbeddings) Scan(value any) error {
	if value == nil {
		*f = FeatureEmbeddings{}
		return nil
	}

	var raw []byte
	switch t := value.(type) {
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return fmt.Errorf("unsupported type for FeatureEmbeddings: %T", value)
	}

	return json.Unmarshal(raw, f)
}

// IsEmpty reports whether no rating has been absorbed yet: either no
// features at all, or every tracked vector has length zero.
func (f FeatureEmbeddings) IsEmpty() bool {
	if len(f) == 0 {
		return true
	}
	for _, vec := range f {
		if len(vec) > 0 {
			return false
		}
	}
	return true
}

// StringList is a jsonb-backed list of strings (interests, seen ids).
type StringList = datatypes.JSONSlice[string]
