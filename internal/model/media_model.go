package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MediaModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Filename  string         `gorm:"type:varchar(255);not null" json:"filename"`
	Path      string         `gorm:"type:varchar(500);not null" json:"path"`
	URL       string         `gorm:"type:varchar(500);not null" json:"url"`
	Size      int64          `gorm:"default:0" json:"size"`
	MimeType  string         `gorm:"type:varchar(100);index" json:"mime_type"`
	Width     *int           `json:"width"`
	Height    *int           `json:"height"`
	AltText   string         `gorm:"type:varchar(500)" json:"alt_text"`
	Caption   string         `gorm:"type:text" json:"caption"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	SizesData datatypes.JSON `json:"sizes_data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
