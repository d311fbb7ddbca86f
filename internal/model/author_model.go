package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username    string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Bio         string    `gorm:"type:text" json:"bio"`
	AvatarURL   string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Expertise   string    `gorm:"type:varchar(255)" json:"expertise"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	TwitterURL  string    `gorm:"type:varchar(500)" json:"twitter_url"`
	LinkedInURL string    `gorm:"type:varchar(500)" json:"linkedin_url"`
	WebsiteURL  string    `gorm:"type:varchar(500)" json:"website_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

func (a *AuthorModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
