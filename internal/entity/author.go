package entity

import "time"

// Author is a display profile shown on posts. It is distinct from User,
// which is a login principal.
type Author struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatar_url"`
	Title      string    `json:"title"`
	Expertise  string    `json:"expertise"`
	Location   string    `json:"location"`
	TwitterURL string    `json:"twitter_url"`
	LinkedInURL string   `json:"linkedin_url"`
	WebsiteURL string    `json:"website_url"`
	IsActive   bool      `json:"is_active"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
