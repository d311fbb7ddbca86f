package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"

	"gorm.io/gorm"
)

type AuthorInput struct {
	FirstName   string
	LastName    string
	Email       string
	Username    string
	Bio         string
	AvatarURL   string
	Title       string
	Expertise   string
	Location    string
	TwitterURL  string
	LinkedInURL string
	WebsiteURL  string
	IsActive    *bool
	IsFeatured  *bool
}

type AuthorUseCase interface {
	List(activeOnly bool) ([]*entity.Author, error)
	Get(id string) (*entity.Author, error)
	Create(input AuthorInput) (*entity.Author, error)
	Update(id string, input AuthorInput) (*entity.Author, error)
	Delete(id string) error
}

type authorUseCase struct {
	authorRepo persistent.AuthorRepository
}

func NewAuthorUseCase(authorRepo persistent.AuthorRepository) AuthorUseCase {
	return &authorUseCase{authorRepo: authorRepo}
}

func (uc *authorUseCase) List(activeOnly bool) ([]*entity.Author, error) {
	if activeOnly {
		return uc.authorRepo.ListActive()
	}
	return uc.authorRepo.ListAll()
}

func (uc *authorUseCase) Get(id string) (*entity.Author, error) {
	author, err := uc.authorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return author, nil
}

func (uc *authorUseCase) Create(input AuthorInput) (*entity.Author, error) {
	taken, err := uc.authorRepo.EmailOrUsernameExists(input.Email, input.Username, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check author uniqueness: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	author := &entity.Author{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Username:    input.Username,
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		Title:       input.Title,
		Expertise:   input.Expertise,
		Location:    input.Location,
		TwitterURL:  input.TwitterURL,
		LinkedInURL: input.LinkedInURL,
		WebsiteURL:  input.WebsiteURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		author.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		author.IsFeatured = *input.IsFeatured
	}

	if err := uc.authorRepo.Create(author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (uc *authorUseCase) Update(id string, input AuthorInput) (*entity.Author, error) {
	author, err := uc.Get(id)
	if err != nil {
		return nil, err
	}

	if (input.Email != "" && input.Email != author.Email) ||
		(input.Username != "" && input.Username != author.Username) {
		email := author.Email
		if input.Email != "" {
			email = input.Email
		}
		username := author.Username
		if input.Username != "" {
			username = input.Username
		}
		taken, err := uc.authorRepo.EmailOrUsernameExists(email, username, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check author uniqueness: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		author.Email = email
		author.Username = username
	}

	if input.FirstName != "" {
		author.FirstName = input.FirstName
	}
	if input.LastName != "" {
		author.LastName = input.LastName
	}
	if input.Bio != "" {
		author.Bio = input.Bio
	}
	if input.AvatarURL != "" {
		author.AvatarURL = input.AvatarURL
	}
	if input.Title != "" {
		author.Title = input.Title
	}
	if input.Expertise != "" {
		author.Expertise = input.Expertise
	}
	if input.Location != "" {
		author.Location = input.Location
	}
	if input.TwitterURL != "" {
		author.TwitterURL = input.TwitterURL
	}
	if input.LinkedInURL != "" {
		author.LinkedInURL = input.LinkedInURL
	}
	if input.WebsiteURL != "" {
		author.WebsiteURL = input.WebsiteURL
	}
	if input.IsActive != nil {
		author.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		author.IsFeatured = *input.IsFeatured
	}

	if err := uc.authorRepo.Update(author); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

func (uc *authorUseCase) Delete(id string) error {
	if _, err := uc.Get(id); err != nil {
		return err
	}

	count, err := uc.authorRepo.PostCount(id)
	if err != nil {
		return fmt.Errorf("failed to count author posts: %w", err)
	}
	if count > 0 {
		return &InUseError{Resource: "author", Count: count}
	}

	return uc.authorRepo.Delete(id)
}
