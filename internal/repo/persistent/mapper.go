package persistent

import (
	"encoding/json"

	"inkwell/internal/entity"
	"inkwell/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		Excerpt:         m.Excerpt,
		Content:         m.Content,
		FeaturedImage:   m.FeaturedImage,
		ImagePosition:   m.ImagePosition,
		ImageScale:      m.ImageScale,
		CategoryID:      m.CategoryID,
		AuthorID:        m.AuthorID,
		Status:          entity.PostStatus(m.Status),
		PublishedAt:     m.PublishedAt,
		ReadTime:        m.ReadTime,
		ViewsCount:      m.ViewsCount,
		LikesCount:      m.LikesCount,
		CommentsCount:   m.CommentsCount,
		IsFeatured:      m.IsFeatured,
		IsTrending:      m.IsTrending,
		AllowComments:   m.AllowComments,
		MetaTitle:       m.MetaTitle,
		MetaDescription: m.MetaDescription,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.Category != nil {
		post.Category = ToCategoryEntity(m.Category)
	}
	if m.Author != nil {
		post.Author = ToAuthorEntity(m.Author)
	}
	if len(m.Tags) > 0 {
		post.Tags = make([]entity.Tag, len(m.Tags))
		for i, tag := range m.Tags {
			post.Tags[i] = *ToTagEntity(&tag)
		}
	}
	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i, comment := range m.Comments {
			post.Comments[i] = *ToCommentEntity(&comment)
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:              e.ID,
		Title:           e.Title,
		Slug:            e.Slug,
		Excerpt:         e.Excerpt,
		Content:         e.Content,
		FeaturedImage:   e.FeaturedImage,
		ImagePosition:   e.ImagePosition,
		ImageScale:      e.ImageScale,
		CategoryID:      e.CategoryID,
		AuthorID:        e.AuthorID,
		Status:          string(e.Status),
		PublishedAt:     e.PublishedAt,
		ReadTime:        e.ReadTime,
		ViewsCount:      e.ViewsCount,
		LikesCount:      e.LikesCount,
		CommentsCount:   e.CommentsCount,
		IsFeatured:      e.IsFeatured,
		IsTrending:      e.IsTrending,
		AllowComments:   e.AllowComments,
		MetaTitle:       e.MetaTitle,
		MetaDescription: e.MetaDescription,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Color:       m.Color,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PostsCount:  m.PostsCount,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}
	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		Color:       e.Color,
		IsActive:    e.IsActive,
		SortOrder:   e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTagEntity(m *model.TagModel) *entity.Tag {
	if m == nil {
		return nil
	}
	return &entity.Tag{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Color:       m.Color,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PostsCount:  m.PostsCount,
	}
}

func ToTagModel(e *entity.Tag) *model.TagModel {
	if e == nil {
		return nil
	}
	return &model.TagModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		Color:       e.Color,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAuthorEntity(m *model.AuthorModel) *entity.Author {
	if m == nil {
		return nil
	}
	return &entity.Author{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Username:    m.Username,
		Bio:         m.Bio,
		AvatarURL:   m.AvatarURL,
		Title:       m.Title,
		Expertise:   m.Expertise,
		Location:    m.Location,
		TwitterURL:  m.TwitterURL,
		LinkedInURL: m.LinkedInURL,
		WebsiteURL:  m.WebsiteURL,
		IsActive:    m.IsActive,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToAuthorModel(e *entity.Author) *model.AuthorModel {
	if e == nil {
		return nil
	}
	return &model.AuthorModel{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Username:    e.Username,
		Bio:         e.Bio,
		AvatarURL:   e.AvatarURL,
		Title:       e.Title,
		Expertise:   e.Expertise,
		Location:    e.Location,
		TwitterURL:  e.TwitterURL,
		LinkedInURL: e.LinkedInURL,
		WebsiteURL:  e.WebsiteURL,
		IsActive:    e.IsActive,
		IsFeatured:  e.IsFeatured,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:           m.ID,
		PostID:       m.PostID,
		UserID:       m.UserID,
		AuthorName:   m.AuthorName,
		AuthorEmail:  m.AuthorEmail,
		AuthorAvatar: m.AuthorAvatar,
		Content:      m.Content,
		Status:       entity.CommentStatus(m.Status),
		ParentID:     m.ParentID,
		LikesCount:   m.LikesCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.Replies) > 0 {
		comment.Replies = make([]entity.Comment, len(m.Replies))
		for i, reply := range m.Replies {
			comment.Replies[i] = *ToCommentEntity(&reply)
		}
	}

	return comment
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}
	return &model.CommentModel{
		ID:           e.ID,
		PostID:       e.PostID,
		UserID:       e.UserID,
		AuthorName:   e.AuthorName,
		AuthorEmail:  e.AuthorEmail,
		AuthorAvatar: e.AuthorAvatar,
		Content:      e.Content,
		Status:       string(e.Status),
		ParentID:     e.ParentID,
		LikesCount:   e.LikesCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	return &entity.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetKind: entity.LikeTargetKind(m.TargetKind),
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToSaveEntity(m *model.SaveModel) *entity.Save {
	if m == nil {
		return nil
	}
	save := &entity.Save{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
	if m.Post != nil {
		save.Post = ToPostEntity(m.Post)
	}
	return save
}

func ToMediaEntity(m *model.MediaModel) *entity.Media {
	if m == nil {
		return nil
	}

	media := &entity.Media{
		ID:        m.ID,
		Name:      m.Name,
		Filename:  m.Filename,
		Path:      m.Path,
		URL:       m.URL,
		Size:      m.Size,
		MimeType:  m.MimeType,
		Width:     m.Width,
		Height:    m.Height,
		AltText:   m.AltText,
		Caption:   m.Caption,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.SizesData) > 0 {
		_ = json.Unmarshal(m.SizesData, &media.Sizes)
	}

	return media
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	m := &model.MediaModel{
		ID:        e.ID,
		Name:      e.Name,
		Filename:  e.Filename,
		Path:      e.Path,
		URL:       e.URL,
		Size:      e.Size,
		MimeType:  e.MimeType,
		Width:     e.Width,
		Height:    e.Height,
		AltText:   e.AltText,
		Caption:   e.Caption,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if len(e.Sizes) > 0 {
		data, err := json.Marshal(e.Sizes)
		if err == nil {
			m.SizesData = data
		}
	}

	return m
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		AvatarURL: m.AvatarURL,
		Bio:       m.Bio,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		AvatarURL: e.AvatarURL,
		Bio:       e.Bio,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
