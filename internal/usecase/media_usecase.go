package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// imageVariants are the resized derivatives generated for image uploads.
// Width 0 on thumbnail means a square center crop instead of a fit resize.
var imageVariants = []struct {
	name  string
	width int
	crop  int
}{
	{name: "thumbnail", crop: 150},
	{name: "small", width: 320},
	{name: "medium", width: 640},
	{name: "large", width: 1024},
	{name: "featured", width: 1280},
}

// ObjectStorage is the subset of the storage client the media flow needs.
type ObjectStorage interface {
	Upload(key string, r io.Reader, contentType string) (string, error)
	Delete(key string) error
}

type UploadMediaInput struct {
	Filename string
	MimeType string
	Data     []byte
	Name     string
	AltText  string
	Caption  string
}

type UpdateMediaInput struct {
	Name     *string
	AltText  *string
	Caption  *string
	IsActive *bool
}

type MediaUseCase interface {
	List(filter persistent.MediaListFilter) ([]*entity.Media, int64, error)
	Get(id string) (*entity.Media, error)
	Upload(input UploadMediaInput) (*entity.Media, error)
	Update(id string, input UpdateMediaInput) (*entity.Media, error)
	Delete(id string) error
	BulkDelete(ids []string) (int, error)
}

type mediaUseCase struct {
	mediaRepo      persistent.MediaRepository
	storage        ObjectStorage
	maxUploadBytes int64
	log            *logger.Logger
}

func NewMediaUseCase(mediaRepo persistent.MediaRepository, storage ObjectStorage, maxUploadBytes int64, log *logger.Logger) MediaUseCase {
	return &mediaUseCase{
		mediaRepo:      mediaRepo,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

func (uc *mediaUseCase) List(filter persistent.MediaListFilter) ([]*entity.Media, int64, error) {
	return uc.mediaRepo.List(filter)
}

func (uc *mediaUseCase) Get(id string) (*entity.Media, error) {
	media, err := uc.mediaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return media, nil
}

func (uc *mediaUseCase) Upload(input UploadMediaInput) (*entity.Media, error) {
	if int64(len(input.Data)) > uc.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	name := input.Name
	if name == "" {
		name = strings.TrimSuffix(input.Filename, filepath.Ext(input.Filename))
	}

	media := &entity.Media{
		Name:     name,
		Filename: input.Filename,
		Size:     int64(len(input.Data)),
		MimeType: input.MimeType,
		AltText:  input.AltText,
		Caption:  input.Caption,
		IsActive: true,
	}

	baseKey := fmt.Sprintf("media/%s", uuid.New().String())
	ext := extensionFor(input.Filename, input.MimeType)

	if strings.HasPrefix(input.MimeType, "image/") {
		if err := uc.uploadImage(media, input, baseKey, ext); err != nil {
			return nil, err
		}
	} else {
		key := fmt.Sprintf("%s/%s%s", baseKey, uuid.New().String(), ext)
		url, err := uc.storage.Upload(key, bytes.NewReader(input.Data), input.MimeType)
		if err != nil {
			return nil, fmt.Errorf("failed to store file: %w", err)
		}
		media.Path = key
		media.URL = url
	}

	if err := uc.mediaRepo.Create(media); err != nil {
		return nil, fmt.Errorf("failed to save media: %w", err)
	}
	return media, nil
}

// uploadImage stores the original plus the resized variants and records
// dimensions. Variants larger than the source are skipped rather than
// upscaled.
func (uc *mediaUseCase) uploadImage(media *entity.Media, input UploadMediaInput, baseKey, ext string) error {
	src, format, err := image.Decode(bytes.NewReader(input.Data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	media.Width = &width
	media.Height = &height

	originalKey := fmt.Sprintf("%s/original%s", baseKey, ext)
	url, err := uc.storage.Upload(originalKey, bytes.NewReader(input.Data), input.MimeType)
	if err != nil {
		return fmt.Errorf("failed to store original: %w", err)
	}
	media.Path = originalKey
	media.URL = url
	media.Sizes = map[string]entity.MediaVariant{
		"original": {
			Path:   originalKey,
			URL:    url,
			Width:  width,
			Height: height,
			Size:   int64(len(input.Data)),
		},
	}

	encFormat, err := imaging.FormatFromExtension(ext)
	if err != nil {
		encFormat = imaging.JPEG
		if format == "png" {
			encFormat = imaging.PNG
		}
	}

	for _, v := range imageVariants {
		var resized image.Image
		switch {
		case v.crop > 0:
			resized = imaging.Fill(src, v.crop, v.crop, imaging.Center, imaging.Lanczos)
		case v.width >= width:
			continue
		default:
			resized = imaging.Resize(src, v.width, 0, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, encFormat); err != nil {
			return fmt.Errorf("failed to encode %s variant: %w", v.name, err)
		}

		key := fmt.Sprintf("%s/%s%s", baseKey, v.name, ext)
		variantURL, err := uc.storage.Upload(key, bytes.NewReader(buf.Bytes()), input.MimeType)
		if err != nil {
			return fmt.Errorf("failed to store %s variant: %w", v.name, err)
		}

		rb := resized.Bounds()
		media.Sizes[v.name] = entity.MediaVariant{
			Path:   key,
			URL:    variantURL,
			Width:  rb.Dx(),
			Height: rb.Dy(),
			Size:   int64(buf.Len()),
		}
	}

	return nil
}

func (uc *mediaUseCase) Update(id string, input UpdateMediaInput) (*entity.Media, error) {
	media, err := uc.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		media.Name = *input.Name
	}
	if input.AltText != nil {
		media.AltText = *input.AltText
	}
	if input.Caption != nil {
		media.Caption = *input.Caption
	}
	if input.IsActive != nil {
		media.IsActive = *input.IsActive
	}

	if err := uc.mediaRepo.Update(media); err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}
	return media, nil
}

func (uc *mediaUseCase) Delete(id string) error {
	media, err := uc.Get(id)
	if err != nil {
		return err
	}

	uc.deleteObjects(media)

	return uc.mediaRepo.Delete(id)
}

// BulkDelete removes the given media rows and their stored files,
// returning how many rows existed. Unknown ids are skipped.
func (uc *mediaUseCase) BulkDelete(ids []string) (int, error) {
	items, err := uc.mediaRepo.GetByIDs(ids)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, ErrNotFound
	}

	existing := make([]string, 0, len(items))
	for _, media := range items {
		uc.deleteObjects(media)
		existing = append(existing, media.ID)
	}

	if err := uc.mediaRepo.DeleteMany(existing); err != nil {
		return 0, err
	}
	return len(existing), nil
}

// deleteObjects best-effort removes stored files. Storage failures are
// logged and do not block removing the database row.
func (uc *mediaUseCase) deleteObjects(media *entity.Media) {
	if len(media.Sizes) > 0 {
		for name, variant := range media.Sizes {
			if err := uc.storage.Delete(variant.Path); err != nil {
				uc.log.Warn("failed to delete %s variant of media %s: %v", name, media.ID, err)
			}
		}
		return
	}
	if media.Path != "" {
		if err := uc.storage.Delete(media.Path); err != nil {
			uc.log.Warn("failed to delete media object %s: %v", media.ID, err)
		}
	}
}

func extensionFor(filename, mimeType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
