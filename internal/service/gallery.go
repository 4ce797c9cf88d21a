package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/storage"
	"github.com/tinselworks/noel/internal/transform"
)

type GalleryService struct {
	galleryRepository repository.GalleryRepository
	storage           storage.Storage
}

func NewGalleryService(galleryRepository repository.GalleryRepository, storage storage.Storage) *GalleryService {
	return &GalleryService{
		galleryRepository: galleryRepository,
		storage:           storage,
	}
}

// Upload stores a validated image, then records it. The object key is a
// fresh UUID so uploads can never collide or overwrite one another.
func (s *GalleryService) Upload(userID int64, file multipart.File, header *multipart.FileHeader, rec transform.GalleryRecord) (*model.GalleryImage, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	storagePath := fmt.Sprintf("gallery/%s%s", uuid.New().String(), ext)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	image := &model.GalleryImage{
		UserID:      &userID,
		ImageURL:    s.storage.URL(storagePath),
		Label:       rec.Label,
		Description: rec.Description,
		Category:    rec.Category,
		StoragePath: storagePath,
		CreatedAt:   time.Now(),
	}

	err = s.galleryRepository.Create(image)
	if err != nil {
		// DB insert failed; clean up the stored object.
		delErr := s.storage.Delete(storagePath)
		if delErr != nil {
			slog.Error("failed to delete image during cleanup", "error", delErr, "path", storagePath)
		}
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	return image, nil
}

func (s *GalleryService) List(category string, page transform.Page) ([]*model.GalleryImage, int, error) {
	images, err := s.galleryRepository.List(category, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list images: %w", err)
	}

	total, err := s.galleryRepository.Count(category)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count images: %w", err)
	}

	return images, total, nil
}

// Delete removes an owned image. A missing row and someone else's row both
// answer not-found.
func (s *GalleryService) Delete(userID, imageID int64) error {
	image, err := s.galleryRepository.ByID(imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return apperr.NotFound("image")
		}
		return fmt.Errorf("failed to get image: %w", err)
	}
	if image.UserID == nil || *image.UserID != userID {
		return apperr.NotFound("image")
	}

	err = s.galleryRepository.Delete(imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}

	// Best effort; the object may already be gone.
	err = s.storage.Delete(image.StoragePath)
	if err != nil {
		slog.Warn("failed to delete image from storage", "error", err, "path", image.StoragePath)
	}

	return nil
}
