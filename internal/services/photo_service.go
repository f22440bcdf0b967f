package services

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/storage"
)

// PhotoService manages the photo collection per property type. Uploads go
// browser-to-bucket via presigned PUT URLs; listings attach presigned GET
// URLs so the bucket stays private.
type PhotoService struct {
	repo  *repositories.PropertyPhotoRepository
	store *storage.ObjectStore
}

func NewPhotoService(repo *repositories.PropertyPhotoRepository, store *storage.ObjectStore) *PhotoService {
	return &PhotoService{repo: repo, store: store}
}

// Enabled reports whether object storage is configured
func (s *PhotoService) Enabled() bool {
	return s.store != nil
}

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// InitiateUpload records the photo row and returns the presigned PUT URL
func (s *PhotoService) InitiateUpload(ctx context.Context, req *models.CreatePhotoRequest) (*models.PhotoUploadResponse, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("photo storage is not configured")
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	if !allowedPhotoExtensions[ext] {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	objectKey := fmt.Sprintf("properties/%d/%d%s", req.PropertyTypeID, time.Now().UnixNano(), ext)

	photo := &models.PropertyPhoto{
		PropertyTypeID: req.PropertyTypeID,
		ObjectKey:      objectKey,
		Caption:        req.Caption,
		SortOrder:      req.SortOrder,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}

	uploadURL, err := s.store.PresignPut(ctx, objectKey)
	if err != nil {
		return nil, err
	}

	return &models.PhotoUploadResponse{Photo: photo, UploadURL: uploadURL}, nil
}

// List returns the photos for a property type with fresh download URLs
func (s *PhotoService) List(ctx context.Context, propertyTypeID int) ([]*models.PropertyPhoto, error) {
	photos, err := s.repo.ListByPropertyType(ctx, propertyTypeID)
	if err != nil {
		return nil, err
	}

	if s.Enabled() {
		for _, p := range photos {
			url, err := s.store.PresignGet(ctx, p.ObjectKey)
			if err != nil {
				log.Printf("[Photo] Failed to presign %s: %v", p.ObjectKey, err)
				continue
			}
			p.URL = url
		}
	}

	return photos, nil
}

// Delete removes the row and the stored object
func (s *PhotoService) Delete(ctx context.Context, id int) error {
	photo, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.Enabled() {
		if err := s.store.Delete(ctx, photo.ObjectKey); err != nil {
			log.Printf("[Photo] Object delete failed for %s: %v", photo.ObjectKey, err)
		}
	}

	return nil
}
