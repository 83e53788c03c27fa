package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/babaygt/eatyq/internal/constants"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrImageUploadFailed = errors.New("image upload failed")

// ImageService proxies image uploads to Cloudinary. The core data model only
// ever stores the resulting URL string; the binary lives entirely in the
// external store.
type ImageService struct {
	cld *cloudinary.Cloudinary
}

// NewImageService creates a new ImageService from a CLOUDINARY_URL style
// connection string.
func NewImageService(cloudinaryURL string) (*ImageService, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &ImageService{cld: cld}, nil
}

// UploadResult holds the stored image's URL and its Cloudinary public ID.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Upload stores an image in the menu items folder and returns its URL.
func (s *ImageService) Upload(ctx context.Context, file io.Reader) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: constants.ImageFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageUploadFailed, err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// Delete removes an image by its public ID within the menu items folder.
func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	fullID := constants.ImageFolder + "/" + publicID
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: fullID}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
