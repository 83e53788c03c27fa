package handlers

import (
	"net/http"

	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/gin-gonic/gin"
)

// ImageHandler proxies item image upload/delete to the external object
// store. The service may be nil when Cloudinary is not configured; those
// deployments answer 503 on image routes.
type ImageHandler struct {
	imageService *services.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// UploadImage accepts a multipart image and returns its stored URL.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		apierrors.ServiceUnavailable(c, "Image storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apierrors.BadRequest(c, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.imageService.Upload(c.Request.Context(), file)
	if err != nil {
		apierrors.InternalError(c, "Error uploading image")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteImage removes a stored image by its public ID.
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	if h.imageService == nil {
		apierrors.ServiceUnavailable(c, "Image storage is not configured")
		return
	}

	publicID := c.Param("publicId")
	if publicID == "" {
		apierrors.BadRequest(c, "Image ID is required")
		return
	}

	if err := h.imageService.Delete(c.Request.Context(), publicID); err != nil {
		apierrors.InternalError(c, "Error deleting image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
