package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mohit-bt/ayurveda-website/config"
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// UploadResponse carries the public path of a stored image.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadImageHandler stores a single multipart image (field "image") in the
// uploads directory under a generated name and returns its /uploads path.
// Files over the size cap and files without an image content type are
// rejected before anything touches disk.
// @Summary      Upload Image
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file (max 5 MB)"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/upload [post]
func UploadImageHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.GinBadRequest(c, "No image uploaded")
		return
	}

	if file.Size > cfg.MaxUploadBytes {
		utils.GinBadRequest(c, "File size too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.GinBadRequest(c, "Only image files are allowed")
		return
	}

	filename := utils.GenerateUploadFilename("image", file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadsDir, filename)); err != nil {
		utils.GinInternalServerError(c, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, UploadResponse{ImageURL: "/uploads/" + filename})
}
