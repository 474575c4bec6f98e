package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left for form fields and part headers on top
// of the file size limit.
const multipartOverhead = 1 << 20

type MediaHandler struct {
	mediaUseCase   usecase.MediaUseCase
	maxUploadBytes int64
	logger         *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, maxUploadBytes int64, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase:   mediaUseCase,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

type ListMediaQuery struct {
	FileType string `form:"file_type"`
	Category string `form:"category"`
}

// UploadMedia godoc
// @Summary      Upload an image or video
// @Description  Accepts jpeg, png, gif and webp images and mp4, webm and quicktime videos. The declared content type of the file part decides.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Media file"
// @Param        category formData string false "Category (default general)"
// @Param        description formData string false "Description"
// @Success      200  {object}  entity.MediaRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/media/upload [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		h.tooLarge(c)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	upload := entity.MediaUpload{
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
		Category:     c.PostForm("category"),
	}
	if desc, ok := c.GetPostForm("description"); ok && strings.TrimSpace(desc) != "" {
		upload.Description = &desc
	}

	rec, err := h.mediaUseCase.Upload(c.Request.Context(), upload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MediaHandler) tooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{
		"error": fmt.Sprintf("File exceeds the %d byte upload limit", h.maxUploadBytes),
	})
}

// ListMedia godoc
// @Summary      List media
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        file_type query string false "image or video"
// @Param        category query string false "Category"
// @Success      200  {array}   entity.MediaRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/media [get]
func (h *MediaHandler) ListMedia(c *gin.Context) {
	var q ListMediaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	filter := entity.MediaFilter{Category: q.Category}
	if q.FileType != "" {
		ft, ok := entity.ParseFileType(q.FileType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_type must be image or video"})
			return
		}
		filter.FileType = ft
	}

	records, err := h.mediaUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// UpdateMedia godoc
// @Summary      Update media metadata
// @Description  Only category and description can change.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Media ID"
// @Param        media body object true "category and/or description"
// @Success      200  {object}  entity.MediaRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/media/{id} [put]
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	var patch entity.MediaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	rec, err := h.mediaUseCase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteMedia godoc
// @Summary      Delete media
// @Description  Removes the record, then the stored file.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Media ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.mediaUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media file deleted successfully"})
}
