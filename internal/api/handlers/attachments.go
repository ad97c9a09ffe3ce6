package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rohits-web03/voxdesk/internal/models"
	"github.com/rohits-web03/voxdesk/internal/repositories"
	"github.com/rohits-web03/voxdesk/internal/utils"
)

const defaultMimeType = "application/octet-stream"

type uploadURLResponse struct {
	Key       string `json:"key"`
	SignedURL string `json:"signedUrl"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// POST /api/v1/attachments/upload-url
// CreateUploadURL godoc
// @Summary Issue a one-time upload location
// @Description Returns a presigned PUT URL and the storage key the bytes will live under.
// @Tags Attachments
// @Produce json
// @Success 200 {object} uploadURLResponse
// @Failure 500 {object} utils.Payload
// @Router /api/v1/attachments/upload-url [post]
func (h *Handler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	key, err := utils.NewAttachmentKey()
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to create upload key")
		return
	}

	url, err := h.storage.PresignPut(r.Context(), key, h.uploadTTL)
	if err != nil {
		log.Printf("presign put %s: %v", key, err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	utils.WriteJSON(w, http.StatusOK, uploadURLResponse{
		Key:       key,
		SignedURL: url,
		ExpiresIn: int(h.uploadTTL.Seconds()),
	})
}

type registerAttachmentRequest struct {
	Key      string `json:"key" validate:"required"`
	FileName string `json:"fileName" validate:"required,max=255"`
	FileSize int64  `json:"fileSize" validate:"gte=0"`
	MimeType string `json:"mimeType" validate:"max=255"`
}

// POST /api/v1/attachments
// RegisterAttachment godoc
// @Summary Register an uploaded attachment
// @Description Records catalog metadata for bytes already written to a presigned upload URL.
// @Tags Attachments
// @Accept json
// @Produce json
// @Param attachment body registerAttachmentRequest true "Attachment metadata"
// @Success 201 {object} models.Attachment
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Uploaded object not found"
// @Failure 409 {object} utils.Payload "Key already registered"
// @Router /api/v1/attachments [post]
func (h *Handler) RegisterAttachment(w http.ResponseWriter, r *http.Request) {
	var input registerAttachmentRequest
	if !h.decode(w, r, &input) {
		return
	}
	if !strings.HasPrefix(input.Key, utils.AttachmentKeyPrefix) {
		utils.Fail(w, http.StatusBadRequest, "Invalid attachment key")
		return
	}

	exists, err := h.storage.Exists(r.Context(), input.Key)
	if err != nil {
		log.Printf("verify object %s: %v", input.Key, err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to verify upload")
		return
	}
	if !exists {
		utils.Fail(w, http.StatusNotFound, "Uploaded file not found")
		return
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	attachment := models.Attachment{
		Key:      input.Key,
		FileName: input.FileName,
		FileSize: input.FileSize,
		MimeType: mimeType,
	}
	if err := h.catalog.CreateAttachment(r.Context(), &attachment); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Fail(w, http.StatusConflict, "Attachment already registered")
			return
		}
		log.Printf("create attachment %s: %v", input.Key, err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to register attachment")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, attachment)
}

// GET /api/v1/attachments/{id}
// GetAttachment godoc
// @Summary Get attachment metadata
// @Tags Attachments
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} models.Attachment
// @Failure 404 {object} utils.Payload
// @Router /api/v1/attachments/{id} [get]
func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	attachment, err := h.catalog.GetAttachment(r.Context(), id)
	if err != nil {
		writeLookupError(w, err, "Attachment not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, attachment)
}

func writeLookupError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, repositories.ErrNotFound) {
		utils.Fail(w, http.StatusNotFound, notFound)
		return
	}
	log.Printf("lookup failed: %v", err)
	utils.Fail(w, http.StatusInternalServerError, "Database error")
}
