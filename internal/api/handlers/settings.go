package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rohits-web03/voxdesk/internal/models"
	"github.com/rohits-web03/voxdesk/internal/repositories"
	"github.com/rohits-web03/voxdesk/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/v1/tags
// ListTags godoc
// @Summary List tags
// @Tags Settings
// @Produce json
// @Success 200 {array} models.Tag
// @Router /api/v1/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	listHandler("tags", h.catalog.ListTags)(w, r)
}

type tagRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// POST /api/v1/tags
// CreateTag godoc
// @Summary Create a tag
// @Tags Settings
// @Accept json
// @Produce json
// @Param tag body tagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/v1/tags [post]
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var input tagRequest
	if !h.decode(w, r, &input) {
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.Fail(w, http.StatusBadRequest, "name is required")
		return
	}

	tag := models.Tag{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Color:       strings.ToUpper(input.Color),
	}
	if tag.Color == "" {
		tag.Color = models.DefaultTagColor
	}
	if err := h.catalog.CreateTag(r.Context(), &tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Fail(w, http.StatusConflict, "Tag already exists")
			return
		}
		log.Printf("create tag: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to create tag")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, tag)
}

// DELETE /api/v1/tags/{id}
// DeleteTag godoc
// @Summary Delete a tag
// @Tags Settings
// @Param id path string true "Tag ID"
// @Success 204
// @Failure 404 {object} utils.Payload
// @Router /api/v1/tags/{id} [delete]
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteTag(r.Context(), id); err != nil {
		writeLookupError(w, err, "Tag not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/users
// ListUsers godoc
// @Summary List workspace users
// @Tags Settings
// @Produce json
// @Success 200 {array} models.User
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	listHandler("users", h.catalog.ListUsers)(w, r)
}

type userRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Department string `json:"department"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,e164"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=admin member viewer"`
}

// POST /api/v1/users
// CreateUser godoc
// @Summary Invite a workspace user
// @Tags Settings
// @Accept json
// @Produce json
// @Param user body userRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/v1/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input userRequest
	if !h.decode(w, r, &input) {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Department: input.Department,
		Email:      strings.ToLower(input.Email),
		Phone:      input.Phone,
		Role:       input.Role,
		Password:   string(hashedPassword),
	}
	if err := h.catalog.CreateUser(r.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Fail(w, http.StatusConflict, "User already exists with this email")
			return
		}
		log.Printf("create user: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, user)
}
