package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"github.com/rohits-web03/voxdesk/internal/repositories"
	"github.com/rohits-web03/voxdesk/internal/utils"
)

const maxBodySize = 1 << 20 // 1 MB

// Handler serves the console's REST endpoints.
type Handler struct {
	catalog   repositories.Catalog
	storage   repositories.ObjectStorage
	uploadTTL time.Duration
	validate  *validator.Validate
}

func NewHandler(catalog repositories.Catalog, storage repositories.ObjectStorage, uploadTTL time.Duration) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names in validation messages.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Handler{
		catalog:   catalog,
		storage:   storage,
		uploadTTL: uploadTTL,
		validate:  v,
	}
}

// decode reads a JSON body into dst and validates it. On failure the
// response has already been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		utils.Fail(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid input"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
