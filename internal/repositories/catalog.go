package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/voxdesk/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Catalog is the persistence surface the HTTP handlers depend on.
type Catalog interface {
	CreateAttachment(ctx context.Context, a *models.Attachment) error
	GetAttachment(ctx context.Context, id uuid.UUID) (*models.Attachment, error)

	CreateAgent(ctx context.Context, a *models.Agent) error
	UpdateAgent(ctx context.Context, a *models.Agent) error
	GetAgent(ctx context.Context, id uuid.UUID) (*models.Agent, error)
	ListAgents(ctx context.Context) ([]models.Agent, error)

	ListLanguages(ctx context.Context) ([]models.Language, error)
	ListVoices(ctx context.Context) ([]models.Voice, error)
	ListPrompts(ctx context.Context) ([]models.Prompt, error)
	ListModels(ctx context.Context) ([]models.Model, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, t *models.Tag) error
	DeleteTag(ctx context.Context, id uuid.UUID) error

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// translate maps gorm errors onto the package sentinels. The DB must be
// opened with TranslateError for duplicate keys to surface.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func (c *GormCatalog) CreateAttachment(ctx context.Context, a *models.Attachment) error {
	return translate(c.db.WithContext(ctx).Create(a).Error)
}

func (c *GormCatalog) GetAttachment(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	var a models.Attachment
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (c *GormCatalog) CreateAgent(ctx context.Context, a *models.Agent) error {
	return translate(c.db.WithContext(ctx).Create(a).Error)
}

func (c *GormCatalog) UpdateAgent(ctx context.Context, a *models.Agent) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Agent
		if err := tx.Select("id", "created_at").Where("id = ?", a.ID).First(&existing).Error; err != nil {
			return translate(err)
		}
		a.CreatedAt = existing.CreatedAt
		return translate(tx.Save(a).Error)
	})
}

func (c *GormCatalog) GetAgent(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	var a models.Agent
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (c *GormCatalog) ListAgents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	err := c.db.WithContext(ctx).Order("created_at DESC").Find(&agents).Error
	return agents, translate(err)
}

func (c *GormCatalog) ListLanguages(ctx context.Context) ([]models.Language, error) {
	var out []models.Language
	return out, translate(c.db.WithContext(ctx).Order("name").Find(&out).Error)
}

func (c *GormCatalog) ListVoices(ctx context.Context) ([]models.Voice, error) {
	var out []models.Voice
	return out, translate(c.db.WithContext(ctx).Order("name").Find(&out).Error)
}

func (c *GormCatalog) ListPrompts(ctx context.Context) ([]models.Prompt, error) {
	var out []models.Prompt
	return out, translate(c.db.WithContext(ctx).Order("name").Find(&out).Error)
}

func (c *GormCatalog) ListModels(ctx context.Context) ([]models.Model, error) {
	var out []models.Model
	return out, translate(c.db.WithContext(ctx).Order("name").Find(&out).Error)
}

func (c *GormCatalog) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out []models.Tag
	return out, translate(c.db.WithContext(ctx).Order("created_at").Find(&out).Error)
}

func (c *GormCatalog) CreateTag(ctx context.Context, t *models.Tag) error {
	return translate(c.db.WithContext(ctx).Create(t).Error)
}

func (c *GormCatalog) DeleteTag(ctx context.Context, id uuid.UUID) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tag{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *GormCatalog) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	return out, translate(c.db.WithContext(ctx).Order("created_at").Find(&out).Error)
}

func (c *GormCatalog) CreateUser(ctx context.Context, u *models.User) error {
	return translate(c.db.WithContext(ctx).Create(u).Error)
}
