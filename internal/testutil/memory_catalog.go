// memory_catalog.go - In-memory repositories.Catalog for handler tests
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/voxdesk/internal/models"
	"github.com/rohits-web03/voxdesk/internal/repositories"
)

// MemoryCatalog implements repositories.Catalog with maps. The option
// slices are returned as-is by the List calls.
type MemoryCatalog struct {
	mu          sync.RWMutex
	attachments map[uuid.UUID]models.Attachment
	agents      map[uuid.UUID]models.Agent
	tags        map[uuid.UUID]models.Tag
	users       map[uuid.UUID]models.User

	Languages []models.Language
	Voices    []models.Voice
	Prompts   []models.Prompt
	Models    []models.Model

	err error
}

var _ repositories.Catalog = (*MemoryCatalog)(nil)

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		attachments: make(map[uuid.UUID]models.Attachment),
		agents:      make(map[uuid.UUID]models.Agent),
		tags:        make(map[uuid.UUID]models.Tag),
		users:       make(map[uuid.UUID]models.User),
	}
}

// FailWith makes every subsequent call return err.
func (m *MemoryCatalog) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *MemoryCatalog) CreateAttachment(ctx context.Context, a *models.Attachment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.attachments {
		if existing.Key == a.Key {
			return repositories.ErrDuplicate
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.attachments[a.ID] = *a
	return nil
}

func (m *MemoryCatalog) GetAttachment(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.attachments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

// Attachments returns every registered attachment.
func (m *MemoryCatalog) Attachments() []models.Attachment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Attachment, 0, len(m.attachments))
	for _, a := range m.attachments {
		out = append(out, a)
	}
	return out
}

func (m *MemoryCatalog) CreateAgent(ctx context.Context, a *models.Agent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.agents[a.ID] = *a
	return nil
}

func (m *MemoryCatalog) UpdateAgent(ctx context.Context, a *models.Agent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	existing, ok := m.agents[a.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	m.agents[a.ID] = *a
	return nil
}

func (m *MemoryCatalog) GetAgent(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.agents[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (m *MemoryCatalog) ListAgents(ctx context.Context) ([]models.Agent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Agent, 0, len(m.agents))
	for _, a := range m.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryCatalog) ListLanguages(ctx context.Context) ([]models.Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Languages, m.err
}

func (m *MemoryCatalog) ListVoices(ctx context.Context) ([]models.Voice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Voices, m.err
}

func (m *MemoryCatalog) ListPrompts(ctx context.Context) ([]models.Prompt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Prompts, m.err
}

func (m *MemoryCatalog) ListModels(ctx context.Context) ([]models.Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Models, m.err
}

func (m *MemoryCatalog) ListTags(ctx context.Context) ([]models.Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Tag, 0, len(m.tags))
	for _, t := range m.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryCatalog) CreateTag(ctx context.Context, t *models.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.tags {
		if existing.Name == t.Name {
			return repositories.ErrDuplicate
		}
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	m.tags[t.ID] = *t
	return nil
}

func (m *MemoryCatalog) DeleteTag(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tags[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.tags, id)
	return nil
}

func (m *MemoryCatalog) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryCatalog) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}
