package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/starford/fxda/internal/apperr"
	"github.com/starford/fxda/internal/models"
)

// Entry is a saved template in the registry: the FXDA payload plus the
// catalog envelope (revision counter, timestamps, usage bookkeeping).
type Entry struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Tags             []string         `json:"tags"`
	WorkflowPresetID string           `json:"workflowPresetId,omitempty"`
	FXDA             *models.Template `json:"fxda,omitempty"`
	Version          int              `json:"version"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	CreatedBy        string           `json:"createdBy"`
	UsageCount       int              `json:"usageCount"`
	Validated        bool             `json:"validated"`
}

// Registry is an in-memory template collection. It is deliberately not
// persisted; durable multi-user storage is outside this system's scope.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry

	now   func() time.Time
	newID func() string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return "tpl-" + uuid.NewString() },
	}
}

// List returns all entries ordered by creation time, oldest first.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Get returns the entry with the given id.
func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

// Create stores a new entry. The registry assigns the id, revision 1 and
// both timestamps; usage bookkeeping starts at zero.
func (r *Registry) Create(e Entry) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e.ID = r.newID()
	e.Version = 1
	e.CreatedAt = now
	e.UpdatedAt = now
	e.UsageCount = 0
	e.Validated = false
	if e.CreatedBy == "" {
		e.CreatedBy = "AI Assistant"
	}

	stored := e
	r.entries[stored.ID] = &stored
	copied := stored
	return &copied
}

// Update replaces the mutable attributes of an existing entry, bumps the
// revision and refreshes the updatedAt timestamp.
func (r *Registry) Update(id string, e Entry) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	existing.Name = e.Name
	existing.Description = e.Description
	existing.Category = e.Category
	existing.Tags = e.Tags
	existing.WorkflowPresetID = e.WorkflowPresetID
	existing.FXDA = e.FXDA
	existing.Validated = e.Validated
	existing.Version++
	existing.UpdatedAt = r.now()

	copied := *existing
	return &copied, nil
}

// Delete removes an entry.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
