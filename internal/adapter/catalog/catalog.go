package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/janne6565/projectmanager/internal/app"
)

const projectKeyPrefix = "pr/"

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	ReadPrefix(prefix []byte) ([][]byte, error)
	UpdateKey(key []byte, data []byte) error
	UpdateKeyIfExists(key []byte, update func([]byte) ([]byte, error)) (bool, error)
	DeleteKey(key []byte) (bool, error)
}

// Catalog stores projects as json documents in kv store.
// This struct is an adapter for app.Catalog.
type Catalog struct {
	store KVStore
	newID func() string
}

var _ app.Catalog = &Catalog{}

// NewCatalog creates new Catalog instance.
func NewCatalog(store KVStore) *Catalog {
	return &Catalog{
		store: store,
		newID: uuid.NewString,
	}
}

// ListAll returns all stored projects.
func (c *Catalog) ListAll(ctx context.Context) ([]app.Project, error) {
	values, err := c.store.ReadPrefix([]byte(projectKeyPrefix))
	if err != nil {
		return nil, err
	}

	projects := make([]app.Project, 0, len(values))
	for _, data := range values {
		p, err := c.unserializeProject(data)
		if err != nil {
			return nil, fmt.Errorf("unserializing project data: %w", err)
		}
		projects = append(projects, *p)
	}

	return projects, nil
}

// GetByID returns project with given id.
func (c *Catalog) GetByID(ctx context.Context, id string) (*app.Project, error) {
	if id == "" {
		return nil, app.NotFoundError("project not found")
	}

	data, err := c.store.ReadKey(c.projectDBKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, app.NotFoundError(fmt.Sprintf("project %s not found", id))
	}

	p, err := c.unserializeProject(data)
	if err != nil {
		return nil, fmt.Errorf("unserializing project data: %w", err)
	}

	return p, nil
}

// Save stores project. Project without id gets a new one.
func (c *Catalog) Save(ctx context.Context, project app.Project) (*app.Project, error) {
	if project.ID == "" {
		project.ID = c.newID()
	}

	data, err := c.serializeProject(project)
	if err != nil {
		return nil, fmt.Errorf("serializing data for save: %w", err)
	}
	if err := c.store.UpdateKey(c.projectDBKey(project.ID), data); err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteByID removes project with given id.
func (c *Catalog) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return app.NotFoundError("project not found")
	}

	existed, err := c.store.DeleteKey(c.projectDBKey(id))
	if err != nil {
		return err
	}
	if !existed {
		return app.NotFoundError(fmt.Sprintf("project %s not found", id))
	}

	return nil
}

// UpdateContributions replaces contributions of stored project in single store transaction.
// Project deleted before the transaction stays deleted.
func (c *Catalog) UpdateContributions(ctx context.Context, id string, assign func(app.Project) []app.Contribution) error {
	if id == "" {
		return app.NotFoundError("project not found")
	}

	existed, err := c.store.UpdateKeyIfExists(c.projectDBKey(id), func(data []byte) ([]byte, error) {
		p, err := c.unserializeProject(data)
		if err != nil {
			return nil, fmt.Errorf("unserializing project data: %w", err)
		}
		p.Contributions = assign(p.Copy())

		return c.serializeProject(*p)
	})
	if err != nil {
		return err
	}
	if !existed {
		return app.NotFoundError(fmt.Sprintf("project %s not found", id))
	}

	return nil
}

func (c *Catalog) projectDBKey(id string) []byte {
	return []byte(projectKeyPrefix + id)
}

func (c *Catalog) serializeProject(p app.Project) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func (c *Catalog) unserializeProject(data []byte) (*app.Project, error) {
	var p app.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}

	return &p, nil
}
