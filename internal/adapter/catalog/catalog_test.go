package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/janne6565/projectmanager/internal/adapter/catalog/mock"
	"github.com/janne6565/projectmanager/internal/app"
	"github.com/janne6565/projectmanager/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSaveAndGet(t *testing.T) {
	t.Parallel()

	store := mock.NewKVStore(nil)
	c := NewCatalog(store)
	c.newID = func() string { return "generated" }

	project := app.Project{
		Name:               "projectmanager",
		Description:        "tracks projects",
		Visible:            true,
		OrderIndex:         2,
		AdditionalInfo:     map[string]string{"status": "active"},
		RepositoryPatterns: []string{"github.com/janne6565/*"},
		Contributions: []app.Contribution{
			{
				Day:           "2024-01-01",
				RepositoryURL: "https://github.com/janne6565/projectmanager",
				Extra:         map[string]json.RawMessage{"count": json.RawMessage(`4`)},
			},
		},
	}

	created, err := c.Save(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, "generated", created.ID)
	assert.Equal(t, 1, store.Updates())

	got, err := c.GetByID(context.Background(), "generated")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	created.Name = "renamed"
	_, err = c.Save(context.Background(), *created)
	require.NoError(t, err)

	got, err = c.GetByID(context.Background(), "generated")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestCatalogNotFound(t *testing.T) {
	t.Parallel()

	c := NewCatalog(mock.NewKVStore(nil))

	_, err := c.GetByID(context.Background(), "missing")
	assert.True(t, app.IsNotFoundError(err))

	_, err = c.GetByID(context.Background(), "")
	assert.True(t, app.IsNotFoundError(err))

	err = c.DeleteByID(context.Background(), "missing")
	assert.True(t, app.IsNotFoundError(err))
}

func TestCatalogListAllAndDelete(t *testing.T) {
	t.Parallel()

	store := mock.NewKVStore(map[string][]byte{
		"other/x": []byte(`not a project`),
	})
	c := NewCatalog(store)

	ids := []string{"b", "a", "c"}
	for _, id := range ids {
		_, err := c.Save(context.Background(), app.Project{ID: id, Name: "project " + id})
		require.NoError(t, err)
	}

	projects, err := c.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "a", projects[0].ID)
	assert.Equal(t, "b", projects[1].ID)
	assert.Equal(t, "c", projects[2].ID)

	require.NoError(t, c.DeleteByID(context.Background(), "b"))
	projects, err = c.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestCatalogStoreErrors(t *testing.T) {
	t.Parallel()

	store := mock.NewKVStore(nil)
	store.Err = errors.New("db closed")
	c := NewCatalog(store)

	_, err := c.ListAll(context.Background())
	assert.Error(t, err)
	_, err = c.GetByID(context.Background(), "p1")
	assert.Error(t, err)
	assert.False(t, app.IsNotFoundError(err))
	_, err = c.Save(context.Background(), app.Project{ID: "p1"})
	assert.Error(t, err)
	err = c.DeleteByID(context.Background(), "p1")
	assert.Error(t, err)
	assert.False(t, app.IsNotFoundError(err))
}

func TestCatalogCorruptedData(t *testing.T) {
	t.Parallel()

	c := NewCatalog(mock.NewKVStore(map[string][]byte{
		"pr/p1": []byte(`{"id":`),
	}))

	_, err := c.ListAll(context.Background())
	assert.Error(t, err)
	_, err = c.GetByID(context.Background(), "p1")
	assert.Error(t, err)
}

func TestCatalogUpdateContributions(t *testing.T) {
	t.Parallel()

	acmeApp := app.Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/acme/app"}
	stale := app.Contribution{Day: "2023-12-31", RepositoryURL: "https://github.com/acme/old"}

	store := mock.NewKVStore(nil)
	c := NewCatalog(store)
	ctx := context.Background()

	_, err := c.Save(ctx, app.Project{
		ID:                 "p1",
		Name:               "acme",
		RepositoryPatterns: []string{"github.com/acme/*"},
		Contributions:      []app.Contribution{stale},
	})
	require.NoError(t, err)

	var seen app.Project
	err = c.UpdateContributions(ctx, "p1", func(p app.Project) []app.Contribution {
		seen = p
		return []app.Contribution{acmeApp}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/acme/*"}, seen.RepositoryPatterns)
	assert.Equal(t, []app.Contribution{stale}, seen.Contributions)

	got, err := c.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Name)
	assert.Equal(t, []app.Contribution{acmeApp}, got.Contributions)

	for _, id := range []string{"missing", ""} {
		called := false
		err = c.UpdateContributions(ctx, id, func(p app.Project) []app.Contribution {
			called = true
			return nil
		})
		assert.True(t, app.IsNotFoundError(err), "id %q", id)
		assert.False(t, called, "id %q", id)
	}

	projects, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1, "missing project must not be created")
}

func TestCatalogUpdateContributionsErrors(t *testing.T) {
	t.Parallel()

	assign := func(p app.Project) []app.Contribution { return nil }

	store := mock.NewKVStore(map[string][]byte{"pr/p1": []byte(`{"id":"p1"}`)})
	store.Err = errors.New("db closed")
	err := NewCatalog(store).UpdateContributions(context.Background(), "p1", assign)
	assert.Error(t, err)
	assert.False(t, app.IsNotFoundError(err))

	corrupted := mock.NewKVStore(map[string][]byte{"pr/p1": []byte(`{"id":`)})
	err = NewCatalog(corrupted).UpdateContributions(context.Background(), "p1", assign)
	assert.Error(t, err)
	assert.False(t, app.IsNotFoundError(err))
}

type feedFunc func(ctx context.Context) (map[string][]app.Contribution, error)

func (f feedFunc) Contributions(ctx context.Context) (map[string][]app.Contribution, error) {
	return f(ctx)
}

// TestReconciliationWithBoltCatalog runs reconciliation passes against real bolt database.
func TestReconciliationWithBoltCatalog(t *testing.T) {
	store, err := database.NewBoltKVStore(filepath.Join(t.TempDir(), "projects.data"), "projects")
	require.NoError(t, err)
	defer store.Close()

	c := NewCatalog(store)
	ctx := context.Background()

	p1, err := c.Save(ctx, app.Project{ID: "p1", Name: "acme", Visible: true, RepositoryPatterns: []string{"github.com/acme/*"}})
	require.NoError(t, err)

	acmeApp := app.Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/acme/app"}
	zetaTool := app.Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/zeta/tool"}

	batch := map[string][]app.Contribution{"2024-01-01": {acmeApp, zetaTool}}
	var feedErr error
	feed := feedFunc(func(ctx context.Context) (map[string][]app.Contribution, error) {
		return batch, feedErr
	})

	l := logrus.New()
	l.Out = io.Discard
	r := app.NewReconciler(feed, c, nil, time.Minute, time.Second, nil, l)

	_, err = r.RunPass(ctx)
	require.NoError(t, err)

	got, err := c.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, []app.Contribution{acmeApp}, got.Contributions)
	assert.Equal(t, []app.Contribution{zetaTool}, r.UnassignedContributions())

	// Second project claims the remaining repository; latest batch no longer has acme contributions.
	_, err = c.Save(ctx, app.Project{ID: "p2", Name: "zeta", RepositoryPatterns: []string{"github.com/zeta/tool"}})
	require.NoError(t, err)
	batch = map[string][]app.Contribution{"2024-01-02": {zetaTool}}

	_, err = r.RunPass(ctx)
	require.NoError(t, err)

	got, err = c.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []app.Contribution{}, got.Contributions)
	got, err = c.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, []app.Contribution{zetaTool}, got.Contributions)
	assert.Equal(t, []app.Contribution{}, r.UnassignedContributions())

	// Failing fetch leaves everything as it was.
	feedErr = errors.New("feed down")
	before, err := c.ListAll(ctx)
	require.NoError(t, err)

	_, err = r.RunPass(ctx)
	require.Error(t, err)

	after, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []app.Contribution{}, r.UnassignedContributions())
}

// editingCatalog applies project edits right after reconciliation pass lists projects.
type editingCatalog struct {
	*Catalog
	afterList func()
}

func (c *editingCatalog) ListAll(ctx context.Context) ([]app.Project, error) {
	projects, err := c.Catalog.ListAll(ctx)
	if c.afterList != nil {
		c.afterList()
		c.afterList = nil
	}
	return projects, err
}

func TestReconciliationWithBoltCatalogConcurrentEdits(t *testing.T) {
	store, err := database.NewBoltKVStore(filepath.Join(t.TempDir(), "projects.data"), "projects")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	acmeApp := app.Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/acme/app"}
	zetaTool := app.Contribution{Day: "2024-01-01", RepositoryURL: "https://github.com/zeta/tool"}
	feed := feedFunc(func(ctx context.Context) (map[string][]app.Contribution, error) {
		return map[string][]app.Contribution{"2024-01-01": {acmeApp, zetaTool}}, nil
	})

	l := logrus.New()
	l.Out = io.Discard

	t.Run("project deleted after listing stays deleted", func(t *testing.T) {
		c := NewCatalog(store)
		deleted, err := c.Save(ctx, app.Project{Name: "acme", RepositoryPatterns: []string{"github.com/acme/*"}})
		require.NoError(t, err)

		catalog := &editingCatalog{
			Catalog: c,
			afterList: func() {
				require.NoError(t, c.DeleteByID(ctx, deleted.ID))
			},
		}
		r := app.NewReconciler(feed, catalog, nil, time.Minute, time.Second, nil, l)

		res, err := r.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, app.PassResult{Fetched: 2, Unassigned: 1, Skipped: 1}, res)

		_, err = c.GetByID(ctx, deleted.ID)
		assert.True(t, app.IsNotFoundError(err), "deleted project was recreated")
		projects, err := c.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("patterns edited after listing decide assignment", func(t *testing.T) {
		c := NewCatalog(store)
		edited, err := c.Save(ctx, app.Project{Name: "acme", RepositoryPatterns: []string{"github.com/acme/*"}})
		require.NoError(t, err)

		catalog := &editingCatalog{
			Catalog: c,
			afterList: func() {
				p := edited.Copy()
				p.Name = "zeta"
				p.RepositoryPatterns = []string{"github.com/zeta/*"}
				_, err := c.Save(ctx, p)
				require.NoError(t, err)
			},
		}
		r := app.NewReconciler(feed, catalog, nil, time.Minute, time.Second, nil, l)

		res, err := r.RunPass(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Saved)

		got, err := c.GetByID(ctx, edited.ID)
		require.NoError(t, err)
		assert.Equal(t, "zeta", got.Name)
		assert.Equal(t, []string{"github.com/zeta/*"}, got.RepositoryPatterns)
		assert.Equal(t, []app.Contribution{zetaTool}, got.Contributions)
	})
}
