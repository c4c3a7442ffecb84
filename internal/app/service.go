package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ContributionReconciler runs reconciliation passes and keeps their latest outcome.
type ContributionReconciler interface {
	RunPass(ctx context.Context) (PassResult, error)
	UnassignedContributions() []Contribution
}

var _ ContributionReconciler = &Reconciler{}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	catalog    Catalog
	reconciler ContributionReconciler
	l          logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(catalog Catalog, reconciler ContributionReconciler, l logrus.FieldLogger) *Service {
	return &Service{
		catalog:    catalog,
		reconciler: reconciler,
		l:          l,
	}
}

// Projects returns projects ordered by index.
func (s *Service) Projects(ctx context.Context, q ProjectsQuery) ([]Project, error) {
	if q.Page < 0 || q.Size < 0 {
		return nil, InvalidRequestError("page and size cannot be negative")
	}

	projects, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	result := make([]Project, 0, len(projects))
	for _, p := range projects {
		if !p.Visible && !q.IncludeHidden {
			continue
		}
		if !q.IncludeContributions {
			p.Contributions = nil
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].OrderIndex != result[j].OrderIndex {
			return result[i].OrderIndex < result[j].OrderIndex
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})

	if q.Size > 0 {
		from := q.Page * q.Size
		if from > len(result) {
			from = len(result)
		}
		to := from + q.Size
		if to > len(result) {
			to = len(result)
		}
		result = result[from:to]
	}

	return result, nil
}

// Project returns project by id.
func (s *Service) Project(ctx context.Context, id string) (*Project, error) {
	return s.catalog.GetByID(ctx, id)
}

// CreateProject stores new project with freshly generated id, then reconciles contributions.
func (s *Service) CreateProject(ctx context.Context, project Project) (*Project, error) {
	if err := validateName(project.Name); err != nil {
		return nil, err
	}

	project = project.Copy()
	project.ID = ""
	project.Contributions = nil

	created, err := s.catalog.Save(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}
	s.reconcile(ctx)

	return created, nil
}

// UpdateProject applies changes to stored project, then reconciles contributions.
// Contributions are reconciled even when project doesn't exist.
func (s *Service) UpdateProject(ctx context.Context, id string, changes ProjectChanges) (*Project, error) {
	if err := validateName(changes.Name); err != nil {
		return nil, err
	}

	existing, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		s.reconcile(ctx)
		return nil, err
	}

	project := existing.Copy()
	project.Name = changes.Name
	project.Description = changes.Description
	project.AdditionalInfo = changes.AdditionalInfo
	project.RepositoryPatterns = changes.RepositoryPatterns
	if changes.Visible != nil {
		project.Visible = *changes.Visible
	}
	if changes.OrderIndex != nil {
		project.OrderIndex = *changes.OrderIndex
	}

	updated, err := s.catalog.Save(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}
	s.reconcile(ctx)

	return updated, nil
}

// DeleteProject removes project.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.catalog.DeleteByID(ctx, id)
}

// UpdateProjectIndex sets project's sort index.
func (s *Service) UpdateProjectIndex(ctx context.Context, id string, index int) (*Project, error) {
	return s.modify(ctx, id, func(p *Project) {
		p.OrderIndex = index
	})
}

// ToggleProjectVisibility flips project's visibility in public listing.
func (s *Service) ToggleProjectVisibility(ctx context.Context, id string) (*Project, error) {
	return s.modify(ctx, id, func(p *Project) {
		p.Visible = !p.Visible
	})
}

// UnassignedContributions returns contributions that matched no project in the last reconciliation.
func (s *Service) UnassignedContributions() []Contribution {
	return s.reconciler.UnassignedContributions()
}

// Reconcile runs reconciliation pass immediately.
func (s *Service) Reconcile(ctx context.Context) (PassResult, error) {
	return s.reconciler.RunPass(ctx)
}

func (s *Service) modify(ctx context.Context, id string, fn func(*Project)) (*Project, error) {
	existing, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project := existing.Copy()
	fn(&project)

	updated, err := s.catalog.Save(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}

	return updated, nil
}

// reconcile runs pass after project edit. Failure is already logged by reconciler and doesn't fail the edit.
func (s *Service) reconcile(ctx context.Context) {
	if _, err := s.reconciler.RunPass(ctx); err != nil {
		s.l.Warnf("reconciliation after project change failed: %v", err)
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return InvalidRequestError("project name cannot be empty")
	}
	return nil
}
