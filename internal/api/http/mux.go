package http

import (
	"context"
	"net/http"
	"time"

	"github.com/janne6565/projectmanager/internal/app"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mock/service.go -package=mock github.com/janne6565/projectmanager/internal/api/http Service

// Service manages projects and their contributions.
type Service interface {
	Projects(ctx context.Context, q app.ProjectsQuery) ([]app.Project, error)
	Project(ctx context.Context, id string) (*app.Project, error)
	CreateProject(ctx context.Context, project app.Project) (*app.Project, error)
	UpdateProject(ctx context.Context, id string, changes app.ProjectChanges) (*app.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UpdateProjectIndex(ctx context.Context, id string, index int) (*app.Project, error)
	ToggleProjectVisibility(ctx context.Context, id string) (*app.Project, error)
	UnassignedContributions() []app.Contribution
	Reconcile(ctx context.Context) (app.PassResult, error)
}

var _ Service = &app.Service{}

// NewMux creates router for app's http server.
// metrics handler is optional.
func NewMux(service Service, metrics http.Handler, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return loggingMiddleware(timeoutMiddleware(h))
	}

	getID := func(r *http.Request) string {
		return r.PathValue("id")
	}

	m := http.NewServeMux()
	m.HandleFunc("GET /projects", wrap(NewProjectsHandler(false, service, l)))
	m.HandleFunc("GET /admin/projects", wrap(NewProjectsHandler(true, service, l)))
	m.HandleFunc("POST /projects", wrap(NewCreateProjectHandler(service, l)))
	m.HandleFunc("GET /projects/{id}", wrap(NewProjectHandler(getID, service, l)))
	m.HandleFunc("PUT /projects/{id}", wrap(NewUpdateProjectHandler(getID, service, l)))
	m.HandleFunc("DELETE /projects/{id}", wrap(NewDeleteProjectHandler(getID, service, l)))
	m.HandleFunc("PATCH /projects/{id}/index", wrap(NewProjectIndexHandler(getID, service, l)))
	m.HandleFunc("PATCH /projects/{id}/visibility", wrap(NewProjectVisibilityHandler(getID, service, l)))
	m.HandleFunc("GET /contributions/unassigned", wrap(NewUnassignedContributionsHandler(service)))
	m.HandleFunc("POST /contributions/reconcile", wrap(NewReconcileHandler(service, l)))
	if metrics != nil {
		m.Handle("GET /metrics", metrics)
	}

	return m
}
