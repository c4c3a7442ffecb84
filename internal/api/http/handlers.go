package http

import (
	"net/http"
	"strconv"

	"github.com/janne6565/projectmanager/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	defaultHandlerPageValue = 0
	defaultHandlerSizeValue = 0
	maxHandlerSizeValue     = 1000

	maxRequestBodySize = 1 << 20
)

type projectResponse struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Description           string              `json:"description"`
	Visible               bool                `json:"visible"`
	Index                 int                 `json:"index"`
	AdditionalInformation map[string]string   `json:"additionalInformation"`
	Repositories          []string            `json:"repositories"`
	Contributions         *[]app.Contribution `json:"contributions,omitempty"`
}

// newProjectResponse maps project to response. Contributions field is left out unless withContributions is set.
func newProjectResponse(p app.Project, withContributions bool) projectResponse {
	info := p.AdditionalInfo
	if info == nil {
		info = map[string]string{}
	}
	repos := p.RepositoryPatterns
	if repos == nil {
		repos = []string{}
	}

	response := projectResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		Visible:               p.Visible,
		Index:                 p.OrderIndex,
		AdditionalInformation: info,
		Repositories:          repos,
	}
	if withContributions {
		contributions := p.Contributions
		if contributions == nil {
			contributions = []app.Contribution{}
		}
		response.Contributions = &contributions
	}

	return response
}

type projectRequest struct {
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	Visible               *bool             `json:"visible"`
	Index                 *int              `json:"index"`
	AdditionalInformation map[string]string `json:"additionalInformation"`
	Repositories          []string          `json:"repositories"`
}

func (pr projectRequest) toProject() app.Project {
	p := app.Project{
		Name:               pr.Name,
		Description:        pr.Description,
		Visible:            true,
		AdditionalInfo:     pr.AdditionalInformation,
		RepositoryPatterns: pr.Repositories,
	}
	if pr.Visible != nil {
		p.Visible = *pr.Visible
	}
	if pr.Index != nil {
		p.OrderIndex = *pr.Index
	}

	return p
}

func (pr projectRequest) toChanges() app.ProjectChanges {
	return app.ProjectChanges{
		Name:               pr.Name,
		Description:        pr.Description,
		AdditionalInfo:     pr.AdditionalInformation,
		RepositoryPatterns: pr.Repositories,
		Visible:            pr.Visible,
		OrderIndex:         pr.Index,
	}
}

type indexRequest struct {
	Index *int `json:"index"`
}

// NewProjectsHandler creates handlerfunc returning list of projects.
// Hidden projects are listed only when includeHidden is set.
func NewProjectsHandler(includeHidden bool, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := app.ProjectsQuery{
			IncludeHidden:        includeHidden,
			IncludeContributions: getBoolParam(r, "includeContributions", true),
			Page:                 getIntParam(r, "page", defaultHandlerPageValue),
			Size:                 getIntParam(r, "size", defaultHandlerSizeValue),
		}
		if q.Size > maxHandlerSizeValue {
			q.Size = maxHandlerSizeValue
		}

		projects, err := service.Projects(r.Context(), q)
		if err != nil {
			writeError(w, err, l)
			return
		}

		response := make([]projectResponse, 0, len(projects))
		for _, p := range projects {
			response = append(response, newProjectResponse(p, q.IncludeContributions))
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// NewProjectHandler creates handlerfunc returning single project.
func NewProjectHandler(getID func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := service.Project(r.Context(), getID(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newProjectResponse(*project, true))
	}
}

// NewCreateProjectHandler creates handlerfunc storing new project.
func NewCreateProjectHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, err, l)
			return
		}

		project, err := service.CreateProject(r.Context(), req.toProject())
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusCreated, newProjectResponse(*project, true))
	}
}

// NewUpdateProjectHandler creates handlerfunc replacing project's editable fields.
func NewUpdateProjectHandler(getID func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, err, l)
			return
		}

		project, err := service.UpdateProject(r.Context(), getID(r), req.toChanges())
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newProjectResponse(*project, true))
	}
}

// NewDeleteProjectHandler creates handlerfunc removing project.
func NewDeleteProjectHandler(getID func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteProject(r.Context(), getID(r)); err != nil {
			writeError(w, err, l)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewProjectIndexHandler creates handlerfunc setting project's sort index.
func NewProjectIndexHandler(getID func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req indexRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, err, l)
			return
		}
		if req.Index == nil {
			writeError(w, app.InvalidRequestError("index is required"), l)
			return
		}

		project, err := service.UpdateProjectIndex(r.Context(), getID(r), *req.Index)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newProjectResponse(*project, true))
	}
}

// NewProjectVisibilityHandler creates handlerfunc toggling project's visibility.
func NewProjectVisibilityHandler(getID func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := service.ToggleProjectVisibility(r.Context(), getID(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newProjectResponse(*project, true))
	}
}

// NewUnassignedContributionsHandler creates handlerfunc returning contributions not matching any project.
func NewUnassignedContributionsHandler(service Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contributions := service.UnassignedContributions()
		if contributions == nil {
			contributions = []app.Contribution{}
		}

		writeJSON(w, http.StatusOK, contributions)
	}
}

// NewReconcileHandler creates handlerfunc running reconciliation pass.
func NewReconcileHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Reconcile(r.Context())
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		l.Errorf("handler error: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := jsoniter.ConfigFastest.NewDecoder(body).Decode(v); err != nil {
		return app.InvalidRequestError("invalid request body: " + err.Error())
	}
	return nil
}

func getIntParam(r *http.Request, name string, defaultValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil && v >= 0 {
			value = v
		}
	}

	return value
}

func getBoolParam(r *http.Request, name string, defaultValue bool) bool {
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.ParseBool(vs); err == nil {
			return v
		}
	}

	return defaultValue
}
