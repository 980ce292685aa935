package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

// BrochureRenderer turns the brochure HTML into PDF bytes. Implemented by
// the headless-chrome renderer in infra/pdf.
type BrochureRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// BrochureComposer builds the brochure HTML for a project.
type BrochureComposer interface {
	Compose(project *entity.Project, plots []*entity.Plot) (string, error)
}

type ProjectHandler struct {
	Projects usecase.ProjectRepository
	Plots    usecase.PlotRepository
	Composer BrochureComposer
	Renderer BrochureRenderer
	Log      *zap.SugaredLogger
}

func NewProjectHandler(projects usecase.ProjectRepository, plots usecase.PlotRepository, composer BrochureComposer, renderer BrochureRenderer, log *zap.SugaredLogger) *ProjectHandler {
	return &ProjectHandler{Projects: projects, Plots: plots, Composer: composer, Renderer: renderer, Log: log}
}

func (h *ProjectHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/brochure.pdf", h.Brochure)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		writeError(w, h.Log, &usecase.StorageError{Op: "list projects", Err: err})
		return
	}
	if projects == nil {
		projects = []*entity.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := h.Projects.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, h.Log, &usecase.StorageError{Op: "find project", Err: err})
		return
	}
	if project == nil {
		writeError(w, h.Log, &usecase.NotFoundError{Entity: "project", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Brochure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := h.Projects.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, h.Log, &usecase.StorageError{Op: "find project", Err: err})
		return
	}
	if project == nil {
		writeError(w, h.Log, &usecase.NotFoundError{Entity: "project", ID: id})
		return
	}

	plots, err := h.Plots.List(r.Context(), id, "")
	if err != nil {
		writeError(w, h.Log, &usecase.StorageError{Op: "list plots", Err: err})
		return
	}

	html, err := h.Composer.Compose(project, plots)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	pdf, err := h.Renderer.RenderPDF(r.Context(), html)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="brochure.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

type PlotHandler struct {
	Plots usecase.PlotRepository
	Log   *zap.SugaredLogger
}

func NewPlotHandler(plots usecase.PlotRepository, log *zap.SugaredLogger) *PlotHandler {
	return &PlotHandler{Plots: plots, Log: log}
}

func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && status != "all" && !entity.ValidPlotStatuses[status] {
		writeError(w, h.Log, &usecase.ValidationError{Field: "status", Message: "is not a recognized plot status"})
		return
	}

	plots, err := h.Plots.List(r.Context(), r.URL.Query().Get("projectId"), status)
	if err != nil {
		writeError(w, h.Log, &usecase.StorageError{Op: "list plots", Err: err})
		return
	}
	if plots == nil {
		plots = []*entity.Plot{}
	}
	writeJSON(w, http.StatusOK, plots)
}
