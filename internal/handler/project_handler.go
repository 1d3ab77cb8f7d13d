package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project and fork HTTP requests.
type ProjectHandler struct {
	identity IdentityServiceInterface
	forks    ForkServiceInterface
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(identity IdentityServiceInterface, forks ForkServiceInterface) *ProjectHandler {
	return &ProjectHandler{identity: identity, forks: forks}
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	p, err := h.identity.GetOrCreateProject(c.Request.Context(), req.Name, req.Owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Project: toProjectResponse(p)})
}

// FindProject handles GET /projects?name=&owner=.
func (h *ProjectHandler) FindProject(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		BadRequest(c, ErrorInvalidInput, "name parameter is required")
		return
	}

	p, err := h.identity.FindProject(c.Request.Context(), name, c.Query("owner"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Project: toProjectResponse(p)})
}

// GetProject handles GET /projects/:id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.identity.GetProject(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Project: toProjectResponse(p)})
}

// Fork handles POST /projects/:id/fork.
func (h *ProjectHandler) Fork(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ForkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	fork, err := h.forks.Fork(c.Request.Context(), req.User, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Project: toProjectResponse(fork)})
}

// ListForks handles GET /projects/:id/forks.
func (h *ProjectHandler) ListForks(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	forks, err := h.forks.ListForks(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectList(forks))
}

// ListAllForks handles GET /forks.
func (h *ProjectHandler) ListAllForks(c *gin.Context) {
	forks, err := h.forks.ListAllForks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectList(forks))
}

// DeleteFork handles DELETE /forks/:id.
func (h *ProjectHandler) DeleteFork(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.forks.DeleteFork(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
