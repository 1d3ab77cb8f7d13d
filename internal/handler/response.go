package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/service"
)

// ErrorCode is the machine readable part of an error response.
type ErrorCode string

const (
	ErrorNotFound          ErrorCode = "NOT_FOUND"
	ErrorAlreadyExists     ErrorCode = "ALREADY_EXISTS"
	ErrorDuplicateRequest  ErrorCode = "DUPLICATE_REQUEST"
	ErrorProjectInUse      ErrorCode = "PROJECT_IN_USE"
	ErrorEmailTaken        ErrorCode = "EMAIL_TAKEN"
	ErrorSelfFork          ErrorCode = "SELF_FORK"
	ErrorInvalidParent     ErrorCode = "INVALID_PARENT"
	ErrorNotAFork          ErrorCode = "NOT_A_FORK"
	ErrorInvalidResolution ErrorCode = "INVALID_RESOLUTION"
	ErrorInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrorStorageDrift      ErrorCode = "STORAGE_DRIFT"
	ErrorInternal          ErrorCode = "INTERNAL"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// SuccessResponse represents success response structure.
type SuccessResponse struct {
	User    *domain.User     `json:"user,omitempty"`
	Project *ProjectResponse `json:"project,omitempty"`
	PR      *PRResponse      `json:"pull_request,omitempty"`
	Comment *domain.Comment  `json:"comment,omitempty"`
}

// ProjectResponse wraps project data.
type ProjectResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FullName  string `json:"fullname"`
	Owner     string `json:"owner,omitempty"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	IsFork    bool   `json:"is_fork"`
	CreatedAt string `json:"created_at"`
}

// ProjectListResponse wraps a list of projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// PRResponse wraps pull request data.
type PRResponse struct {
	ID            int64   `json:"id"`
	DisplayID     int64   `json:"display_id"`
	ProjectID     int64   `json:"project_id"`
	ProjectIDFrom int64   `json:"project_id_from"`
	Title         string  `json:"title"`
	StartID       *string `json:"start_id,omitempty"`
	StopID        string  `json:"stop_id"`
	UserID        int64   `json:"user_id"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	ClosedAt      string  `json:"closed_at,omitempty"`
}

// PRListResponse wraps a list of pull requests.
type PRListResponse struct {
	PullRequests []PRResponse `json:"pull_requests"`
}

// ThreadsResponse wraps the comment trees of a pull request.
type ThreadsResponse struct {
	Comments []*domain.CommentNode `json:"comments"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, ErrorInternal, message, http.StatusInternalServerError)
}

// writeError maps a service error to its HTTP response.
func writeError(c *gin.Context, err error) {
	var drift *service.StorageProvisioningError
	switch {
	case errors.As(err, &drift):
		Error(c, ErrorStorageDrift, err.Error(), http.StatusInternalServerError)
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		Conflict(c, ErrorAlreadyExists, err.Error())
	case errors.Is(err, service.ErrDuplicateRequest):
		Conflict(c, ErrorDuplicateRequest, err.Error())
	case errors.Is(err, service.ErrProjectInUse):
		Conflict(c, ErrorProjectInUse, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		Conflict(c, ErrorEmailTaken, err.Error())
	case errors.Is(err, service.ErrSelfFork):
		BadRequest(c, ErrorSelfFork, err.Error())
	case errors.Is(err, service.ErrInvalidParent):
		BadRequest(c, ErrorInvalidParent, err.Error())
	case errors.Is(err, service.ErrNotAFork):
		BadRequest(c, ErrorNotAFork, err.Error())
	case errors.Is(err, service.ErrInvalidResolution):
		BadRequest(c, ErrorInvalidResolution, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		BadRequest(c, ErrorInvalidInput, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// paramID parses a positive integer path parameter, answering 400 when it is malformed.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, ErrorInvalidInput, "invalid "+name)
		return 0, false
	}
	return id, true
}

func toProjectResponse(p *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		FullName:  p.FullName(),
		Owner:     p.Owner,
		ParentID:  p.ParentID,
		IsFork:    p.IsFork(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toProjectList(projects []domain.Project) ProjectListResponse {
	resp := ProjectListResponse{Projects: make([]ProjectResponse, 0, len(projects))}
	for i := range projects {
		resp.Projects = append(resp.Projects, *toProjectResponse(&projects[i]))
	}
	return resp
}

func toPRResponse(p *domain.PullRequest) *PRResponse {
	resp := &PRResponse{
		ID:            p.ID,
		DisplayID:     p.DisplayID,
		ProjectID:     p.ProjectID,
		ProjectIDFrom: p.ProjectIDFrom,
		Title:         p.Title,
		StartID:       p.StartID,
		StopID:        p.StopID,
		UserID:        p.UserID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.ClosedAt != nil {
		resp.ClosedAt = p.ClosedAt.Format(time.RFC3339)
	}
	return resp
}
