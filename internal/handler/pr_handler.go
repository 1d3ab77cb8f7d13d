package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/service"
)

// PRHandler handles pull request and review comment HTTP requests.
// Pull requests are addressed by target project and display id.
type PRHandler struct {
	prService      PRServiceInterface
	commentService CommentServiceInterface
}

// NewPRHandler creates a new PR handler.
func NewPRHandler(prService PRServiceInterface, commentService CommentServiceInterface) *PRHandler {
	return &PRHandler{prService: prService, commentService: commentService}
}

// OpenPR handles POST /projects/:id/pull-requests.
func (h *PRHandler) OpenPR(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req OpenPRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	pr, err := h.prService.Open(c.Request.Context(), service.OpenPullRequestInput{
		TargetProjectID: projectID,
		SourceProjectID: req.SourceProjectID,
		Title:           req.Title,
		StartID:         req.StartID,
		StopID:          req.StopID,
		Author:          req.Author,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{PR: toPRResponse(pr)})
}

// ListPRs handles GET /projects/:id/pull-requests?status=&from=.
func (h *PRHandler) ListPRs(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	filter := service.ListFilter{ProjectID: &projectID}
	if s := c.Query("status"); s != "" {
		status, err := domain.NewPRStatus(s)
		if err != nil {
			BadRequest(c, ErrorInvalidInput, err.Error())
			return
		}
		filter.Status = &status
	}
	if from := c.Query("from"); from != "" {
		fromID, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			BadRequest(c, ErrorInvalidInput, "invalid from")
			return
		}
		filter.ProjectIDFrom = &fromID
	}

	prs, err := h.prService.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := PRListResponse{PullRequests: make([]PRResponse, 0, len(prs))}
	for i := range prs {
		resp.PullRequests = append(resp.PullRequests, *toPRResponse(&prs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetPR handles GET /projects/:id/pull-requests/:display_id.
func (h *PRHandler) GetPR(c *gin.Context) {
	pr, ok := h.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{PR: toPRResponse(pr)})
}

// ClosePR handles POST /projects/:id/pull-requests/:display_id/close.
// Idempotent: closing a closed request returns its current state.
func (h *PRHandler) ClosePR(c *gin.Context) {
	var req ClosePRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	pr, ok := h.lookup(c)
	if !ok {
		return
	}

	closed, err := h.prService.Close(c.Request.Context(), pr.ID, domain.PRStatus(req.Resolution))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{PR: toPRResponse(closed)})
}

// AddComment handles POST /projects/:id/pull-requests/:display_id/comments.
func (h *PRHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	pr, ok := h.lookup(c)
	if !ok {
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), service.AddCommentInput{
		PullRequestID: pr.ID,
		CommitID:      req.CommitID,
		Line:          req.Line,
		Body:          req.Comment,
		Author:        req.Author,
		ParentID:      req.ParentID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Comment: comment})
}

// ListComments handles GET /projects/:id/pull-requests/:display_id/comments.
func (h *PRHandler) ListComments(c *gin.Context) {
	pr, ok := h.lookup(c)
	if !ok {
		return
	}

	threads, err := h.commentService.Threads(c.Request.Context(), pr.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ThreadsResponse{Comments: threads})
}

// lookup resolves the pull request named by the :id and :display_id parameters.
func (h *PRHandler) lookup(c *gin.Context) (*domain.PullRequest, bool) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	displayID, ok := paramID(c, "display_id")
	if !ok {
		return nil, false
	}

	pr, err := h.prService.Lookup(c.Request.Context(), projectID, displayID)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return pr, true
}
