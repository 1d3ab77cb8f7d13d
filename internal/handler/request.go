package handler

// CreateUserRequest represents request body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// CreateProjectRequest represents request body for POST /projects.
type CreateProjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Owner string `json:"owner"`
}

// ForkRequest represents request body for POST /projects/:id/fork.
type ForkRequest struct {
	User string `json:"user" binding:"required"`
}

// OpenPRRequest represents request body for POST /projects/:id/pull-requests.
type OpenPRRequest struct {
	SourceProjectID int64   `json:"source_project_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	StartID         *string `json:"start_id"`
	StopID          string  `json:"stop_id" binding:"required"`
	Author          string  `json:"author" binding:"required"`
}

// ClosePRRequest represents request body for POST .../close.
type ClosePRRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}

// AddCommentRequest represents request body for POST .../comments.
type AddCommentRequest struct {
	CommitID string `json:"commit_id" binding:"required"`
	Line     *int   `json:"line"`
	Comment  string `json:"comment" binding:"required"`
	Author   string `json:"author" binding:"required"`
	ParentID *int64 `json:"parent_id"`
}
