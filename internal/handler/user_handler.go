package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	identity IdentityServiceInterface
}

// NewUserHandler creates a new user handler.
func NewUserHandler(identity IdentityServiceInterface) *UserHandler {
	return &UserHandler{identity: identity}
}

// CreateUser handles POST /users.
// The user is created on first reference; an email, when given, is recorded as its fallback identity.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrorInvalidInput, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	user, err := h.identity.GetOrCreateUser(ctx, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Email != "" {
		user, err = h.identity.SetUserEmail(ctx, req.Name, req.Email)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, SuccessResponse{User: user})
}
