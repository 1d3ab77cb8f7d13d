package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/service"
)

// IdentityServiceInterface defines the interface for user and project operations.
type IdentityServiceInterface interface {
	GetOrCreateUser(ctx context.Context, name string) (*domain.User, error)
	SetUserEmail(ctx context.Context, name, email string) (*domain.User, error)
	GetOrCreateProject(ctx context.Context, name, owner string) (*domain.Project, error)
	FindProject(ctx context.Context, name, owner string) (*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
}

// ForkServiceInterface defines the interface for fork operations.
type ForkServiceInterface interface {
	Fork(ctx context.Context, userName string, sourceID int64) (*domain.Project, error)
	DeleteFork(ctx context.Context, id int64) error
	ListForks(ctx context.Context, id int64) ([]domain.Project, error)
	ListAllForks(ctx context.Context) ([]domain.Project, error)
}

// PRServiceInterface defines the interface for pull request operations.
type PRServiceInterface interface {
	Open(ctx context.Context, in service.OpenPullRequestInput) (*domain.PullRequest, error)
	Lookup(ctx context.Context, projectID, displayID int64) (*domain.PullRequest, error)
	List(ctx context.Context, f service.ListFilter) ([]domain.PullRequest, error)
	Close(ctx context.Context, id int64, resolution domain.PRStatus) (*domain.PullRequest, error)
}

// CommentServiceInterface defines the interface for review comment operations.
type CommentServiceInterface interface {
	AddComment(ctx context.Context, in service.AddCommentInput) (*domain.Comment, error)
	Threads(ctx context.Context, prID int64) ([]*domain.CommentNode, error)
}

// StatsServiceInterface defines the interface for statistics.
type StatsServiceInterface interface {
	GetStatistics(ctx context.Context) (*service.Stats, error)
}
