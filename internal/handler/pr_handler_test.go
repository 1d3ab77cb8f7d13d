package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/handler"
	"github.com/fedora-infra/spechub/internal/handler/mocks"
	"github.com/fedora-infra/spechub/internal/service"
)

func samplePR() *domain.PullRequest {
	return &domain.PullRequest{
		ID:            14,
		DisplayID:     3,
		ProjectID:     1,
		ProjectIDFrom: 2,
		Title:         "Fix the tray icon",
		StopID:        "abc123",
		UserID:        7,
		Status:        domain.StatusOpen,
		CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPRHandler_OpenPR(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockPRServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - opens pull request",
			requestBody: map[string]any{
				"source_project_id": 2,
				"title":             "Fix the tray icon",
				"stop_id":           "abc123",
				"author":            "pingou",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().Open(gomock.Any(), service.OpenPullRequestInput{
					TargetProjectID: 1,
					SourceProjectID: 2,
					Title:           "Fix the tray icon",
					StopID:          "abc123",
					Author:          "pingou",
				}).Return(samplePR(), nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeSuccess(t, w)
				require.NotNil(t, resp.PR)
				assert.Equal(t, int64(3), resp.PR.DisplayID)
				assert.Equal(t, "Open", resp.PR.Status)
				assert.Equal(t, "2024-03-01T12:00:00Z", resp.PR.CreatedAt)
				assert.Empty(t, resp.PR.ClosedAt)
			},
		},
		{
			name:           "error - invalid request body",
			requestBody:    map[string]any{"title": "no stop"},
			mockSetup:      func(m *mocks.MockPRServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "invalid request body", decodeError(t, w).Error.Message)
			},
		},
		{
			name: "error - duplicate request",
			requestBody: map[string]any{
				"source_project_id": 2,
				"title":             "again",
				"stop_id":           "abc123",
				"author":            "pingou",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, service.ErrDuplicateRequest)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorDuplicateRequest, decodeError(t, w).Error.Code)
			},
		},
		{
			name: "error - author not found",
			requestBody: map[string]any{
				"source_project_id": 2,
				"title":             "t",
				"stop_id":           "abc123",
				"author":            "nobody",
			},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, service.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "user not found", decodeError(t, w).Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prs := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(prs)

			h := handler.NewPRHandler(prs, mocks.NewMockCommentServiceInterface(ctrl))
			w := serve(t, http.MethodPost, "/projects/:id/pull-requests", "/projects/1/pull-requests", tt.requestBody, h.OpenPR)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestPRHandler_ListPRs(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockPRServiceInterface)
		expectedStatus int
	}{
		{
			name:  "success - filters by status and source",
			query: "?status=Merged&from=2",
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().List(gomock.Any(), service.ListFilter{
					ProjectID:     ptr(int64(1)),
					ProjectIDFrom: ptr(int64(2)),
					Status:        ptr(domain.StatusMerged),
				}).Return([]domain.PullRequest{*samplePR()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "success - no filters",
			query: "",
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().List(gomock.Any(), service.ListFilter{ProjectID: ptr(int64(1))}).Return([]domain.PullRequest{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - unknown status",
			query:          "?status=Closed",
			mockSetup:      func(m *mocks.MockPRServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - malformed source",
			query:          "?from=abc",
			mockSetup:      func(m *mocks.MockPRServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prs := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(prs)

			h := handler.NewPRHandler(prs, mocks.NewMockCommentServiceInterface(ctrl))
			w := serve(t, http.MethodGet, "/projects/:id/pull-requests", "/projects/1/pull-requests"+tt.query, nil, h.ListPRs)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				var resp handler.PRListResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotNil(t, resp.PullRequests)
			}
		})
	}
}

func TestPRHandler_GetPR(t *testing.T) {
	ctrl := gomock.NewController(t)
	prs := mocks.NewMockPRServiceInterface(ctrl)
	prs.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
	prs.EXPECT().Lookup(gomock.Any(), int64(1), int64(4)).Return(nil, service.ErrPRNotFound)

	h := handler.NewPRHandler(prs, mocks.NewMockCommentServiceInterface(ctrl))

	w := serve(t, http.MethodGet, "/projects/:id/pull-requests/:display_id", "/projects/1/pull-requests/3", nil, h.GetPR)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(14), decodeSuccess(t, w).PR.ID)

	w = serve(t, http.MethodGet, "/projects/:id/pull-requests/:display_id", "/projects/1/pull-requests/4", nil, h.GetPR)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, http.MethodGet, "/projects/:id/pull-requests/:display_id", "/projects/1/pull-requests/x", nil, h.GetPR)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPRHandler_ClosePR(t *testing.T) {
	closedAt := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(*mocks.MockPRServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success - merges",
			requestBody: map[string]any{"resolution": "Merged"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				merged := samplePR()
				merged.Status = domain.StatusMerged
				merged.ClosedAt = &closedAt
				m.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
				m.EXPECT().Close(gomock.Any(), int64(14), domain.StatusMerged).Return(merged, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "error - resolution is not a closed status",
			requestBody: map[string]any{"resolution": "Open"},
			mockSetup: func(m *mocks.MockPRServiceInterface) {
				m.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
				m.EXPECT().Close(gomock.Any(), int64(14), domain.StatusOpen).Return(nil, service.ErrInvalidResolution)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - missing resolution",
			requestBody:    map[string]any{},
			mockSetup:      func(m *mocks.MockPRServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prs := mocks.NewMockPRServiceInterface(ctrl)
			tt.mockSetup(prs)

			h := handler.NewPRHandler(prs, mocks.NewMockCommentServiceInterface(ctrl))
			w := serve(t, http.MethodPost, "/projects/:id/pull-requests/:display_id/close",
				"/projects/1/pull-requests/3/close", tt.requestBody, h.ClosePR)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				resp := decodeSuccess(t, w)
				assert.Equal(t, "Merged", resp.PR.Status)
				assert.Equal(t, "2024-03-02T08:30:00Z", resp.PR.ClosedAt)
			}
		})
	}
}

func TestPRHandler_Comments(t *testing.T) {
	route := "/projects/:id/pull-requests/:display_id/comments"
	target := "/projects/1/pull-requests/3/comments"

	t.Run("success - adds whole-commit comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prs := mocks.NewMockPRServiceInterface(ctrl)
		comments := mocks.NewMockCommentServiceInterface(ctrl)

		prs.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
		comments.EXPECT().AddComment(gomock.Any(), service.AddCommentInput{
			PullRequestID: 14,
			CommitID:      "abc123",
			Body:          "looks good",
			Author:        "pingou",
		}).Return(&domain.Comment{ID: 1, PullRequestID: 14, CommitID: "abc123", Author: "pingou", Body: "looks good"}, nil)

		h := handler.NewPRHandler(prs, comments)
		w := serve(t, http.MethodPost, route, target, map[string]any{
			"commit_id": "abc123",
			"comment":   "looks good",
			"author":    "pingou",
		}, h.AddComment)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeSuccess(t, w)
		require.NotNil(t, resp.Comment)
		assert.Nil(t, resp.Comment.Line)
		assert.Equal(t, "looks good", resp.Comment.Body)
	})

	t.Run("error - parent on another pull request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prs := mocks.NewMockPRServiceInterface(ctrl)
		comments := mocks.NewMockCommentServiceInterface(ctrl)

		prs.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
		comments.EXPECT().AddComment(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidParent)

		h := handler.NewPRHandler(prs, comments)
		w := serve(t, http.MethodPost, route, target, map[string]any{
			"commit_id": "abc123",
			"line":      4,
			"comment":   "reply",
			"author":    "pingou",
			"parent_id": 99,
		}, h.AddComment)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, handler.ErrorInvalidParent, decodeError(t, w).Error.Code)
	})

	t.Run("success - lists threads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prs := mocks.NewMockPRServiceInterface(ctrl)
		comments := mocks.NewMockCommentServiceInterface(ctrl)

		prs.EXPECT().Lookup(gomock.Any(), int64(1), int64(3)).Return(samplePR(), nil)
		comments.EXPECT().Threads(gomock.Any(), int64(14)).Return(domain.BuildThreads([]domain.Comment{
			{ID: 1, Body: "root"},
			{ID: 2, Body: "reply", ParentID: ptr(int64(1))},
		}), nil)

		h := handler.NewPRHandler(prs, comments)
		w := serve(t, http.MethodGet, route, target, nil, h.ListComments)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.ThreadsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Comments, 1)
		require.Len(t, resp.Comments[0].Replies, 1)
		assert.Equal(t, "reply", resp.Comments[0].Replies[0].Body)
	})
}
