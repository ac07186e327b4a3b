package updateme

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// MockService реализует интерфейс updateme.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateMe(ctx context.Context, userUID string, name *string, tags []models.Tag) (*models.User, error) {
	args := m.Called(ctx, userUID, name, tags)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestUpdateMeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	testUser := &models.User{UID: "user-uid-123", Email: "test@example.com"}

	tests := []struct {
		name           string
		body           string
		noUser         bool
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "name update",
			body: `{"name":"new name"}`,
			setupMock: func(m *MockService) {
				newName := "new name"
				m.On("UpdateMe", mock.Anything, "user-uid-123", &newName, []models.Tag(nil)).
					Return(&models.User{UID: "user-uid-123", Name: "new name"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"new name"`,
		},
		{
			name: "tags update",
			body: `{"tags":[{"title":"running","color":"#FFA500"}]}`,
			setupMock: func(m *MockService) {
				tags := []models.Tag{{Title: "running", Color: "#FFA500"}}
				m.On("UpdateMe", mock.Anything, "user-uid-123", (*string)(nil), tags).
					Return(&models.User{UID: "user-uid-123", Tags: tags}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"running"`,
		},
		{
			name:           "password field rejected before any store access",
			body:           `{"name":"new name","password":"newpassword123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "this route is not for password updates",
		},
		{
			name:           "passwordConfirm alone also rejected",
			body:           `{"passwordConfirm":"newpassword123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "this route is not for password updates",
		},
		{
			name:           "broken json",
			body:           `{"name":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "no user in context",
			body:           `{"name":"new name"}`,
			noUser:         true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "you are not logged in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, response.NewRenderer(false))

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/user/updateMe", strings.NewReader(tt.body))
			if !tt.noUser {
				req = req.WithContext(middlewarectx.ContextWithUser(req.Context(), testUser))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
