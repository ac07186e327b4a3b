package login

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

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	testUser := &models.User{
		UID:          "user-uid-123",
		Name:         "testuser",
		Email:        "test@example.com",
		PasswordHash: "$2a$12$secret-hash",
		Role:         models.RoleUser,
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
		wantCookie     bool
	}{
		{
			name: "successful login",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").
					Return(testUser, "jwt-token-123", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"jwt-token-123"`,
			wantCookie:     true,
		},
		{
			name:           "missing password",
			body:           `{"email":"test@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "please provide email and password",
		},
		{
			name:           "missing email",
			body:           `{"password":"password123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "please provide email and password",
		},
		{
			name: "wrong credentials",
			body: `{"email":"test@example.com","password":"wrongpassword"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "test@example.com", "wrongpassword").
					Return(nil, "", errs.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "incorrect email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, response.NewRenderer(false), cookiejwt.Options{TTLDays: 90})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "secret-hash")

			cookies := w.Result().Cookies()
			if tt.wantCookie {
				assert.Len(t, cookies, 1)
				assert.Equal(t, cookiejwt.Name, cookies[0].Name)
			} else {
				assert.Empty(t, cookies)
			}

			mockService.AssertExpectations(t)
		})
	}
}
