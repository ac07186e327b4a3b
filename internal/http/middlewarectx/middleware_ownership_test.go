package middlewarectx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

const (
	ownerUID    = "0b946bd8-02f3-4a72-a942-0b71ea9c2958"
	strangerUID = "5f0d4096-6792-4a3a-bb1c-84b37c9a7e7a"
	dayUID      = "c56a4180-65aa-42ec-a945-5fd21dec0538"
	missingUID  = "3c3aadf7-6667-43a9-b16c-a7b6c1b77a1a"
)

func ownershipOpts() middlewarectx.OwnershipOptions {
	return middlewarectx.OwnershipOptions{
		Resource: "day",
		Source:   middlewarectx.SourceParams,
		IDField:  "dayId",
	}
}

func loadDayStub(ctx context.Context, uid string) (middlewarectx.Owned, error) {
	if uid == dayUID {
		return &models.Day{UID: dayUID, UserUID: ownerUID}, nil
	}
	return nil, errs.ErrNotFound
}

func requestWithParam(userUID, id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/day/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("dayId", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userUID != "" {
		ctx = middlewarectx.ContextWithUser(ctx, &models.User{UID: userUID})
	}
	return req.WithContext(ctx)
}

func TestOwnership(t *testing.T) {
	tests := []struct {
		name           string
		userUID        string
		resourceID     string
		wantStatusCode int
		wantCalled     bool
		wantBody       string
	}{
		{
			name:           "owner passes through",
			userUID:        ownerUID,
			resourceID:     dayUID,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "stranger gets 403",
			userUID:        strangerUID,
			resourceID:     dayUID,
			wantStatusCode: http.StatusForbidden,
			wantBody:       "you do not have permission to perform this action",
		},
		{
			name:           "missing resource gets 404",
			userUID:        ownerUID,
			resourceID:     missingUID,
			wantStatusCode: http.StatusNotFound,
			wantBody:       "'day' does not exist",
		},
		{
			name:           "malformed id gets 400",
			userUID:        ownerUID,
			resourceID:     "not-a-uuid",
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "invalid day id",
		},
		{
			name:           "unauthenticated request gets 401",
			userUID:        "",
			resourceID:     dayUID,
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       "you are not logged in, please log in to get access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				res, ok := middlewarectx.ResourceFromContext(r.Context(), "day")
				assert.True(t, ok)
				assert.Equal(t, dayUID, res.(*models.Day).UID)
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.Ownership(newNoopLogger(), response.NewRenderer(false), loadDayStub, ownershipOpts())(next)

			w := httptest.NewRecorder()
			mw.ServeHTTP(w, requestWithParam(tt.userUID, tt.resourceID))

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOwnership_IDFromBody(t *testing.T) {
	opts := middlewarectx.OwnershipOptions{
		Resource: "day",
		Source:   middlewarectx.SourceBody,
		IDField:  "dayId",
	}

	body := `{"dayId":"` + dayUID + `","title":"still readable"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/day/lookup", strings.NewReader(body))
	req = req.WithContext(middlewarectx.ContextWithUser(req.Context(), &models.User{UID: ownerUID}))

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		seenBody = string(raw)
		w.WriteHeader(http.StatusOK)
	})

	mw := middlewarectx.Ownership(newNoopLogger(), response.NewRenderer(false), loadDayStub, opts)(next)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Тело буферизуется обратно и доступно обработчику целиком.
	assert.Equal(t, body, seenBody)
}
