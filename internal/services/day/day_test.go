package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// Мок для DayRepository
type DayRepoMock struct {
	mock.Mock
}

func (m *DayRepoMock) CreateDay(ctx context.Context, day models.Day) (*models.Day, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *DayRepoMock) GetDayByUID(ctx context.Context, dayUID string) (*models.Day, error) {
	args := m.Called(ctx, dayUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *DayRepoMock) ListDays(ctx context.Context, userUID string, start, end time.Time) ([]*models.Day, error) {
	args := m.Called(ctx, userUID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Day), args.Error(1)
}

func (m *DayRepoMock) UpdateDay(ctx context.Context, dayUID string, title *string, entries []models.Entry) (*models.Day, error) {
	args := m.Called(ctx, dayUID, title, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *DayRepoMock) ReplaceEntries(ctx context.Context, dayUID string, entries []models.Entry) (*models.Day, error) {
	args := m.Called(ctx, dayUID, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *DayRepoMock) DeleteDay(ctx context.Context, dayUID string) error {
	args := m.Called(ctx, dayUID)
	return args.Error(0)
}

func newTestService(repo *DayRepoMock, now time.Time) *DayService {
	svc := NewDayService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDayService_Create(t *testing.T) {
	now := time.Date(2024, 5, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		dateStr    string
		entries    []models.Entry
		setupMocks func(r *DayRepoMock)
		wantErr    bool
		errIs      error
	}{
		{
			name:    "empty date means today",
			dateStr: "",
			setupMocks: func(r *DayRepoMock) {
				r.On("CreateDay", mock.Anything, mock.MatchedBy(func(day models.Day) bool {
					return day.Date.Equal(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)) &&
						day.UserUID == "user-uid-123" &&
						day.UID != ""
				})).Return(&models.Day{UID: "day-uid"}, nil).Once()
			},
		},
		{
			name:    "explicit date is normalized to start of day",
			dateStr: "2024-05-10",
			setupMocks: func(r *DayRepoMock) {
				r.On("CreateDay", mock.Anything, mock.MatchedBy(func(day models.Day) bool {
					return day.Date.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
				})).Return(&models.Day{UID: "day-uid"}, nil).Once()
			},
		},
		{
			name:    "entry tags are lowercased",
			dateStr: "2024-05-10",
			entries: []models.Entry{{Text: "ran 5k", Tag: "Health"}},
			setupMocks: func(r *DayRepoMock) {
				r.On("CreateDay", mock.Anything, mock.MatchedBy(func(day models.Day) bool {
					return len(day.Entries) == 1 && day.Entries[0].Tag == "health"
				})).Return(&models.Day{UID: "day-uid"}, nil).Once()
			},
		},
		{
			name:       "future date rejected",
			dateStr:    "2024-05-18",
			setupMocks: func(_ *DayRepoMock) {},
			wantErr:    true,
			errIs:      errs.ErrFutureDate,
		},
		{
			name:       "malformed date rejected",
			dateStr:    "17-05-2024",
			setupMocks: func(_ *DayRepoMock) {},
			wantErr:    true,
		},
		{
			name:    "duplicate date rejected by storage",
			dateStr: "2024-05-10",
			setupMocks: func(r *DayRepoMock) {
				r.On("CreateDay", mock.Anything, mock.Anything).Return(nil, errs.ErrAlreadyExists).Once()
			},
			wantErr: true,
			errIs:   errs.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(DayRepoMock)
			svc := newTestService(repo, now)

			tt.setupMocks(repo)

			day, err := svc.Create(context.Background(), "user-uid-123", tt.dateStr, "some title", tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, day)
			}

			repo.AssertExpectations(t)
		})
	}
}

// Разные моменты одних календарных суток UTC нормализуются в одну дату.
func TestDayService_Create_SameDayCollision(t *testing.T) {
	now := time.Date(2024, 5, 17, 23, 30, 0, 0, time.UTC)
	repo := new(DayRepoMock)
	svc := newTestService(repo, now)

	wantDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	repo.On("CreateDay", mock.Anything, mock.MatchedBy(func(day models.Day) bool {
		return day.Date.Equal(wantDate)
	})).Return(&models.Day{UID: "first"}, nil).Once()
	repo.On("CreateDay", mock.Anything, mock.MatchedBy(func(day models.Day) bool {
		return day.Date.Equal(wantDate)
	})).Return(nil, errs.ErrAlreadyExists).Once()

	_, err := svc.Create(context.Background(), "user-uid-123", "", "evening", nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "user-uid-123", "2024-05-17", "explicit", nil)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	repo.AssertExpectations(t)
}

func TestDayService_CurrentMonth(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	repo := new(DayRepoMock)
	svc := newTestService(repo, now)

	wantStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	days := []*models.Day{{UID: "day-uid"}}
	repo.On("ListDays", mock.Anything, "user-uid-123", wantStart, wantEnd).Return(days, nil).Once()

	got, err := svc.CurrentMonth(context.Background(), "user-uid-123")
	require.NoError(t, err)
	assert.Equal(t, days, got)
	repo.AssertExpectations(t)
}

func TestDayService_RangeMonths(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)

	t.Run("valid range spans whole months", func(t *testing.T) {
		repo := new(DayRepoMock)
		svc := newTestService(repo, now)

		wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		repo.On("ListDays", mock.Anything, "user-uid-123", wantStart, wantEnd).
			Return([]*models.Day{}, nil).Once()

		_, err := svc.RangeMonths(context.Background(), "user-uid-123",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		repo := new(DayRepoMock)
		svc := newTestService(repo, now)

		_, err := svc.RangeMonths(context.Background(), "user-uid-123",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, errs.ErrBadRange)
		repo.AssertExpectations(t)
	})

	t.Run("same month is a valid range", func(t *testing.T) {
		repo := new(DayRepoMock)
		svc := newTestService(repo, now)

		wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		repo.On("ListDays", mock.Anything, "user-uid-123", wantStart, wantEnd).
			Return([]*models.Day{}, nil).Once()

		_, err := svc.RangeMonths(context.Background(), "user-uid-123", wantStart, wantStart)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestDayService_Update(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	repo := new(DayRepoMock)
	svc := newTestService(repo, now)

	title := "new title"
	entries := []models.Entry{{Text: "walked", Tag: "HOBBY"}}
	updated := &models.Day{UID: "day-uid", Title: title}
	repo.On("UpdateDay", mock.Anything, "day-uid", &title,
		[]models.Entry{{Text: "walked", Tag: "hobby"}}).Return(updated, nil).Once()

	got, err := svc.Update(context.Background(), "day-uid", &title, entries)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	repo.AssertExpectations(t)
}

func TestDayService_ReplaceEntries_EmptyListAllowed(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	repo := new(DayRepoMock)
	svc := newTestService(repo, now)

	cleared := &models.Day{UID: "day-uid", Entries: []models.Entry{}}
	repo.On("ReplaceEntries", mock.Anything, "day-uid", []models.Entry{}).Return(cleared, nil).Once()

	got, err := svc.ReplaceEntries(context.Background(), "day-uid", []models.Entry{})
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
	repo.AssertExpectations(t)
}

func TestDayService_Delete(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	repo := new(DayRepoMock)
	svc := newTestService(repo, now)

	repo.On("DeleteDay", mock.Anything, "day-uid").Return(errs.ErrNotFound).Once()

	err := svc.Delete(context.Background(), "day-uid")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestNormalizeEntries_NilStaysNil(t *testing.T) {
	assert.Nil(t, normalizeEntries(nil))
}
