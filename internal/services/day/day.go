// Package services содержит логику бизнес-уровня для работы с днями дневника:
// нормализацию дат, проверки периодов и операции над записями.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/month"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// DateLayout формат даты дня в телах запросов.
const DateLayout = "2006-01-02"

// DayRepository описывает контракт хранилища дней.
type DayRepository interface {
	CreateDay(ctx context.Context, day models.Day) (*models.Day, error)
	GetDayByUID(ctx context.Context, dayUID string) (*models.Day, error)
	ListDays(ctx context.Context, userUID string, start, end time.Time) ([]*models.Day, error)
	UpdateDay(ctx context.Context, dayUID string, title *string, entries []models.Entry) (*models.Day, error)
	ReplaceEntries(ctx context.Context, dayUID string, entries []models.Entry) (*models.Day, error)
	DeleteDay(ctx context.Context, dayUID string) error
}

// DayService реализует операции над днями дневника.
type DayService struct {
	days DayRepository
	now  func() time.Time
}

// NewDayService создает новый экземпляр DayService.
func NewDayService(days DayRepository) *DayService {
	return &DayService{days: days, now: time.Now}
}

// Create создает день пользователя. Пустая дата означает сегодняшний день.
// Дата нормализуется к началу суток UTC и не может лежать в будущем;
// повторный день на ту же дату отклоняет уникальный индекс хранилища.
func (s *DayService) Create(ctx context.Context, userUID, dateStr, title string, entries []models.Entry) (*models.Day, error) {
	const op = "day.Create"

	now := s.now().UTC()
	date := now
	if dateStr != "" {
		parsed, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		date = parsed
	}
	if month.IsFutureDay(date, now) {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrFutureDate)
	}

	day := models.Day{
		UID:     uuid.NewString(),
		UserUID: userUID,
		Date:    month.StartOfDay(date),
		Title:   title,
		Entries: normalizeEntries(entries),
	}
	created, err := s.days.CreateDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// CurrentMonth возвращает дни пользователя за текущий календарный месяц UTC.
func (s *DayService) CurrentMonth(ctx context.Context, userUID string) ([]*models.Day, error) {
	const op = "day.CurrentMonth"

	now := s.now().UTC()
	days, err := s.days.ListDays(ctx, userUID, month.Start(now), month.End(now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return days, nil
}

// RangeMonths возвращает дни пользователя за период с первого дня месяца
// start по последний день месяца end включительно, по возрастанию даты.
// Начало позже конца - errs.ErrBadRange.
func (s *DayService) RangeMonths(ctx context.Context, userUID string, start, end time.Time) ([]*models.Day, error) {
	const op = "day.RangeMonths"

	if month.Start(start).After(month.Start(end)) {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrBadRange)
	}
	days, err := s.days.ListDays(ctx, userUID, month.Start(start), month.End(end))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return days, nil
}

// GetDay возвращает день по UID, без проверки владельца.
func (s *DayService) GetDay(ctx context.Context, dayUID string) (*models.Day, error) {
	const op = "day.GetDay"

	day, err := s.days.GetDayByUID(ctx, dayUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return day, nil
}

// Update меняет изменяемые поля дня: заголовок и записи.
// Дата и владелец дня не меняются никогда.
func (s *DayService) Update(ctx context.Context, dayUID string, title *string, entries []models.Entry) (*models.Day, error) {
	const op = "day.Update"

	day, err := s.days.UpdateDay(ctx, dayUID, title, normalizeEntries(entries))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return day, nil
}

// ReplaceEntries целиком заменяет список записей дня.
func (s *DayService) ReplaceEntries(ctx context.Context, dayUID string, entries []models.Entry) (*models.Day, error) {
	const op = "day.ReplaceEntries"

	day, err := s.days.ReplaceEntries(ctx, dayUID, normalizeEntries(entries))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return day, nil
}

// Delete удаляет день.
func (s *DayService) Delete(ctx context.Context, dayUID string) error {
	const op = "day.Delete"

	if err := s.days.DeleteDay(ctx, dayUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// normalizeEntries приводит метки записей к нижнему регистру.
// nil остается nil, чтобы сохранить семантику "поле не тронуто".
func normalizeEntries(entries []models.Entry) []models.Entry {
	if entries == nil {
		return nil
	}
	result := make([]models.Entry, len(entries))
	for i, e := range entries {
		e.Tag = strings.ToLower(e.Tag)
		result[i] = e
	}
	return result
}
