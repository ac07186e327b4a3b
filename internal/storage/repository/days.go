package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

const dayColumns = `uid, user_uid, date, title, entries, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (*models.Day, error) {
	d := &models.Day{}
	var title sql.NullString
	var entries []byte
	if err := row.Scan(&d.UID, &d.UserUID, &d.Date, &title, &entries,
		&d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if title.Valid {
		d.Title = title.String
	}
	if err := json.Unmarshal(entries, &d.Entries); err != nil {
		return nil, err
	}
	// Колонка имеет тип DATE, драйвер и так отдает полночь,
	// но фиксируем зону UTC явно.
	d.Date = d.Date.UTC()
	return d, nil
}

// CreateDay сохраняет новый день. Повторный день того же пользователя
// на ту же дату отклоняется уникальным индексом (user_uid, date)
// и возвращается как errs.ErrAlreadyExists.
func (s *Storage) CreateDay(ctx context.Context, day models.Day) (*models.Day, error) {
	const op = "storage.CreateDay"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	entries, err := json.Marshal(day.Entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO days (uid, user_uid, date, title, entries)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + dayColumns
	created, err := scanDay(s.DB.QueryRowContext(ctx, query,
		day.UID, day.UserUID, day.Date, nullString(day.Title), entries))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return created, nil
}

// GetDayByUID возвращает день по его UID вне зависимости от владельца.
// Проверка владения выполняется выше, в middleware.
func (s *Storage) GetDayByUID(ctx context.Context, dayUID string) (*models.Day, error) {
	const op = "storage.GetDayByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + dayColumns + `
			  FROM days
			  WHERE uid = $1`
	d, err := scanDay(s.DB.QueryRowContext(ctx, query, dayUID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return d, nil
}

// ListDays возвращает дни пользователя в периоде [start, end]
// (границы включаются), отсортированные по дате по возрастанию.
func (s *Storage) ListDays(ctx context.Context, userUID string, start, end time.Time) ([]*models.Day, error) {
	const op = "storage.ListDays"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + dayColumns + `
			  FROM days
			  WHERE user_uid = $1 AND date BETWEEN $2 AND $3
			  ORDER BY date ASC`
	rows, err := s.DB.QueryContext(ctx, query, userUID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateDay обновляет изменяемые поля дня (заголовок и записи)
// и возвращает обновленный день. nil-аргумент оставляет поле как есть.
func (s *Storage) UpdateDay(ctx context.Context, dayUID string, title *string, entries []models.Entry) (*models.Day, error) {
	const op = "storage.UpdateDay"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var entriesJSON []byte
	if entries != nil {
		var err error
		entriesJSON, err = json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	query := `UPDATE days
			  SET title = COALESCE($2, title),
			      entries = COALESCE($3, entries),
			      updated_at = now()
			  WHERE uid = $1
			  RETURNING ` + dayColumns
	d, err := scanDay(s.DB.QueryRowContext(ctx, query, dayUID, title, entriesJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return d, nil
}

// ReplaceEntries целиком заменяет список записей дня.
func (s *Storage) ReplaceEntries(ctx context.Context, dayUID string, entries []models.Entry) (*models.Day, error) {
	const op = "storage.ReplaceEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE days
			  SET entries = $2, updated_at = now()
			  WHERE uid = $1
			  RETURNING ` + dayColumns
	d, err := scanDay(s.DB.QueryRowContext(ctx, query, dayUID, entriesJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return d, nil
}

// DeleteDay удаляет день по UID.
func (s *Storage) DeleteDay(ctx context.Context, dayUID string) error {
	const op = "storage.DeleteDay"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM days WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, dayUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
