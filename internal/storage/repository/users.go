package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его UID.
// Занятый email приводит к errs.ErrAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tags, err := json.Marshal(user.Tags)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newUID string
	query := `INSERT INTO users (uid, name, email, password_hash, role, password_changed_at, tags)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.PasswordChangedAt, tags).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return newUID, nil
}

const userColumns = `uid, name, email, password_hash, role, password_changed_at,
			  active, tags, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var passwordChangedAt sql.NullTime
	var tags []byte
	if err := row.Scan(&u.UID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&passwordChangedAt, &u.Active, &tags, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if passwordChangedAt.Valid {
		u.PasswordChangedAt = &passwordChangedAt.Time
	}
	if err := json.Unmarshal(tags, &u.Tags); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail возвращает активного пользователя по email, включая хэш пароля.
// Мягко удаленные пользователи не находятся.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1 AND active = TRUE`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return u, nil
}

// GetUserByUID возвращает активного пользователя по его UID.
func (s *Storage) GetUserByUID(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUserByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE uid = $1 AND active = TRUE`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return u, nil
}

// UpdateUser обновляет разрешенные к изменению поля профиля (имя и метки)
// и возвращает обновленного пользователя. nil-аргумент оставляет поле как есть.
func (s *Storage) UpdateUser(ctx context.Context, userUID string, name *string, tags []models.Tag) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var tagsJSON []byte
	if tags != nil {
		var err error
		tagsJSON, err = json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	query := `UPDATE users
			  SET name = COALESCE($2, name),
			      tags = COALESCE($3, tags),
			      updated_at = now()
			  WHERE uid = $1 AND active = TRUE
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID, name, tagsJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}
	return u, nil
}

// DeactivateUser выполняет мягкое удаление: active = FALSE.
// Запись остается в базе, но перестает находиться всеми выборками.
func (s *Storage) DeactivateUser(ctx context.Context, userUID string) error {
	const op = "storage.DeactivateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET active = FALSE, updated_at = now()
			  WHERE uid = $1 AND active = TRUE`
	result, err := s.DB.ExecContext(ctx, query, userUID)
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
