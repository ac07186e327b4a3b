// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и днями дневника. Предоставляет методы
// создания, чтения, обновления и удаления записей. Уникальные индексы
// на email пользователя и пару (user_uid, date) являются окончательным
// арбитром гонок между конкурентными записями.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и днями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// mapWriteErr переводит ошибки драйвера в сентинели слоя errs:
// нарушение уникального индекса становится errs.ErrAlreadyExists,
// отсутствие строк - errs.ErrNotFound.
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrAlreadyExists
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}
