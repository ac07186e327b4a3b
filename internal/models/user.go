// Package models содержит доменную модель пользователя дневника,
// включающую данные учётной записи, хэш пароля, роль и набор меток.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Новые пользователи создаются с ролью RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Tag представляет пользовательскую метку для записей дневника.
type Tag struct {
	Title string `json:"title" validate:"required"` // Название метки
	Color string `json:"color" validate:"required"` // Цвет метки в формате #RRGGBB
}

// DefaultTags возвращает стартовый набор меток нового пользователя.
func DefaultTags() []Tag {
	return []Tag{
		{Title: "love", Color: "#FF0000"},
		{Title: "work", Color: "#00FF00"},
		{Title: "family", Color: "#0000FF"},
		{Title: "health", Color: "#FFA500"},
		{Title: "hobby", Color: "#800080"},
	}
}

// User представляет зарегистрированного пользователя системы.
// Поле PasswordHash никогда не сериализуется наружу: во все ответы
// уходит только UserDTO.
type User struct {
	UID               string     // Уникальный идентификатор пользователя
	Name              string     // Имя пользователя
	Email             string     // Электронная почта (уникальная, в нижнем регистре)
	PasswordHash      string     // Bcrypt-хэш пароля
	Role              string     // Роль пользователя, admin или user
	PasswordChangedAt *time.Time // Момент последней смены пароля
	Active            bool       // Признак активности (false - мягкое удаление)
	Tags              []Tag      // Метки пользователя
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserDTO описывает публичное представление пользователя в JSON-ответах.
type UserDTO struct {
	UID   string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Tags  []Tag  `json:"tags"`
}

// DTO возвращает публичное представление пользователя без чувствительных полей.
func (u *User) DTO() UserDTO {
	return UserDTO{
		UID:   u.UID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Tags:  u.Tags,
	}
}
