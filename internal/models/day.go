// Package models содержит доменные структуры, описывающие день дневника
// и его записи, а также вспомогательные DTO для JSON-ответов.
package models

import "time"

// EntryTags фиксированный набор допустимых меток записи.
var EntryTags = []string{"love", "work", "family", "health", "hobby"}

// Entry представляет одну запись внутри дня: свободный текст
// и необязательную метку из фиксированного набора EntryTags.
type Entry struct {
	Text string `json:"text" validate:"required"`
	Tag  string `json:"tag,omitempty" validate:"omitempty,oneof=love work family health hobby"`
}

// Day представляет один календарный день пользователя.
// Дата всегда нормализована к началу суток в UTC; на пару
// (UserUID, Date) в хранилище действует уникальный индекс.
type Day struct {
	UID       string    // Уникальный идентификатор дня
	UserUID   string    // Владелец дня
	Date      time.Time // Начало календарных суток, UTC
	Title     string    // Необязательный заголовок дня
	Entries   []Entry   // Упорядоченный список записей
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner возвращает идентификатор владельца дня.
// Используется проверкой владения в middleware.
func (d *Day) Owner() string {
	return d.UserUID
}

// DayDTO описывает публичное представление дня в JSON-ответах,
// дата отдается строкой в формате RFC3339.
type DayDTO struct {
	UID     string  `json:"id"`
	Date    string  `json:"date"`
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// DTO возвращает публичное представление дня.
func (d *Day) DTO() DayDTO {
	entries := d.Entries
	if entries == nil {
		entries = []Entry{}
	}
	return DayDTO{
		UID:     d.UID,
		Date:    d.Date.UTC().Format(time.RFC3339),
		Title:   d.Title,
		Entries: entries,
	}
}

// DayDTOs конвертирует список дней в список DTO.
func DayDTOs(days []*Day) []DayDTO {
	result := make([]DayDTO, 0, len(days))
	for _, d := range days {
		result = append(result, d.DTO())
	}
	return result
}
