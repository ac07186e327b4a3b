// Package month содержит функции нормализации календарных дат дневника.
// Вся нормализация выполняется в UTC: день хранится как начало суток,
// периоды задаются месяцами в формате YYYY-MM.
package month

import (
	"fmt"
	"time"
)

// Layout формат месяца в query-параметрах (например "2024-05").
const Layout = "2006-01"

// StartOfDay возвращает начало календарных суток момента t в UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsFutureDay сообщает, лежит ли день даты t позже текущего дня UTC.
// Время внутри суток значения не имеет.
func IsFutureDay(t time.Time, now time.Time) bool {
	return StartOfDay(t).After(StartOfDay(now))
}

// Parse разбирает месяц в формате YYYY-MM.
func Parse(value string) (time.Time, error) {
	const op = "month.Parse"
	t, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// Start возвращает начало первого дня месяца момента t в UTC.
func Start(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// End возвращает начало последнего дня месяца момента t в UTC.
// Дни хранятся началом суток, поэтому включающая граница периода -
// именно последний день, а не последняя наносекунда месяца.
func End(t time.Time) time.Time {
	return Start(t).AddDate(0, 1, -1)
}
