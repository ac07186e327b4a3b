// Package cookiejwt управляет транспортом токена сессии через cookie "jwt".
// Cookie всегда httpOnly, в production дополнительно Secure.
package cookiejwt

import (
	"net/http"
	"time"
)

// Name имя cookie с токеном сессии.
const Name = "jwt"

// Options настройки выставляемой cookie.
type Options struct {
	TTLDays int  // Срок жизни cookie в днях
	Secure  bool // Выставлять ли флаг Secure (production)
}

// Set выставляет cookie с токеном сессии.
func Set(w http.ResponseWriter, token string, opts Options) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(opts.TTLDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   opts.Secure,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie с токеном сессии.
func Clear(w http.ResponseWriter, opts Options) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest извлекает токен из cookie запроса, пустая строка - cookie нет.
func FromRequest(r *http.Request) string {
	c, err := r.Cookie(Name)
	if err != nil {
		return ""
	}
	return c.Value
}
