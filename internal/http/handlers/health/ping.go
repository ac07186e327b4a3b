// Package health реализует служебный обработчик проверки живости.
package health

import (
	"net/http"
)

// Ping отвечает простым текстом без авторизации.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("This is a ping message"))
	}
}
