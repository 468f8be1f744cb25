package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminAuth protege el panel con el token compartido de la campaña.
// Es la misma barrera estática del panel original; no hay usuarios ni
// sesiones, el dashboard no guarda nada sensible más allá de nombre y
// celular.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "admin access disabled", http.StatusForbidden)
				return
			}

			got := r.Header.Get("X-Admin-Token")
			if got == "" {
				got = r.URL.Query().Get("token")
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "Contraseña incorrecta", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
