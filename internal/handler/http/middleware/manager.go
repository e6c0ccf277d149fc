package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

// RequireManager restricts a route to manager or admin tokens. Employee
// tokens can only reach their own timesheet endpoints.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != "manager" && role != "admin") {
			response.HandleError(w, auth.ErrManagerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
