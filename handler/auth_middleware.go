package handler

import (
	"context"
	"net/http"
	"strings"

	"bytebank-api/common"
	"bytebank-api/config"
	"bytebank-api/model"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	SubjectKey  contextKey = "subject"
	UserRoleKey contextKey = "userRole"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, "Cabeçalho Authorization é obrigatório", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, "Formato do cabeçalho Authorization inválido", nil)
			err.Send(w)
			return
		}

		jwtKey, keyErr := config.AppConfig.JWTKey()
		if keyErr != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, "Autenticação indisponível", keyErr)
			appErr.Send(w)
			return
		}

		claims := &model.AppClaims{}

		token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			appErr := common.NewAppError(http.StatusUnauthorized, "Token inválido ou expirado", err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
		ctx = context.WithValue(ctx, UserRoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(UserRoleKey).(string)

		if !ok || role != model.RoleAdmin {
			err := common.NewAppError(http.StatusForbidden, "Acesso negado. Requer perfil de administrador.", nil)
			err.Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
