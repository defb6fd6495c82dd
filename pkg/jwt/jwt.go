package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity datos del usuario que viajan dentro del token.
// Es una foto del usuario al momento del login: cambios posteriores al usuario
// no afectan tokens ya emitidos hasta que expiren.
type Identity struct {
	UserID        string
	Email         string
	Name          string
	Role          string   // "admin" | "viewer"
	AllowedRoutes []string // solo para viewer; nil para admin
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden Role y AllowedRoutes para que los middlewares RBAC puedan tomar
// decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string   `json:"user_id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	AllowedRoutes []string `json:"allowed_routes,omitempty"`
}

// Generate genera un token JWT firmado con HS256 que incluye la identidad completa.
func Generate(secret string, ident Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   ident.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:        ident.UserID,
		Email:         ident.Email,
		Name:          ident.Name,
		Role:          ident.Role,
		AllowedRoutes: ident.AllowedRoutes,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims completos.
// El algoritmo de firma es fijo (HMAC): nunca se negocia desde el header del
// token, lo que evita ataques de downgrade. Retorna error si el token es
// inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
