package jwt

import (
	"context"
	"errors"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v5"

	"adocato/internal/ports/auth"
)

var (
	ErrTokenInvalido = errors.New("token inválido")
)

// Verifier valida tokens HMAC assinados localmente (JWT_SIGNING_KEY).
// Substitui o verifier remoto: aqui não há serviço externo de identidade.
type Verifier struct {
	key []byte
}

func NewVerifier(signingKey string) *Verifier {
	return &Verifier{key: []byte(signingKey)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return auth.Claims{}, ErrTokenInvalido
	}

	parsed, err := gojwt.Parse(token, func(t *gojwt.Token) (any, error) {
		return v.key, nil
	}, gojwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalido
	}

	mc, ok := parsed.Claims.(gojwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrTokenInvalido
	}

	sub, err := mc.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return auth.Claims{}, ErrTokenInvalido
	}

	c := auth.Claims{UserID: sub}
	if nome, ok := mc["nome"].(string); ok {
		c.Nome = nome
	}
	return c, nil
}
