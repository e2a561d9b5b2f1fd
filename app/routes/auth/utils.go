package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vistoriaguardioes/financeiro/app/config"
)

// SessaoDuracao is the access window granted by one login.
const SessaoDuracao = 8 * time.Hour

// CookieSessao is the HTTP-only cookie carrying the signed session token.
const CookieSessao = "guard_sessao"

// Sessao is the explicit session object placed in request locals by the
// middleware. Handlers read it instead of any ambient state.
type Sessao struct {
	AutenticadoEm time.Time
	ExpiraEm      time.Time
}

// VerificarSenha compares the submitted password against the configured
// shared-password hash.
func VerificarSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword(config.AppConfig.SenhaHash, []byte(senha)) == nil
}

type sessaoClaims struct {
	jwt.RegisteredClaims
}

// GerarToken issues a signed session token valid for SessaoDuracao.
func GerarToken() (string, error) {
	agora := time.Now()
	claims := sessaoClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(agora),
			ExpiresAt: jwt.NewNumericDate(agora.Add(SessaoDuracao)),
			Issuer:    "guardioes-financeiro",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.AppConfig.JWTSecret)
}

// ValidarToken parses the session token and rebuilds the session object.
// Expired or tampered tokens return an error.
func ValidarToken(tokenString string) (*Sessao, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessaoClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.AppConfig.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*sessaoClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrInvalidKey
	}

	return &Sessao{
		AutenticadoEm: claims.IssuedAt.Time,
		ExpiraEm:      claims.ExpiresAt.Time,
	}, nil
}
