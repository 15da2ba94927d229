// Package auth extracts the caller identity from a bearer token issued by the
// user service and enforces role scopes on routes.
package auth

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const (
	ScopeAdmin = "admin"
	ScopeUser  = "user"

	identityKey = "auth.identity"
)

var ErrMissingToken = errors.New("missing bearer token")

type Identity struct {
	ID        int64
	Email     string
	FirstName string
	Scopes    []string
}

func (i *Identity) HasScope(scope string) bool {
	return slices.Contains(i.Scopes, scope)
}

// Claims mirrors the token payload. scope may be a string or a list.
type Claims struct {
	UserID    int64            `json:"id"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Scope     jwt.ClaimStrings `json:"scope"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret, issuer, audience string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *Verifier) Verify(token string) (*Identity, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	return &Identity{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		Scopes:    claims.Scope,
	}, nil
}

// Middleware rejects requests without a valid token (401) and requests whose
// identity carries none of the given scopes (403).
func (v *Verifier) Middleware(scopes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authentication"})
			}

			identity, err := v.Verify(token)
			if err != nil {
				log.WithError(err).Debug("Rejected bearer token")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			}

			if len(scopes) > 0 && !slices.ContainsFunc(scopes, identity.HasScope) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Insufficient scope"})
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

func FromContext(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(identityKey).(*Identity)
	return identity, ok && identity != nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
