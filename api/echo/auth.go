package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitalforgex/institute/core"
	"github.com/digitalforgex/institute/core/institute"
)

const adminSubject = "admin"

// Claims represents the authorization claims transmitted via a JWT.
// Subject is "admin" for the back office, or the student's record id for
// the portal.
type Claims struct {
	jwt.StandardClaims
	Name      string `json:"name,omitempty"`
	Class     string `json:"class,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	IsStudent bool   `json:"is_student,omitempty"`
}

func appJWTConfig() middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.GetString("secretKey")),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "claims",
		Claims:        new(Claims),
	}
}

func newClaims(subject string) jwt.StandardClaims {
	now := time.Now()
	return jwt.StandardClaims{
		Issuer:    core.Conf.GetString("appName"),
		Subject:   subject,
		ExpiresAt: now.Add(core.Conf.GetDuration("jwtExpirationDelta")).Unix(),
		IssuedAt:  now.Unix(),
	}
}

func adminClaims() *Claims {
	return &Claims{StandardClaims: newClaims(adminSubject), IsAdmin: true}
}

func studentClaims(student institute.Student) *Claims {
	return &Claims{
		StandardClaims: newClaims(student.ID),
		Name:           student.Name,
		Class:          student.Class,
		IsStudent:      true,
	}
}

// authenticateAdmin checks the master credential held in config; the
// password is stored as a bcrypt hash, never in clear.
func authenticateAdmin(email, password string) (*Claims, error) {
	if core.CleanString(email, true) != core.CleanString(core.Conf.GetString("adminEmail"), true) {
		return nil, errAuthenticationFailed
	}
	hash := []byte(core.Conf.GetString("adminPasswordHash"))
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, errAuthenticationFailed
	}
	return adminClaims(), nil
}

// generateToken generates a signed JWT token string representing the Claims.
func generateToken(claims *Claims) (string, error) {
	cfg := appJWTConfig()
	token := jwt.NewWithClaims(jwt.GetSigningMethod(cfg.SigningMethod), claims)
	ss, err := token.SignedString(cfg.SigningKey.([]byte))
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get("claims").(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// adminMiddleware guards the back-office routes.
func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if !claims.IsAdmin {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

// portalMiddleware allows the admin, or the student whose id is in the path.
func portalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.IsAdmin || (claims.IsStudent && claims.Subject == ctx.Param("id")) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
