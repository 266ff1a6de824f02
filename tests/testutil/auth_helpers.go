package testutil

import (
	"strings"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/maya-reeves/wardrobe-api/middleware"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, issuer string, scopes []string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  issuer,
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Scope: strings.Join(scopes, " "),
		},
	}
}

// SetMockAuthContext sets up a mock authenticated context for testing.
// It populates the same context keys the JWT middleware sets on a real
// request, including the raw access token used for Auth0 /userinfo calls.
func SetMockAuthContext(c *gin.Context, userID, accessToken, issuer string, scopes []string) {
	claims := MockValidatedClaims(userID, issuer, scopes)
	c.Set("user_id", userID)
	c.Set("access_token", accessToken)
	c.Set("validated_claims", claims)
}

// MockAuthMiddleware returns a Gin middleware that authenticates every
// request as the given user. Use it in place of the real JWT middleware
// when wiring routes under test.
func MockAuthMiddleware(userID, accessToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetMockAuthContext(c, userID, accessToken, "https://test.auth0.com/", nil)
		c.Next()
	}
}

// CreateTestContext creates a test Gin context
func CreateTestContext() (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	c, engine := gin.CreateTestContext(nil)
	return c, engine
}
