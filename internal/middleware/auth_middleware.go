package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	jwtPkg "github.com/sp3fck/hamgallery-backend/pkg/jwt"
)

// AuthMiddleware verifies the bearer token and stores the identity claims
// in the request locals for downstream handlers.
func AuthMiddleware(tokens *jwtPkg.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		tokenString, ok := jwtPkg.ExtractBearer(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("callsign", claims.Callsign)
		c.Locals("userEmail", claims.Email)

		return c.Next()
	}
}
