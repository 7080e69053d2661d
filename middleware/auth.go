package middleware

import (
	"confreg-webapp/config"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

func Authorize() fiber.Handler {
	envval, _ := config.GetSecret("SIGN")

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(envval),
		ErrorHandler: jwtError,
		ContextKey:   "identity",
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

func tokenClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// IsAdminRole reports whether the authenticated user carries the global
// admin role.
func IsAdminRole(c *fiber.Ctx) bool {
	role, _ := tokenClaims(c)["role"].(string)
	return role == "admin"
}

// CanManageConference is the per-conference permission gate: global
// admins manage everything, organizers only the conferences listed in
// their token.
func CanManageConference(c *fiber.Ctx, confId string) bool {
	if IsAdminRole(c) {
		return true
	}

	claims := tokenClaims(c)
	if role, _ := claims["role"].(string); role != "organizer" {
		return false
	}

	granted, _ := claims["conferences"].([]interface{})
	for _, entry := range granted {
		if id, ok := entry.(string); ok && id == confId {
			return true
		}
	}
	return false
}
