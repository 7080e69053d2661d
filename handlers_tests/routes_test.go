package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"confreg-webapp/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type Test struct {
	description  string
	method       string
	route        string
	bodyinput    []byte
	authHeader   string
	expectedCode int
}

func TestRouteProtection(t *testing.T) {
	tests := []Test{
		{
			description:  "health check is public",
			method:       "GET",
			route:        "/health",
			expectedCode: 200,
		},
		{
			description:  "conference creation requires a token",
			method:       "POST",
			route:        "/conference",
			bodyinput:    []byte("{\"conference_name\":\"GopherConf\"}"),
			expectedCode: 400,
		},
		{
			description:  "fee admin listing requires a token",
			method:       "GET",
			route:        "/conference/64f0c2a1b2c3d4e5f6a7b8c9/admin/fees",
			expectedCode: 400,
		},
		{
			description:  "fee creation rejects a garbage token",
			method:       "POST",
			route:        "/conference/64f0c2a1b2c3d4e5f6a7b8c9/admin/fees",
			bodyinput:    []byte("{}"),
			authHeader:   "Bearer not-a-jwt",
			expectedCode: 401,
		},
		{
			description:  "charge endpoint requires a token",
			method:       "POST",
			route:        "/conference/64f0c2a1b2c3d4e5f6a7b8c9/registration/64f0c2a1b2c3d4e5f6a7b8ca/charge",
			expectedCode: 400,
		},
		{
			description:  "refund endpoint rejects a garbage token",
			method:       "POST",
			route:        "/conference/64f0c2a1b2c3d4e5f6a7b8c9/registration/64f0c2a1b2c3d4e5f6a7b8ca/refund",
			authHeader:   "Bearer not-a-jwt",
			expectedCode: 401,
		},
	}

	app := fiber.New()
	router.SetupRoutes(app)

	for _, test := range tests {
		req, _ := http.NewRequest(
			test.method,
			test.route,
			bytes.NewBuffer(test.bodyinput))
		req.Header.Set("Content-Type", "application/json")
		if test.authHeader != "" {
			req.Header.Set("Authorization", test.authHeader)
		}

		res, err := app.Test(req, -1)
		if err != nil {
			assert.Failf(t, "request failed", "%v: %v", test.description, err)
			continue
		}

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}
