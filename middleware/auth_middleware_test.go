package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func testApp() *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Get("/protegida", Protected(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin", Protected(cfg), AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func firmarToken(t *testing.T, role, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": float64(1),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func solicitarConCookie(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestProtectedValidCookie(t *testing.T) {
	app := testApp()
	resp := solicitarConCookie(t, app, "/protegida", firmarToken(t, "admin", testSecret))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with a valid cookie, got %d", resp.StatusCode)
	}
}

func TestProtectedMissingCookie(t *testing.T) {
	app := testApp()
	resp := solicitarConCookie(t, app, "/protegida", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without a cookie, got %d", resp.StatusCode)
	}
}

func TestProtectedInvalidSignature(t *testing.T) {
	app := testApp()
	resp := solicitarConCookie(t, app, "/protegida", firmarToken(t, "admin", "otro-secreto"))
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with a forged cookie, got %d", resp.StatusCode)
	}
}

func TestAdminRequiredRejectsOtherRoles(t *testing.T) {
	app := testApp()
	resp := solicitarConCookie(t, app, "/admin", firmarToken(t, "cliente", testSecret))
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for a non-admin role, got %d", resp.StatusCode)
	}

	resp = solicitarConCookie(t, app, "/admin", firmarToken(t, "admin", testSecret))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp.StatusCode)
	}
}
