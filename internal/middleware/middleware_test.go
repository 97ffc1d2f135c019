package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-dashboard/internal/infrastructure/prefstore"
	"clinic-dashboard/internal/pkg/constants"
	"clinic-dashboard/internal/rolefilter"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownSID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestSession_NewSessionSetsCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session(SessionConfig{}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetSessionID(c)) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.Equal(t, string(body), ck.Value)
	assert.True(t, ck.HttpOnly)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session(SessionConfig{}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetSessionID(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: knownSID})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, knownSID, string(body))
	assert.Nil(t, sessionCookie(resp))
}

func TestSession_ReplacesGarbageCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session(SessionConfig{}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetSessionID(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "../../etc"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.NotEqual(t, "../../etc", ck.Value)
}

func TestRoleScope_LoadsStoredRole(t *testing.T) {
	provider := prefstore.NewMemoryProvider()
	require.NoError(t, provider.ForSession(knownSID).Set(context.Background(), rolefilter.RoleKey, "staff_nurse"))

	app := fiber.New()
	app.Use(Session(SessionConfig{}), RoleScope(provider))
	app.Get("/", func(c *fiber.Ctx) error {
		fromLocals := RoleFilter(c)
		fromCtx := rolefilter.MustFromContext(c.UserContext())
		assert.Same(t, fromLocals, fromCtx)
		return c.SendString(string(fromLocals.CurrentRole()))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: knownSID})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, string(constants.StaffNurse), string(body))
}

func TestRoleFilter_OutsideScopePanics(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(recover.New())
	app.Get("/", func(c *fiber.Ctx) error {
		RoleFilter(c)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHealthMarker_CountsRequests(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	app := fiber.New()
	app.Use(HealthMarker(rdb))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) })
	app.Get("/health/json", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, p := range []string{"/ok", "/ok", "/boom", "/health/json"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
	}

	total, _ := mr.Get(KeyReqTotal)
	errs, _ := mr.Get(KeyReqErrors)
	count, _ := mr.Get(KeyResCount)
	assert.Equal(t, "3", total)
	assert.Equal(t, "1", errs)
	assert.Equal(t, "3", count)

	last, _ := mr.Get(KeyLastReq)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(last), &m))
	assert.Equal(t, "/boom", m["path"])
}

func TestHealthMarker_NilClientPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(HealthMarker(nil))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(CORSConfig{AllowedSuffix: ".hospital.example", DevPassword: "letmein"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	cases := []struct {
		origin, devPassword string
		want                int
	}{
		{"", "", fiber.StatusOK},
		{"https://app.hospital.example", "", fiber.StatusOK},
		{"http://localhost:5173", "", fiber.StatusOK},
		{"https://evil.example", "", fiber.StatusForbidden},
		{"https://evil.example", "letmein", fiber.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		if tc.devPassword != "" {
			req.Header.Set("dev-password", tc.devPassword)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, tc.origin)
		if tc.want == fiber.StatusOK && tc.origin != "" {
			assert.Equal(t, tc.origin, resp.Header.Get("Access-Control-Allow-Origin"))
		}
	}
}

func TestTracing_ReusesIncomingID(t *testing.T) {
	app := fiber.New()
	app.Use(Tracing())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetTraceID(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(traceIDHeader, knownSID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, knownSID, resp.Header.Get(traceIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
	assert.NotEqual(t, knownSID, resp.Header.Get(traceIDHeader))
}

func TestTracing_RequestLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	app := fiber.New()
	app.Use(Tracing())
	app.Get("/", func(c *fiber.Ctx) error {
		Logger(c).Info().Msg("inside")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(traceIDHeader, knownSID)
	_, err := app.Test(req)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, knownSID, line["trace_id"])
	assert.Equal(t, "inside", line["message"])
}

func TestLogger_FallsBackToGlobal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Same(t, &log.Logger, Logger(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}
