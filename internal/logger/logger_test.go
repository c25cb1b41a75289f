package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew_Level(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		l := New(Config{Level: tc.in, Output: &bytes.Buffer{}})
		if l.GetLevel() != tc.want {
			t.Errorf("level %q: expected %s, got %s", tc.in, tc.want, l.GetLevel())
		}
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("k", "v").Msg("shown")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["message"] != "shown" || lines[0]["k"] != "v" || lines[0]["time"] == nil {
		t.Errorf("unexpected line: %v", lines[0])
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Pretty: true, Output: &buf})

	l.Info().Msg("hello")

	if !strings.Contains(buf.String(), "hello") || strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestFiberMiddleware(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-1" }}))
	app.Use(FiberMiddleware(New(Config{Output: &buf})))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "x"})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusTeapot, "teapot")
	})

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		_ = resp.Body.Close()
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 access lines, got %d: %s", len(lines), buf.String())
	}

	want := []struct {
		path   string
		status float64
		level  string
	}{
		{"/ok", 200, "info"},
		{"/bad", 400, "warn"},
		{"/boom", 418, "warn"},
	}
	for i, w := range want {
		l := lines[i]
		if l["path"] != w.path || l["status"] != w.status || l["level"] != w.level {
			t.Errorf("line %d: expected %s %v %s, got %v", i, w.path, w.status, w.level, l)
		}
		if l["request_id"] != "req-1" || l["method"] != "GET" || l["component"] != "http" {
			t.Errorf("line %d: missing request fields: %v", i, l)
		}
	}
}
