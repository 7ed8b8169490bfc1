package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetupDevMode(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	Setup(&buf, "debug", true)

	slog.Debug("test debug")
	slog.Info("test info")

	output := buf.String()
	if !bytes.Contains([]byte(output), []byte("test debug")) {
		t.Error("expected debug message visible at debug level")
	}
	if !bytes.Contains([]byte(output), []byte("msg=\"test info\"")) {
		t.Errorf("expected text-formatted info message, got %q", output)
	}
}

func TestSetupProdModeIsJSON(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	Setup(&buf, "info", false)

	slog.Debug("hidden")
	slog.Info("prod test", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a single JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "prod test" || rec["k"] != "v" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestRequestLogger(t *testing.T) {
	buf := captureDefault(t)

	req := httptest.NewRequest("POST", "/sum", nil)
	rec := httptest.NewRecorder()
	RequestLogger(okHandler(http.StatusOK)).ServeHTTP(rec, req)

	if buf.Len() == 0 {
		t.Fatal("expected log output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("POST")) {
		t.Error("expected method in log")
	}
	if !bytes.Contains(buf.Bytes(), []byte("/sum")) {
		t.Error("expected path in log")
	}
	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected generated request id header")
	}
	if !bytes.Contains(buf.Bytes(), []byte(id)) {
		t.Error("expected request id in log")
	}
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	buf := captureDefault(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	RequestLogger(okHandler(http.StatusOK)).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("request_id=abc-123")) {
		t.Error("expected incoming request id in log")
	}
}

func TestRequestLoggerSkipsNoisyPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			buf := captureDefault(t)

			req := httptest.NewRequest("GET", path, nil)
			rec := httptest.NewRecorder()
			RequestLogger(okHandler(http.StatusOK)).ServeHTTP(rec, req)

			if buf.Len() > 0 {
				t.Errorf("expected no log for %s", path)
			}
		})
	}
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	buf := captureDefault(t)

	req := httptest.NewRequest("POST", "/sum", nil)
	rec := httptest.NewRecorder()
	RequestLogger(okHandler(http.StatusBadRequest)).ServeHTTP(rec, req)

	if !bytes.Contains(buf.Bytes(), []byte("400")) {
		t.Error("expected 400 status in log")
	}
	if !bytes.Contains(buf.Bytes(), []byte("level=WARN")) {
		t.Error("expected client errors logged at warn")
	}
}
