package web

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func postForm(t *testing.T, srv *Server, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", "/sum", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := NewServer()

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q, want application/json", ct)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}

func TestIndexHasForm(t *testing.T) {
	srv := NewServer()

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content-type = %q, want text/html", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"<title>Sum Calculator</title>", `action="/sum"`, `name="n"`, `name="m"`, "Compute sum"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in index page", want)
		}
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	srv := NewServer()

	r := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSumWrongMethod(t *testing.T) {
	srv := NewServer()

	r := httptest.NewRequest("GET", "/sum", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestSumForm(t *testing.T) {
	srv := NewServer()

	w := postForm(t, srv, url.Values{"n": {"1"}, "m": {"2"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	want := "The sum of the numbers 1 and 2 is <b>3</b>\n"
	if w.Body.String() != want {
		t.Errorf("body = %q, want %q", w.Body.String(), want)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content-type = %q, want text/html", ct)
	}
}

func TestSumFormRejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"n zero", url.Values{"n": {"0"}, "m": {"2"}}},
		{"m zero", url.Values{"n": {"5"}, "m": {"0"}}},
		{"both zero", url.Values{"n": {"0"}, "m": {"0"}}},
		{"missing m", url.Values{"n": {"5"}}},
		{"negative", url.Values{"n": {"-1"}, "m": {"2"}}},
		{"not a number", url.Values{"n": {"abc"}, "m": {"2"}}},
		{"overflow", url.Values{"n": {"18446744073709551615"}, "m": {"1"}}},
	}

	srv := NewServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(t, srv, tt.values)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if w.Body.String() != "couldn't compute" {
				t.Errorf("body = %q, want couldn't compute", w.Body.String())
			}
		})
	}
}

func TestAPISum(t *testing.T) {
	srv := NewServer()

	r := httptest.NewRequest("POST", "/api/sum", strings.NewReader(`{"n":40,"m":2}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp SumResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp != (SumResponse{N: 40, M: 2, Sum: 42}) {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAPISumRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero", `{"n":0,"m":2}`},
		{"missing", `{"n":3}`},
		{"negative", `{"n":-3,"m":2}`},
		{"malformed", `{"n":`},
		{"overflow", `{"n":18446744073709551615,"m":1}`},
	}

	srv := NewServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/sum", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected error message")
			}
		})
	}
}

func TestMetricsCountRequests(t *testing.T) {
	srv := NewServer()
	postForm(t, srv, url.Values{"n": {"1"}, "m": {"2"}})
	postForm(t, srv, url.Values{"n": {"0"}, "m": {"2"}})

	r := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{
		`treehouse_sum_requests_total{endpoint="form",outcome="ok"} 1`,
		`treehouse_sum_requests_total{endpoint="form",outcome="rejected"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in metrics output", want)
		}
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer().Serve(ctx, ln)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	err := NewServer().ListenAndServe(context.Background(), "not-an-address")
	if err == nil {
		t.Fatal("expected listen error")
	}
}
