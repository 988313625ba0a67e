package mw

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingDefaultsSilentHandlerTo200(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	// хендлер не пишет ни заголовка, ни тела
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	line := buf.String()
	if !strings.Contains(line, "status=200") {
		t.Fatalf("log line %q, want status=200", line)
	}
	if strings.Contains(line, "status=0") {
		t.Fatalf("log line %q records unset status", line)
	}
}

func TestLoggingRecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	line := buf.String()
	if !strings.Contains(line, "status=404") {
		t.Fatalf("log line %q, want status=404", line)
	}
	if !strings.Contains(line, "size=4") {
		t.Fatalf("log line %q, want size=4", line)
	}
}
