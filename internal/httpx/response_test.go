package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"n": 1})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if rec.Body.String() != `{"n":1}` {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestJSONNil(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, nil)
	if rec.Body.String() != "null" {
		t.Fatalf("body = %q, want null", rec.Body.String())
	}
}

func TestJSONEncodeError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, http.StatusNotFound, "not_found", nil)
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound || body.Error != "not_found" {
		t.Fatalf("unexpected response %d %+v", rec.Code, body)
	}
}

func TestBlob(t *testing.T) {
	rec := httptest.NewRecorder()
	Blob(rec, http.StatusOK, "image/png", []byte{1, 2, 3})
	if rec.Header().Get("Content-Length") != "3" || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected headers %v", rec.Header())
	}
}
