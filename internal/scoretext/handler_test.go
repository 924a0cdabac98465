package scoretext

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newExtractRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler().RegisterRoutes(api)
	return router
}

func TestExtractEndpointFromText(t *testing.T) {
	router := newExtractRouter()

	body := `{"text":"MOYE = 14,5 ALGO = 16 STI = 15 MATH = 17"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out extractResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.TrackID != "info" {
		t.Fatalf("trackId = %q, want info", out.TrackID)
	}
	if out.Scores["mg"] != 14.5 || out.Scores["algo"] != 16 {
		t.Fatalf("unexpected scores: %v", out.Scores)
	}
}

func TestExtractEndpointFromUploadedTextFile(t *testing.T) {
	router := newExtractRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "scores.txt")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("ECO = 13 GEST = 12,5 MATH = 11")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out extractResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.TrackID != "eco" {
		t.Fatalf("trackId = %q, want eco", out.TrackID)
	}
}

func TestExtractEndpointNoRecognizableScores(t *testing.T) {
	router := newExtractRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"text":"hello world"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "no_scores_found") {
		t.Fatalf("expected no_scores_found code: %s", resp.Body.String())
	}
}

func TestExtractEndpointMissingInput(t *testing.T) {
	router := newExtractRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
