package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"loanpayback/internal/middleware"
	"loanpayback/internal/models"
)

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form build failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("form build failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("form build failed: %v", err)
	}
	return body, writer.FormDataContentType()
}

func batchRequest(body *bytes.Buffer, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/predict/batch", body)
	req.Header.Set("Content-Type", contentType)
	ctx := context.WithValue(req.Context(), middleware.ContextUser, &models.User{ID: 1, IsActive: true})
	return req.WithContext(ctx)
}

func TestPredictBatch_UploadTooLarge(t *testing.T) {
	handler := NewPredictHandler(nil, nil)

	body, contentType := multipartUpload(t, "big.csv", bytes.Repeat([]byte("a"), maxUploadBytes+1))
	rec := httptest.NewRecorder()
	handler.PredictBatch(rec, batchRequest(body, contentType))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized upload, got %d", rec.Code)
	}
}

func TestPredictBatch_RejectsNonCSV(t *testing.T) {
	handler := NewPredictHandler(nil, nil)

	body, contentType := multipartUpload(t, "apps.xlsx", []byte("not,a,csv"))
	rec := httptest.NewRecorder()
	handler.PredictBatch(rec, batchRequest(body, contentType))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-CSV filename, got %d", rec.Code)
	}
}
