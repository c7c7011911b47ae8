package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/knowledge"
)

type stubService struct {
	uploads []knowledge.Upload
}

func (s *stubService) Ask(ctx context.Context, identity askModel.Identity, question string) (string, *askModel.AskError) {
	return "", nil
}

func (s *stubService) StoreUpload(ctx context.Context, identity askModel.Identity, upload knowledge.Upload) *askModel.AskError {
	s.uploads = append(s.uploads, upload)
	return nil
}

func (s *stubService) ListDocuments(ctx context.Context, identity askModel.Identity) ([]askModel.Document, *askModel.AskError) {
	return nil, nil
}

var uploadService = &stubService{}

func setupUploadHandler() {
	InitHandlers(uploadService)
	uploadService.uploads = nil
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer failed: %v", err)
	}
	return body, writer.FormDataContentType()
}

func uploadRequest(body *bytes.Buffer, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	ctx := context.WithValue(req.Context(), config.IDENTITY_KEY, askModel.Identity{Id: "user-1"})
	return req.WithContext(ctx)
}

func TestUploadHandler_Success(t *testing.T) {
	setupUploadHandler()

	body, contentType := multipartBody(t, "Employee_Handbook.txt", []byte("Vacation policy: every employee gets 30 days."))
	rec := httptest.NewRecorder()

	UploadHandler(rec, uploadRequest(body, contentType))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status got %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(uploadService.uploads) != 1 {
		t.Fatalf("stored %d uploads, want 1", len(uploadService.uploads))
	}
	upload := uploadService.uploads[0]
	if upload.Title != "Employee Handbook" {
		t.Errorf("title got %q, want %q", upload.Title, "Employee Handbook")
	}
	if !strings.Contains(upload.Content, "30 days") {
		t.Errorf("content got %q, want the extracted text", upload.Content)
	}
}

func TestUploadHandler_OversizedBodyRejectedDuringRead(t *testing.T) {
	setupUploadHandler()

	body, contentType := multipartBody(t, "huge.txt", bytes.Repeat([]byte("a"), config.MaxUploadSize+1))
	rec := httptest.NewRecorder()

	UploadHandler(rec, uploadRequest(body, contentType))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "zu groß") {
		t.Errorf("body got %q, want the size limit message", rec.Body.String())
	}
	if len(uploadService.uploads) != 0 {
		t.Errorf("stored %d uploads, want 0", len(uploadService.uploads))
	}
}

func TestUploadHandler_UnsupportedExtension(t *testing.T) {
	setupUploadHandler()

	body, contentType := multipartBody(t, "photo.png", []byte("not a document"))
	rec := httptest.NewRecorder()

	UploadHandler(rec, uploadRequest(body, contentType))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(uploadService.uploads) != 0 {
		t.Errorf("stored %d uploads, want 0", len(uploadService.uploads))
	}
}

func TestUploadHandler_MissingIdentity(t *testing.T) {
	setupUploadHandler()

	body, contentType := multipartBody(t, "notes.txt", []byte("some text"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadHandler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
