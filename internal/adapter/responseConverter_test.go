package adapter

import (
	"net/http"
	"testing"
	"time"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

func TestToErrorResponse_StatusCodes(t *testing.T) {
	tests := []struct {
		kind         askModel.ErrorKind
		expectedCode int
	}{
		{askModel.Unauthenticated, http.StatusUnauthorized},
		{askModel.TenantUnresolved, http.StatusBadRequest},
		{askModel.InvalidInput, http.StatusBadRequest},
		{askModel.StoreUnavailable, http.StatusInternalServerError},
		{askModel.ServiceUnconfigured, http.StatusInternalServerError},
		{askModel.InvalidCredential, http.StatusInternalServerError},
		{askModel.RateLimited, http.StatusTooManyRequests},
		{askModel.ServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			code, body := ToErrorResponse(tt.kind)
			if code != tt.expectedCode {
				t.Errorf("status got %d, want %d", code, tt.expectedCode)
			}
			if body.Error == "" {
				t.Error("every kind needs a user-facing message")
			}
		})
	}
}

func TestToErrorResponse_UnknownKind(t *testing.T) {
	code, body := ToErrorResponse(askModel.ErrorKind("something-new"))
	if code != http.StatusServiceUnavailable {
		t.Errorf("unknown kind status got %d, want %d", code, http.StatusServiceUnavailable)
	}
	if body.Error == "" {
		t.Error("unknown kind still needs a message")
	}
}

func TestToDocumentListResponse(t *testing.T) {
	now := time.Now()
	docs := []askModel.Document{
		{Id: "d1", Title: "One", Content: "secret body", FileSize: 10, CreatedAt: now},
	}

	resp := ToDocumentListResponse(docs)

	if len(resp.Documents) != 1 {
		t.Fatalf("got %d documents, want 1", len(resp.Documents))
	}
	info := resp.Documents[0]
	if info.Id != "d1" || info.Title != "One" || info.FileSize != 10 || !info.CreatedAt.Equal(now) {
		t.Errorf("document info got %+v", info)
	}
}
