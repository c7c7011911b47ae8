package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/akolanti/BrainAPI/internal/adapter"
	"github.com/akolanti/BrainAPI/internal/api"
	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/knowledge"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

var (
	handlerInstance *knowledgeHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type knowledgeHandler struct {
	service knowledge.Service
}

func InitHandlers(service knowledge.Service) {
	once.Do(func() {
		handlerInstance = &knowledgeHandler{service: service}
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handlers")
	})
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, kind askModel.ErrorKind) {
	httpCode, body := adapter.ToErrorResponse(kind)
	writeJsonResponse(w, httpCode, body)
}

func WriteErrorMessage(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, api.ErrorResponse{Error: message})
}

func identityFromContext(ctx context.Context) (askModel.Identity, bool) {
	identity, ok := ctx.Value(config.IDENTITY_KEY).(askModel.Identity)
	return identity, ok && identity.Id != ""
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

func getTargetDirectory() (string, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", err
	}
	return targetDir, nil
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Liveness probe.
// @Tags         Health
// @Success      200
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
