package adapter

import (
	"net/http"

	"github.com/akolanti/BrainAPI/internal/api"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

type errorMapping struct {
	httpCode int
	message  string
}

// One fixed message and one status code per kind, so clients can handle
// failures deterministically. The messages stay in the deployment locale and
// never contain provider error text.
var errorMappings = map[askModel.ErrorKind]errorMapping{
	askModel.Unauthenticated: {
		httpCode: http.StatusUnauthorized,
		message:  "Nicht authentifiziert. Bitte melden Sie sich an.",
	},
	askModel.TenantUnresolved: {
		httpCode: http.StatusBadRequest,
		message:  "Ihrem Nutzer-Konto ist noch keine Organisation zugewiesen. Bitte wenden Sie sich an den Administrator.",
	},
	askModel.InvalidInput: {
		httpCode: http.StatusBadRequest,
		message:  "Bitte stellen Sie eine Frage.",
	},
	askModel.StoreUnavailable: {
		httpCode: http.StatusInternalServerError,
		message:  "Fehler beim Laden der Dokumente. Bitte versuchen Sie es erneut.",
	},
	askModel.ServiceUnconfigured: {
		httpCode: http.StatusInternalServerError,
		message:  "Der KI-Dienst ist nicht konfiguriert. Bitte setzen Sie die Umgebungsvariable GEMINI_API_KEY.",
	},
	askModel.InvalidCredential: {
		httpCode: http.StatusInternalServerError,
		message:  "Ungültiger KI-API-Schlüssel. Bitte Administrator kontaktieren.",
	},
	askModel.RateLimited: {
		httpCode: http.StatusTooManyRequests,
		message:  "KI-Dienst-Kontingent erschöpft. Bitte in einigen Minuten erneut versuchen.",
	},
	askModel.ServiceUnavailable: {
		httpCode: http.StatusServiceUnavailable,
		message:  "Der KI-Dienst ist momentan nicht erreichbar. Bitte versuchen Sie es in einigen Minuten erneut.",
	},
}

// ToErrorResponse converts an error kind into its wire form.
func ToErrorResponse(kind askModel.ErrorKind) (int, api.ErrorResponse) {
	mapping, known := errorMappings[kind]
	if !known {
		mapping = errorMappings[askModel.ServiceUnavailable]
	}
	return mapping.httpCode, api.ErrorResponse{Error: mapping.message}
}

func ToDocumentListResponse(documents []askModel.Document) api.DocumentListResponse {
	infos := make([]api.DocumentInfo, 0, len(documents))
	for _, doc := range documents {
		infos = append(infos, api.DocumentInfo{
			Id:        doc.Id,
			Title:     doc.Title,
			FileSize:  doc.FileSize,
			CreatedAt: doc.CreatedAt,
		})
	}
	return api.DocumentListResponse{Documents: infos}
}
