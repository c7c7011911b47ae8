package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/akolanti/BrainAPI/internal/adapter"
	"github.com/akolanti/BrainAPI/internal/api"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

// AskHandler godoc
// @Summary      Ask the knowledge base
// @Description  Answers a natural-language question strictly from the caller's organization documents.
// @Tags         Ask
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      api.AskRequest  true  "The question"
// @Success      200      {object}  api.AskResponse     "The grounded answer"
// @Failure      400      {object}  api.ErrorResponse   "Missing question or unresolved organization"
// @Failure      401      {object}  api.ErrorResponse   "Not authenticated"
// @Failure      429      {object}  api.ErrorResponse   "Provider quota exhausted"
// @Failure      500      {object}  api.ErrorResponse   "Misconfiguration, store failure or invalid credential"
// @Failure      503      {object}  api.ErrorResponse   "Provider unavailable"
// @Router       /ask [post]
func AskHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", request.RemoteAddr)
		return
	}

	identity, ok := identityFromContext(request.Context())
	if !ok {
		WriteErrorResponse(w, askModel.Unauthenticated)
		return
	}

	var requestData api.AskRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the ask handler reader", "error", err)
		}
	}(request.Body)

	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad Ask Request", "error", err)
		WriteErrorResponse(w, askModel.InvalidInput)
		return
	}

	// reject blank questions before the pipeline spends anything
	if strings.TrimSpace(requestData.Question) == "" {
		WriteErrorResponse(w, askModel.InvalidInput)
		return
	}

	answer, askErr := handlerInstance.service.Ask(request.Context(), identity, requestData.Question)
	if askErr != nil {
		WriteErrorResponse(w, askErr.Kind)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AskResponse{Answer: answer})
}

// ListDocumentsHandler godoc
// @Summary      List knowledge base documents
// @Description  Lists the caller's organization documents, most recent first.
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.DocumentListResponse
// @Failure      400  {object}  api.ErrorResponse  "Unresolved organization"
// @Failure      401  {object}  api.ErrorResponse  "Not authenticated"
// @Router       /documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", r.RemoteAddr)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		WriteErrorResponse(w, askModel.Unauthenticated)
		return
	}

	documents, askErr := handlerInstance.service.ListDocuments(r.Context(), identity)
	if askErr != nil {
		WriteErrorResponse(w, askErr.Kind)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentListResponse(documents))
}
