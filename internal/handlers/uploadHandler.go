package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/BrainAPI/internal/api"
	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/extract"
	"github.com/akolanti/BrainAPI/internal/knowledge"
)

// UploadHandler godoc
// @Summary      Upload a document
// @Description  Receives a PDF (or docx/rtf/txt) via multipart/form-data, extracts its text and stores it in the organization's knowledge base.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "The document to upload"
// @Success      201  {object}  api.UploadResponse  "Document stored"
// @Failure      400  {object}  api.ErrorResponse   "Missing file, wrong type or too large"
// @Failure      422  {object}  api.ErrorResponse   "No readable text in the document"
// @Failure      500  {object}  api.ErrorResponse   "Storage failure"
// @Router       /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", r.RemoteAddr)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		WriteErrorResponse(w, askModel.Unauthenticated)
		return
	}

	// cap the body before parsing, an oversized upload is cut off during
	// the read instead of being fully staged first
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteErrorMessage(w, http.StatusBadRequest,
				"Die Datei ist zu groß. Maximum: 10 MB.")
			return
		}
		WriteErrorMessage(w, http.StatusBadRequest,
			"Ungültige Anfrage. Bitte ein Formular mit einer PDF-Datei senden.")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorMessage(w, http.StatusBadRequest,
			"Keine Datei gefunden. Bitte eine PDF-Datei hochladen.")
		return
	}
	defer fileReader.Close()

	if extract.DocTypeOf(fileMetadata.Filename) == extract.Unsupported {
		WriteErrorMessage(w, http.StatusBadRequest,
			"Nur PDF-, DOCX-, RTF- oder Textdateien sind erlaubt.")
		return
	}

	if fileMetadata.Size > config.MaxUploadSize {
		WriteErrorMessage(w, http.StatusBadRequest,
			fmt.Sprintf("Die Datei ist zu groß (%.1f MB). Maximum: 10 MB.", float64(fileMetadata.Size)/1024/1024))
		return
	}

	// the extractor works on paths, so the upload goes through a temp file
	// that is removed no matter how extraction ends
	tempFilePath, err := saveTempUpload(fileReader, fileMetadata.Filename)
	if err != nil {
		logRH.Error("Could not stage upload", "error", err)
		WriteErrorMessage(w, http.StatusInternalServerError,
			"Fehler beim Speichern des Dokuments. Bitte versuchen Sie es erneut.")
		return
	}
	defer func() {
		if err := os.Remove(tempFilePath); err != nil {
			logRH.Error("Error removing temp upload", "error", err)
		}
	}()

	extractedText, err := extract.TextFromFile(tempFilePath)
	if err != nil {
		logRH.Warn("Document extraction failed", "error", err)
		WriteErrorMessage(w, http.StatusUnprocessableEntity,
			"Das Dokument konnte nicht gelesen werden. Bitte prüfen Sie, ob die Datei beschädigt oder passwortgeschützt ist.")
		return
	}

	extractedText = strings.TrimSpace(extractedText)
	if len(extractedText) < config.MinExtractedTextLength {
		WriteErrorMessage(w, http.StatusUnprocessableEntity,
			"Im Dokument wurde kein lesbarer Text gefunden. Reine Bild-PDFs (gescannte Dokumente ohne OCR) werden nicht unterstützt.")
		return
	}

	upload := knowledge.Upload{
		Title:    extract.TitleFromFilename(fileMetadata.Filename),
		Content:  extractedText,
		FileSize: fileMetadata.Size,
	}

	if askErr := handlerInstance.service.StoreUpload(r.Context(), identity, upload); askErr != nil {
		WriteErrorResponse(w, askErr.Kind)
		return
	}

	writeJsonResponse(w, http.StatusCreated, api.UploadResponse{
		Success: true,
		Message: "Dokument erfolgreich verarbeitet und in der Wissensbasis gespeichert.",
	})
}

func saveTempUpload(fileReader io.Reader, originalName string) (string, error) {
	targetDir, err := getTargetDirectory()
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(originalName))
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return "", err
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		return "", err
	}
	return tempFilePath, nil
}
