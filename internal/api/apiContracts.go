package api

import "time"

type AskRequest struct {
	Question string `json:"question" validate:"required" example:"Wie viele Urlaubstage habe ich?"`
}

type AskResponse struct {
	Answer string `json:"answer" example:"Laut „Urlaubsrichtlinie\" haben Sie 30 Urlaubstage."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Bitte stellen Sie eine Frage."`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type DocumentInfo struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentListResponse struct {
	Documents []DocumentInfo `json:"documents"`
}
