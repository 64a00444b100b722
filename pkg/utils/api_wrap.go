package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP responses.
// Validation and duplicate errors carry a user-facing message; database
// faults on write paths surface as a generic 503.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		RespondError(c, http.StatusBadRequest, "Informe um e-mail válido")
	case errors.Is(err, ErrInvalidDisplayName):
		RespondError(c, http.StatusBadRequest, "O nome precisa de pelo menos 2 caracteres")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "E-mail não encontrado. Crie uma conta primeiro.")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Este e-mail já está cadastrado.")
	case errors.Is(err, ErrPostNotFound):
		RespondError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
