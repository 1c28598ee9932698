package dto

import (
	"net/http"
	"time"
)

// statusLabels mapeia códigos HTTP para o rótulo exibido em status
var statusLabels = map[int]string{
	http.StatusOK:                  "OK",
	http.StatusCreated:             "Created",
	http.StatusNoContent:           "No Content",
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Internal Server Error",
}

// Now é o relógio usado no timestamp do envelope; substituível em testes
var Now = time.Now

// Envelope é o corpo de toda resposta da API, sucesso ou erro
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// NewEnvelope monta o envelope; o timestamp é capturado na chamada
func NewEnvelope(success bool, statusCode int, data any, message string) Envelope {
	return Envelope{
		Success:    success,
		StatusCode: statusCode,
		Status:     StatusLabel(statusCode, success),
		Data:       data,
		Message:    message,
		Timestamp:  Now().UTC().Format(time.RFC3339Nano),
	}
}

// StatusLabel retorna o rótulo da tabela ou "Success"/"Error" para códigos fora dela
func StatusLabel(statusCode int, success bool) string {
	if label, ok := statusLabels[statusCode]; ok {
		return label
	}
	if success {
		return "Success"
	}
	return "Error"
}

// Helper functions para os envelopes mais comuns

// OK cria um envelope 200
func OK(data any, message string) Envelope {
	if message == "" {
		message = "Request successful"
	}
	return NewEnvelope(true, http.StatusOK, data, message)
}

// Created cria um envelope 201
func Created(data any, message string) Envelope {
	if message == "" {
		message = "Resource created successfully"
	}
	return NewEnvelope(true, http.StatusCreated, data, message)
}

// BadRequest cria um envelope 400; data carrega os erros de campo, se houver
func BadRequest(message string, data any) Envelope {
	if message == "" {
		message = "Invalid request"
	}
	return NewEnvelope(false, http.StatusBadRequest, data, message)
}

// NotFound cria um envelope 404
func NotFound(message string) Envelope {
	if message == "" {
		message = "Resource not found"
	}
	return NewEnvelope(false, http.StatusNotFound, nil, message)
}

// Conflict cria um envelope 409
func Conflict(message string) Envelope {
	if message == "" {
		message = "Resource already exists"
	}
	return NewEnvelope(false, http.StatusConflict, nil, message)
}

// InternalError cria um envelope 500; detail só deve ser passado fora de produção
func InternalError(message string, detail any) Envelope {
	if message == "" {
		message = "Internal server error"
	}
	return NewEnvelope(false, http.StatusInternalServerError, detail, message)
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}
