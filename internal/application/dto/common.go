package dto

import "github.com/jhoicas/ceramicas-api/internal/domain"

// Response sobre de éxito: {success, data, count, message}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK envuelve data en una respuesta exitosa.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// List envuelve una colección e informa su tamaño en count.
func List(data interface{}, n int) Response {
	return Response{Success: true, Count: &n, Data: data}
}

// Msg respuesta exitosa sin payload.
func Msg(message string) Response {
	return Response{Success: true, Message: message}
}

// ErrorResponse cuerpo de error HTTP. Errors solo se llena en errores de validación.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}
