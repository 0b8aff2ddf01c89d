package dto

// ErrorResponse cuerpo de error HTTP. Success siempre va en false: las
// mutaciones nunca reportan éxito parcial.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse construye el cuerpo de error.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// OpResult envoltura mínima de una mutación sin payload propio.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
