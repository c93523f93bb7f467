package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// SuccessEnvelope wraps data the way Success does, for payloads that are cached before writing.
func SuccessEnvelope(data interface{}) JSONResponse {
	return JSONResponse{Code: 0, Message: "success", Data: data}
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// ErrorWithData returns an error response that still carries a payload.
func ErrorWithData(ctx *gin.Context, status int, code int, message string, data interface{}) {
	Respond(ctx, status, code, message, data)
}
