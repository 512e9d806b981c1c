package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope every endpoint answers with. Appearance is
// what the frontend keys its toast styling off ("success" or "error").
type JSONResponse struct {
	Status     bool        `json:"status"`
	Message    string      `json:"message"`
	Appearance string      `json:"appearance,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	ok := code >= 200 && code < 300
	appearance := "success"
	if !ok {
		appearance = "error"
	}
	c.JSON(code, JSONResponse{
		Status:     ok,
		Message:    message,
		Appearance: appearance,
		Data:       data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:     false,
		Message:    err.Error(),
		Appearance: "error",
		Data:       nil,
	})
}
