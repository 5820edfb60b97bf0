package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全レスポンス共通のJSON封筒。
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func writeJSON(c echo.Context, status int, message string, data interface{}) error {
	s := "success"
	if status >= 400 {
		s = "error"
	}
	return c.JSON(status, Response{Status: s, Message: message, Data: data})
}

// usecaseのエラーを封筒に変換する。未分類は500＋汎用メッセージ。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return writeJSON(c, http.StatusBadRequest, "Validation Error", ve.Issues)
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return writeJSON(c, he.Status, he.Message, nil)
	}

	//500
	return writeJSON(c, http.StatusInternalServerError, "Internal Server Error", nil)
}
