package http

import (
	"bytes"
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// -------- shared helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}
