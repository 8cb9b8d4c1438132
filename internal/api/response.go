package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pbaille/portfolio/internal/portfolio"
	"github.com/pkg/errors"
)

// Error codes carried in the envelope
const (
	codeBadRequest   = "BAD_REQUEST"
	codeInvalid      = "INVALID"
	codeNotFound     = "NOT_FOUND"
	codeUnauthorized = "UNAUTHORIZED"
	codeInternal     = "INTERNAL"
)

// Envelope is the body of every API response except /health
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{Success: false, Error: &ErrorBody{Code: code, Message: message}})
}

// writeMutation reports a successful change. err is the save failure of that
// same change, if any: the change stands and the failure becomes a warning.
func writeMutation(c *gin.Context, status int, data interface{}, err error) {
	env := Envelope{Success: true, Data: data}
	if err != nil {
		env.Warning = err.Error()
	}
	c.JSON(status, env)
}

// mutationFailed writes the error response for a rejected change. A change
// that was applied but not saved is not a failure.
func mutationFailed(c *gin.Context, err error) bool {
	if err == nil || errors.Is(err, portfolio.ErrNotSaved) {
		return false
	}
	writeStoreError(c, err)
	return true
}

// writeStoreError maps a store error onto a response
func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalid) {
		writeError(c, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, codeInternal, err.Error())
}

func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		writeError(c, http.StatusBadRequest, codeBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
