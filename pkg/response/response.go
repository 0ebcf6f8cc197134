// Package response writes the {ok, ...} / {ok:false, error} envelope spec
// §6 mandates for every handler in this service.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/apperr"
)

// OK writes a 200 response, merging the given fields with "ok": true.
// List-read handlers pass a "generatedAt" field alongside their rows, as
// spec §4.9 requires.
func OK(c *gin.Context, fields gin.H) {
	if fields == nil {
		fields = gin.H{}
	}
	fields["ok"] = true
	c.JSON(http.StatusOK, fields)
}

// Created writes a 201 response with the same envelope shape as OK.
func Created(c *gin.Context, fields gin.H) {
	if fields == nil {
		fields = gin.H{}
	}
	fields["ok"] = true
	c.JSON(http.StatusCreated, fields)
}

// Fail writes {ok:false, error:<message>} with the HTTP status matching
// err's apperr.Kind, falling back to 500/internal for plain errors — per
// spec §7, "everything else surfaces the raw error message".
func Fail(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.JSON(appErr.Kind.HTTPStatus(), gin.H{"ok": false, "error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// FailWith writes {ok:false, error:message} at the given status directly,
// for call sites that haven't constructed an apperr.Error.
func FailWith(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}
