// Package resp holds the JSON envelopes and the process-wide error
// translator. Success bodies are {"message": ..., "data": ...}; every error
// body is {"message": ...}.
package resp

import (
	"net/http"

	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "data": data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"message": msg})
}

// Error translates a service-layer failure into a response. Domain errors,
// validation failures and anything unexpected all surface as 400: the
// catalog API never distinguishes not-found or conflict at the status level.
func Error(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.Unknown {
		BadRequest(c, "bad request")
		return
	}
	BadRequest(c, err.Error())
}
