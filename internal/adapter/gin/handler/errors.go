package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "shop-service/pkg/errors"
)

// respondError maps a usecase error onto its HTTP status and the
// {"error": message} body every failure surfaces as. Errors without a
// status become 500s with a generic message.
func respondError(c *gin.Context, err error) {
	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		c.JSON(statuser.HTTPStatus(), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
