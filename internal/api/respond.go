package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourorg/policy-transfer/internal/errs"
)

// respondError maps an error kind to an HTTP status and emits the structured
// {kind, error} body. Untagged errors surface as 500 with kind "Internal".
func respondError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	if kind == "" {
		kind = "Internal"
	}
	c.JSON(statusFor(kind), gin.H{
		"kind":  string(kind),
		"error": err.Error(),
	})
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.InvalidRequest, errs.ParseError:
		return http.StatusBadRequest
	case errs.SourceNotFound:
		return http.StatusNotFound
	case errs.SourceUnavailable, errs.DestinationWriteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
