package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

// errorResponse is the wire shape of every error reply.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps err onto an HTTP status via its error code and writes the
// JSON error body. Non-AppError values become a generic internal error.
func writeError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	message := "internal error"
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		message = ae.Message
	} else {
		code = apperrors.ErrCodeInternal
	}
	c.AbortWithStatusJSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: message,
	})
}

// writeInvalidBody reports a malformed or unparseable request body.
func writeInvalidBody(c *gin.Context, err error) {
	writeError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid request body"))
}
