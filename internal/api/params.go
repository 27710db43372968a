package api

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperrors"
)

// pathID parses a path parameter as a 32-bit integer id
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.BadRequest(apperrors.MsgBadRequest)
	}
	return int(id), nil
}

// bindBody decodes a JSON body into dst. An empty body leaves dst zeroed so
// that field validation reports what is missing.
func bindBody(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.BadRequest(apperrors.MsgBadRequest)
	}
	return nil
}
