package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/server/http/dto"
)

// userID parses the :id path parameter, writing 400 when it is not an integer.
func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, "User ID must be an integer")
		return 0, false
	}
	return id, true
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}

// bindError describes why a request body could not be bound.
func bindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Malformed request body"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "Invalid user: " + strings.Join(fields, ", ")
}

// writeError maps domain errors to HTTP statuses.
func writeError(c *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithDetail(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
	case errors.Is(err, domainErrors.ErrConflict):
		abortWithDetail(c, http.StatusBadRequest, fmt.Sprintf("User with ID %d already exists", id))
	case errors.Is(err, domainErrors.ErrIDMismatch):
		abortWithDetail(c, http.StatusBadRequest, fmt.Sprintf("User ID in body does not match %d", id))
	case errors.Is(err, domainErrors.ErrInvalidUser):
		abortWithDetail(c, http.StatusBadRequest, "Invalid user: name is required and id must not be negative")
	default:
		_ = c.Error(err)
		abortWithDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}
