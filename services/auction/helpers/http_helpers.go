package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"art-auction/internal/auctionerrors"
	"art-auction/utils"
)

var registerTagNamesOnce sync.Once

// RegisterJSONTagNames makes validator errors report JSON field paths instead
// of Go struct field names. Must run before any request is bound; the router
// calls it during setup.
func RegisterJSONTagNames() {
	registerTagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// HandleBindError sends a standardized JSON error for binding failures,
// reporting the first schema violation and its field path
func HandleBindError(c *gin.Context, handlerName string, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		message := fmt.Sprintf("%s failed on the %q rule", field, verrs[0].Tag())
		utils.JSONValidationError(c, message, field)
		utils.Warn(handlerName+": validation error", map[string]any{"field": field, "error": message})
		return
	}

	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrSubmissionNotFound):
		return http.StatusNotFound, "submission not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrActiveAuctionExists):
		return http.StatusBadRequest, "there is already an active auction"
	case errors.Is(err, auctionerrors.ErrSubmissionNotApproved):
		return http.StatusBadRequest, "submission is not approved"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusBadRequest, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrConcurrentBid):
		return http.StatusBadRequest, "auction was updated concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
