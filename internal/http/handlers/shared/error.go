package shared

import (
	"errors"

	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id when one is set.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error envelope and logs the original error when
// there is one.
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError maps service sentinel errors onto business codes.
// Anything unrecognized is an internal error.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrSKUConflict),
		errors.Is(err, service.ErrSlugConflict),
		errors.Is(err, service.ErrDuplicateImportRef),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrStockAdjustToNegative):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrOrderItemsRequired),
		errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrVariantMissing),
		errors.Is(err, service.ErrVariantInactive),
		errors.Is(err, service.ErrChannelUnknown),
		errors.Is(err, service.ErrPurchaseNotDraft),
		errors.Is(err, service.ErrPurchaseItemsEmpty),
		errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrProductHasVariants):
		response.BadRequest(c, err.Error())
	default:
		RespondError(c, response.CodeInternal, "internal error", err)
	}
}
