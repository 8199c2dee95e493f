package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged and answered with failMsg only.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	var tooLow *apperrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		logger.Info("Bid rejected as too low", slog.String("minimum", tooLow.Minimum.String()))
		c.JSON(http.StatusUnprocessableEntity, dto.BidRejectionResponse{Error: tooLow.Error(), MinimumBid: tooLow.Minimum})
	case errors.Is(err, apperrors.ErrAuctionClosed):
		logger.Info("Bid rejected, auction closed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Auction has ended"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden action", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this auction"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting request"})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// parseIDParam reads a positive int64 path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
