package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/SscSPs/auctionbay/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler serves the signed-in user's auction lists.
type profileHandler struct {
	listingService portssvc.ListingSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, jwtSecret string, listingService portssvc.ListingSvcFacade) {
	h := &profileHandler{listingService: listingService}

	profile := rg.Group("/profile", middleware.AuthMiddleware(jwtSecret))
	{
		profile.GET("/auctions", h.list(listingService.ListByCreator, "Failed to list your auctions"))
		profile.GET("/bidding", h.list(listingService.ListBidding, "Failed to list auctions you bid on"))
		profile.GET("/won", h.list(listingService.ListWon, "Failed to list won auctions"))
	}
}

type userListing func(ctx context.Context, userID string) ([]domain.AuctionView, error)

// list godoc
// @Summary List the caller's auctions
// @Description /profile/auctions: created by the caller, newest first. /profile/bidding: others' auctions the caller bid on, soonest ending first. /profile/won: ended auctions the caller won, newest ended first.
// @Tags profile
// @Produce  json
// @Success 200 {array} dto.AuctionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list auctions"
// @Security BearerAuth
// @Router /profile/auctions [get]
// @Router /profile/bidding [get]
// @Router /profile/won [get]
func (h *profileHandler) list(fetch userListing, failMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		views, err := fetch(c.Request.Context(), userID)
		if err != nil {
			respondError(c, logger, err, failMsg)
			return
		}
		c.JSON(http.StatusOK, dto.ToListAuctionResponse(views))
	}
}
