package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/SscSPs/auctionbay/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// auctionHandler handles HTTP requests related to auctions and bids.
type auctionHandler struct {
	auctionService portssvc.AuctionSvcFacade
	bidService     portssvc.BidSvc
	listingService portssvc.ListingSvcFacade
}

// newAuctionHandler creates a new auctionHandler.
func newAuctionHandler(as portssvc.AuctionSvcFacade, bs portssvc.BidSvc, ls portssvc.ListingSvcFacade) *auctionHandler {
	return &auctionHandler{
		auctionService: as,
		bidService:     bs,
		listingService: ls,
	}
}

// registerAuctionRoutes registers routes related to auctions. Reads accept
// anonymous viewers, writes require a token.
func registerAuctionRoutes(
	rg *gin.RouterGroup,
	jwtSecret string,
	auctionService portssvc.AuctionSvcFacade,
	bidService portssvc.BidSvc,
	listingService portssvc.ListingSvcFacade,
	bidLimiter *limiter.Limiter,
) {
	h := newAuctionHandler(auctionService, bidService, listingService)

	auctions := rg.Group("/auctions")

	public := auctions.Group("", middleware.OptionalAuthMiddleware(jwtSecret))
	{
		public.GET("", h.listAuctions)
		public.GET("/:id", h.getAuction)
		public.GET("/:id/detail", h.getAuctionDetail)
	}

	private := auctions.Group("", middleware.AuthMiddleware(jwtSecret))
	{
		private.POST("", h.createAuction)
		private.PUT("/:id", h.updateAuction)
		private.DELETE("/:id", h.deleteAuction)

		bidChain := []gin.HandlerFunc{}
		if bidLimiter != nil {
			bidChain = append(bidChain, middleware.RateLimit(bidLimiter))
		}
		private.POST("/:id/bid", append(bidChain, h.placeBid)...)
	}
}

// listAuctions godoc
// @Summary List visible auctions
// @Description Open auctions plus, for a signed-in viewer, auctions that closed within the grace window and that the viewer bid on. Soonest ending first.
// @Tags auctions
// @Produce  json
// @Param   page query int false "Page number (1-based)" default(1)
// @Param   pageSize query int false "Page size (max 100)" default(9)
// @Success 200 {array} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list auctions"
// @Router /auctions [get]
func (h *auctionHandler) listAuctions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuctionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAuctions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	views, err := h.listingService.ListVisible(c.Request.Context(), middleware.GetViewerIDFromContext(c), params.Page, params.PageSize)
	if err != nil {
		respondError(c, logger, err, "Failed to list auctions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuctionResponse(views))
}

// getAuction godoc
// @Summary Get an auction
// @Description Retrieves one auction with its viewer-relative state
// @Tags auctions
// @Produce  json
// @Param   id path int true "Auction ID"
// @Success 200 {object} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve auction"
// @Router /auctions/{id} [get]
func (h *auctionHandler) getAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.listingService.GetAuction(c.Request.Context(), auctionID, middleware.GetViewerIDFromContext(c))
	if err != nil {
		respondError(c, logger.With(slog.Int64("auction_id", auctionID)), err, "Failed to retrieve auction")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuctionViewResponse(view))
}

// getAuctionDetail godoc
// @Summary Get an auction with its bids
// @Description Retrieves one auction with its viewer-relative state and all bids, highest first
// @Tags auctions
// @Produce  json
// @Param   id path int true "Auction ID"
// @Success 200 {object} dto.AuctionDetailResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve auction"
// @Router /auctions/{id}/detail [get]
func (h *auctionHandler) getAuctionDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.listingService.GetAuctionDetail(c.Request.Context(), auctionID, middleware.GetViewerIDFromContext(c))
	if err != nil {
		respondError(c, logger.With(slog.Int64("auction_id", auctionID)), err, "Failed to retrieve auction")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuctionDetailResponse(detail))
}

// createAuction godoc
// @Summary Create an auction
// @Tags auctions
// @Accept  json
// @Produce  json
// @Param   auction body dto.CreateAuctionRequest true "Auction details"
// @Success 201 {object} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create auction"
// @Security BearerAuth
// @Router /auctions [post]
func (h *auctionHandler) createAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAuction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	auction, err := h.auctionService.CreateAuction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create auction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAuctionResponse(auction))
}

// updateAuction godoc
// @Summary Update an auction
// @Description Only the creator may update an auction
// @Tags auctions
// @Accept  json
// @Produce  json
// @Param   id path int true "Auction ID"
// @Param   auction body dto.UpdateAuctionRequest true "Auction details"
// @Success 200 {object} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "Failed to update auction"
// @Security BearerAuth
// @Router /auctions/{id} [put]
func (h *auctionHandler) updateAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAuction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	auction, err := h.auctionService.UpdateAuction(c.Request.Context(), auctionID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("auction_id", auctionID)), err, "Failed to update auction")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuctionResponse(auction))
}

// deleteAuction godoc
// @Summary Delete an auction
// @Description Only the creator may delete an auction. Its bids are removed with it.
// @Tags auctions
// @Param   id path int true "Auction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "Failed to delete auction"
// @Security BearerAuth
// @Router /auctions/{id} [delete]
func (h *auctionHandler) deleteAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.auctionService.DeleteAuction(c.Request.Context(), auctionID, userID); err != nil {
		respondError(c, logger.With(slog.Int64("auction_id", auctionID)), err, "Failed to delete auction")
		return
	}
	c.Status(http.StatusNoContent)
}

// placeBid godoc
// @Summary Place a bid
// @Description The amount must be at least the current highest bid plus one, or the starting price when there are no bids
// @Tags bids
// @Accept  json
// @Produce  json
// @Param   id path int true "Auction ID"
// @Param   bid body dto.PlaceBidRequest true "Bid amount"
// @Success 201 {object} dto.BidResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 422 {object} dto.BidRejectionResponse "Bid too low or auction closed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to place bid"
// @Security BearerAuth
// @Router /auctions/{id}/bid [post]
func (h *auctionHandler) placeBid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PlaceBid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("auction_id", auctionID), slog.String("amount", req.Amount.String()))
	bid, err := h.bidService.PlaceBid(c.Request.Context(), userID, auctionID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to place bid")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBidResponse(bid))
}
