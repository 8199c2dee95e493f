package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/go-playground/validator/v10"
)

// auctionService implements the AuctionSvcFacade interface
type auctionService struct {
	BaseService
	auctionRepo portsrepo.AuctionRepositoryFacade
	validate    *validator.Validate
}

// NewAuctionService creates a new auction service with the provided options
func NewAuctionService(repo portsrepo.AuctionRepositoryFacade, options ...ServiceOption) portssvc.AuctionSvcFacade {
	return &auctionService{
		BaseService: newBaseService(options...),
		auctionRepo: repo,
		validate:    dto.NewValidator(),
	}
}

var _ portssvc.AuctionSvcFacade = (*auctionService)(nil)

func (s *auctionService) CreateAuction(ctx context.Context, req dto.CreateAuctionRequest, creatorUserID string) (*domain.Auction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := s.Now()
	start := now
	if req.StartDateTime != nil {
		start = req.StartDateTime.UTC()
	}
	end := req.EndDateTime.UTC()
	if !end.After(start) {
		return nil, fmt.Errorf("%w: endDateTime must be after startDateTime", apperrors.ErrValidation)
	}

	auction := domain.Auction{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		StartDateTime: start,
		EndDateTime:   end,
		AuctionState:  domain.AuctionActive,
		MainImageURL:  req.MainImageURL,
		ThumbnailURL:  req.ThumbnailURL,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
		},
	}

	if err := s.auctionRepo.SaveAuction(ctx, &auction); err != nil {
		s.LogError(ctx, err, "Failed to save auction",
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Auction created successfully",
		slog.Int64("auction_id", auction.AuctionID),
		slog.String("user_id", creatorUserID))
	return &auction, nil
}

func (s *auctionService) UpdateAuction(ctx context.Context, auctionID int64, req dto.UpdateAuctionRequest, userID string) (*domain.Auction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	auction, err := s.findOwned(ctx, auctionID, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	auction.Title = req.Title
	auction.Description = req.Description
	auction.StartingPrice = req.StartingPrice
	auction.StartDateTime = req.StartDateTime.UTC()
	auction.EndDateTime = req.EndDateTime.UTC()
	auction.MainImageURL = req.MainImageURL
	auction.ThumbnailURL = req.ThumbnailURL
	auction.UpdatedAt = &now

	if err := s.auctionRepo.UpdateAuction(ctx, *auction); err != nil {
		s.LogError(ctx, err, "Failed to update auction",
			slog.Int64("auction_id", auctionID))
		return nil, err
	}

	s.LogInfo(ctx, "Auction updated successfully",
		slog.Int64("auction_id", auctionID),
		slog.String("user_id", userID))
	return auction, nil
}

func (s *auctionService) DeleteAuction(ctx context.Context, auctionID int64, userID string) error {
	if _, err := s.findOwned(ctx, auctionID, userID); err != nil {
		return err
	}

	if err := s.auctionRepo.DeleteAuction(ctx, auctionID); err != nil {
		s.LogError(ctx, err, "Failed to delete auction",
			slog.Int64("auction_id", auctionID))
		return err
	}

	s.LogInfo(ctx, "Auction deleted successfully",
		slog.Int64("auction_id", auctionID),
		slog.String("user_id", userID))
	return nil
}

// findOwned loads an auction and checks that userID created it.
func (s *auctionService) findOwned(ctx context.Context, auctionID int64, userID string) (*domain.Auction, error) {
	auction, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find auction by ID",
				slog.Int64("auction_id", auctionID))
		}
		return nil, err
	}
	if !auction.IsOwnedBy(userID) {
		s.LogDebug(ctx, "User is not the owner of the auction",
			slog.Int64("auction_id", auctionID),
			slog.String("user_id", userID),
			slog.String("owner_id", auction.CreatedBy))
		return nil, fmt.Errorf("user %s does not own auction %d: %w", userID, auctionID, apperrors.ErrForbidden)
	}
	return auction, nil
}
