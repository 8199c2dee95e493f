package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewValidator_CreateAuctionRequest(t *testing.T) {
	v := dto.NewValidator()
	valid := dto.CreateAuctionRequest{
		Title:         "Vintage camera",
		Description:   "Works",
		StartingPrice: decimal.NewFromInt(10),
		EndDateTime:   time.Now().Add(time.Hour),
	}
	assert.NoError(t, v.Struct(valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, v.Struct(missingTitle))

	missingEnd := valid
	missingEnd.EndDateTime = time.Time{}
	assert.Error(t, v.Struct(missingEnd))
}

func TestNewValidator_UpdateAuctionRequestEndAfterStart(t *testing.T) {
	v := dto.NewValidator()
	start := time.Now()
	req := dto.UpdateAuctionRequest{
		Title:         "Vintage camera",
		Description:   "Works",
		StartingPrice: decimal.NewFromInt(10),
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
	}
	assert.NoError(t, v.Struct(req))

	req.EndDateTime = start
	assert.Error(t, v.Struct(req))
}
