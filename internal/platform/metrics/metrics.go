// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Bid outcomes.
const (
	BidAccepted      = "accepted"
	BidTooLow        = "too_low"
	BidAuctionClosed = "auction_closed"
	BidNotFound      = "not_found"
	BidInvalid       = "invalid"
	BidError         = "error"
)

// Notification outcomes.
const (
	NotificationCreated       = "created"
	NotificationFailed        = "failed"
	NotificationPublished     = "published"
	NotificationPublishFailed = "publish_failed"
)

var (
	BidsPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionbay",
		Name:      "bids_total",
		Help:      "Bid placement attempts by outcome.",
	}, []string{"outcome"})

	BidPlacementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "auctionbay",
		Name:      "bid_placement_duration_seconds",
		Help:      "Time spent in the locked validate-and-insert step.",
		Buckets:   prometheus.DefBuckets,
	})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionbay",
		Name:      "notifications_total",
		Help:      "Outbid notification dispatches by outcome.",
	}, []string{"outcome"})
)

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
