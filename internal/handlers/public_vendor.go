package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"multivendor/internal/logger"
	"multivendor/internal/models"
	"multivendor/internal/store"
)

/*
GET /api/vendors
- limit: default 6
*/
func ListVendors(h store.Handle, maxLimit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/vendors"
		defer handlePanic(c, route)
		ctx := routeContext(c, route)

		limit, err := parseLimit(c.Query("limit"), defaultVendorLimit, maxLimit)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}

		logger.Info(ctx, "hit", logger.Int64("limit", limit))

		s, ok := h.Get()
		if !ok {
			vendors := sampleVendors(int(limit))
			logger.Info(ctx, "store unavailable, returning sample vendors", logger.Int("count", len(vendors)))
			c.JSON(http.StatusOK, vendors)
			return
		}

		docs, err := s.Find(ctx, models.KindVendor, bson.M{}, limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, "db error", err)
			return
		}

		vendors := make([]models.Vendor, 0, len(docs))
		for _, doc := range docs {
			vendor, err := models.DecodeVendor(doc)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, "decode error", err)
				return
			}
			vendors = append(vendors, vendor)
		}

		logger.Info(ctx, "returning vendors", logger.Int("count", len(vendors)))
		c.JSON(http.StatusOK, vendors)
	}
}
