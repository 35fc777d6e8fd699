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
GET /api/products
- limit: default 8
- category: exact match, only applied when a store is connected
*/
func ListProducts(h store.Handle, maxLimit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)
		ctx := routeContext(c, route)

		category := c.Query("category")
		limit, err := parseLimit(c.Query("limit"), defaultProductLimit, maxLimit)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}

		logger.Info(ctx, "hit", logger.Int64("limit", limit), logger.String("category", category))

		s, ok := h.Get()
		if !ok {
			products := sampleProducts(int(limit))
			logger.Info(ctx, "store unavailable, returning sample products", logger.Int("count", len(products)))
			c.JSON(http.StatusOK, products)
			return
		}

		filter := bson.M{}
		if category != "" {
			filter["category"] = category
		}

		docs, err := s.Find(ctx, models.KindProduct, filter, limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, "db error", err)
			return
		}

		products := make([]models.Product, 0, len(docs))
		for _, doc := range docs {
			product, err := models.DecodeProduct(doc)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, "decode error", err)
				return
			}
			products = append(products, product)
		}

		logger.Info(ctx, "returning products", logger.Int("count", len(products)))
		c.JSON(http.StatusOK, products)
	}
}
