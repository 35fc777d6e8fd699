package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"multivendor/internal/logger"
	"multivendor/internal/models"
	"multivendor/internal/store"
)

// Pointer fields so a present-but-empty string passes binding while a
// missing or null field does not.
type SubscribeRequest struct {
	Email *string `json:"email" binding:"required"`
}

type VendorApplyRequest struct {
	Name      *string `json:"name" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	StoreName *string `json:"storeName" binding:"required"`
	Message   *string `json:"message"`
}

/*
POST /api/newsletter
- Email format is only checked when a store is connected; without one the
  sign-up is accepted as is.
*/
func Subscribe(h store.Handle) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/newsletter"
		defer handlePanic(c, route)
		ctx := routeContext(c, route)

		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		s, ok := h.Get()
		if !ok {
			logger.Info(ctx, "store unavailable, accepting subscription without persisting")
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		sub, err := models.NewNewsletterSubscription(*req.Email)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), err)
			return
		}

		id, err := s.Insert(ctx, models.KindNewsletter, sub)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), err)
			return
		}

		logger.Info(ctx, "subscription stored", logger.String("id", id))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

/*
POST /api/vendor/apply
- Same contract as the newsletter: validated and stored only with a store.
*/
func ApplyAsVendor(h store.Handle) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/vendor/apply"
		defer handlePanic(c, route)
		ctx := routeContext(c, route)

		var req VendorApplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		s, ok := h.Get()
		if !ok {
			logger.Info(ctx, "store unavailable, accepting application without persisting")
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		message := ""
		if req.Message != nil {
			message = *req.Message
		}

		application, err := models.NewVendorApplication(*req.Name, *req.Email, *req.StoreName, message)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), err)
			return
		}

		id, err := s.Insert(ctx, models.KindVendorApplication, application)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error(), err)
			return
		}

		logger.Info(ctx, "vendor application stored", logger.String("id", id), logger.String("store_name", application.StoreName))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
