package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"multivendor/internal/config"
	"multivendor/internal/logger"
	"multivendor/internal/store"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLen    = 50
)

type DiagnosticsReport struct {
	Backend      string   `json:"backend"`
	Database     string   `json:"database"`
	DatabaseURL  string   `json:"database_url"`
	DatabaseName string   `json:"database_name"`
	Collections  []string `json:"collections"`
}

func setOrNot(set bool) string {
	if set {
		return "Set"
	}
	return "Not Set"
}

/*
GET /test
- Always 200. A failure listing collections is folded into the
  "database" field.
*/
func Diagnostics(h store.Handle, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /test"
		defer handlePanic(c, route)
		ctx := routeContext(c, route)

		report := DiagnosticsReport{
			Backend:      "Running",
			Database:     "Not Available",
			DatabaseURL:  setOrNot(cfg.DatabaseURLSet()),
			DatabaseName: setOrNot(cfg.DatabaseNameSet()),
			Collections:  []string{},
		}

		if s, ok := h.Get(); ok {
			report.Database = "Connected"

			names, err := s.CollectionNames(ctx)
			if err != nil {
				logger.Warn(ctx, "listing collections failed", logger.ErrorF(err))
				report.Database = "Error: " + lo.Substring(err.Error(), 0, maxReportedErrorLen)
			} else {
				report.Collections = append(report.Collections, lo.Subset(names, 0, maxReportedCollections)...)
			}
		}

		logger.Info(ctx, "returning diagnostics", logger.String("database", report.Database))
		c.JSON(http.StatusOK, report)
	}
}
