package handlers

import (
	"github.com/gin-gonic/gin"

	"multivendor/internal/config"
	"multivendor/internal/middleware"
	"multivendor/internal/store"
)

type Deps struct {
	Store  store.Handle
	Config config.Config
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.GET("/", Home())
	r.GET("/healthz", Healthz())
	r.GET("/test", Diagnostics(deps.Store, deps.Config))

	api := r.Group("/api")
	{
		api.GET("/products", ListProducts(deps.Store, deps.Config.MaxListLimit))
		api.GET("/vendors", ListVendors(deps.Store, deps.Config.MaxListLimit))
		api.POST("/newsletter", Subscribe(deps.Store))
		api.POST("/vendor/apply", ApplyAsVendor(deps.Store))
	}
}
