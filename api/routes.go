package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/listing", timeoutMiddleware(conf.RequestTimeout), handleListing(uc))

	r.POST("/queries", timeoutMiddleware(conf.RequestTimeout), handleSaveQuery(uc))
	r.GET("/queries/:digest", timeoutMiddleware(conf.RequestTimeout), handleGetQuery(uc))

	r.GET("/tables/:table/fields", timeoutMiddleware(conf.RequestTimeout), handleListTableFields(uc))
}

func handleLivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
