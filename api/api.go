package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/usecases"
)

type Configuration struct {
	Env         string
	Port        string
	FrontendUrl string

	RequestTimeout time.Duration
}

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases) *http.Server {
	addRoutes(router, conf, uc)

	// The route middleware enforces RequestTimeout; give the server layer 5
	// extra seconds so the 408 response is written by our code, not cut off
	// by the connection deadline.
	maxTimeout := conf.RequestTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      router,
	}
}
