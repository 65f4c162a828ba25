package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("slow handler gets a 408", func(t *testing.T) {
		r := gin.New()
		r.GET("/slow", timeoutMiddleware(20*time.Millisecond), func(c *gin.Context) {
			time.Sleep(200 * time.Millisecond)
			c.Status(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/slow", nil))
		assert.Equal(t, http.StatusRequestTimeout, recorder.Code)
	})

	t.Run("fast handler is untouched", func(t *testing.T) {
		r := gin.New()
		r.GET("/fast", timeoutMiddleware(time.Second), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/fast", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})
}
