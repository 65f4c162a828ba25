package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tablescope/tablescope-backend/utils"
)

const RequestIdHeader = "X-Request-Id"

// NewRequestId tags every request with an id, echoes it in the response
// header and attaches it to the request-scoped logger so log lines of one
// request can be correlated.
func NewRequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Header(RequestIdHeader, requestId)

		logger := utils.LoggerFromContext(c.Request.Context()).With("request_id", requestId)
		ctx := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
