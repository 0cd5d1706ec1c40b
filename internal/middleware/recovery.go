package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/CynthiaM111/weshare-sub002/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into the same 500 body handleError writes.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString("request_id")),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.Set("error", "panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Error: "internal server error"},
			)
		}()

		c.Next()
	}
}
