package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/character-api/internal/infrastructure/metrics"
)

// Metrics registra contagem e duração por rota no registry da aplicação
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "/metrics" {
			c.Next()
			return
		}
		if route == "" {
			route = "unmatched"
		}

		m.InFlight.Inc()
		start := time.Now()

		// Um panic atravessa este middleware antes do recovery escrever o 500
		defer func() {
			status := c.Writer.Status()
			recovered := recover()
			if recovered != nil {
				status = http.StatusInternalServerError
			}

			m.InFlight.Dec()
			m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
			m.Duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())

			if recovered != nil {
				panic(recovered)
			}
		}()

		c.Next()
	}
}
