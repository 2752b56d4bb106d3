package realtime

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const keepaliveInterval = 30 * time.Second

// SSEHandler streams change events from the given subjects to one client.
// Clients re-fetch the affected list on every event.
func SSEHandler(bus Bus, logger zerolog.Logger, subjects ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		subscriberID := uuid.New().String()
		events := make(chan []byte, 16)

		subs := make([]Subscription, 0, len(subjects))
		for _, subject := range subjects {
			sub, err := bus.Subscribe(subject, func(_ string, data []byte) {
				select {
				case events <- data:
				default:
					// slow client: drop rather than block the bus; the
					// next event still triggers the same re-fetch
				}
			})
			if err != nil {
				logger.Error().Err(err).Str("subject", subject).Msg("SSE subscribe failed")
				c.Status(http.StatusInternalServerError)
				return
			}
			subs = append(subs, sub)
		}
		defer func() {
			for _, sub := range subs {
				_ = sub.Unsubscribe()
			}
		}()

		logger.Info().Str("subscriber_id", subscriberID).Msg("new SSE connection")

		fmt.Fprintf(c.Writer, ": connected\n\n")
		fmt.Fprintf(c.Writer, "retry: 2000\n\n")
		c.Writer.Flush()

		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-c.Request.Context().Done():
				logger.Info().Str("subscriber_id", subscriberID).Msg("SSE client disconnected")
				return

			case <-ticker.C:
				fmt.Fprintf(c.Writer, ": keepalive\n\n")
				c.Writer.Flush()

			case data := <-events:
				fmt.Fprintf(c.Writer, "event: change\ndata: %s\n\n", data)
				c.Writer.Flush()
			}
		}
	}
}
