package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/chargify-bridge/internal/observability/context"
	"github.com/smallbiznis/chargify-bridge/pkg/telemetry/correlation"
)

const headerCorrelationID = "X-Correlation-Id"

// HandleWebhook forwards the raw delivery and always acknowledges it once
// the body has been read. Sink failures are logged by the webhook service.
func (s *Server) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, ErrInvalidBody)
		return
	}

	// Without an upstream correlation id the request id ties the stream
	// entry to the access log.
	cid := strings.TrimSpace(c.GetHeader(headerCorrelationID))
	if cid == "" {
		cid = obscontext.RequestIDFromGin(c)
	}
	ctx := correlation.ContextWithCorrelationID(c.Request.Context(), cid)
	event, err := s.webhooks.Forward(ctx, c.GetHeader("Content-Type"), payload)
	if err != nil {
		_ = c.Error(err)
	}

	c.Request = c.Request.WithContext(obscontext.WithDeliveryID(c.Request.Context(), event.ID.String()))
	c.String(http.StatusOK, "ok")
}

// HandleWebhookProbe answers the provider's reachability checks.
func (s *Server) HandleWebhookProbe(c *gin.Context) {
	c.Status(http.StatusOK)
}
