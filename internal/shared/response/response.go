package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-userreg/internal/shared/contextutil"
)

// HeaderCorrelationID is the client-supplied tracing header. Its value
// is opaque to the service and echoed back verbatim when present.
const HeaderCorrelationID = "X-Correlation-ID"

// ErrorResponse is the wire shape of every failure body the service
// writes, whichever stage produced it.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	RequestID     string `json:"requestId"`
	CorrelationID string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// Error writes the structured failure body. The request id comes from
// the request context; stages running before the logging stage see an
// empty id and report "Unknown". An inbound correlation id is echoed on
// both the response header and the body.
func Error(c *gin.Context, status int, code string, message string) {
	rid := contextutil.GetRequestID(c.Request.Context())
	if rid == "" {
		rid = "Unknown"
	}

	body := ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: rid,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if cid := c.GetHeader(HeaderCorrelationID); cid != "" {
		body.CorrelationID = cid
		c.Header(HeaderCorrelationID, cid)
	}

	c.JSON(status, body)
}
