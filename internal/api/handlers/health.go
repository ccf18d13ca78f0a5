package handlers

import (
	"time"

	"portfolio/internal/api/dto/common"
	"portfolio/internal/mail"
	"portfolio/internal/utils"
	"portfolio/internal/version"

	"github.com/gin-gonic/gin"
)

// timestampLayout is ISO-8601 in UTC with millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	transport *mail.Transport
	now       func() time.Time
}

func NewHealthHandler(transport *mail.Transport) *HealthHandler {
	return &HealthHandler{
		transport: transport,
		now:       time.Now,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, common.HealthResponse{
		Status:          common.StatusOK,
		Timestamp:       h.now().UTC().Format(timestampLayout),
		EmailConfigured: h.transport.Configured(),
	})
}

func (h *HealthHandler) Version(c *gin.Context) {
	utils.HandleSuccess(c, version.GetBuildInfo())
}
