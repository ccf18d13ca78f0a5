package handlers

import (
	"errors"
	"io"
	"net/http"

	"portfolio/internal/api/dto/common"
	contactdto "portfolio/internal/api/dto/v1/contact"
	"portfolio/internal/contact"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
	"portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ContactHandler struct {
	service *contact.Service
	logger  *logging.Logger
}

func NewContactHandler(service *contact.Service, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactdto.ContactRequest

	// Only JSON bodies are read; any other content type or an empty body is
	// an empty submission and fails validation below
	if c.ContentType() != binding.MIMEJSON {
		h.logger.Debug("Ignoring contact body with content type %q", c.ContentType())
	} else if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.HandleStatus(c, http.StatusRequestEntityTooLarge, common.StatusBodyTooLarge)
			return
		}
		h.logger.Debug("Rejected contact body: %v", err)
		utils.HandleStatus(c, http.StatusBadRequest, common.StatusInvalidBody)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), contact.Submission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	})
	if err != nil {
		var deliveryErr *contact.DeliveryError
		switch {
		case errors.Is(err, contact.ErrValidation):
			utils.HandleStatus(c, http.StatusBadRequest, common.StatusMissingFields)
		case errors.As(err, &deliveryErr):
			utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.StatusSendFailed)
		default:
			utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.StatusInternalError)
		}
		return
	}

	utils.HandleSuccess(c, toContactResponse(result))
}

func toContactResponse(result *contact.Result) contactdto.ContactResponse {
	if result.Mode == mail.ModeSMTP {
		return contactdto.ContactResponse{
			Code:      http.StatusOK,
			Status:    common.StatusMessageSent,
			MessageID: result.MessageID,
		}
	}

	resp := contactdto.ContactResponse{
		Code:   http.StatusOK,
		Status: common.StatusMessageTestMode,
	}
	if result.Preview != nil {
		resp.Data = &contactdto.SubmissionData{
			Name:    result.Preview.Name,
			Email:   result.Preview.Email,
			Message: result.Preview.Message,
		}
	}
	return resp
}
