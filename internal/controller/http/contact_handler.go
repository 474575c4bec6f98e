package http

import (
	"net/http"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *logger.Logger
}

func NewContactHandler(contactUseCase usecase.ContactUseCase, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// SubmitContact godoc
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message body entity.ContactInput true "Message"
// @Success      201  {object}  entity.ContactMessage
// @Failure      400  {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input entity.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.contactUseCase.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListContacts godoc
// @Summary      Contact inbox
// @Description  Newest first, at most 100 messages.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.ContactMessage
// @Failure      401  {object}  map[string]string
// @Router       /admin/contact [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	messages, err := h.contactUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
