package http

import (
	"net/http"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUseCase usecase.NewsletterUseCase
	logger            *logger.Logger
}

func NewNewsletterHandler(newsletterUseCase usecase.NewsletterUseCase, logger *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUseCase: newsletterUseCase,
		logger:            logger,
	}
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        subscription body entity.SubscriptionInput true "Subscriber"
// @Success      201  {object}  entity.NewsletterSubscription
// @Failure      400  {object}  map[string]string
// @Router       /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var input entity.SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.newsletterUseCase.Subscribe(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// ListSubscribers godoc
// @Summary      Newsletter subscribers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.NewsletterSubscription
// @Failure      401  {object}  map[string]string
// @Router       /admin/newsletter [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.newsletterUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}
