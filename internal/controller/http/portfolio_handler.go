package http

import (
	"net/http"

	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUseCase usecase.PortfolioUseCase
	logger           *logger.Logger
}

func NewPortfolioHandler(portfolioUseCase usecase.PortfolioUseCase, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUseCase: portfolioUseCase,
		logger:           logger,
	}
}

// Root godoc
// @Summary      API banner
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *PortfolioHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.portfolioUseCase.Banner()})
}

// Languages godoc
// @Summary      Supported languages
// @Description  Language code to native name.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /languages [get]
func (h *PortfolioHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioUseCase.Languages())
}

// Section godoc
// @Summary      Portfolio section
// @Description  Unknown or missing languages fall back to English. Content-Language names the language served.
// @Tags         portfolio
// @Produce      json
// @Param        section path string true "Section" Enums(about, leadership, achievements, events, projects)
// @Param        lang query string false "Language code" Enums(en, fr, ar, zh, es)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /portfolio/{section} [get]
func (h *PortfolioHandler) Section(c *gin.Context) {
	body, served, err := h.portfolioUseCase.Section(c.Query("lang"), c.Param("section"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Content-Language", served)
	c.JSON(http.StatusOK, body)
}
