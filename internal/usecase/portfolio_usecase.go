package usecase

import (
	"fmt"
	"strings"

	"portfolio-api/internal/content"
	"portfolio-api/internal/entity"
)

type PortfolioUseCase interface {
	Languages() map[string]string
	// Section resolves lang (falling back to English) and returns the section body.
	Section(lang, section string) (interface{}, string, error)
	Banner() string
}

type portfolioUseCase struct{}

func NewPortfolioUseCase() PortfolioUseCase {
	return &portfolioUseCase{}
}

func (uc *portfolioUseCase) Languages() map[string]string {
	return content.Languages()
}

func (uc *portfolioUseCase) Section(lang, section string) (interface{}, string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !content.Supported(lang) {
		lang = entity.DefaultLanguage
	}
	body, served, ok := content.Section(lang, entity.PortfolioSection(strings.ToLower(section)))
	if !ok {
		return nil, "", fmt.Errorf("portfolio section %q: %w", section, entity.ErrNotFound)
	}
	return body, served, nil
}

func (uc *portfolioUseCase) Banner() string {
	return content.Banner
}
