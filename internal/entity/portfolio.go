package entity

// Language codes served by the portfolio facade.
const (
	LangEnglish = "en"
	LangFrench  = "fr"
	LangArabic  = "ar"
	LangChinese = "zh"
	LangSpanish = "es"

	DefaultLanguage = LangEnglish
)

type PortfolioSection string

const (
	SectionAbout        PortfolioSection = "about"
	SectionLeadership   PortfolioSection = "leadership"
	SectionAchievements PortfolioSection = "achievements"
	SectionEvents       PortfolioSection = "events"
	SectionProjects     PortfolioSection = "projects"
)
