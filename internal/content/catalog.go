// Package content holds the static multilingual portfolio tables.
package content

import "portfolio-api/internal/entity"

const Banner = "Benjamin Kyamoneka Mpey Portfolio API"

var languageNames = map[string]string{
	entity.LangEnglish: "English",
	entity.LangFrench:  "Français",
	entity.LangArabic:  "العربية",
	entity.LangChinese: "中文",
	entity.LangSpanish: "Español",
}

var bundles = map[string]Bundle{
	entity.LangEnglish: english,
	entity.LangFrench:  french,
	entity.LangArabic:  arabic,
	entity.LangChinese: chinese,
	entity.LangSpanish: spanish,
}

// Languages returns code to native name for every supported language.
func Languages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		out[code] = name
	}
	return out
}

func Supported(lang string) bool {
	_, ok := bundles[lang]
	return ok
}

// Section returns the section in lang, or in English when lang lacks it.
// The second result is the language actually served.
func Section(lang string, section entity.PortfolioSection) (interface{}, string, bool) {
	if b, ok := bundles[lang]; ok {
		if v := pick(b, section); v != nil {
			return v, lang, true
		}
	}
	if v := pick(english, section); v != nil {
		return v, entity.LangEnglish, true
	}
	return nil, "", false
}

func pick(b Bundle, section entity.PortfolioSection) interface{} {
	switch section {
	case entity.SectionAbout:
		if b.About != nil {
			return b.About
		}
	case entity.SectionLeadership:
		if b.Leadership != nil {
			return b.Leadership
		}
	case entity.SectionAchievements:
		if b.Achievements != nil {
			return b.Achievements
		}
	case entity.SectionEvents:
		if b.Events != nil {
			return b.Events
		}
	case entity.SectionProjects:
		if b.Projects != nil {
			return b.Projects
		}
	}
	return nil
}
