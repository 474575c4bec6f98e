package content

var arabic = Bundle{
	About: &About{
		Name:        "بنيامين كيامونيكا مبي",
		Title:       "قائد شبابي وناشط في مجال حقوق الإنسان",
		Tagline:     "تمكين الشباب. الدفاع عن الحقوق. إلهام التغيير.",
		Age:         21,
		Nationality: "كونغولي",
		BasedIn:     "كينيا",
		Education:   "بكالوريوس في القانون، جامعة ماونت كينيا",
		Quote:       "التعليم هو أقوى أداة للتغيير، والشباب هم القوة الدافعة للتحول اليوم.",
		Bio:         "أنا كيامونيكا مبي بنيامين، ناشط كونغولي في مجال حقوق الإنسان يبلغ من العمر 21 عامًا ويقيم في كينيا، ملتزم بالعدالة والمساواة والاستدامة البيئية. يركز عملي على تمكين الشباب من خلال التثقيف في مجال حقوق الإنسان والسلامة الرقمية والعمل المناخي والثقافة القانونية.",
		FocusAreas: []string{
			"الدفاع عن حقوق الإنسان",
			"العمل المناخي",
			"حقوق الخصوصية الرقمية",
			"الثقافة القانونية",
			"تمكين الشباب",
			"العدالة البيئية",
		},
		Mission: "تمكين الشباب من خلال التثقيف في مجال حقوق الإنسان والسلامة الرقمية والعمل المناخي والثقافة القانونية.",
		Vision:  "عالم يُعترف فيه بالشباب كعوامل قوية للتغيير وتُحمى فيه حقوق الإنسان والعدالة البيئية والخصوصية الرقمية للجميع.",
	},
}
