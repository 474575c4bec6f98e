package content

var chinese = Bundle{
	About: &About{
		Name:        "本杰明·基亚莫内卡·姆佩",
		Title:       "青年领袖与人权活动家",
		Tagline:     "赋能青年。捍卫权利。激发变革。",
		Age:         21,
		Nationality: "刚果",
		BasedIn:     "肯尼亚",
		Education:   "肯尼亚山大学法学学士",
		Quote:       "教育是推动变革最有力的工具，青年是当今变革的推动力量。",
		Bio:         "我是基亚莫内卡·姆佩·本杰明，一名21岁、常驻肯尼亚的刚果人权活动家，致力于正义、平等与环境可持续发展。我的倡导工作通过人权教育、数字安全、气候行动和法律素养来赋能青年。",
		FocusAreas: []string{
			"人权倡导",
			"气候行动",
			"数字隐私权",
			"法律素养",
			"青年赋能",
			"环境正义",
		},
		Mission: "通过人权教育、数字安全、气候行动和法律素养赋能青年。",
		Vision:  "一个青年被视为强大变革力量、人权、环境正义和数字隐私人人受到保护的世界。",
	},
}
