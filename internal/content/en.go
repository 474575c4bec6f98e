package content

var english = Bundle{
	About: &About{
		Name:        "Benjamin Kyamoneka Mpey",
		Title:       "Youth Leader & Human Rights Activist",
		Tagline:     "Empowering Youth. Defending Rights. Inspiring Change.",
		Age:         21,
		Nationality: "Congolese",
		BasedIn:     "Kenya",
		Education:   "Bachelor of Laws (LLB), Mount Kenya University",
		Quote:       "Education is the most powerful tool for change, and youth are the driving force of transformation today.",
		Bio: "I am Kyamoneka Mpey Benjamin, a 21-year-old Congolese human rights activist based in Kenya, committed to justice, equality, and environmental sustainability. " +
			"My advocacy focuses on empowering young people through human rights education, digital safety, climate action, and legal literacy. " +
			"At Amnesty International Kenya, I support the Privacy First Campaign, advocating for a safer internet and data protection for youth. " +
			"Through Lawrit Journal of Law and Legal Alliance Associates, I organize debates, workshops, and trainings that promote civic education, legal research, and climate awareness, impacting hundreds of students across Africa.\n\n" +
			"I was the youngest participant selected globally to attend the 2025 Venice School for Human Rights Defenders, and I have been named a Youth Delegate to the HISA Youth Fellowship in Oxford and the \"You(th) Rebuilding the Broken\" Workshop in Brussels. " +
			"I am also part of the Global Youth MIDORI Platform, promoting youth engagement in biodiversity and sustainability.",
		FocusAreas: []string{
			"Human Rights Advocacy",
			"Climate Action",
			"Digital Privacy Rights",
			"Legal Literacy",
			"Youth Empowerment",
			"Environmental Justice",
		},
		Mission: "To empower young people through human rights education, digital safety, climate action, and legal literacy.",
		Vision:  "A world where youth are recognized as powerful agents of change and where human rights, environmental justice, and digital privacy are protected for all.",
	},
	Leadership: &Leadership{
		CurrentPositions: []Position{
			{
				Title:        "Privacy First Campaigner",
				Organization: "Amnesty International Kenya",
				Period:       "March 2025 – Present",
				Description:  "Leading advocacy for digital rights and privacy protections",
				Responsibilities: []string{
					"Conducting research on privacy laws and violations",
					"Organizing national workshops and policy dialogues on surveillance and youth safety online",
				},
			},
			{
				Title:        "Country Director",
				Organization: "Lawrit Journal of Law (DRC Chapter)",
				Period:       "Since August 2024",
				Description:  "Representing the DRC in a youth-led legal education and advocacy platform",
				Responsibilities: []string{
					"Coordinating legal literacy sessions, webinars, and publishing opportunities for students",
					"Bridging Francophone youth voices with pan-African legal innovation",
				},
			},
			{
				Title:        "Red Card Ambassador",
				Organization: "African Renaissance and Diaspora Network",
				Period:       "Jan – Jun 2025",
				Description:  "Managed digital outreach campaigns in support of gender equality",
				Responsibilities: []string{
					"Organized virtual events and Red Card advocacy actions aligned with SDG 5",
				},
			},
			{
				Title:        "Member, Communication Department",
				Organization: "Black Professionals in International Affairs (BPIA)",
				Period:       "Since July 2024",
				Description:  "Supporting strategic communication and youth engagement",
				Responsibilities: []string{
					"Assisting in the development of briefs and visibility content related to African youth in international affairs",
				},
			},
		},
		PastPositions: []Position{
			{
				Title:        "Head of the Department of Indigenous People",
				Organization: "Les Toges Vertes",
				Period:       "Jul 2022 – Dec 2022",
				Description:  "Led community-based legal interventions for Indigenous detainees in Goma",
				Responsibilities: []string{
					"Conducted prison interviews, gathered testimonies, and drafted human rights reports",
				},
			},
			{
				Title:        "Co-Founder & President",
				Organization: "EDDEC (Act for a Sustainable Development of the Environment in Congo)",
				Period:       "Dec 2019 – Dec 2021",
				Description:  "Designed and implemented environmental sustainability programs",
				Responsibilities: []string{
					"Led tree-planting campaign (6,000 trees in 35 schools)",
					"Formed environmental partnerships with WWF, FFN, and the Provincial Ministry of Environment",
					"Led school-based awareness campaigns impacting over 3,000 learners",
				},
			},
			{
				Title:        "Volunteer",
				Organization: "North Kivu Women's Platform (PFNDE)",
				Period:       "Feb 2023 – Aug 2023",
				Description:  "Conducted surveys and led advocacy campaigns",
				Responsibilities: []string{
					"Conducted surveys in 20 schools on sexual abuse and harassment",
					"Co-led a campaign against gender-based violence during the 16 Days of Activism 2023",
				},
			},
		},
	},
	Achievements: &Achievements{
		Fellowships: []Recognition{
			{Title: "Venice School for Human Rights Defenders", Organization: "International Commission of Jurists", Year: "2025", Location: "Venice, Italy", Distinction: "Youngest Participant Globally"},
			{Title: "HISA Youth Fellowship", Organization: "HISA", Year: "2025", Location: "Oxford, UK", Distinction: "Youth Delegate"},
			{Title: "You(th) Rebuilding the Broken Workshop", Organization: "Youth Democratic Renewal", Year: "2025", Location: "Brussels, Belgium", Distinction: "Youth Delegate"},
			{Title: "Aspire Leadership Program", Organization: "Aspire Institute & Harvard Business School", Year: "2025"},
			{Title: "Online Anti-Corruption Autumn School", Organization: "University of Oxford", Year: "2024"},
			{Title: "UNODC/IACA Training", Organization: "Global Youth Climate Leadership", Year: "2024", Location: "Switzerland"},
		},
		Awards: []Recognition{
			{Title: "Winner - Mock ICJ Moot on Climate Change", Organization: "Kenya Model United Nations", Year: "2024"},
			{Title: "Best Upcoming Mooter", Organization: "1st Kenya ICJ Moot, USIU-Kenya", Year: "2024"},
			{Title: "Best Male Orator", Organization: "MKU Moot Court Competition", Year: "2024"},
			{Title: "Best Male Orator", Organization: "6th Bachelor Moot Court, MKU", Year: "2024"},
			{Title: "Best Diplomat", Organization: "6th Intervarsity Diplomatic Conference, KEMUN", Year: "2024"},
			{Title: "Second Best Memorial", Organization: "KeMUN Refugee Moot", Year: "2024"},
			{Title: "Finalist", Organization: "MKU 1st Debate Championship", Year: "2023"},
			{Title: "Winner - Ka Mana Prize", Organization: "Ka Mana Foundation", Year: "2023"},
		},
	},
	Events: &Events{
		UpcomingEvents: []Event{
			{Title: "HISA Youth Fellowship", Location: "Oxford, UK", Date: "August 23-26, 2025", Type: "Fellowship", Description: "International youth leadership and policy development program"},
			{Title: "You(th) Rebuilding the Broken Workshop", Location: "Brussels, Belgium", Date: "July 31 - August 3, 2025", Type: "Workshop", Description: "Youth-led democratic renewal and governance workshop"},
		},
		PastEvents: []Event{
			{Title: "Venice School for Human Rights Defenders", Location: "Venice, Italy", Date: "2025", Type: "Training", Description: "Intensive human rights defenders training program"},
			{Title: "Privacy First Campaign Launch", Location: "Nairobi, Kenya", Date: "March 2025", Type: "Campaign Launch", Description: "Digital rights and privacy protection campaign for youth"},
			{Title: "Kenya Model United Nations", Location: "Nairobi, Kenya", Date: "2024", Type: "Competition", Description: "Mock ICJ Moot on Climate Change - Winner"},
		},
	},
	Projects: &Projects{
		FeaturedProjects: []Project{
			{Title: "Privacy First Campaign", Type: "Advocacy", Description: "National campaign for data protection and a safer internet for young people in Kenya."},
			{Title: "Legal Literacy Sessions", Type: "Education", Description: "Webinars, debates and trainings that bring legal research and civic education to students across Africa."},
			{Title: "6,000 Trees in 35 Schools", Type: "Environment", Description: "School-based tree planting and awareness campaign run with EDDEC in eastern Congo."},
			{Title: "School Safety Survey", Type: "Research", Description: "Survey of 20 schools on sexual abuse and harassment with the North Kivu Women's Platform."},
			{Title: "Indigenous Detainees Reports", Type: "Human Rights", Description: "Prison interviews and human rights reporting on Indigenous detainees in Goma."},
		},
	},
}
