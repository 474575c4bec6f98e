package content

var french = Bundle{
	About: &About{
		Name:        "Benjamin Kyamoneka Mpey",
		Title:       "Leader des jeunes et militant des droits humains",
		Tagline:     "Autonomiser la jeunesse. Défendre les droits. Inspirer le changement.",
		Age:         21,
		Nationality: "Congolaise",
		BasedIn:     "Kenya",
		Education:   "Licence en droit (LLB), Université Mount Kenya",
		Quote:       "L'éducation est l'outil le plus puissant pour le changement, et la jeunesse est aujourd'hui le moteur de la transformation.",
		Bio: "Je suis Kyamoneka Mpey Benjamin, militant congolais des droits humains âgé de 21 ans et basé au Kenya, engagé pour la justice, l'égalité et la durabilité environnementale. " +
			"Mon plaidoyer vise à autonomiser les jeunes par l'éducation aux droits humains, la sécurité numérique, l'action climatique et la culture juridique. " +
			"À Amnesty International Kenya, je soutiens la campagne Privacy First pour un internet plus sûr et la protection des données des jeunes.",
		FocusAreas: []string{
			"Défense des droits humains",
			"Action climatique",
			"Droit à la vie privée numérique",
			"Culture juridique",
			"Autonomisation des jeunes",
			"Justice environnementale",
		},
		Mission: "Autonomiser les jeunes par l'éducation aux droits humains, la sécurité numérique, l'action climatique et la culture juridique.",
		Vision:  "Un monde où les jeunes sont reconnus comme de puissants acteurs du changement et où les droits humains, la justice environnementale et la vie privée numérique sont protégés pour tous.",
	},
	Events: &Events{
		UpcomingEvents: []Event{
			{Title: "HISA Youth Fellowship", Location: "Oxford, Royaume-Uni", Date: "23-26 août 2025", Type: "Bourse", Description: "Programme international de leadership des jeunes et d'élaboration de politiques"},
			{Title: "Atelier You(th) Rebuilding the Broken", Location: "Bruxelles, Belgique", Date: "31 juillet - 3 août 2025", Type: "Atelier", Description: "Atelier sur le renouveau démocratique et la gouvernance porté par les jeunes"},
		},
		PastEvents: []Event{
			{Title: "École de Venise pour les défenseurs des droits humains", Location: "Venise, Italie", Date: "2025", Type: "Formation", Description: "Formation intensive des défenseurs des droits humains"},
			{Title: "Lancement de la campagne Privacy First", Location: "Nairobi, Kenya", Date: "Mars 2025", Type: "Lancement de campagne", Description: "Campagne pour les droits numériques et la protection de la vie privée des jeunes"},
			{Title: "Kenya Model United Nations", Location: "Nairobi, Kenya", Date: "2024", Type: "Compétition", Description: "Procès simulé de la CIJ sur le changement climatique - Vainqueur"},
		},
	},
	Projects: &Projects{
		FeaturedProjects: []Project{
			{Title: "Campagne Privacy First", Type: "Advocacy", Description: "Campagne nationale pour la protection des données et un internet plus sûr pour les jeunes au Kenya."},
			{Title: "Sessions de culture juridique", Type: "Education", Description: "Webinaires, débats et formations qui rapprochent la recherche juridique et l'éducation civique des étudiants africains."},
			{Title: "6 000 arbres dans 35 écoles", Type: "Environment", Description: "Campagne de plantation et de sensibilisation en milieu scolaire menée avec EDDEC dans l'est du Congo."},
		},
	},
}
