package content

var spanish = Bundle{
	About: &About{
		Name:        "Benjamin Kyamoneka Mpey",
		Title:       "Líder juvenil y activista de derechos humanos",
		Tagline:     "Empoderar a la juventud. Defender los derechos. Inspirar el cambio.",
		Age:         21,
		Nationality: "Congoleña",
		BasedIn:     "Kenia",
		Education:   "Licenciatura en Derecho (LLB), Universidad Mount Kenya",
		Quote:       "La educación es la herramienta más poderosa para el cambio, y la juventud es hoy la fuerza que impulsa la transformación.",
		Bio: "Soy Kyamoneka Mpey Benjamin, activista congoleño de derechos humanos de 21 años que vive en Kenia, comprometido con la justicia, la igualdad y la sostenibilidad ambiental. " +
			"Mi labor se centra en empoderar a los jóvenes mediante la educación en derechos humanos, la seguridad digital, la acción climática y la alfabetización jurídica.",
		FocusAreas: []string{
			"Defensa de los derechos humanos",
			"Acción climática",
			"Derecho a la privacidad digital",
			"Alfabetización jurídica",
			"Empoderamiento juvenil",
			"Justicia ambiental",
		},
		Mission: "Empoderar a los jóvenes mediante la educación en derechos humanos, la seguridad digital, la acción climática y la alfabetización jurídica.",
		Vision:  "Un mundo donde los jóvenes sean reconocidos como poderosos agentes de cambio y donde los derechos humanos, la justicia ambiental y la privacidad digital estén protegidos para todos.",
	},
	Projects: &Projects{
		FeaturedProjects: []Project{
			{Title: "Campaña Privacy First", Type: "Advocacy", Description: "Campaña nacional por la protección de datos y un internet más seguro para los jóvenes en Kenia."},
			{Title: "Sesiones de alfabetización jurídica", Type: "Education", Description: "Seminarios web, debates y talleres que acercan la investigación jurídica y la educación cívica a estudiantes de toda África."},
			{Title: "6.000 árboles en 35 escuelas", Type: "Environment", Description: "Campaña escolar de plantación y sensibilización realizada con EDDEC en el este del Congo."},
		},
	},
}
