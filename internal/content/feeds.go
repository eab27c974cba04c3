package content

// NewsItems is the bundled "actualités" feed. Entries are static and
// presented as-is; there is no fetching.
var NewsItems = []NewsItem{
	{
		ID:       "news-1",
		Title:    "Le Louvre inaugure une nouvelle exposition sur l'art égyptien",
		Summary:  "Une collection inédite de artefacts antiques est présentée pour la première fois.",
		Content:  "Le musée du Louvre a inauguré hier une exposition majeure consacrée à l'art égyptien antique. Cette présentation met en lumière plus de 200 pièces rarement montrées au public, dont des sarcophages, des bijoux et des papyrus datant de plus de 3000 ans.",
		Date:     "2026-01-25",
		Source:   "Le Monde",
		Category: "Art",
	},
	{
		ID:       "news-2",
		Title:    "Découverte archéologique majeure en Grèce",
		Summary:  "Des fouilles ont révélé un théâtre antique parfaitement conservé.",
		Content:  "Une équipe d'archéologues grecs et internationaux a découvert un théâtre antique datant du IVe siècle avant J.-C. près d'Athènes. Le site exceptionnellement bien conservé pourrait changer notre compréhension du théâtre classique grec.",
		Date:     "2026-01-24",
		Source:   "National Geographic",
		Category: "Histoire",
	},
	{
		ID:       "news-3",
		Title:    "Le Prix Goncourt 2025 récompense un roman sur l'intelligence artificielle",
		Summary:  "Une œuvre futuriste explore les implications éthiques de l'IA.",
		Content:  "Le prestigieux Prix Goncourt a été attribué cette année à un roman d'anticipation qui interroge les rapports entre l'homme et la machine. L'auteur, âgé de 34 ans, est le plus jeune lauréat depuis 30 ans.",
		Date:     "2026-01-22",
		Source:   "France Culture",
		Category: "Littérature",
	},
	{
		ID:       "news-4",
		Title:    "NASA : nouvelles images spectaculaires de Jupiter",
		Summary:  "Le télescope James Webb révèle les secrets de la grande planète gazeuse.",
		Content:  "Les dernières images capturées par le télescope spatial James Webb montrent Jupiter sous un jour nouveau. Les scientifiques ont pu observer en détail les tempêtes polaires et les aurores boréales de la planète.",
		Date:     "2026-01-20",
		Source:   "Science & Vie",
		Category: "Science",
	},
}

// PopularItems is the bundled "tendances" feed.
var PopularItems = []PopularItem{
	{
		ID:          "pop-1",
		Title:       "Renaissance : L'âge d'or de l'art italien",
		Description: "Découvrez les maîtres de la Renaissance : Léonard, Michel-Ange, Raphaël...",
		Type:        "art",
		Trending:    true,
	},
	{
		ID:          "pop-2",
		Title:       "La Révolution industrielle",
		Description: "Comment le monde est passé de l'agriculture à l'industrie.",
		Type:        "histoire",
		Trending:    true,
	},
	{
		ID:          "pop-3",
		Title:       "Les grands compositeurs classiques",
		Description: "Mozart, Beethoven, Bach : leur vie et leur œuvre.",
		Type:        "musique",
		Trending:    false,
	},
	{
		ID:          "pop-4",
		Title:       "Cinéma français : La Nouvelle Vague",
		Description: "Godard, Truffaut et les autres révolutionnaires du 7ème art.",
		Type:        "film",
		Trending:    true,
	},
	{
		ID:          "pop-5",
		Title:       "Les découvertes scientifiques du XXe siècle",
		Description: "Relativité, quantique, ADN : les révolutions qui ont changé notre vision du monde.",
		Type:        "science",
		Trending:    false,
	},
}

// Suggestions is the bundled personal recommendation list.
var Suggestions = []Suggestion{
	{
		ID:          "sugg-1",
		Title:       "Quiz : Les chefs-d'œuvre de la peinture",
		Description: "Testez vos connaissances sur les plus grands tableaux de l'histoire.",
		Type:        "quiz",
		Reason:      "Basé sur votre intérêt pour l'art",
	},
	{
		ID:          "sugg-2",
		Title:       "Lire : Les Misérables (résumé)",
		Description: "Un résumé détaillé du chef-d'œuvre de Victor Hugo.",
		Type:        "article",
		Reason:      "Vous aimez la littérature classique",
	},
	{
		ID:          "sugg-3",
		Title:       "Quiz : Géographie du monde",
		Description: "Capitales, fleuves et montagnes : êtes-vous incollable ?",
		Type:        "quiz",
		Reason:      "Pour diversifier vos connaissances",
		Completed:   true,
	},
	{
		ID:          "sugg-4",
		Title:       "Découvrir : L'Origine du monde de Courbet",
		Description: "L'histoire fascinante d'un tableau controversé.",
		Type:        "article",
		Reason:      "Recommandé pour les amateurs d'art",
	},
}
