package content

// MythologyItems is the static Greco-Roman treasure pool, one item per day.
var MythologyItems = []MythologyItem{
	{
		ID:          "myth-oeuvre-1",
		Title:       "L'Odyssée",
		Author:      "Homère",
		Date:        "VIIIe siècle av. J.-C.",
		Category:    MythOeuvre,
		Description: "Le retour mouvementé d'Ulysse (Odysseus) vers Ithaque après la guerre de Troie. Un voyage de dix ans parsemé d'épreuves et de rencontres mythiques.",
		KeyFacts: []string{
			"Ulysse affronte Cyclope, Circé et les sirènes",
			"Son épouse Pénélope attend fidèlement son retour",
			"Télémaque part à sa recherche",
			"Le récit est structuré en 24 chants",
		},
		WhyImportant: "Fondement de la littérature occidentale, modèle du voyage initiatique et de l'héroïsme.",
		Quote:        "Dis-moi, Muse, l'homme aux mille ruses qui tant de fois erra...",
	},
	{
		ID:          "myth-oeuvre-2",
		Title:       "L'Iliade",
		Author:      "Homère",
		Date:        "VIIIe siècle av. J.-C.",
		Category:    MythOeuvre,
		Description: "Le récit de la colère d'Achille pendant la guerre de Troie. L'un des plus grands poèmes épiques de l'Antiquité.",
		KeyFacts: []string{
			"Achille refuse de combattre après un affront d'Agamemnon",
			"Hector, prince troyen, défend sa ville",
			"La mort de Patrocle pousse Achille à reprendre les armes",
			"Le cheval de Troie n'est mentionné que brièvement",
		},
		WhyImportant: "Première œuvre majeure de la civilisation occidentale, exploration de la gloire et de la mort.",
	},
	{
		ID:          "myth-oeuvre-3",
		Title:       "Les Métamorphoses",
		Author:      "Ovide",
		Date:        "8 ap. J.-C.",
		Category:    MythOeuvre,
		Description: "Un poème en 15 livres racontant les transformations des êtres dans la mythologie gréco-romaine.",
		KeyFacts: []string{
			"Plus de 250 mythes interconnectés",
			"Le thème central est le changement de forme",
			"De la création du monde jusqu'à l'apothéose de César",
			"Source majeure pour les artistes de la Renaissance",
		},
		WhyImportant: "Bible mythologique de l'Antiquité, source d'inspiration inépuisable pour l'art occidental.",
	},
	{
		ID:          "myth-oeuvre-4",
		Title:       "La Théogonie",
		Author:      "Hésiode",
		Date:        "VIIe siècle av. J.-C.",
		Category:    MythOeuvre,
		Description: "Poème décrivant les origines et la généalogie des dieux grecs, de Chaos à Zeus.",
		KeyFacts: []string{
			"Naissance des dieux depuis le Chaos originel",
			"La lutte entre Cronos et Ouranos",
			"La victoire de Zeus sur les Titans",
			"Les Muses inspirent le poète",
		},
		WhyImportant: "Texte fondateur de la mythologie grecque, systématisation des croyances religieuses.",
	},
	{
		ID:          "myth-sculpt-1",
		Title:       "Vénus de Milo",
		Author:      "Alexandros d'Antioche",
		Date:        "130-100 av. J.-C.",
		Category:    MythSculpture,
		Description: "Statue de marbre représentant Aphrodite (Vénus), déesse de l'amour et de la beauté. Ses bras manquants ajoutent à son mystère.",
		KeyFacts: []string{
			"Découverte en 1820 sur l'île de Milo",
			"Haute de 2,04 mètres",
			"Sculptée en marbre de Paros",
			"Au Louvre depuis son acquisition par la France",
		},
		WhyImportant: "Symbole universel de la beauté féminine, chef-d'œuvre de l'art hellénistique.",
	},
	{
		ID:          "myth-sculpt-2",
		Title:       "Le Discobole",
		Author:      "Myron",
		Date:        "450 av. J.-C. (original)",
		Category:    MythSculpture,
		Description: "Athlète grec au moment précis du lancer du disque. Parfait exemple de l'équilibre entre mouvement et repos.",
		KeyFacts: []string{
			"L'original en bronze est perdu",
			"Connu par des copies romaines en marbre",
			"Représente l'idéal athlétique grec",
			"Exemple du \"moment juste\" dans l'art",
		},
		WhyImportant: "Incarne l'idéal de beauté et d'harmonie du corps athlétique dans la Grèce antique.",
	},
	{
		ID:          "myth-sculpt-3",
		Title:       "La Victoire de Samothrace",
		Author:      "Inconnu",
		Date:        "190 av. J.-C.",
		Category:    MythSculpture,
		Description: "Niké (Victoire) debout sur la proue d'un navire. Ses ailes déployées suggèrent un atterrissage.",
		KeyFacts: []string{
			"Découverte en 1863 sur l'île de Samothrace",
			"Haute de 2,75 mètres avec sa base",
			"Probablement une offrande pour une victoire navale",
			"Considérée comme le plus grand chef-d'œuvre hellénistique",
		},
		WhyImportant: "Expression suprême du mouvement et de la victoire dans la sculpture antique.",
	},
	{
		ID:          "myth-sculpt-4",
		Title:       "Le Laocoon",
		Author:      "Agesandros, Athénodoros, Polydoros",
		Date:        "Ier siècle av. J.-C.",
		Category:    MythSculpture,
		Description: "Le prêtre Laocoon et ses deux fils luttant contre les serpents marins envoyés par les dieux.",
		KeyFacts: []string{
			"Découvert à Rome en 1506",
			"Michel-Ange s'en serait inspiré",
			"Illustre la punition divine",
			"Exemple de pathos (émotion) dans l'art",
		},
		WhyImportant: "Chef-d'œuvre de l'expression de la souffrance, influence majeure sur l'art occidental.",
	},
	{
		ID:          "myth-philo-1",
		Title:       "Le Mythe de la Caverne",
		Author:      "Platon",
		Date:        "IVe siècle av. J.-C.",
		Category:    MythPhilosophie,
		Description: "Allégorie célèbre où des prisonniers voient uniquement des ombres, prenant l'illusion pour la réalité.",
		KeyFacts: []string{
			"Les prisonniers voient des ombres projetées sur un mur",
			"Un prisonnier s'échappe et découvre le vrai monde",
			"Il retourne avertir les autres mais est moqué",
			"Métaphore de la quête de la connaissance",
		},
		WhyImportant: "Fondement de la théorie platonicienne des Idées, métaphore de l'illumination philosophique.",
		Quote:        "L'essentiel n'est pas de vivre, mais de bien vivre.",
	},
	{
		ID:          "myth-philo-2",
		Title:       "L'Apologie de Socrate",
		Author:      "Platon",
		Date:        "399 av. J.-C.",
		Category:    MythPhilosophie,
		Description: "Discours de défense de Socrate lors de son procès pour impiété et corruption de la jeunesse.",
		KeyFacts: []string{
			"Socrate est accusé de ne pas croire aux dieux de la cité",
			"Il prétend n'être que le plus sage car il sait qu'il ne sait rien",
			"Condamné à mort par empoisonnement au cicuta",
			"Refuse de s'enfuir malgré la possibilité",
		},
		WhyImportant: "Fondement de la philosophie morale, portrait du philosophe en chercheur de vérité.",
		Quote:        "Une vie sans examen ne vaut pas la peine d'être vécue.",
	},
	{
		ID:          "myth-philo-3",
		Title:       "La Méditation",
		Author:      "Marc Aurèle",
		Date:        "161-180 ap. J.-C.",
		Category:    MythPhilosophie,
		Description: "Notes personnelles de l'empereur romain sur le stoïcisme, la vertu et la vie.",
		KeyFacts: []string{
			"Écrites en grec malgré la nationalité latine",
			"Jamais destinées à la publication",
			"12 livres de réflexions personnelles",
			"Guide pratique du stoïcisme",
		},
		WhyImportant: "Manuel de sagesse pratique, l'un des plus grands textes de philosophie morale.",
		Quote:        "Vous avez le pouvoir sur votre esprit, pas sur les événements extérieurs.",
	},
	{
		ID:          "myth-philo-4",
		Title:       "L'Éthique à Nicomaque",
		Author:      "Aristote",
		Date:        "IVe siècle av. J.-C.",
		Category:    MythPhilosophie,
		Description: "Traité sur la vertu et le bonheur. Définit la vertu comme un juste milieu entre deux excès.",
		KeyFacts: []string{
			"La vertu est une habitude choisie",
			"Le juste milieu entre deux vices",
			"Le bonheur est l'activité de l'âme selon la vertu",
			"L'amitié est essentielle à la vie bonne",
		},
		WhyImportant: "Fondement de l'éthique occidentale, définition classique de la vertu et du bonheur.",
	},
	{
		ID:          "myth-astro-1",
		Title:       "L'Almageste",
		Author:      "Claude Ptolémée",
		Date:        "150 ap. J.-C.",
		Category:    MythAstronomie,
		Description: "Traité d'astronomie qui a dominé la pensée occidentale pendant 1400 ans. Système géocentrique.",
		KeyFacts: []string{
			"La Terre est au centre de l'univers",
			"Les planètes décrivent des épicycles",
			"Tables pour prédire les positions des astres",
			"Influencé par la pensée aristotélicienne",
		},
		WhyImportant: "Ouvrage fondamental de l'astronomie antique, référence jusqu'à Copernic.",
	},
	{
		ID:          "myth-astro-2",
		Title:       "Constellations du Zodiaque",
		Author:      "Tradition grecque",
		Date:        "Ve siècle av. J.-C.",
		Category:    MythAstronomie,
		Description: "Les 12 constellations du zodiaque et leur signification astrologique et mythologique.",
		KeyFacts: []string{
			"Bélier, Taureau, Gémeaux, Cancer, Lion, Vierge",
			"Balance, Scorpion, Sagittaire, Capricorne, Verseau, Poissons",
			"Chacune associée à un mythe",
			"Utilisées pour la navigation et l'astrologie",
		},
		WhyImportant: "Système de compréhension du ciel qui a influencé l'astronomie et la culture occidentale.",
	},
	{
		ID:          "myth-astro-3",
		Title:       "Antikythera",
		Author:      "Inconnu (ingénieurs grecs)",
		Date:        "100 av. J.-C.",
		Category:    MythAstronomie,
		Description: "Mécanisme de bronze découvert dans une épave, considéré comme le premier ordinateur analogique.",
		KeyFacts: []string{
			"Prédit les éclipses solaires et lunaires",
			"Calcule les positions des planètes",
			"Plus de 30 engrenages en bronze",
			"Technologie comparable à celle du XVIIIe siècle",
		},
		WhyImportant: "Témoigne du niveau technologique exceptionnel de la Grèce antique.",
	},
	{
		ID:          "myth-hist-1",
		Title:       "La Bataille des Thermopyles",
		Author:      "Hérodote (chroniqueur)",
		Date:        "480 av. J.-C.",
		Category:    MythHistoire,
		Description: "300 Spartiates menés par Léonidas résistent à l'armée perse de Xerxès Ier pendant trois jours.",
		KeyFacts: []string{
			"300 Spartiates contre 100 000 à 300 000 Perses",
			"Léonidas et ses hommes meurent tous",
			"Permet aux Grecs de se regrouper",
			"Symbole du sacrifice pour la liberté",
		},
		WhyImportant: "Symbole universel du courage et du sacrifice pour la liberté face à l'oppression.",
		Quote:        "Molon labe (Viens les chercher) - Léonidas",
	},
	{
		ID:          "myth-hist-2",
		Title:       "La Guerre du Péloponnèse",
		Author:      "Thucydide",
		Date:        "431-404 av. J.-C.",
		Category:    MythHistoire,
		Description: "Conflit entre Athènes et Sparte pour la domination de la Grèce. Décrit par Thucydide.",
		KeyFacts: []string{
			"Athènes (démocratie) vs Sparte (oligarchie)",
			"Guerre totale pendant 27 ans",
			"Fin de l'âge d'or athénien",
			"Leçons sur le pouvoir et la réalpolitik",
		},
		WhyImportant: "Premier récit historique analytique, fondement de la théorie des relations internationales.",
	},
	{
		ID:          "myth-hist-3",
		Title:       "Alexandre le Grand",
		Author:      "Histoire",
		Date:        "356-323 av. J.-C.",
		Category:    MythHistoire,
		Description: "Roi de Macédoine qui a conquis un empire s'étendant de la Grèce à l'Inde en 13 ans.",
		KeyFacts: []string{
			"Élève d'Aristote",
			"Conquête de l'Empire perse",
			"Fondation de plus de 70 villes",
			"Mort à 32 ans à Babylone",
		},
		WhyImportant: "A hellénisé le monde antique, répandant la culture grecque jusqu'en Asie centrale.",
	},
	{
		ID:          "myth-hist-4",
		Title:       "L'Incendie de Rome",
		Author:      "Tacite (chroniqueur)",
		Date:        "64 ap. J.-C.",
		Category:    MythHistoire,
		Description: "Grand incendie de Rome sous Néron. Le tyran aurait joué de la lyre pendant que la ville brûlait.",
		KeyFacts: []string{
			"Dura 6 jours et 7 nuits",
			"Deux tiers de Rome détruits",
			"Néron accuse les chrétiens",
			"Première persécution systématique",
		},
		WhyImportant: "Symbole de la tyrannie impériale et du pouvoir arbitraire sur la vie des citoyens.",
	},
}

// MythologyByID looks up an item in the pool.
func MythologyByID(id string) (MythologyItem, bool) {
	for _, m := range MythologyItems {
		if m.ID == id {
			return m, true
		}
	}
	return MythologyItem{}, false
}

// MythologyOfCategory filters the pool by category.
func MythologyOfCategory(c MythologyCategory) []MythologyItem {
	var out []MythologyItem
	for _, m := range MythologyItems {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}
