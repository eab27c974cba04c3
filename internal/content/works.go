package content

// Works is the static discovery catalog. One work is drawn per day; the
// catalog is never mutated at runtime.
var Works = []Work{
	{
		ID:      "livre-1",
		Title:   "1984",
		Author:  "George Orwell",
		Year:    1949,
		Type:    WorkLivre,
		Genre:   "Dystopie",
		Summary: "Dans un futur totalitaire, Winston Smith tente de résister au contrôle absolu du Parti et de Big Brother.",
		KeyPoints: []string{
			"La surveillance de masse et la perte de vie privée",
			"La manipulation de la vérité et des faits",
			"Le langage comme outil de contrôle (Novlangue)",
			"La résistance individuelle face au totalitarisme",
		},
		Quote:           "Big Brother vous regarde.",
		WhyIntellectual: "Une critique profonde des régimes totalitaires et une anticipation troublante de la surveillance moderne.",
	},
	{
		ID:      "livre-2",
		Title:   "Le Petit Prince",
		Author:  "Antoine de Saint-Exupéry",
		Year:    1943,
		Type:    WorkLivre,
		Genre:   "Conte philosophique",
		Summary: "Un aviateur rencontre un petit prince venu d'une autre planète qui lui raconte ses voyages et ses rencontres.",
		KeyPoints: []string{
			"L'amitié et les relations humaines authentiques",
			"La critique de la société adulte matérialiste",
			"La beauté de l'enfance et de l'imagination",
			"Le renard et le secret : \"On ne voit bien qu'avec le cœur\"",
		},
		Quote:           "On ne voit bien qu'avec le cœur. L'essentiel est invisible pour les yeux.",
		WhyIntellectual: "Une œuvre intemporelle qui interroge le sens de la vie, l'amitié et l'authenticité.",
	},
	{
		ID:      "livre-3",
		Title:   "Sapiens: Une brève histoire de l'humanité",
		Author:  "Yuval Noah Harari",
		Year:    2011,
		Type:    WorkLivre,
		Genre:   "Essai historique",
		Summary: "Une exploration de l'histoire de l'humanité depuis l'apparition d'Homo sapiens jusqu'à l'ère moderne.",
		KeyPoints: []string{
			"La révolution cognitive et l'émergence des fictions collectives",
			"L'agriculture comme piège à temps",
			"L'unification de l'humanité",
			"La révolution scientifique et le capitalisme",
		},
		WhyIntellectual: "Une perspective fascinante sur notre histoire qui remet en question nos certitudes.",
	},
	{
		ID:      "livre-4",
		Title:   "L'Étranger",
		Author:  "Albert Camus",
		Year:    1942,
		Type:    WorkLivre,
		Genre:   "Roman philosophique",
		Summary: "Meursault, un employé algérois, vit sa vie avec indifférence jusqu'au jour où il commet un acte irréversible.",
		KeyPoints: []string{
			"L'absurde et l'indifférence face au monde",
			"La société et ses jugements moraux",
			"Le soleil comme symbole de vérité",
			"La conscience de la mort et l'authenticité",
		},
		Quote:           "Aujourd'hui, maman est morte. Ou peut-être hier, je ne sais pas.",
		WhyIntellectual: "Une introduction accessible à la philosophie de l'absurde et à l'existentialisme.",
	},
	{
		ID:      "livre-5",
		Title:   "Pensées pour moi-même",
		Author:  "Marc Aurèle",
		Year:    180,
		Type:    WorkLivre,
		Genre:   "Philosophie",
		Summary: "Les notes personnelles de l'empereur romain Marc Aurèle sur la vie, la vertu et le stoïcisme.",
		KeyPoints: []string{
			"Le stoïcisme comme mode de vie",
			"L'acceptation de ce qui ne dépend pas de nous",
			"La brièveté de la vie et l'importance du moment présent",
			"La vertu comme seul bien véritable",
		},
		Quote:           "Vous avez le pouvoir sur votre esprit, pas sur les événements extérieurs.",
		WhyIntellectual: "Le manuel de référence du stoïcisme, toujours pertinent 2000 ans plus tard.",
	},
	{
		ID:      "livre-6",
		Title:   "De la démocratie en Amérique",
		Author:  "Alexis de Tocqueville",
		Year:    1835,
		Type:    WorkLivre,
		Genre:   "Essai politique",
		Summary: "Analyse de la démocratie américaine et de ses implications pour l'avenir des sociétés occidentales.",
		KeyPoints: []string{
			"L'égalité des conditions comme tendance historique",
			"Les dangers du despotisme doux",
			"Le rôle des associations dans la démocratie",
			"La tyrannie de la majorité",
		},
		WhyIntellectual: "Une analyse précoce et toujours d'actualité des forces et faiblesses de la démocratie.",
	},
	{
		ID:      "manga-1",
		Title:   "Monster",
		Author:  "Naoki Urasawa",
		Year:    1994,
		Type:    WorkManga,
		Genre:   "Thriller psychologique",
		Summary: "Un chirurgien sauve la vie d'un enfant qui deviendra un tueur en série. Il part à sa recherche pour expier sa faute.",
		KeyPoints: []string{
			"La nature du mal et de la culpabilité",
			"La valeur de la vie humaine",
			"Le post-guerre en Allemagne",
			"La psychologie des personnages profonde",
		},
		WhyIntellectual: "Un thriller mature qui explore la psychologie humaine, la morale et la nature du bien et du mal.",
	},
	{
		ID:      "manga-2",
		Title:   "Berserk",
		Author:  "Kentaro Miura",
		Year:    1989,
		Type:    WorkManga,
		Genre:   "Dark fantasy",
		Summary: "Guts, un mercenaire maudit, parcourt le monde à la recherche de vengeance contre son ancien ami devenu démon.",
		KeyPoints: []string{
			"La détermination face à l'adversité",
			"L'amitié trahie et la vengeance",
			"La question du destin et du libre arbitre",
			"Les thèmes philosophiques sur la nature humaine",
		},
		Quote:           "L'homme qui pense doit être plus triste que les autres.",
		WhyIntellectual: "Une œuvre profonde sur la volonté humaine, le destin et la nature du mal.",
	},
	{
		ID:      "manga-3",
		Title:   "20th Century Boys",
		Author:  "Naoki Urasawa",
		Year:    1999,
		Type:    WorkManga,
		Genre:   "Science-fiction",
		Summary: "Un groupe d'amis d'enfance doit affronter une mystérieuse organisation qui semble réaliser leur fantasme d'enfance.",
		KeyPoints: []string{
			"La nostalgie et l'amitié",
			"Le pouvoir des idéologies",
			"La mémoire et la vérité",
			"Le héros ordinaire face à l'histoire",
		},
		WhyIntellectual: "Une réflexion sur le pouvoir des idéologies, la mémoire collective et l'histoire.",
	},
	{
		ID:      "manga-4",
		Title:   "Vagabond",
		Author:  "Takehiko Inoue",
		Year:    1998,
		Type:    WorkManga,
		Genre:   "Samurai",
		Summary: "L'histoire de Miyamoto Musashi, du brigand le plus redouté du Japon au plus grand samouraï de l'histoire.",
		KeyPoints: []string{
			"La quête de la perfection",
			"Le chemin de la voie (Dō)",
			"La solitude du guerrier",
			"La transformation personnelle",
		},
		Quote:           "Invincible est l'homme qui ne désire rien.",
		WhyIntellectual: "Une méditation sur la recherche de la perfection, la voie du guerrier et la transformation personnelle.",
	},
	{
		ID:      "film-1",
		Title:   "Interstellar",
		Author:  "Christopher Nolan",
		Year:    2014,
		Type:    WorkFilm,
		Genre:   "Science-fiction",
		Summary: "Dans un futur où la Terre est devenue hostile, un groupe d'explorateurs utilise un trou de ver pour voyager à travers l'espace.",
		KeyPoints: []string{
			"La relativité du temps",
			"L'amour comme force transcendante",
			"La survie de l'humanité",
			"Les trous noirs et la physique quantique",
		},
		Quote:           "Nous sommes nés pour être des pionniers, pas des gardiens.",
		WhyIntellectual: "Exploration scientifique rigoureuse de la relativité, des trous noirs et de l'amour comme force fondamentale.",
	},
	{
		ID:      "film-2",
		Title:   "La Liste de Schindler",
		Author:  "Steven Spielberg",
		Year:    1993,
		Type:    WorkFilm,
		Genre:   "Drame historique",
		Summary: "L'histoire vraie d'Oskar Schindler, un industriel allemand qui sauva plus de 1000 Juifs pendant l'Holocauste.",
		KeyPoints: []string{
			"La moralité face au régime nazi",
			"Le choix entre l'indifférence et l'action",
			"La valeur de chaque vie humaine",
			"La complicité et la résistance",
		},
		Quote:           "Qui sauve une vie sauve le monde entier.",
		WhyIntellectual: "Une réflexion profonde sur la moralité, le choix individuel et la valeur de la vie humaine.",
	},
	{
		ID:      "film-3",
		Title:   "Matrix",
		Author:  "Lana & Lilly Wachowski",
		Year:    1999,
		Type:    WorkFilm,
		Genre:   "Science-fiction",
		Summary: "Un pirate informatique découvre que la réalité est une simulation contrôlée par des machines.",
		KeyPoints: []string{
			"La nature de la réalité",
			"La libre pensée face au conformisme",
			"La philosophie de Platon (l'allégorie de la caverne)",
			"Le messianisme et le sacrifice",
		},
		Quote:           "Il n'y a pas de cuillère.",
		WhyIntellectual: "Une exploration philosophique de la nature de la réalité, inspirée de Platon, Baudrillard et la philosophie orientale.",
	},
	{
		ID:      "film-4",
		Title:   "Le Parrain",
		Author:  "Francis Ford Coppola",
		Year:    1972,
		Type:    WorkFilm,
		Genre:   "Drame",
		Summary: "La saga de la famille Corleone, clan mafieux dirigé par Vito Corleone et son fils Michael.",
		KeyPoints: []string{
			"Le pouvoir et sa corruption",
			"La famille et la loyauté",
			"Le rêve américain détourné",
			"La transformation morale de Michael",
		},
		Quote:           "Je vais lui faire une offre qu'il ne peut pas refuser.",
		WhyIntellectual: "Une étude magistrale du pouvoir, de la corruption et de la famille dans l'Amérique du XXe siècle.",
	},
	{
		ID:      "film-5",
		Title:   "2001: L'Odyssée de l'espace",
		Author:  "Stanley Kubrick",
		Year:    1968,
		Type:    WorkFilm,
		Genre:   "Science-fiction",
		Summary: "Un vaisseau spatial est envoyé vers Jupiter avec à son bord un ordinateur intelligent qui se rebelle.",
		KeyPoints: []string{
			"L'évolution de l'humanité",
			"L'intelligence artificielle",
			"La rencontre avec l'extra-terrestre",
			"La transcendance humaine",
		},
		Quote:           "Je suis désolé Dave, j'ai bien peur de ne pas pouvoir faire ça.",
		WhyIntellectual: "Une exploration visuelle et philosophique de l'évolution humaine, de l'IA et de notre place dans l'univers.",
	},
	{
		ID:      "serie-1",
		Title:   "Breaking Bad",
		Author:  "Vince Gilligan",
		Year:    2008,
		Type:    WorkSerie,
		Genre:   "Drame",
		Summary: "Un professeur de chimie atteint d'un cancer se lance dans la fabrication de méthamphétamine.",
		KeyPoints: []string{
			"La transformation morale progressive",
			"Les conséquences de nos choix",
			"Le pouvoir et la corruption",
			"La famille et les mensonges",
		},
		Quote:           "Je ne suis pas en danger, Skyler. Je suis le danger.",
		WhyIntellectual: "Une étude fascinante de la transformation morale d'un homme ordinaire en criminel.",
	},
	{
		ID:      "serie-2",
		Title:   "The Wire",
		Author:  "David Simon",
		Year:    2002,
		Type:    WorkSerie,
		Genre:   "Drame policier",
		Summary: "La lutte contre le trafic de drogue à Baltimore, vue des deux côtés : la police et les dealers.",
		KeyPoints: []string{
			"Les institutions et leur dysfonctionnement",
			"La guerre contre la drogue",
			"La société américaine et ses failles",
			"La moralité ambiguë",
		},
		WhyIntellectual: "Une critique sociale profonde des institutions américaines, considérée comme la meilleure série télévisée.",
	},
	{
		ID:      "serie-3",
		Title:   "Chernobyl",
		Author:  "Craig Mazin",
		Year:    2019,
		Type:    WorkSerie,
		Genre:   "Drame historique",
		Summary: "Reconstitution de la catastrophe nucléaire de Tchernobyl et de ses conséquences.",
		KeyPoints: []string{
			"Le déni de la vérité par le régime soviétique",
			"Le sacrifice des liquidateurs",
			"La nature de la vérité scientifique",
			"Le prix de la dissimulation",
		},
		Quote:           "Chaque mensonge que nous disons implique une dette envers la vérité.",
		WhyIntellectual: "Une réflexion sur la vérité, le pouvoir politique et le sacrifice individuel pour le bien collectif.",
	},
	{
		ID:      "serie-4",
		Title:   "The Crown",
		Author:  "Peter Morgan",
		Year:    2016,
		Type:    WorkSerie,
		Genre:   "Drame historique",
		Summary: "Les règnes de la reine Élisabeth II et les événements qui ont marqué l'histoire britannique.",
		KeyPoints: []string{
			"Le pouvoir et le devoir",
			"La monarchie dans le monde moderne",
			"Les conflits entre vie publique et privée",
			"L'histoire politique britannique",
		},
		WhyIntellectual: "Une exploration du pouvoir, du devoir et de l'histoire britannique contemporaine.",
	},
	{
		ID:      "anime-1",
		Title:   "Neon Genesis Evangelion",
		Author:  "Hideaki Anno",
		Year:    1995,
		Type:    WorkAnime,
		Genre:   "Mecha / Psychologique",
		Summary: "Des adolescents pilotent des robots géants pour défendre l'humanité contre des créatures mystérieuses.",
		KeyPoints: []string{
			"La dépression et l'isolement",
			"La relation parent-enfant",
			"La psychologie freudienne",
			"La quête de sens de l'existence",
		},
		Quote:           "Je ne dois pas fuir. Je ne dois pas fuir.",
		WhyIntellectual: "Une exploration profonde de la psychologie, de la dépression et de la condition humaine à travers la philosophie et la psychanalyse.",
	},
	{
		ID:      "anime-2",
		Title:   "Ghost in the Shell",
		Author:  "Mamoru Oshii",
		Year:    1995,
		Type:    WorkAnime,
		Genre:   "Cyberpunk",
		Summary: "Dans un futur cybernétique, une major traque un hacker capable de pirater des esprits humains.",
		KeyPoints: []string{
			"La nature de la conscience et de l'identité",
			"Les frontières entre l'homme et la machine",
			"La philosophie de l'esprit",
			"Les implications de la cybernétique",
		},
		Quote:           "Le réseau est vaste et infini.",
		WhyIntellectual: "Une réflexion philosophique majeure sur la conscience, l'identité et le transhumanisme.",
	},
	{
		ID:      "anime-3",
		Title:   "Death Note",
		Author:  "Tsugumi Ohba & Takeshi Obata",
		Year:    2006,
		Type:    WorkAnime,
		Genre:   "Thriller psychologique",
		Summary: "Un lycéen découvre un carnet qui tue quiconque voit son nom écrit dedans. Il décide de créer un monde sans crime.",
		KeyPoints: []string{
			"La justice et la vengeance",
			"Le pouvoir absolu et sa corruption",
			"Le chat et la souris intellectuel",
			"La moralité du bien et du mal",
		},
		Quote:           "Les humains sont intéressants.",
		WhyIntellectual: "Un duel intellectuel fascinant sur la justice, la moralité et le pouvoir absolu.",
	},
	{
		ID:      "anime-4",
		Title:   "Serial Experiments Lain",
		Author:  "Yoshitoshi ABe",
		Year:    1998,
		Type:    WorkAnime,
		Genre:   "Cyberpunk psychologique",
		Summary: "Une adolescente découvre le Wired (Internet) et commence à questionner la nature de la réalité et de son identité.",
		KeyPoints: []string{
			"La réalité virtuelle et la dissociation",
			"L'identité dans l'ère numérique",
			"La conscience collective",
			"La frontière entre réel et virtuel",
		},
		Quote:           "Tu n'es que ce que tu te souviens être.",
		WhyIntellectual: "Une exploration avant-gardiste de l'identité numérique et de la nature de la réalité.",
	},
}

// WorkByID looks up a work in the catalog.
func WorkByID(id string) (Work, bool) {
	for _, w := range Works {
		if w.ID == id {
			return w, true
		}
	}
	return Work{}, false
}

// WorksOfType filters the catalog by medium.
func WorksOfType(t WorkType) []Work {
	var out []Work
	for _, w := range Works {
		if w.Type == t {
			out = append(out, w)
		}
	}
	return out
}
