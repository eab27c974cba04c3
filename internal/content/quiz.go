package content

// Static question pools, one per daily slot. The slot order is fixed by
// AllQuizCategories; pool contents never change at runtime.

var actuQuestions = []QuizQuestion{
	{
		ID:            "actu-1",
		Question:      "Quel film a remporté l'Oscar du meilleur film en 2024 ?",
		Options:       []string{"Oppenheimer", "Everything Everywhere All at Once", "The Whale", "Elvis"},
		CorrectAnswer: 0,
		Explanation:   "Oppenheimer de Christopher Nolan a remporté 7 Oscars dont celui du meilleur film en 2024.",
		Category:      CategoryActu,
		Difficulty:    Moyen,
	},
	{
		ID:            "actu-2",
		Question:      "Quelle entreprise a racheté Twitter en 2022 ?",
		Options:       []string{"Meta", "Google", "Amazon", "Elon Musk"},
		CorrectAnswer: 3,
		Explanation:   "Elon Musk a racheté Twitter pour 44 milliards de dollars en octobre 2022.",
		Category:      CategoryActu,
		Difficulty:    Facile,
	},
	{
		ID:            "actu-3",
		Question:      "Quel pays a remporté la Coupe du Monde 2022 ?",
		Options:       []string{"France", "Brésil", "Argentine", "Croatie"},
		CorrectAnswer: 2,
		Explanation:   "L'Argentine a remporté la Coupe du Monde 2022 au Qatar, battant la France en finale.",
		Category:      CategoryActu,
		Difficulty:    Facile,
	},
	{
		ID:            "actu-4",
		Question:      "Quel est le nom du rover qui a atterri sur Mars en 2021 ?",
		Options:       []string{"Curiosity", "Perseverance", "Opportunity", "Spirit"},
		CorrectAnswer: 1,
		Explanation:   "Perseverance est arrivé sur Mars en février 2021 avec l'hélicoptère Ingenuity.",
		Category:      CategoryActu,
		Difficulty:    Moyen,
	},
	{
		ID:            "actu-5",
		Question:      "Quelle série Netflix a battu des records en 2021 ?",
		Options:       []string{"Stranger Things", "Squid Game", "La Casa de Papel", "The Witcher"},
		CorrectAnswer: 1,
		Explanation:   "Squid Game est devenue la série la plus regardée de l'histoire de Netflix.",
		Category:      CategoryActu,
		Difficulty:    Facile,
	},
	{
		ID:            "actu-6",
		Question:      "Qui a remporté le prix Nobel de littérature 2023 ?",
		Options:       []string{"Annie Ernaux", "Jon Fosse", "Kazuo Ishiguro", "Louise Glück"},
		CorrectAnswer: 1,
		Explanation:   "Le dramaturge norvégien Jon Fosse a reçu le prix Nobel de littérature 2023.",
		Category:      CategoryActu,
		Difficulty:    Difficile,
	},
	{
		ID:            "actu-7",
		Question:      "Quel pays a organisé les Jeux Olympiques d'été 2024 ?",
		Options:       []string{"Japon", "France", "États-Unis", "Australie"},
		CorrectAnswer: 1,
		Explanation:   "Paris a accueilli les Jeux Olympiques d'été 2024, 100 ans après les derniers JO parisiens.",
		Category:      CategoryActu,
		Difficulty:    Facile,
	},
	{
		ID:            "actu-8",
		Question:      "Quelle IA a été lancée par OpenAI en novembre 2022 ?",
		Options:       []string{"DALL-E", "GPT-3", "ChatGPT", "Claude"},
		CorrectAnswer: 2,
		Explanation:   "ChatGPT a été lancé en novembre 2022 et a atteint 100 millions d'utilisateurs en 2 mois.",
		Category:      CategoryActu,
		Difficulty:    Facile,
	},
	{
		ID:            "actu-9",
		Question:      "Quel pays a rejoint l'OTAN en 2023 ?",
		Options:       []string{"Ukraine", "Suède", "Finlande", "Suisse"},
		CorrectAnswer: 2,
		Explanation:   "La Finlande a rejoint l'OTAN en avril 2023 suite à l'invasion de l'Ukraine.",
		Category:      CategoryActu,
		Difficulty:    Moyen,
	},
	{
		ID:            "actu-10",
		Question:      "Quel est le nom de la mission spatiale qui a touché le Soleil ?",
		Options:       []string{"Solar Probe", "Parker Solar Probe", "Helios", "Solar Orbiter"},
		CorrectAnswer: 1,
		Explanation:   "La Parker Solar Probe de la NASA est devenue le premier objet fabriqué par l'homme à toucher le Soleil.",
		Category:      CategoryActu,
		Difficulty:    Difficile,
	},
}

var mediaQuestions = []QuizQuestion{
	{
		ID:            "media-1",
		Question:      "Qui est l'auteur du manga \"One Piece\" ?",
		Options:       []string{"Masashi Kishimoto", "Eiichirō Oda", "Akira Toriyama", "Tite Kubo"},
		CorrectAnswer: 1,
		Explanation:   "Eiichirō Oda écrit et illustre One Piece depuis 1997, avec plus de 1000 chapitres.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-2",
		Question:      "Dans quel film trouve-t-on le personnage de Tyler Durden ?",
		Options:       []string{"Pulp Fiction", "Fight Club", "American Beauty", "The Matrix"},
		CorrectAnswer: 1,
		Explanation:   "Tyler Durden est le personnage culte de Fight Club (1999) joué par Brad Pitt.",
		Category:      CategoryMedia,
		Difficulty:    Moyen,
	},
	{
		ID:            "media-3",
		Question:      "Quelle série met en scène la famille royale britannique ?",
		Options:       []string{"Downton Abbey", "The Crown", "Bridgerton", "Victoria"},
		CorrectAnswer: 1,
		Explanation:   "The Crown retrace le règne d'Élisabeth II depuis 2016 sur Netflix.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-4",
		Question:      "Qui a écrit \"Harry Potter\" ?",
		Options:       []string{"Stephenie Meyer", "J.R.R. Tolkien", "J.K. Rowling", "George R.R. Martin"},
		CorrectAnswer: 2,
		Explanation:   "J.K. Rowling a écrit les 7 tomes de Harry Potter entre 1997 et 2007.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-5",
		Question:      "Dans quel animé trouve-t-on les Titans ?",
		Options:       []string{"Naruto", "Attack on Titan", "Demon Slayer", "My Hero Academia"},
		CorrectAnswer: 1,
		Explanation:   "Attack on Titan (L'Attaque des Titans) est un manga d'Hajime Isayama.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-6",
		Question:      "Quel réalisateur a dirigé \"Pulp Fiction\" ?",
		Options:       []string{"Martin Scorsese", "Quentin Tarantino", "Steven Spielberg", "Francis Ford Coppola"},
		CorrectAnswer: 1,
		Explanation:   "Quentin Tarantino a réalisé Pulp Fiction en 1994, Palme d'or à Cannes.",
		Category:      CategoryMedia,
		Difficulty:    Moyen,
	},
	{
		ID:            "media-7",
		Question:      "Quelle est la saga littéraire la plus vendue après la Bible ?",
		Options:       []string{"Le Seigneur des Anneaux", "Harry Potter", "Don Quichotte", "Alice au pays des merveilles"},
		CorrectAnswer: 1,
		Explanation:   "Harry Potter est la saga la plus vendue avec plus de 500 millions d'exemplaires.",
		Category:      CategoryMedia,
		Difficulty:    Moyen,
	},
	{
		ID:            "media-8",
		Question:      "Dans Breaking Bad, quel est le vrai nom de \"Heisenberg\" ?",
		Options:       []string{"Jesse Pinkman", "Saul Goodman", "Walter White", "Gustavo Fring"},
		CorrectAnswer: 2,
		Explanation:   "Walter White, professeur de chimie, adopte le pseudonyme de Heisenberg.",
		Category:      CategoryMedia,
		Difficulty:    Moyen,
	},
	{
		ID:            "media-9",
		Question:      "Quel studio a produit \"Le Voyage de Chihiro\" ?",
		Options:       []string{"Pixar", "Studio Ghibli", "Disney", "DreamWorks"},
		CorrectAnswer: 1,
		Explanation:   "Le Studio Ghibli, fondé par Hayao Miyazaki, a produit ce chef-d'œuvre de 2001.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-10",
		Question:      "Combien de saisons compte la série \"Game of Thrones\" ?",
		Options:       []string{"6", "7", "8", "9"},
		CorrectAnswer: 2,
		Explanation:   "Game of Thrones compte 8 saisons diffusées de 2011 à 2019.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
	{
		ID:            "media-11",
		Question:      "Qui a composé la bande-originale du Roi Lion ?",
		Options:       []string{"Hans Zimmer", "John Williams", "Danny Elfman", "Howard Shore"},
		CorrectAnswer: 0,
		Explanation:   "Hans Zimmer a composé la musique du Roi Lion et a remporté un Oscar.",
		Category:      CategoryMedia,
		Difficulty:    Moyen,
	},
	{
		ID:            "media-12",
		Question:      "Quel est le premier film de l'Univers Cinématographique Marvel ?",
		Options:       []string{"Iron Man", "Thor", "Captain America", "Hulk"},
		CorrectAnswer: 0,
		Explanation:   "Iron Man (2008) a lancé l'Univers Cinématographique Marvel avec Robert Downey Jr.",
		Category:      CategoryMedia,
		Difficulty:    Facile,
	},
}

var generalQuestions = []QuizQuestion{
	{
		ID:            "general-1",
		Question:      "Quelle est la capitale de l'Australie ?",
		Options:       []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
		CorrectAnswer: 2,
		Explanation:   "Canberra est la capitale de l'Australie depuis 1908.",
		Category:      CategoryGeneral,
		Difficulty:    Moyen,
	},
	{
		ID:            "general-2",
		Question:      "Quel est le plus grand océan du monde ?",
		Options:       []string{"Atlantique", "Indien", "Arctique", "Pacifique"},
		CorrectAnswer: 3,
		Explanation:   "L'océan Pacifique couvre environ 165 millions de km².",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-3",
		Question:      "Combien de continents existe-t-il ?",
		Options:       []string{"5", "6", "7", "8"},
		CorrectAnswer: 2,
		Explanation:   "Il y a 7 continents : Afrique, Amérique du Nord, Amérique du Sud, Antarctique, Asie, Europe, Océanie.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-4",
		Question:      "Quelle est la formule chimique de l'eau ?",
		Options:       []string{"CO2", "H2O", "NaCl", "O2"},
		CorrectAnswer: 1,
		Explanation:   "H2O représente deux atomes d'hydrogène et un atome d'oxygène.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-5",
		Question:      "Qui a peint la Joconde ?",
		Options:       []string{"Vincent van Gogh", "Léonard de Vinci", "Pablo Picasso", "Michel-Ange"},
		CorrectAnswer: 1,
		Explanation:   "Léonard de Vinci a peint la Joconde entre 1503 et 1519.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-6",
		Question:      "Quel est l'organe le plus grand du corps humain ?",
		Options:       []string{"Le foie", "Le cerveau", "La peau", "Les intestins"},
		CorrectAnswer: 2,
		Explanation:   "La peau est l'organe le plus grand, avec environ 2 m² chez l'adulte.",
		Category:      CategoryGeneral,
		Difficulty:    Moyen,
	},
	{
		ID:            "general-7",
		Question:      "Quelle planète est la plus proche du Soleil ?",
		Options:       []string{"Vénus", "Mercure", "Mars", "Terre"},
		CorrectAnswer: 1,
		Explanation:   "Mercure est la planète la plus proche du Soleil.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-8",
		Question:      "Quel est le nombre pi (π) arrondi à deux décimales ?",
		Options:       []string{"3,12", "3,14", "3,16", "3,18"},
		CorrectAnswer: 1,
		Explanation:   "Pi vaut approximativement 3,14159..., arrondi à 3,14.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-9",
		Question:      "Quel animal est le plus grand mammifère du monde ?",
		Options:       []string{"L'éléphant", "La baleine bleue", "Le requin blanc", "L'orque"},
		CorrectAnswer: 1,
		Explanation:   "La baleine bleue peut atteindre 30 mètres et peser 180 tonnes.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-10",
		Question:      "Dans quel pays se trouve la Grande Muraille ?",
		Options:       []string{"Japon", "Chine", "Corée du Sud", "Inde"},
		CorrectAnswer: 1,
		Explanation:   "La Grande Muraille de Chine s'étend sur plus de 21 000 km.",
		Category:      CategoryGeneral,
		Difficulty:    Facile,
	},
	{
		ID:            "general-11",
		Question:      "Quel élément chimique a pour symbole \"Au\" ?",
		Options:       []string{"Argent", "Aluminium", "Or", "Argon"},
		CorrectAnswer: 2,
		Explanation:   "Au vient du latin \"aurum\" signifiant or.",
		Category:      CategoryGeneral,
		Difficulty:    Moyen,
	},
	{
		ID:            "general-12",
		Question:      "Combien de dents possède un adulte ?",
		Options:       []string{"28", "30", "32", "36"},
		CorrectAnswer: 2,
		Explanation:   "Un adulte a normalement 32 dents, y compris les 4 dents de sagesse.",
		Category:      CategoryGeneral,
		Difficulty:    Moyen,
	},
}

var histoireQuestions = []QuizQuestion{
	{
		ID:            "histoire-1",
		Question:      "En quelle année a eu lieu la Révolution française ?",
		Options:       []string{"1776", "1789", "1792", "1804"},
		CorrectAnswer: 1,
		Explanation:   "La Révolution française a commencé en 1789 avec la prise de la Bastille.",
		Category:      CategoryHistoire,
		Difficulty:    Facile,
	},
	{
		ID:            "histoire-2",
		Question:      "Qui était le premier empereur de France ?",
		Options:       []string{"Louis XIV", "Charlemagne", "Napoléon Bonaparte", "Jules César"},
		CorrectAnswer: 2,
		Explanation:   "Napoléon Bonaparte s'est couronné empereur en 1804.",
		Category:      CategoryHistoire,
		Difficulty:    Facile,
	},
	{
		ID:            "histoire-3",
		Question:      "Quelle guerre a duré de 1914 à 1918 ?",
		Options:       []string{"La Seconde Guerre mondiale", "La Guerre de Cent Ans", "La Première Guerre mondiale", "La Guerre de Sécession"},
		CorrectAnswer: 2,
		Explanation:   "La Première Guerre mondiale a fait environ 18 millions de morts.",
		Category:      CategoryHistoire,
		Difficulty:    Facile,
	},
	{
		ID:            "histoire-4",
		Question:      "Qui a découvert l'Amérique en 1492 ?",
		Options:       []string{"Vasco de Gama", "Christophe Colomb", "Magellan", "Marco Polo"},
		CorrectAnswer: 1,
		Explanation:   "Christophe Colomb a atteint les Amériques le 12 octobre 1492.",
		Category:      CategoryHistoire,
		Difficulty:    Facile,
	},
	{
		ID:            "histoire-5",
		Question:      "Quelle reine d'Égypte s'est alliée avec Jules César ?",
		Options:       []string{"Néfertiti", "Cléopâtre", "Hatschepsout", "Néfertari"},
		CorrectAnswer: 1,
		Explanation:   "Cléopâtre VII a eu un fils, Césarion, avec Jules César.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-6",
		Question:      "En quelle année est tombé le mur de Berlin ?",
		Options:       []string{"1987", "1988", "1989", "1990"},
		CorrectAnswer: 2,
		Explanation:   "Le mur de Berlin est tombé le 9 novembre 1989.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-7",
		Question:      "Qui a construit les pyramides d'Égypte ?",
		Options:       []string{"Les esclaves romains", "Les extraterrestres", "Les ouvriers égyptiens", "Les Hébreux"},
		CorrectAnswer: 2,
		Explanation:   "Les pyramides ont été construites par des ouvriers égyptiens rémunérés.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-8",
		Question:      "Quelle dynastie a construit la Grande Muraille ?",
		Options:       []string{"Han", "Tang", "Qin", "Ming"},
		CorrectAnswer: 2,
		Explanation:   "La première Grande Muraille a été construite sous la dynastie Qin.",
		Category:      CategoryHistoire,
		Difficulty:    Difficile,
	},
	{
		ID:            "histoire-9",
		Question:      "Qui a écrit \"Le Prince\", traité de politique ?",
		Options:       []string{"Machiavel", "Platon", "Aristote", "Thomas More"},
		CorrectAnswer: 0,
		Explanation:   "Nicolas Machiavel a écrit \"Le Prince\" en 1513.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-10",
		Question:      "Quelle bataille a marqué la fin de l'empire napoléonien ?",
		Options:       []string{"Austerlitz", "Waterloo", "Iéna", "Trafalgar"},
		CorrectAnswer: 1,
		Explanation:   "Napoléon a été défait à Waterloo le 18 juin 1815.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-11",
		Question:      "Quelle civilisation a bâti Machu Picchu ?",
		Options:       []string{"Les Aztèques", "Les Mayas", "Les Incas", "Les Olmèques"},
		CorrectAnswer: 2,
		Explanation:   "Machu Picchu est une cité inca construite au XVe siècle.",
		Category:      CategoryHistoire,
		Difficulty:    Moyen,
	},
	{
		ID:            "histoire-12",
		Question:      "Qui était le premier président des États-Unis ?",
		Options:       []string{"Thomas Jefferson", "Abraham Lincoln", "George Washington", "John Adams"},
		CorrectAnswer: 2,
		Explanation:   "George Washington a été le premier président de 1789 à 1797.",
		Category:      CategoryHistoire,
		Difficulty:    Facile,
	},
}

// QuestionPool returns the static pool for a category. The returned slice is
// shared; callers must not modify it.
func QuestionPool(c QuizCategory) []QuizQuestion {
	switch c {
	case CategoryActu:
		return actuQuestions
	case CategoryMedia:
		return mediaQuestions
	case CategoryGeneral:
		return generalQuestions
	case CategoryHistoire:
		return histoireQuestions
	default:
		return nil
	}
}

// QuestionByID looks up a question across all pools.
func QuestionByID(id string) (QuizQuestion, bool) {
	for _, c := range AllQuizCategories() {
		for _, q := range QuestionPool(c) {
			if q.ID == id {
				return q, true
			}
		}
	}
	return QuizQuestion{}, false
}
