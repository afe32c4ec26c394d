package lang

// spanishTables is the full resource set for Spanish, the primary
// supported language.
var spanishTables = &Tables{
	Misspellings: map[string]string{
		"kiero":    "quiero",
		"qiero":    "quiero",
		"aser":     "hacer",
		"ablar":    "hablar",
		"ablo":     "hablo",
		"mui":      "muy",
		"tanbien":  "también",
		"tambien":  "también",
		"porqe":    "porque",
		"porke":    "porque",
		"grasias":  "gracias",
		"aveces":   "a veces",
		"despues":  "después",
		"dias":     "días",
		"cafe":     "café",
		"facil":    "fácil",
		"dificil":  "difícil",
		"pequenio": "pequeño",
		"pequeno":  "pequeño",
		"manana":   "mañana",
		"espanol":  "español",
		"jente":    "gente",
		"ay":       "hay",
	},

	Repairs: map[string]string{
		// Fixed idiomatic mistakes.
		"mas mejor":   "mejor",
		"más mejor":   "mejor",
		"muy mucho":   "mucho",
		"yo me gusta": "me gusta",
		// Agreement repair after a feminine noun.
		"casa blanco":  "casa blanca",
		"casa bonito":  "casa bonita",
		"casa pequeno": "casa pequeña",
	},

	NounGenders: map[string]Gender{
		"casa":     GenderFeminine,
		"mesa":     GenderFeminine,
		"silla":    GenderFeminine,
		"cocina":   GenderFeminine,
		"familia":  GenderFeminine,
		"escuela":  GenderFeminine,
		"comida":   GenderFeminine,
		"ciudad":   GenderFeminine,
		"ventana":  GenderFeminine,
		"hermana":  GenderFeminine,
		"rutina":   GenderFeminine,
		"cama":     GenderFeminine,
		"puerta":   GenderFeminine,
		"mano":     GenderFeminine,
		"libro":    GenderMasculine,
		"perro":    GenderMasculine,
		"gato":     GenderMasculine,
		"cuarto":   GenderMasculine,
		"jardin":   GenderMasculine,
		"bano":     GenderMasculine,
		"hermano":  GenderMasculine,
		"coche":    GenderMasculine,
		"dia":      GenderMasculine,
		"problema": GenderMasculine,
		"parque":   GenderMasculine,
		"desayuno": GenderMasculine,
	},

	BeForms: []string{
		"soy", "eres", "es", "somos", "sois", "son",
		"estoy", "estás", "está", "estamos", "estáis", "están",
		// Accent-dropped variants learners commonly type.
		"estas", "esta", "estan",
	},

	Connectors: []string{
		"porque", "pero", "también", "tambien", "luego", "después",
		"despues", "primero", "entonces", "además", "ademas",
		"aunque", "por eso", "sin embargo", "finalmente",
	},

	AdjectiveCues: []string{
		"bonito", "bonita", "grande", "pequeño", "pequeña", "pequeno",
		"feliz", "alto", "alta", "bajo", "baja", "inteligente",
		"interesante", "divertido", "divertida", "simpático",
		"simpatico", "simpática", "simpatica", "nuevo", "nueva",
		"viejo", "vieja", "rojo", "roja", "azul", "limpio", "limpia",
		"cómodo", "comodo", "cómoda", "comoda", "difícil", "dificil",
		"fácil", "facil", "rico", "rica", "delicioso", "deliciosa",
	},

	VerbFormErrors: map[string]string{
		"yo es":     "yo soy",
		"yo eres":   "yo soy",
		"yo esta":   "yo estoy",
		"yo está":   "yo estoy",
		"yo tiene":  "yo tengo",
		"yo vive":   "yo vivo",
		"yo ser":    "yo soy",
		"yo estar":  "yo estoy",
		"yo tener":  "yo tengo",
		"yo vivir":  "yo vivo",
		"yo comer":  "yo como",
		"yo gusta":  "me gusta",
		"tú es":     "tú eres",
		"tu es":     "tú eres",
		"él soy":    "él es",
		"ella soy":  "ella es",
		"ella esta": "ella está",
	},

	OrderErrors: map[string]string{
		"gusta me":  "me gusta",
		"gustan me": "me gustan",
		"llamo me":  "me llamo",
		"llama se":  "se llama",
		"levanto me": "me levanto",
		"ducho me":   "me ducho",
	},

	CannedModels: []CannedModel{
		{
			Keywords: []string{"familia", "madre", "padre", "hermano", "hermana", "persona", "amigo", "amiga"},
			Sentence: "Mi familia es pequeña pero muy alegre, y siempre cenamos juntos.",
		},
		{
			Keywords: []string{"casa", "cuarto", "habitacion", "cocina", "sala", "dormitorio"},
			Sentence: "Mi casa es pequeña, pero tiene una cocina grande y un jardín bonito.",
		},
		{
			Keywords: []string{"rutina", "dia", "manana", "levantas", "haces", "horario", "tarde"},
			Sentence: "Por la mañana me levanto temprano, desayuno y luego voy a la escuela.",
		},
		{
			Keywords: []string{"comida", "comer", "comes", "desayuno", "plato", "restaurante", "cocinar"},
			Sentence: "Mi comida favorita es la paella porque tiene mucho sabor.",
		},
	},

	GenericModel: "Me gusta practicar español todos los días porque quiero hablar mejor.",
}
