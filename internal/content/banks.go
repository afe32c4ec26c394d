package content

// Theme identifies a prompt bank.
type Theme string

const (
	ThemeFamilia Theme = "mi-familia"
	ThemeCasa    Theme = "mi-casa"
	ThemeRutina  Theme = "mi-rutina"
	ThemeComida  Theme = "la-comida"
)

// Themes lists the available themes in display order.
func Themes() []Theme {
	return []Theme{ThemeFamilia, ThemeCasa, ThemeRutina, ThemeComida}
}

// Bank returns the ordered prompt list for a theme. Unknown themes
// return nil.
func Bank(theme Theme) []Prompt {
	return banks[theme]
}

var banks = map[Theme][]Prompt{
	ThemeFamilia: {
		{Text: "Describe a una persona de tu familia.", Badge: BadgeSer, Chips: []string{"alto", "simpática", "inteligente"}},
		{Text: "¿Cómo es tu madre o tu padre?", Badge: BadgeSer, Chips: []string{"es", "trabaja", "le gusta"}},
		{Text: "¿Por qué es importante tu familia?", Badge: BadgeStructure, Chips: []string{"porque", "también", "siempre"}},
		{Text: "¿Cuántas personas hay en tu familia?", Badge: BadgeVocab, Chips: []string{"hay", "personas", "hermanos"}},
		{Text: "Describe a tu mejor amigo o amiga.", Badge: BadgeSer, Chips: []string{"es", "divertido", "amable"}},
		{Text: "¿Qué hacen juntos en tu familia?", Badge: BadgeVocab, Chips: []string{"comemos", "jugamos", "hablamos"}},
		{Text: "¿Prefieres una familia grande o pequeña? Explica.", Badge: BadgeStructure, Chips: []string{"prefiero", "porque", "pero"}},
		{Text: "¿Quién es la persona más divertida de tu familia?", Badge: BadgeSer, Chips: []string{"es", "siempre", "ríe"}},
		{Text: "Describe a tus abuelos.", Badge: BadgeSer, Chips: []string{"son", "viejos", "cariñosos"}},
		{Text: "¿Tienes mascotas? Describe una.", Badge: BadgeSer, Chips: []string{"perro", "gato", "es"}},
		{Text: "¿Qué día especial celebras con tu familia?", Badge: BadgeAccent, Chips: []string{"cumpleaños", "día", "celebración"}},
		{Text: "Escribe sobre un recuerdo con tu familia.", Badge: BadgeVocab, Chips: []string{"un día", "fuimos", "recuerdo"}},
	},
	ThemeCasa: {
		{Text: "Describe tu casa o apartamento.", Badge: BadgeSer, Chips: []string{"es", "grande", "tiene"}},
		{Text: "¿Cómo es tu cuarto favorito?", Badge: BadgeSer, Chips: []string{"mi cuarto", "es", "cómodo"}},
		{Text: "¿Qué hay en tu cocina?", Badge: BadgeVocab, Chips: []string{"hay", "una mesa", "sillas"}},
		{Text: "¿Por qué te gusta (o no te gusta) tu casa?", Badge: BadgeStructure, Chips: []string{"me gusta", "porque", "pero"}},
		{Text: "Describe la casa de tus sueños.", Badge: BadgeSer, Chips: []string{"sería", "grande", "jardín"}},
		{Text: "¿Qué muebles hay en tu sala?", Badge: BadgeVocab, Chips: []string{"hay", "un sofá", "una mesa"}},
		{Text: "¿Prefieres vivir en una casa o un apartamento? Explica.", Badge: BadgeStructure, Chips: []string{"prefiero", "porque", "además"}},
		{Text: "Describe tu jardín o tu balcón.", Badge: BadgeSer, Chips: []string{"es", "pequeño", "plantas"}},
		{Text: "¿Qué habitación usas más? ¿Por qué?", Badge: BadgeStructure, Chips: []string{"uso", "porque", "todos los días"}},
		{Text: "¿Cómo es la vista desde tu ventana?", Badge: BadgeSer, Chips: []string{"veo", "es", "bonita"}},
		{Text: "¿Qué cambiarías de tu casa?", Badge: BadgeVocab, Chips: []string{"cambiaría", "quiero", "nuevo"}},
		{Text: "Describe el baño de tu casa.", Badge: BadgeSer, Chips: []string{"es", "limpio", "pequeño"}},
	},
	ThemeRutina: {
		{Text: "Describe tu rutina de la mañana.", Badge: BadgeVocab, Chips: []string{"me levanto", "desayuno", "luego"}},
		{Text: "¿Qué haces primero al despertarte? ¿Y después?", Badge: BadgeStructure, Chips: []string{"primero", "después", "luego"}},
		{Text: "¿Cómo es un día típico para ti?", Badge: BadgeSer, Chips: []string{"es", "ocupado", "normal"}},
		{Text: "¿Por qué es importante dormir bien?", Badge: BadgeStructure, Chips: []string{"porque", "por eso", "energía"}},
		{Text: "Describe tu rutina de la noche.", Badge: BadgeVocab, Chips: []string{"ceno", "me ducho", "leo"}},
		{Text: "¿Qué haces los fines de semana?", Badge: BadgeVocab, Chips: []string{"descanso", "salgo", "juego"}},
		{Text: "¿A qué hora te levantas? ¿Es fácil o difícil?", Badge: BadgeSer, Chips: []string{"me levanto", "es", "difícil"}},
		{Text: "Explica en orden cómo preparas tu desayuno.", Badge: BadgeStructure, Chips: []string{"primero", "luego", "finalmente"}},
		{Text: "¿Qué parte del día prefieres? Explica.", Badge: BadgeStructure, Chips: []string{"prefiero", "porque", "tranquilo"}},
		{Text: "Describe cómo vas a la escuela o al trabajo.", Badge: BadgeVocab, Chips: []string{"voy", "en autobús", "camino"}},
		{Text: "¿Qué haces después de las clases?", Badge: BadgeAccent, Chips: []string{"después", "práctico", "también"}},
		{Text: "¿Cómo sería tu día perfecto?", Badge: BadgeSer, Chips: []string{"sería", "sin prisa", "feliz"}},
	},
	ThemeComida: {
		{Text: "Describe tu comida favorita.", Badge: BadgeSer, Chips: []string{"es", "deliciosa", "rica"}},
		{Text: "¿Por qué te gusta (o no) la comida picante?", Badge: BadgeStructure, Chips: []string{"me gusta", "porque", "aunque"}},
		{Text: "¿Qué desayunas normalmente?", Badge: BadgeVocab, Chips: []string{"desayuno", "café", "pan"}},
		{Text: "Describe un plato típico de tu país.", Badge: BadgeSer, Chips: []string{"es", "lleva", "tradicional"}},
		{Text: "Explica en orden cómo preparas tu plato favorito.", Badge: BadgeStructure, Chips: []string{"primero", "después", "finalmente"}},
		{Text: "¿Prefieres comer en casa o en un restaurante? Explica.", Badge: BadgeStructure, Chips: []string{"prefiero", "porque", "además"}},
		{Text: "¿Qué hay en tu refrigerador ahora?", Badge: BadgeVocab, Chips: []string{"hay", "leche", "frutas"}},
		{Text: "Describe el mejor restaurante de tu ciudad.", Badge: BadgeSer, Chips: []string{"es", "la comida", "rico"}},
		{Text: "¿Qué comida no te gusta nada? ¿Por qué?", Badge: BadgeStructure, Chips: []string{"no me gusta", "porque", "sabor"}},
		{Text: "¿Qué bebes con el desayuno: café o té?", Badge: BadgeAccent, Chips: []string{"café", "té", "prefiero"}},
		{Text: "Describe una cena especial que recuerdas.", Badge: BadgeSer, Chips: []string{"fue", "era", "deliciosa"}},
		{Text: "¿Qué fruta comes más? Describe su sabor.", Badge: BadgeSer, Chips: []string{"como", "es", "dulce"}},
	},
}
