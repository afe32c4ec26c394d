package suggest

import "github.com/abhisek/escriba/internal/lang"

// TopicFamily classifies a prompt so appended detail clauses stay
// contextually sensible — never a furniture fact on a "describe a
// person" prompt.
type TopicFamily string

const (
	TopicPerson  TopicFamily = "person"
	TopicPlace   TopicFamily = "place"
	TopicRoutine TopicFamily = "routine"
	TopicFood    TopicFamily = "food"
	TopicGeneric TopicFamily = "generic"
)

// topicKeywords maps normalized prompt keywords to a family. Scanned in
// fixed order; first family with a hit wins.
var topicOrder = []TopicFamily{TopicPerson, TopicPlace, TopicRoutine, TopicFood}

var topicKeywords = map[TopicFamily][]string{
	TopicPerson: {
		"familia", "madre", "padre", "hermano", "hermana", "amigo",
		"amiga", "persona", "abuelos", "mascota", "mascotas",
	},
	TopicPlace: {
		"casa", "cuarto", "habitacion", "cocina", "sala", "jardin",
		"bano", "apartamento", "ventana", "balcon",
	},
	TopicRoutine: {
		"rutina", "dia", "manana", "noche", "levantas", "haces",
		"despiertas", "horario", "clases", "semana",
	},
	TopicFood: {
		"comida", "plato", "desayuno", "desayunas", "comes", "comer",
		"bebes", "fruta", "cena", "restaurante", "refrigerador",
	},
}

// detailClauses are the curated extra-detail fragments per family,
// written to attach after a connective opener.
var detailClauses = map[TopicFamily][]string{
	TopicPerson: {
		"es muy simpática y siempre me ayuda",
		"tiene una sonrisa grande y habla mucho",
		"le gusta contar historias divertidas",
	},
	TopicPlace: {
		"tiene una ventana grande con mucha luz",
		"hay una mesa y dos sillas cómodas",
		"está cerca de un parque bonito",
	},
	TopicRoutine: {
		"luego desayuno café con pan",
		"después voy a la escuela en autobús",
		"por la noche leo un poco antes de dormir",
	},
	TopicFood: {
		"tiene mucho sabor y es fácil de preparar",
		"la como con arroz y verduras",
		"mi familia la prepara los domingos",
	},
	TopicGeneric: {
		"es una parte importante de mi vida",
		"me gusta mucho y lo disfruto cada día",
		"para mí es muy especial",
	},
}

// detailOpeners are the connective openers a detail clause is joined with.
var detailOpeners = []string{"y además", "porque", "y también"}

// connectorClauses pair a connector with a generic tail appropriate to it.
var connectorClauses = []struct {
	Connector string
	Tail      string
}{
	{"porque", "me gusta mucho"},
	{"además", "lo hago casi todos los días"},
	{"por eso", "es importante para mí"},
	{"aunque", "a veces es difícil"},
}

// ClassifyTopic assigns a prompt to a topic family by keyword match.
func ClassifyTopic(promptText string) TopicFamily {
	norm := lang.Normalize(promptText)
	for _, fam := range topicOrder {
		for _, kw := range topicKeywords[fam] {
			if containsWord(norm, kw) {
				return fam
			}
		}
	}
	return TopicGeneric
}

// containsWord reports a word-bounded occurrence of w in normalized text.
func containsWord(norm, w string) bool {
	idx := 0
	for {
		i := indexFrom(norm, w, idx)
		if i < 0 {
			return false
		}
		end := i + len(w)
		leftOK := i == 0 || !isWordByte(norm[i-1])
		rightOK := end == len(norm) || !isWordByte(norm[end])
		if leftOK && rightOK {
			return true
		}
		idx = i + 1
	}
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
