package knowledge

import "strings"

// BudgetRange is the typical daily spend per tier, in the destination's
// reference currency.
type BudgetRange struct {
	Low  int
	Mid  int
	High int
}

type Destination struct {
	Destination         string
	Country             string
	BestMonths          []string
	AvgBudget           BudgetRange
	TopAttractions      []string
	Cuisine             []string
	SpecificRestaurants []string
	Neighborhoods       []string
	Tips                string
	Culture             string
}

// Find returns the first entry whose destination or country name contains
// the query as a substring, case-insensitive. Nil when nothing matches.
func Find(destination string) *Destination {
	normalized := strings.ToLower(strings.TrimSpace(destination))
	if normalized == "" {
		return nil
	}
	for i := range travelKnowledge {
		entry := &travelKnowledge[i]
		if strings.Contains(strings.ToLower(entry.Destination), normalized) ||
			strings.Contains(strings.ToLower(entry.Country), normalized) {
			return entry
		}
	}
	return nil
}

// RecommendationsByInterests maps interest tags to destinations worth
// suggesting alongside a generated itinerary.
func RecommendationsByInterests(interests []string) []string {
	tagged := make(map[string]bool, len(interests))
	for _, interest := range interests {
		tagged[strings.ToLower(interest)] = true
	}

	var recommendations []string
	if tagged["cultura"] || tagged["historia"] {
		recommendations = append(recommendations, "Roma", "París", "Atenas", "Jerusalén")
	}
	if tagged["playa"] {
		recommendations = append(recommendations, "Cancún", "Bali", "Maldivas", "Santorini")
	}
	if tagged["aventura"] {
		recommendations = append(recommendations, "Machu Picchu", "Nueva Zelanda", "Islandia", "Patagonia")
	}
	if tagged["gastronomía"] {
		recommendations = append(recommendations, "Tokio", "Barcelona", "Bangkok", "Lima")
	}
	return recommendations
}

var travelKnowledge = []Destination{
	{
		Destination: "París",
		Country:     "Francia",
		BestMonths:  []string{"abril", "mayo", "septiembre", "octubre"},
		AvgBudget:   BudgetRange{Low: 70, Mid: 150, High: 300},
		TopAttractions: []string{
			"Torre Eiffel",
			"Museo del Louvre",
			"Catedral de Notre-Dame",
			"Arco del Triunfo",
			"Palacio de Versalles",
		},
		Cuisine: []string{"croissants", "queso", "vino", "macarons", "crêpes"},
		Tips:    "Compra el Paris Museum Pass para ahorrar en entradas. El metro es la forma más eficiente de moverse.",
		Culture: "Ciudad del arte, moda y gastronomía. Rica historia desde época medieval hasta modernidad.",
	},
	{
		Destination: "Tokio",
		Country:     "Japón",
		BestMonths:  []string{"marzo", "abril", "octubre", "noviembre"},
		AvgBudget:   BudgetRange{Low: 80, Mid: 180, High: 400},
		TopAttractions: []string{
			"Templo Senso-ji",
			"Torre de Tokio",
			"Palacio Imperial",
			"Shibuya Crossing",
			"Akihabara",
		},
		Cuisine: []string{"sushi", "ramen", "tempura", "okonomiyaki", "takoyaki"},
		Tips:    "Obtén un JR Pass si planeas viajar a otras ciudades. La puntualidad es sagrada.",
		Culture: "Mezcla única de tradición milenaria y tecnología de vanguardia. Respeto y cortesía son fundamentales.",
	},
	{
		Destination: "Ciudad de México",
		Country:     "México",
		BestMonths:  []string{"octubre", "noviembre", "diciembre", "enero", "febrero", "marzo"},
		// MXN pesos mexicanos por día
		AvgBudget: BudgetRange{Low: 400, Mid: 800, High: 1800},
		TopAttractions: []string{
			"Zócalo y Catedral Metropolitana",
			"Templo Mayor",
			"Museo Nacional de Antropología",
			"Palacio de Bellas Artes",
			"Xochimilco",
			"Casa Azul de Frida Kahlo",
			"Castillo de Chapultepec",
			"Coyoacán",
			"Teotihuacán",
		},
		Cuisine: []string{
			"tacos al pastor", "chilaquiles", "cochinita pibil", "tamales", "pozole",
			"quesadillas", "elote", "churros", "mezcal", "pulque",
		},
		SpecificRestaurants: []string{
			"Pujol (Polanco) - Alta cocina mexicana - $2,500 MXN",
			"Quintonil (Polanco) - Cocina contemporánea - $2,800 MXN",
			"Azul Histórico (Centro) - Cocina tradicional - $400 MXN",
			"El Cardenal (Centro) - Desayunos tradicionales - $180 MXN",
			"Contramar (Roma Norte) - Mariscos - $600 MXN",
			"Rosetta (Roma Norte) - Cocina italiana-mexicana - $450 MXN",
			"Café de Tacuba (Centro) - Cocina tradicional desde 1912 - $250 MXN",
			"Mercado de San Juan - Productos gourmet - $200 MXN",
			"La Casa de las Sirenas (Centro) - Vista al Zócalo - $350 MXN",
		},
		Neighborhoods: []string{
			"Centro Histórico - Arquitectura colonial, museos",
			"Roma Norte - Cafés, galerías, vida bohemia",
			"Condesa - Parques, restaurantes, vida nocturna",
			"Polanco - Zona upscale, museos, shopping",
			"Coyoacán - Bohemio, mercados, Frida Kahlo",
			"Xochimilco - Trajineras, canales, tradición",
			"San Ángel - Colonial, mercados de sábado",
		},
		Tips:    "Usa Uber/taxi de sitio por seguridad. El metro es eficiente pero evítalo en hora pico. Lleva efectivo para mercados. La altitud puede causar cansancio inicial.",
		Culture: "Capital cultural de América Latina. Mezcla de civilización azteca, época colonial y modernidad. Centro de gastronomía, arte y tradiciones mexicanas.",
	},
	{
		Destination: "Cancún",
		Country:     "México",
		BestMonths:  []string{"diciembre", "enero", "febrero", "marzo", "abril"},
		AvgBudget:   BudgetRange{Low: 50, Mid: 120, High: 250},
		TopAttractions: []string{
			"Chichén Itzá",
			"Tulum",
			"Isla Mujeres",
			"Xcaret",
			"Cenotes",
		},
		Cuisine: []string{"tacos", "ceviche", "cochinita pibil", "marquesitas", "guacamole"},
		Tips:    "Evita la temporada de huracanes (junio-noviembre). Los tours incluyen transporte desde hoteles.",
		Culture: "Fusión de cultura maya antigua con turismo moderno. Calidez mexicana y playas paradisíacas.",
	},
	{
		Destination: "Barcelona",
		Country:     "España",
		BestMonths:  []string{"mayo", "junio", "septiembre", "octubre"},
		AvgBudget:   BudgetRange{Low: 60, Mid: 130, High: 280},
		TopAttractions: []string{
			"Sagrada Familia",
			"Park Güell",
			"Las Ramblas",
			"Casa Batlló",
			"Barrio Gótico",
		},
		Cuisine: []string{"tapas", "paella", "crema catalana", "jamón ibérico", "pan con tomate"},
		Tips:    "Reserva entradas a Sagrada Familia con anticipación. El barrio Gótico es ideal para paseos a pie.",
		Culture: "Arquitectura modernista de Gaudí, cultura catalana vibrante, playas urbanas y vida nocturna animada.",
	},
	{
		Destination: "Nueva York",
		Country:     "Estados Unidos",
		BestMonths:  []string{"abril", "mayo", "septiembre", "octubre", "noviembre"},
		AvgBudget:   BudgetRange{Low: 100, Mid: 200, High: 500},
		TopAttractions: []string{
			"Estatua de la Libertad",
			"Central Park",
			"Times Square",
			"Empire State Building",
			"MoMA",
		},
		Cuisine: []string{"pizza", "bagels", "hot dogs", "cheesecake", "food trucks"},
		Tips:    "Usa el metro (subway) para moverte. Compra New York Pass para atracciones múltiples.",
		Culture: "Melting pot cultural, capital mundial del arte, moda, finanzas y entretenimiento.",
	},
	{
		Destination: "Roma",
		Country:     "Italia",
		BestMonths:  []string{"abril", "mayo", "septiembre", "octubre"},
		AvgBudget:   BudgetRange{Low: 65, Mid: 140, High: 300},
		TopAttractions: []string{
			"Coliseo",
			"Vaticano y Capilla Sixtina",
			"Fontana di Trevi",
			"Panteón",
			"Foro Romano",
		},
		Cuisine: []string{"pasta carbonara", "pizza romana", "gelato", "supplì", "cacio e pepe"},
		Tips:    "Reserva entrada al Vaticano con antelación. Muchas iglesias requieren vestimenta apropiada.",
		Culture: "Cuna del Imperio Romano y centro del catolicismo. Historia viva en cada esquina.",
	},
	{
		Destination: "Londres",
		Country:     "Reino Unido",
		BestMonths:  []string{"mayo", "junio", "julio", "agosto", "septiembre"},
		AvgBudget:   BudgetRange{Low: 90, Mid: 180, High: 400},
		TopAttractions: []string{
			"Torre de Londres",
			"British Museum",
			"Buckingham Palace",
			"London Eye",
			"Big Ben",
		},
		Cuisine: []string{"fish and chips", "sunday roast", "afternoon tea", "curry", "pie and mash"},
		Tips:    "Usa la Oyster Card para transporte público. Muchos museos tienen entrada gratuita.",
		Culture: "Monarquía histórica, diversidad multicultural, teatro de clase mundial y arquitectura icónica.",
	},
	{
		Destination: "Bali",
		Country:     "Indonesia",
		BestMonths:  []string{"abril", "mayo", "junio", "septiembre", "octubre"},
		AvgBudget:   BudgetRange{Low: 30, Mid: 80, High: 200},
		TopAttractions: []string{
			"Templo Tanah Lot",
			"Ubud y arrozales",
			"Playa Seminyak",
			"Templo Uluwatu",
			"Monte Batur",
		},
		Cuisine: []string{"nasi goreng", "satay", "babi guling", "rendang", "bebek betutu"},
		Tips:    "Alquila scooter para moverte. Respeta ceremonias religiosas locales.",
		Culture: "Espiritualidad hindú balinesa, terrazas de arroz, templos ancestrales y hospitalidad única.",
	},
	{
		Destination: "Dubái",
		Country:     "Emiratos Árabes Unidos",
		BestMonths:  []string{"noviembre", "diciembre", "enero", "febrero", "marzo"},
		AvgBudget:   BudgetRange{Low: 100, Mid: 250, High: 600},
		TopAttractions: []string{
			"Burj Khalifa",
			"Dubai Mall",
			"Palm Jumeirah",
			"Desierto safari",
			"Burj Al Arab",
		},
		Cuisine: []string{"shawarma", "hummus", "falafel", "kunafa", "dates"},
		Tips:    "Vestimenta conservadora en áreas públicas. El taxi/metro es eficiente.",
		Culture: "Lujo moderno en el desierto, arquitectura futurista, shopping de clase mundial.",
	},
	{
		Destination: "Machu Picchu",
		Country:     "Perú",
		BestMonths:  []string{"mayo", "junio", "julio", "agosto", "septiembre"},
		AvgBudget:   BudgetRange{Low: 40, Mid: 100, High: 250},
		TopAttractions: []string{
			"Ciudadela Inca",
			"Huayna Picchu",
			"Valle Sagrado",
			"Cusco",
			"Aguas Calientes",
		},
		Cuisine: []string{"ceviche", "lomo saltado", "cuy", "anticuchos", "pisco sour"},
		Tips:    "Aclimátate a la altitud en Cusco primero. Reserva entradas con meses de anticipación.",
		Culture: "Patrimonio incaico milenario, arquitectura de piedra imposible, misticismo andino.",
	},
	{
		Destination: "Madrid",
		Country:     "España",
		BestMonths:  []string{"mayo", "junio", "septiembre", "octubre"},
		AvgBudget:   BudgetRange{Low: 55, Mid: 120, High: 250},
		TopAttractions: []string{
			"Museo del Prado",
			"Palacio Real",
			"Parque del Retiro",
			"Plaza Mayor",
			"Reina Sofía",
		},
		Cuisine: []string{"tapas", "cocido madrileño", "bocadillo de calamares", "churros con chocolate", "tortilla española"},
		SpecificRestaurants: []string{
			"Sobrino de Botín (Casa Botín) - El restaurante más antiguo del mundo - 45€",
			"Mercado de San Miguel - Gastronomía variada - 15€",
			"Casa Lucio - Famoso por huevos estrellados - 35€",
			"Lhardy - Cocina tradicional madrileña desde 1839 - 50€",
			"Taberna La Bola - Cocido madrileño auténtico - 25€",
		},
		Neighborhoods: []string{
			"Malasaña - Bohemio, tiendas vintage, vida nocturna",
			"Chueca - LGBTQ+ friendly, restaurantes, bares",
			"La Latina - Tapas, mercado dominguero, ambiente castizo",
			"Salamanca - Zona elegante, shopping de lujo",
			"Lavapiés - Multicultural, arte urbano, alternativo",
		},
		Tips:    "El Museo del Prado es gratis las últimas 2 horas del día. Los domingos muchos madrileños van al Rastro (mercado de pulgas).",
		Culture: "Capital de España, centro político y cultural. Famosa por sus museos, vida nocturna y gastronomía tradicional.",
	},
	{
		Destination: "Buenos Aires",
		Country:     "Argentina",
		BestMonths:  []string{"marzo", "abril", "mayo", "septiembre", "octubre", "noviembre"},
		AvgBudget:   BudgetRange{Low: 30, Mid: 70, High: 180},
		TopAttractions: []string{
			"Caminito en La Boca",
			"Plaza de Mayo",
			"San Telmo",
			"Puerto Madero",
			"Recoleta y Cementerio",
		},
		Cuisine: []string{"asado", "empanadas", "milanesa", "dulce de leche", "mate"},
		SpecificRestaurants: []string{
			"Don Julio - Mejor parrilla de Palermo - $60",
			"La Cabrera - Parrilla gourmet - $45",
			"Café Tortoni - Histórico desde 1858 - $15",
			"El Obrero - Parrilla tradicional en La Boca - $25",
			"Tegui - Alta cocina argentina - $120",
		},
		Neighborhoods: []string{
			"Palermo - Trendy, restaurantes, vida nocturna",
			"San Telmo - Colonial, tango, mercados",
			"La Boca - Colorido, Caminito, fútbol",
			"Recoleta - Elegante, museos, cementerio",
			"Puerto Madero - Moderno, ríos, rascacielos",
		},
		Tips:    "Los restaurantes abren tarde (21:00). El tango es gratis los domingos en San Telmo. Usa subte (metro) o taxis.",
		Culture: "París de Sudamérica. Fuerte influencia europea, especialmente italiana. Cuna del tango y pasión futbolística.",
	},
}
