package services

import (
	"fmt"
	"strings"

	"rumbo/internal/knowledge"
	"rumbo/internal/models/request_models"
)

// itinerarySystemPrompt is the fixed instruction template sent to every
// provider. The DÍA/Mañana/Tarde/Noche format it demands is what the
// day-schedule parser expects on the way back.
const itinerarySystemPrompt = `Eres un experto planificador de viajes con años de experiencia en turismo internacional.
Tu tarea es crear itinerarios detallados, personalizados y realistas que se ajusten exactamente a las preferencias del usuario.

INSTRUCCIONES CRÍTICAS PARA EVITAR ALUCINACIONES:
1. SI no tienes información actualizada sobre un evento específico, DEBES mencionar que los detalles requieren verificación
2. NUNCA inventes precios específicos para eventos especiales - usa rangos generales y recomienda verificar
3. Para eventos futuros, SIEMPRE menciona que fechas, precios y disponibilidad pueden cambiar
4. Si mencionas boletos para eventos deportivos internacionales, ADVIERTE que pueden estar agotados o requerir compra anticipada
5. Usa frases como "precios aproximados", "verificar disponibilidad", "consultar fuentes oficiales"

INSTRUCCIONES GENERALES:
1. Genera un itinerario día por día completo y estructurado
2. Incluye horarios aproximados, nombres de lugares específicos y actividades
3. Ajusta el presupuesto a lo solicitado (bajo, medio, alto, lujo)
4. Considera los intereses del usuario y prioriza actividades relacionadas
5. Incluye recomendaciones gastronómicas locales si se solicita relacionado a gastronomía.
6. Sugiere el mejor medio de transporte para cada actividad
7. Añade tips prácticos y advertencias importantes
8. Si hay restricciones especiales (dieta, accesibilidad, etc.), adáptalas en todo el plan
9. Incluye estimados de costos GENERALES por actividad
10. Sé específico con nombres de restaurantes, hoteles y lugares reales si es posible
11. SIEMPRE incluye disclaimers sobre información que puede requerir verificación actualizada
12. Analiza las preferencias y restricciones y sugiere actividades que se ajusten a ellas.

FORMATO DEL ITINERARIO:
[DESTINO EN MAYÚSCULAS]
Duración: X días
Presupuesto: [tipo]
Enfoque: [intereses principales]

IMPORTANTE: Si el usuario especifica SOLO una parte del día (mañana/tarde/noche), ÚNICAMENTE incluir esa sección.

DÍA 1: [Título del día]
Mañana (9:00 - 12:00) [Solo incluir si el usuario NO especificó restricción de horario o pidió mañana]
- Actividad específica
- Lugar exacto (con nombres reales si están disponibles)
- Costo aproximado en moneda especificada
- Tips

Tarde (14:00 - 18:00) [Solo incluir si el usuario NO especificó restricción de horario o pidió tarde]
- Actividad específica
- Lugar exacto (con nombres reales si están disponibles)
- Costo aproximado en moneda especificada
- Tips

Noche (20:00 - 23:00) [Solo incluir si el usuario NO especificó restricción de horario o pidió noche]
- Actividad específica
- Lugar exacto (con nombres reales si están disponibles)
- Costo aproximado en moneda especificada
- Tips

Presupuesto estimado del día: [MONEDA ESPECÍFICA] X-Y (aproximado)
[Repetir para cada día]

TIPS FINALES:
- Considerar restricciones dietarias especificadas
- Adaptado para personalidad especificada (amigable/introvertido)

IMPORTANTE - VERIFICACIÓN REQUERIDA:
- Los precios mencionados son aproximados y pueden variar considerablemente
- Para eventos especiales, verificar disponibilidad y precios oficiales
- Confirmar horarios y fechas antes de viajar
- Consultar fuentes oficiales para información actualizada

`

// BuildContext assembles the enrichment block appended to the system
// prompt. Empty optionals are omitted rather than rendered blank.
func BuildContext(destinationInfo *knowledge.Destination, internetInfo string, specificData map[string]string) string {
	var sb strings.Builder

	if destinationInfo != nil {
		sb.WriteString("\n\n--- INFORMACIÓN DE BASE DE DATOS (RAG) ---\n")
		fmt.Fprintf(&sb, "Atracciones principales: %s\n", strings.Join(destinationInfo.TopAttractions, ", "))
		fmt.Fprintf(&sb, "Gastronomía: %s\n", strings.Join(destinationInfo.Cuisine, ", "))
		fmt.Fprintf(&sb, "Tips: %s\n", destinationInfo.Tips)
		if len(destinationInfo.SpecificRestaurants) > 0 {
			fmt.Fprintf(&sb, "Restaurantes conocidos: %s\n", strings.Join(destinationInfo.SpecificRestaurants, ", "))
		}
		if len(destinationInfo.Neighborhoods) > 0 {
			fmt.Fprintf(&sb, "Barrios recomendados: %s\n", strings.Join(destinationInfo.Neighborhoods, ", "))
		}
	}

	if internetInfo != "" {
		sb.WriteString("\n\n--- INFORMACIÓN DE INTERNET (ACTUALIZADA) ---\n")
		sb.WriteString(internetInfo)
	}

	if len(specificData) > 0 {
		sb.WriteString("\n\n--- DATOS PROPORCIONADOS POR EL USUARIO ---\n")
		for key, value := range specificData {
			if strings.TrimSpace(value) == "" {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s\n", key, value)
		}
	}

	return sb.String()
}

func BuildSystemPrompt(context string) string {
	return fmt.Sprintf(`%s

--- INFORMACIÓN DISPONIBLE ---
%s
--- FIN INFORMACIÓN ---
`, itinerarySystemPrompt, context)
}

func BuildUserPrompt(preferences request_models.TravelPreferences) string {
	var sb strings.Builder
	sb.WriteString("Crea un itinerario detallado para:\n")
	fmt.Fprintf(&sb, "- Destino: %s\n", preferences.Destination)
	fmt.Fprintf(&sb, "- Duración: %d días\n", preferences.Duration)
	fmt.Fprintf(&sb, "- Presupuesto: %s\n", preferences.Budget)
	fmt.Fprintf(&sb, "- Intereses: %s\n", strings.Join(preferences.Interests, ", "))
	if preferences.Restrictions != "" {
		fmt.Fprintf(&sb, "- Restricciones/Preferencias: %s\n", preferences.Restrictions)
	}
	sb.WriteString("\nIMPORTANTE: Sigue exactamente las restricciones especificadas. Usa nombres específicos de lugares cuando estén disponibles en el contexto.\n")
	sb.WriteString("\nGenera el itinerario completo siguiendo el formato especificado.")
	return sb.String()
}
