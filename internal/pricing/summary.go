package pricing

import (
	"fmt"
	"strings"

	models "github.com/lrad-tours/voyages-api/internal"
)

// BookingSummary builds the human-readable reservation message sent to the
// agency. Sections with no content (no add-ons, blank special requests) are
// omitted entirely, never rendered empty. Output is deterministic: identical
// intents yield byte-identical text.
func BookingSummary(intent models.BookingIntent, conv Converter, company string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bonjour %s,\n\n", company)
	b.WriteString("Je souhaite réserver le voyage suivant :\n\n")

	b.WriteString("🌍 VOYAGE\n")
	fmt.Fprintf(&b, "- Destination : %s\n", intent.Departure.DestinationName)
	fmt.Fprintf(&b, "- Du %s au %s (%d jours)\n",
		FormatDateFR(intent.Departure.DepartureDate),
		FormatDateFR(intent.Departure.ReturnDate),
		intent.Departure.DurationDays)
	fmt.Fprintf(&b, "- Nombre de voyageurs : %d personne(s)\n\n", intent.Travelers)

	b.WriteString("👤 COORDONNÉES\n")
	fmt.Fprintf(&b, "- Nom : %s\n", intent.Customer.LastName)
	fmt.Fprintf(&b, "- Prénom : %s\n", intent.Customer.FirstName)
	fmt.Fprintf(&b, "- Email : %s\n", intent.Customer.Email)
	fmt.Fprintf(&b, "- Téléphone : %s\n", intent.Customer.Phone)

	if len(intent.AddOns) > 0 {
		b.WriteString("\n🎯 OPTIONS SÉLECTIONNÉES\n")
		for _, a := range intent.AddOns {
			fmt.Fprintf(&b, "- %s (%s)\n", a.Name, FormatEUR(a.PriceEUR))
		}
	}

	if strings.TrimSpace(intent.SpecialRequests) != "" {
		b.WriteString("\n📝 DEMANDES SPÉCIALES\n")
		b.WriteString(strings.TrimSpace(intent.SpecialRequests))
		b.WriteString("\n")
	}

	b.WriteString("\n💰 PRIX TOTAL\n")
	fmt.Fprintf(&b, "- %s (%s)\n", FormatEUR(intent.TotalEUR), FormatXOF(conv.ToXOF(intent.TotalEUR)))

	fmt.Fprintf(&b, "\nCordialement,\n%s %s\n", intent.Customer.FirstName, intent.Customer.LastName)

	return b.String()
}

// QuoteSummary builds the custom quote-request message. Same omission rule:
// optional sections disappear when blank.
func QuoteSummary(req models.QuoteRequest, company string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bonjour %s,\n\n", company)
	b.WriteString("Je souhaite recevoir un devis personnalisé pour un voyage avec les informations suivantes :\n\n")

	b.WriteString("👤 INFORMATIONS PERSONNELLES\n")
	fmt.Fprintf(&b, "- Nom : %s\n", req.LastName)
	fmt.Fprintf(&b, "- Prénom : %s\n", req.FirstName)
	fmt.Fprintf(&b, "- Email : %s\n", req.Email)
	fmt.Fprintf(&b, "- Téléphone : %s\n\n", req.Phone)

	b.WriteString("🌍 DÉTAILS DU VOYAGE\n")
	fmt.Fprintf(&b, "- Destination : %s\n", models.DestinationLabel(req.Destination))
	fmt.Fprintf(&b, "- Date de départ : %s\n", req.DepartureDate)
	fmt.Fprintf(&b, "- Date de retour : %s\n", req.ReturnDate)
	fmt.Fprintf(&b, "- Nombre de voyageurs : %d personne(s)\n", req.Travelers)
	fmt.Fprintf(&b, "- Budget approximatif : %s\n\n", req.BudgetRange)

	b.WriteString("🏨 HÉBERGEMENT SOUHAITÉ\n")
	fmt.Fprintf(&b, "- Type d'hébergement : %s\n", req.AccommodationType)

	if len(req.Activities) > 0 {
		b.WriteString("\n🎯 ACTIVITÉS D'INTÉRÊT\n")
		for _, a := range req.Activities {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	if strings.TrimSpace(req.SpecificNeeds) != "" {
		b.WriteString("\n⚠️ BESOINS SPÉCIFIQUES\n")
		b.WriteString(strings.TrimSpace(req.SpecificNeeds))
		b.WriteString("\n")
	}

	if strings.TrimSpace(req.AdditionalInfo) != "" {
		b.WriteString("\n📝 INFORMATIONS COMPLÉMENTAIRES\n")
		b.WriteString(strings.TrimSpace(req.AdditionalInfo))
		b.WriteString("\n")
	}

	b.WriteString("\nMerci de me faire parvenir une proposition détaillée.\n")
	fmt.Fprintf(&b, "\nCordialement,\n%s %s\n", req.FirstName, req.LastName)

	return b.String()
}
