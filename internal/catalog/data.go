package catalog

import (
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
)

// Canonical 2025 reference dataset. One dataset, one rule set: earlier site
// revisions carried diverging copies of these rows, which are deliberately
// collapsed here.

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var referenceDestinations = []models.Destination{
	{
		Slug:        "senegal",
		Title:       "Sénégal",
		Description: "Découvrez la chaleur et l'hospitalité légendaire du Sénégal, où les traditions séculaires se mêlent harmonieusement au mode de vie moderne. Des plages immaculées de la Petite Côte aux paysages désertiques du nord, en passant par l'emblématique île de Gorée, le Sénégal offre une richesse culturelle et une diversité naturelle exceptionnelles.",
		Highlights: []string{
			"Visite de l'île de Gorée, lieu de mémoire de la traite négrière",
			"Découverte du Lac Rose et ses récolteurs de sel",
			"Observation des oiseaux dans le Parc National du Djoudj",
			"Immersion dans la culture locale avec les villages traditionnels",
			"Détente sur les plages de Saly et de la Petite Côte",
		},
	},
	{
		Slug:        "capvert",
		Title:       "Cap Vert",
		Description: "L'archipel du Cap Vert vous invite à découvrir ses îles volcaniques aux paysages contrastés. Entre montagnes majestueuses, vallées fertiles et plages de sable fin, chaque île possède son propre caractère. L'influence africaine et portugaise se retrouve dans la culture capverdienne, créant une ambiance unique rythmée par la morna, musique traditionnelle reconnue par l'UNESCO.",
		Highlights: []string{
			"Randonnée dans les montagnes spectaculaires de Santo Antão",
			"Détente sur les plages paradisiaques de Sal et Boa Vista",
			"Découverte de la culture locale à travers la musique et la danse",
			"Exploration des villages pittoresques aux maisons colorées",
			"Navigation entre les îles pour apprécier la diversité des paysages",
		},
	},
	{
		Slug:        "benin",
		Title:       "Bénin",
		Description: "Berceau du vodun et ancien royaume puissant, le Bénin vous plonge dans une Afrique authentique riche en traditions. Des palais royaux d'Abomey aux villages lacustres de Ganvié, en passant par la Route des Esclaves à Ouidah, ce pays fascinant vous offre un voyage à travers l'histoire et les cultures vivantes de l'Afrique de l'Ouest.",
		Highlights: []string{
			"Visite des palais royaux d'Abomey, classés au patrimoine mondial",
			"Découverte du village lacustre de Ganvié, la 'Venise de l'Afrique'",
			"Exploration de la Route des Esclaves et de la Porte du Non-Retour à Ouidah",
			"Immersion dans les cérémonies et rituels vodun",
			"Observation de la faune dans le Parc National de la Pendjari",
		},
	},
}

var referenceDepartures = []models.Departure{
	{ID: 1, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.January, 15), ReturnDate: day(2025, time.January, 22), AvailableSeats: 12, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 2, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.February, 12), ReturnDate: day(2025, time.February, 19), AvailableSeats: 8, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 3, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.March, 19), ReturnDate: day(2025, time.March, 26), AvailableSeats: 15, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 10, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.April, 16), ReturnDate: day(2025, time.April, 23), AvailableSeats: 3, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 11, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.May, 21), ReturnDate: day(2025, time.May, 28), AvailableSeats: 20, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 12, Destination: "senegal", DestinationName: "Sénégal", DepartureDate: day(2025, time.June, 18), ReturnDate: day(2025, time.June, 25), AvailableSeats: 18, TotalSeats: 20, PriceEUR: 865, DurationDays: 7},
	{ID: 4, Destination: "capvert", DestinationName: "Cap Vert", DepartureDate: day(2025, time.January, 30), ReturnDate: day(2025, time.February, 4), AvailableSeats: 10, TotalSeats: 15, PriceEUR: 785, DurationDays: 5},
	{ID: 5, Destination: "capvert", DestinationName: "Cap Vert", DepartureDate: day(2025, time.February, 27), ReturnDate: day(2025, time.March, 4), AvailableSeats: 6, TotalSeats: 15, PriceEUR: 785, DurationDays: 5},
	{ID: 6, Destination: "capvert", DestinationName: "Cap Vert", DepartureDate: day(2025, time.May, 30), ReturnDate: day(2025, time.June, 3), AvailableSeats: 14, TotalSeats: 15, PriceEUR: 785, DurationDays: 5},
	{ID: 13, Destination: "capvert", DestinationName: "Cap Vert", DepartureDate: day(2025, time.July, 31), ReturnDate: day(2025, time.August, 5), AvailableSeats: 4, TotalSeats: 15, PriceEUR: 785, DurationDays: 5},
	{ID: 14, Destination: "capvert", DestinationName: "Cap Vert", DepartureDate: day(2025, time.September, 25), ReturnDate: day(2025, time.September, 30), AvailableSeats: 2, TotalSeats: 15, PriceEUR: 785, DurationDays: 5},
	{ID: 7, Destination: "benin", DestinationName: "Bénin", DepartureDate: day(2025, time.April, 10), ReturnDate: day(2025, time.April, 16), AvailableSeats: 12, TotalSeats: 18, PriceEUR: 925, DurationDays: 6},
	{ID: 8, Destination: "benin", DestinationName: "Bénin", DepartureDate: day(2025, time.July, 17), ReturnDate: day(2025, time.July, 23), AvailableSeats: 8, TotalSeats: 18, PriceEUR: 925, DurationDays: 6},
	{ID: 9, Destination: "benin", DestinationName: "Bénin", DepartureDate: day(2025, time.September, 4), ReturnDate: day(2025, time.September, 10), AvailableSeats: 0, TotalSeats: 18, PriceEUR: 925, DurationDays: 6},
	{ID: 15, Destination: "benin", DestinationName: "Bénin", DepartureDate: day(2025, time.October, 16), ReturnDate: day(2025, time.October, 22), AvailableSeats: 15, TotalSeats: 18, PriceEUR: 925, DurationDays: 6},
}

// Only the Sénégal circuit sells bolt-on extensions.
var referenceAddOns = []models.AddOn{
	{
		ID:          "lac-rose",
		Destination: "senegal",
		Name:        "Excursion au Lac Rose",
		Duration:    "1 journée",
		PriceEUR:    29,
		Included:    []string{"Transport aller-retour", "Déjeuner local", "Guide francophone"},
		Activities:  []string{"Balade en 4x4 sur les dunes", "Rencontre avec les récolteurs de sel", "Baignade dans le lac"},
	},
	{
		ID:          "goree-musees",
		Destination: "senegal",
		Name:        "Île de Gorée et musées",
		Duration:    "1 journée",
		PriceEUR:    53,
		Included:    []string{"Traversée en chaloupe", "Entrées des musées", "Déjeuner face à la mer", "Guide historien"},
		Activities:  []string{"Visite de la Maison des Esclaves", "Musée historique de Gorée", "Flânerie dans les ruelles coloniales"},
	},
	{
		ID:          "sine-saloum",
		Destination: "senegal",
		Name:        "Delta du Sine Saloum",
		Duration:    "2 jours / 1 nuit",
		PriceEUR:    120,
		Included:    []string{"Transport", "Nuit en lodge", "Pension complète", "Pirogue privée"},
		Activities:  []string{"Navigation dans les bolongs", "Observation des oiseaux", "Visite d'un village sérère"},
	},
}
