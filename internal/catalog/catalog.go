package catalog

import (
	"fmt"
	"sort"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
)

// Catalog is the reference-data store: destinations, departures and add-ons,
// built once at startup and read-only afterwards. It replaces the literals
// that used to be scattered across page components.
type Catalog struct {
	destinations []models.Destination
	departures   []models.Departure
	addOns       []models.AddOn

	departureByID map[int]models.Departure
	addOnByID     map[string]models.AddOn
	destBySlug    map[string]models.Destination
}

// New builds the catalog from the canonical reference tables and verifies
// every dataset invariant. A violation is a build-data bug, so construction
// fails rather than serving bad rows.
func New() (*Catalog, error) {
	return build(referenceDestinations, referenceDepartures, referenceAddOns)
}

func build(destinations []models.Destination, departures []models.Departure, addOns []models.AddOn) (*Catalog, error) {
	c := &Catalog{
		destinations:  destinations,
		departures:    departures,
		addOns:        addOns,
		departureByID: make(map[int]models.Departure, len(departures)),
		addOnByID:     make(map[string]models.AddOn, len(addOns)),
		destBySlug:    make(map[string]models.Destination, len(destinations)),
	}

	for _, d := range destinations {
		if _, dup := c.destBySlug[d.Slug]; dup {
			return nil, fmt.Errorf("duplicate destination slug %q", d.Slug)
		}
		c.destBySlug[d.Slug] = d
	}

	for _, dep := range departures {
		if err := validateDeparture(dep); err != nil {
			return nil, fmt.Errorf("departure %d: %w", dep.ID, err)
		}
		if _, ok := c.destBySlug[dep.Destination]; !ok {
			return nil, fmt.Errorf("departure %d: unknown destination %q", dep.ID, dep.Destination)
		}
		if _, dup := c.departureByID[dep.ID]; dup {
			return nil, fmt.Errorf("duplicate departure id %d", dep.ID)
		}
		c.departureByID[dep.ID] = dep
	}

	for _, a := range addOns {
		if a.PriceEUR < 0 {
			return nil, fmt.Errorf("add-on %q: negative price", a.ID)
		}
		if _, ok := c.destBySlug[a.Destination]; !ok {
			return nil, fmt.Errorf("add-on %q: unknown destination %q", a.ID, a.Destination)
		}
		if _, dup := c.addOnByID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate add-on id %q", a.ID)
		}
		c.addOnByID[a.ID] = a
	}

	return c, nil
}

func validateDeparture(dep models.Departure) error {
	if dep.TotalSeats <= 0 {
		return fmt.Errorf("total seats must be positive, got %d", dep.TotalSeats)
	}
	if dep.AvailableSeats < 0 || dep.AvailableSeats > dep.TotalSeats {
		return fmt.Errorf("available seats %d outside [0,%d]", dep.AvailableSeats, dep.TotalSeats)
	}
	if dep.PriceEUR <= 0 {
		return fmt.Errorf("price must be positive, got %v", dep.PriceEUR)
	}
	if !dep.ReturnDate.After(dep.DepartureDate) {
		return fmt.Errorf("return date not after departure date")
	}
	return nil
}

// DepartureByID resolves a departure.
func (c *Catalog) DepartureByID(id int) (models.Departure, error) {
	dep, ok := c.departureByID[id]
	if !ok {
		return models.Departure{}, models.ErrDepartureNotFound
	}
	return dep, nil
}

// Departures lists the calendar, optionally filtered by destination slug and
// departure month, sorted by departure date. Zero values mean no filter.
func (c *Catalog) Departures(destination string, month time.Month) []models.Departure {
	out := make([]models.Departure, 0, len(c.departures))
	for _, dep := range c.departures {
		if destination != "" && dep.Destination != destination {
			continue
		}
		if month != 0 && dep.DepartureDate.Month() != month {
			continue
		}
		out = append(out, dep)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DepartureDate.Equal(out[j].DepartureDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].DepartureDate.Before(out[j].DepartureDate)
	})
	return out
}

// Destinations returns the marketed destinations in catalog order.
func (c *Catalog) Destinations() []models.Destination {
	out := make([]models.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// DestinationBySlug resolves a destination.
func (c *Catalog) DestinationBySlug(slug string) (models.Destination, error) {
	d, ok := c.destBySlug[slug]
	if !ok {
		return models.Destination{}, models.ErrUnknownDestination
	}
	return d, nil
}

// AddOnsForDestination lists the optional extensions sold with a destination.
// Most destinations have none.
func (c *Catalog) AddOnsForDestination(slug string) []models.AddOn {
	var out []models.AddOn
	for _, a := range c.addOns {
		if a.Destination == slug {
			out = append(out, a)
		}
	}
	return out
}

// AddOnByID resolves an add-on.
func (c *Catalog) AddOnByID(id string) (models.AddOn, error) {
	a, ok := c.addOnByID[id]
	if !ok {
		return models.AddOn{}, models.ErrUnknownAddOn
	}
	return a, nil
}
