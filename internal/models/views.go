package models

// Views decide which relations appear in a JSON representation.
// Persistence structs are never rendered directly.

// RestaurantSummary is a restaurant without its menu
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without the restaurants serving it
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantDetail is a restaurant expanded with its menu entries
type RestaurantDetail struct {
	ID               uint                          `json:"id"`
	Name             string                        `json:"name"`
	Address          string                        `json:"address"`
	RestaurantPizzas []RestaurantPizzaInRestaurant `json:"restaurant_pizzas"`
}

// RestaurantPizzaInRestaurant is a menu entry nested under its restaurant,
// so the restaurant back-reference is left out
type RestaurantPizzaInRestaurant struct {
	ID           uint         `json:"id"`
	Price        int          `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantPizzaDetail is a menu entry expanded with both sides of the link
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantSummary(r))
	}
	return out
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaSummary(p))
	}
	return out
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	detail := RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: make([]RestaurantPizzaInRestaurant, 0, len(r.RestaurantPizzas)),
	}
	for _, rp := range r.RestaurantPizzas {
		entry := RestaurantPizzaInRestaurant{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Pizza != nil {
			entry.Pizza = NewPizzaSummary(*rp.Pizza)
		}
		detail.RestaurantPizzas = append(detail.RestaurantPizzas, entry)
	}
	return detail
}

// NewRestaurantPizzaDetail expects Restaurant and Pizza to be loaded
func NewRestaurantPizzaDetail(rp RestaurantPizza) RestaurantPizzaDetail {
	detail := RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		detail.Pizza = NewPizzaSummary(*rp.Pizza)
	}
	if rp.Restaurant != nil {
		detail.Restaurant = NewRestaurantSummary(*rp.Restaurant)
	}
	return detail
}
