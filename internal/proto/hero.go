package proto

// Paths of the heroes REST API.
const (
	HeroesPath = "/api/heroes"
	HealthPath = "/health"

	// SearchParam carries the search term on GET /api/heroes/.
	SearchParam = "name"
)

// Hero is the JSON shape of a hero on the wire.
type Hero struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateHero is the POST body; the server assigns the id.
type CreateHero struct {
	Name string `json:"name" binding:"required"`
}

// UpdateHero is the PUT body.
type UpdateHero struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// Error describes an API error response body.
type Error struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
