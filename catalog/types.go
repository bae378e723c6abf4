package catalog

// Route represents one directed bus service segment from the dataset.
// Immutable after load; Stops begins with FromStop and ends with ToStop.
type Route struct {
	RouteID         string   `json:"route_id"`
	FromStop        string   `json:"from_stop"`
	ToStop          string   `json:"to_stop"`
	BusNumber       string   `json:"bus_number"`
	DepartureTime   string   `json:"departure_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Stops           []string `json:"stops"`

	// DepartureMinutes is DepartureTime pre-parsed to minutes since
	// midnight for ordering and time filters.
	DepartureMinutes int `json:"-"`
}
