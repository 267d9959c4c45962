package geo

// Point is a location as returned by the service.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Viewport is the recommended viewport of a result.
type Viewport struct {
	Southwest Point `json:"southwest"`
	Northeast Point `json:"northeast"`
}
