package models

// AreaRange is a closed interval in square meters, inclusive on both ends.
type AreaRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r AreaRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterState is the full filter selection of one listing session. The zero
// value means "no filter". It is a plain value so it can travel through
// query params or JSON unchanged.
type FilterState struct {
	Country    string     `json:"country,omitempty"`
	Types      []string   `json:"types,omitempty"`
	GroundArea *AreaRange `json:"ground_area,omitempty"`
	HouseArea  *AreaRange `json:"house_area,omitempty"`
	Query      string     `json:"query,omitempty"`
}

// FacetOptions lists the distinct values observed in the loaded data set,
// used to populate the filter controls instead of a hardcoded enum.
type FacetOptions struct {
	Types     []string `json:"types"`
	Countries []string `json:"countries"`
}
