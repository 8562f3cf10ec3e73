package models

import (
	"time"
)

type Property struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	LocationCity    string     `json:"location_city"`
	LocationAddress string     `json:"location_address"`
	Country         string     `json:"country,omitempty"`
	PropertyType    string     `json:"property_type"`
	Rooms           int        `json:"rooms"`
	GroundArea      float64    `json:"ground_area"`
	HouseArea       float64    `json:"house_area"`
	Status          string     `json:"status,omitempty"`
	Images          []string   `json:"images"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// PropertyForm holds the scalar attributes of a create/edit submission.
// Image URLs are attached by the ingestion flow, never by the caller.
type PropertyForm struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	LocationCity    string  `json:"location_city"`
	LocationAddress string  `json:"location_address"`
	Country         string  `json:"country"`
	PropertyType    string  `json:"property_type"`
	Rooms           int     `json:"rooms"`
	GroundArea      float64 `json:"ground_area"`
	HouseArea       float64 `json:"house_area"`
	Status          string  `json:"status"`
}

// UploadReport is the outcome of one upload batch: public URLs of the files
// that made it to the blob store, in submission order, plus the names of the
// files that did not.
type UploadReport struct {
	ImageURLs []string `json:"image_urls"`
	Failed    []string `json:"failed,omitempty"`
}

type PropertyListResponse struct {
	Properties []Property   `json:"properties"`
	Facets     FacetOptions `json:"facets"`
}

type PropertyCreatedResponse struct {
	Property Property `json:"property"`
	Failed   []string `json:"failed_uploads,omitempty"`
}
