package models

// StaticMenuSnapshot is the frozen catalog export written by the publish
// pipeline and fetched by the public site. It is always overwritten
// wholesale; only the latest file exists.
type StaticMenuSnapshot struct {
	Categories  []Category  `json:"categories"`
	MenuItems   []MenuItem  `json:"menuItems"`
	Sizes       []Size      `json:"sizes"`
	Attributes  []Attribute `json:"attributes"`
	LastUpdated string      `json:"lastUpdated"`
	Version     string      `json:"version"`
}
