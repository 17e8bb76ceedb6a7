package models

// Customer is a delivery recipient. Each customer belongs to exactly one
// fixed zone; many customers may share a zone.
type Customer struct {
	Name    string `json:"name"`
	Zone    string `json:"zone"`
	Address string `json:"address"`
}
