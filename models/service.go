package models

// Service represents an entry in the service catalog.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`               // e.g., "Signature Head Spa"
	Description string  `bson:"description" json:"description"` // short marketing copy
	Duration    int     `bson:"duration" json:"duration"`       // in minutes
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"` // e.g., "head spa", "massage"
	Active      bool    `bson:"active" json:"active"`
}
