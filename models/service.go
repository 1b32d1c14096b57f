package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service represents a purchasable repair offering. Services are seeded
// out of band and are read-only through the API.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Price       float64            `bson:"price" json:"price"`
	Img         string             `bson:"img" json:"img"`
	ServiceID   string             `bson:"service_id" json:"service_id"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ServiceSummary is the restricted projection returned by the
// fetch-by-id endpoint: everything else stays server-side.
type ServiceSummary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Price     float64            `bson:"price" json:"price"`
	Img       string             `bson:"img" json:"img"`
	ServiceID string             `bson:"service_id" json:"service_id"`
}
