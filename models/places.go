package models

import "time"

type Hotel struct {
	HotelID   string    `json:"_id" bson:"hotelid"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address" bson:"address"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type Destination struct {
	DestinationID string    `json:"_id" bson:"destinationid"`
	Name          string    `json:"name" bson:"name"`
	Region        string    `json:"region" bson:"region"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
}

// Option is the {id,label,value} shape multi-selects consume.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// GalleryImage ties an uploaded image to its owning hotel or destination.
type GalleryImage struct {
	ImageID   string    `json:"imageid" bson:"imageid"`
	OwnerType string    `json:"ownerType" bson:"owner_type"` // "hotel" or "destination"
	OwnerID   string    `json:"ownerId" bson:"owner_id"`
	Path      string    `json:"path" bson:"path"`
	Thumb     string    `json:"thumb" bson:"thumb"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
