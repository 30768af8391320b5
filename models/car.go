package models

import "time"

type Car struct {
	CarID     string `json:"carid" bson:"carid"`
	CarNumber string `json:"carNumber" bson:"car_number"`
	// Expiry timestamps, RFC3339 UTC.
	Insurance       string    `json:"insurance" bson:"insurance"`
	Pollution       string    `json:"pollution" bson:"pollution"`
	ServiceReminder string    `json:"serviceReminder" bson:"service_reminder"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
}
