package models

import "time"

type Customer struct {
	CustomerID string    `json:"customerid" bson:"customerid"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	Address    string    `json:"address" bson:"address"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}
