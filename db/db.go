package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	CustomerCollection     *mongo.Collection
	LeadCollection         *mongo.Collection
	CarCollection          *mongo.Collection
	InvoiceCollection      *mongo.Collection
	ItineraryCollection    *mongo.Collection
	HotelCollection        *mongo.Collection
	DestinationCollection  *mongo.Collection
	GalleryCollection      *mongo.Collection
	PushTokenCollection    *mongo.Collection
	SubscriptionCollection *mongo.Collection
	NotificationCollection *mongo.Collection
	CounterCollection      *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "tripdesk"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	UserCollection = database.Collection("users")
	CustomerCollection = database.Collection("customers")
	LeadCollection = database.Collection("leads")
	CarCollection = database.Collection("cars")
	InvoiceCollection = database.Collection("invoices")
	ItineraryCollection = database.Collection("itineraries")
	HotelCollection = database.Collection("hotels")
	DestinationCollection = database.Collection("destinations")
	GalleryCollection = database.Collection("gallery")
	PushTokenCollection = database.Collection("pushtokens")
	SubscriptionCollection = database.Collection("subscriptions")
	NotificationCollection = database.Collection("notifications")
	CounterCollection = database.Collection("counters")
}
