package models

import (
	"encoding/json"
	"time"
)

// PushToken is a cloud-messaging token registered by a signed-in browser.
type PushToken struct {
	Token     string    `json:"token" bson:"token"`
	UserID    string    `json:"userid" bson:"userid"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// PushSubscription stores the browser push-subscription object as-is; the
// server never looks inside it.
type PushSubscription struct {
	SubID     string          `json:"subid" bson:"subid"`
	UserID    string          `json:"userid" bson:"userid"`
	Payload   json.RawMessage `json:"subscription" bson:"subscription"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
}

// Reminder is one due alert surfaced to dashboard clients: a car document
// about to expire or a lead follow-up coming due.
type Reminder struct {
	ReminderID string    `json:"reminderid" bson:"reminderid"`
	Kind       string    `json:"kind" bson:"kind"` // insurance, pollution, service, followup
	EntityID   string    `json:"entityid" bson:"entityid"`
	Title      string    `json:"title" bson:"title"`
	Body       string    `json:"body" bson:"body"`
	DueAt      time.Time `json:"dueAt" bson:"due_at"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}

// Index represents an entity-change event published to Redis.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}
