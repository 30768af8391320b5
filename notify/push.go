package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /push/register
// Upserts a cloud-messaging token for the signed-in user. Registering the
// same token twice just refreshes its timestamp.
func RegisterToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		utils.Error(w, http.StatusBadRequest, "Token is required")
		return
	}

	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"token":      body.Token,
		"userid":     userID,
		"created_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := db.PushTokenCollection.UpdateOne(ctx, bson.M{"token": body.Token}, update, opts); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error saving token")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Token registered successfully", nil)
}

// POST /push/subscribe
// Stores a browser push-subscription object verbatim.
func Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) == 0 {
		utils.Error(w, http.StatusBadRequest, "Subscription payload is required")
		return
	}

	sub := models.PushSubscription{
		SubID:     utils.GetUUID(),
		UserID:    utils.GetUserIDFromRequest(r),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SubscriptionCollection.InsertOne(ctx, sub); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error saving subscription")
		return
	}

	utils.SendResponse(w, http.StatusCreated, sub, "Subscribed successfully", nil)
}

// GET /push/reminders
// Recent reminders for the bell dropdown.
func GetReminders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(50)
	reminders, err := utils.FindAndDecode[models.Reminder](ctx, db.NotificationCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching reminders")
		return
	}

	utils.JSON(w, http.StatusOK, reminders)
}
