package destinations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/mq"
	"tripdesk/rdx"
	"tripdesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Validate(d models.Destination) map[string]string {
	errs := map[string]string{}
	if d.Name == "" {
		errs["name"] = "Destination name is required"
	}
	return errs
}

func Options(dests []models.Destination) []models.Option {
	opts := []models.Option{}
	for _, d := range dests {
		opts = append(opts, models.Option{ID: d.DestinationID, Label: d.Name, Value: d.DestinationID})
	}
	return opts
}

// GET /destinations/all
func GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query().Get("q")

	if q == "" {
		if cached, err := rdx.RdxGet("list:destination"); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(cached))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	dests, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching destinations")
		return
	}

	if q != "" {
		filtered := []models.Destination{}
		for _, d := range dests {
			if utils.ContainsIgnoreCase(d.Name, q) || utils.ContainsIgnoreCase(d.Region, q) {
				filtered = append(filtered, d)
			}
		}
		dests = filtered
	} else if payload, err := json.Marshal(utils.M{"data": dests}); err == nil {
		rdx.SetWithExpiry("list:destination", string(payload), 5*time.Minute)
	}

	utils.JSON(w, http.StatusOK, dests)
}

// GET /destinations/options
func GetDestinationOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dests, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationCollection, bson.M{})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching destinations")
		return
	}

	utils.JSON(w, http.StatusOK, Options(dests))
}

// GET /destinations/mono/:id
func GetDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var dest models.Destination
	err := db.DestinationCollection.FindOne(ctx, bson.M{"destinationid": ps.ByName("id")}).Decode(&dest)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Destination not found")
		return
	}
	utils.JSON(w, http.StatusOK, dest)
}

// POST /destinations/add
func CreateDestination(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var dest models.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(dest); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	dest.DestinationID = utils.GenerateRandomString(13)
	dest.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.DestinationCollection.InsertOne(ctx, dest); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting destination")
		return
	}

	mq.Emit(r.Context(), "destination-created", models.Index{EntityType: "destination", Method: "POST", EntityId: dest.DestinationID})
	utils.SendResponse(w, http.StatusCreated, dest, "Destination created successfully", nil)
}

// PUT /destinations/update/:id
func UpdateDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destinationID := ps.ByName("id")

	var dest models.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(dest); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":   dest.Name,
		"region": dest.Region,
	}}

	res, err := db.DestinationCollection.UpdateOne(ctx, bson.M{"destinationid": destinationID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating destination")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Destination not found")
		return
	}

	mq.Emit(r.Context(), "destination-updated", models.Index{EntityType: "destination", Method: "PUT", EntityId: destinationID})
	utils.SendResponse(w, http.StatusOK, nil, "Destination updated successfully", nil)
}

// DELETE /destinations/delete/:id
func DeleteDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destinationID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.DestinationCollection.DeleteOne(ctx, bson.M{"destinationid": destinationID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting destination")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Destination not found")
		return
	}

	mq.Emit(r.Context(), "destination-deleted", models.Index{EntityType: "destination", Method: "DELETE", EntityId: destinationID})
	utils.SendResponse(w, http.StatusOK, nil, "Destination deleted successfully", nil)
}
