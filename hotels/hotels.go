package hotels

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

func Validate(h models.Hotel) map[string]string {
	errs := map[string]string{}
	if h.Name == "" {
		errs["name"] = "Hotel name is required"
	}
	if h.Address == "" {
		errs["address"] = "Address is required"
	}
	return errs
}

// Options projects hotels into the id/label/value shape the itinerary
// select boxes consume.
func Options(hotels []models.Hotel) []models.Option {
	opts := []models.Option{}
	for _, h := range hotels {
		opts = append(opts, models.Option{ID: h.HotelID, Label: h.Name, Value: h.HotelID})
	}
	return opts
}

// GET /hotels/all
func GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query().Get("q")

	if q == "" {
		if cached, err := rdx.RdxGet("list:hotel"); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(cached))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching hotels")
		return
	}

	if q != "" {
		filtered := []models.Hotel{}
		for _, h := range hotels {
			if utils.ContainsIgnoreCase(h.Name, q) || utils.ContainsIgnoreCase(h.Address, q) {
				filtered = append(filtered, h)
			}
		}
		hotels = filtered
	} else if payload, err := json.Marshal(utils.M{"data": hotels}); err == nil {
		rdx.SetWithExpiry("list:hotel", string(payload), 5*time.Minute)
	}

	utils.JSON(w, http.StatusOK, hotels)
}

// GET /hotels/options
func GetHotelOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelCollection, bson.M{})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching hotels")
		return
	}

	utils.JSON(w, http.StatusOK, Options(hotels))
}

// GET /hotels/mono/:id
func GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var hotel models.Hotel
	err := db.HotelCollection.FindOne(ctx, bson.M{"hotelid": ps.ByName("id")}).Decode(&hotel)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Hotel not found")
		return
	}
	utils.JSON(w, http.StatusOK, hotel)
}

// POST /hotels/add
func CreateHotel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var hotel models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(hotel); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	hotel.HotelID = utils.GenerateRandomString(13)
	hotel.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.HotelCollection.InsertOne(ctx, hotel); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting hotel")
		return
	}

	mq.Emit(r.Context(), "hotel-created", models.Index{EntityType: "hotel", Method: "POST", EntityId: hotel.HotelID})
	utils.SendResponse(w, http.StatusCreated, hotel, "Hotel created successfully", nil)
}

// PUT /hotels/update/:id
func UpdateHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotelID := ps.ByName("id")

	var hotel models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(hotel); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":     hotel.Name,
		"address":  hotel.Address,
		"category": hotel.Category,
	}}

	res, err := db.HotelCollection.UpdateOne(ctx, bson.M{"hotelid": hotelID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating hotel")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Hotel not found")
		return
	}

	mq.Emit(r.Context(), "hotel-updated", models.Index{EntityType: "hotel", Method: "PUT", EntityId: hotelID})
	utils.SendResponse(w, http.StatusOK, nil, "Hotel updated successfully", nil)
}

// DELETE /hotels/delete/:id
func DeleteHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotelID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.HotelCollection.DeleteOne(ctx, bson.M{"hotelid": hotelID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting hotel")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Hotel not found")
		return
	}

	mq.Emit(r.Context(), "hotel-deleted", models.Index{EntityType: "hotel", Method: "DELETE", EntityId: hotelID})
	utils.SendResponse(w, http.StatusOK, nil, "Hotel deleted successfully", nil)
}
