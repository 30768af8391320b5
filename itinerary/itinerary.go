package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/mq"
	"tripdesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EditView is the mono response: the stored record plus the multi-select
// selections resolved against the current option lists, ready for editing.
type EditView struct {
	models.Itinerary
	HotelOptions       []models.Option `json:"hotelSelectedOptions"`
	DestinationOptions []models.Option `json:"destinationOptions"`
	ActiveDay          int             `json:"activeDay"`
}

// activeByID matches a single itinerary that has not been soft-deleted.
// Every single-record lookup goes through this so a deleted itinerary
// cannot be read, updated, or deleted again.
func activeByID(itineraryID string) bson.M {
	return bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}
}

// ValidateItinerary checks the fields the form cannot submit without.
func ValidateItinerary(it models.Itinerary) map[string]string {
	errs := map[string]string{}
	if it.Title == "" {
		errs["title"] = "Tour title is required"
	}
	if it.Days < 1 {
		errs["days"] = "Number of days is required"
	}
	if it.PickLoc == "" {
		errs["pickLoc"] = "Pickup location is required"
	}
	if it.DropLoc == "" {
		errs["dropLoc"] = "Drop location is required"
	}
	return errs
}

// POST /Iternary/add
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := ValidateItinerary(it); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	it.ItineraryID = utils.GenerateRandomString(13)
	it.UserID = utils.GetUserIDFromRequest(r)
	it.DynamicFields = Flatten(it.DynamicFields)
	if it.CostInclude == nil {
		it.CostInclude = []string{}
	}
	if it.CostExclude == nil {
		it.CostExclude = []string{}
	}
	it.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-created", models.Index{EntityType: "itinerary", Method: "POST", EntityId: it.ItineraryID})
	utils.SendResponse(w, http.StatusCreated, it, "Itinerary added successfully", nil)
}

// GET /Iternary/all
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filtered := []models.Itinerary{}
		for _, it := range itineraries {
			if utils.ContainsIgnoreCase(it.Title, q) ||
				utils.ContainsIgnoreCase(it.Package, q) ||
				utils.ContainsIgnoreCase(it.PickLoc, q) ||
				utils.ContainsIgnoreCase(it.DropLoc, q) {
				filtered = append(filtered, it)
			}
		}
		itineraries = filtered
	}

	utils.JSON(w, http.StatusOK, itineraries)
}

// GET /Iternary/mono/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, activeByID(itineraryID)).Decode(&it)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	hotelOptions, err := HotelOptions(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching hotel options")
		return
	}
	destOptions, err := DestinationOptions(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching destination options")
		return
	}

	plan := FromRecord(it)
	it.DynamicFields = plan.Sections

	view := EditView{
		Itinerary:          it,
		HotelOptions:       ResolveSelections(it.HotelSelected, hotelOptions),
		DestinationOptions: ResolveSelections(it.Destinations, destOptions),
		ActiveDay:          plan.ActiveDay,
	}

	utils.JSON(w, http.StatusOK, view)
}

// PUT /Iternary/update/:id
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, activeByID(itineraryID)).Decode(&existing)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	var updated models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := ValidateItinerary(updated); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	update := bson.M{"$set": bson.M{
		"title":          updated.Title,
		"days":           updated.Days,
		"date":           updated.Date,
		"pick_loc":       updated.PickLoc,
		"drop_loc":       updated.DropLoc,
		"pick_time":      updated.PickTime,
		"drop_time":      updated.DropTime,
		"vehicle":        updated.Vehicle,
		"package":        updated.Package,
		"cost":           updated.Cost,
		"person_no":      updated.PersonNo,
		"hotel_type":     updated.HotelType,
		"advance":        updated.Advance,
		"dynamic_fields": Flatten(updated.DynamicFields),
		"cost_include":   updated.CostInclude,
		"cost_exclude":   updated.CostExclude,
		"hotel_selected": updated.HotelSelected,
		"destinations":   updated.Destinations,
	}}

	if _, err := db.ItineraryCollection.UpdateOne(ctx, activeByID(itineraryID), update); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-updated", models.Index{EntityType: "itinerary", Method: "PUT", EntityId: itineraryID})
	utils.SendResponse(w, http.StatusOK, nil, "Itinerary updated successfully", nil)
}

// DELETE /Iternary/delete/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, activeByID(itineraryID)).Decode(&it)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, activeByID(itineraryID), update); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-deleted", models.Index{EntityType: "itinerary", Method: "DELETE", EntityId: itineraryID})
	utils.SendResponse(w, http.StatusOK, nil, "Itinerary deleted successfully", nil)
}

// HotelOptions loads the hotel collection as multi-select options.
func HotelOptions(ctx context.Context) ([]models.Option, error) {
	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelCollection, bson.M{})
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(hotels))
	for _, h := range hotels {
		opts = append(opts, models.Option{ID: h.HotelID, Label: h.Name, Value: h.HotelID})
	}
	return opts, nil
}

// DestinationOptions loads the destination collection as multi-select options.
func DestinationOptions(ctx context.Context) ([]models.Option, error) {
	dests, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationCollection, bson.M{})
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(dests))
	for _, d := range dests {
		opts = append(opts, models.Option{ID: d.DestinationID, Label: d.Name, Value: d.DestinationID})
	}
	return opts, nil
}
