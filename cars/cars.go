package cars

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

// Normalize rewrites the three expiry fields to RFC3339 UTC. Fields that
// fail to parse are left as submitted.
func Normalize(car *models.Car) {
	for _, field := range []*string{&car.Insurance, &car.Pollution, &car.ServiceReminder} {
		if t, ok := utils.ParseTimestamp(*field); ok {
			*field = t.Format(time.RFC3339)
		}
	}
}

// Validate checks the fields the car form requires: every reminder date
// must be present, otherwise the scanner has nothing to watch.
func Validate(car models.Car) map[string]string {
	errs := map[string]string{}
	if car.CarNumber == "" {
		errs["carNumber"] = "Car number is required"
	}
	if car.Insurance == "" {
		errs["insurance"] = "Insurance expiry is required"
	}
	if car.Pollution == "" {
		errs["pollution"] = "Pollution expiry is required"
	}
	if car.ServiceReminder == "" {
		errs["serviceReminder"] = "Service reminder is required"
	}
	return errs
}

// Filter keeps cars whose plate number matches the query.
func Filter(cars []models.Car, q string) []models.Car {
	if q == "" {
		return cars
	}
	filtered := []models.Car{}
	for _, c := range cars {
		if utils.ContainsIgnoreCase(c.CarNumber, q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GET /car/all
func GetCars(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cars, err := utils.FindAndDecode[models.Car](ctx, db.CarCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching cars")
		return
	}

	cars = Filter(cars, r.URL.Query().Get("q"))
	utils.JSON(w, http.StatusOK, cars)
}

// GET /car/mono/:id
func GetCar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var car models.Car
	err := db.CarCollection.FindOne(ctx, bson.M{"carid": ps.ByName("id")}).Decode(&car)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Car not found")
		return
	}
	utils.JSON(w, http.StatusOK, car)
}

// POST /car/add
func CreateCar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(car); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	Normalize(&car)
	car.CarID = utils.GenerateRandomString(13)
	car.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CarCollection.InsertOne(ctx, car); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting car")
		return
	}

	mq.Emit(r.Context(), "car-created", models.Index{EntityType: "car", Method: "POST", EntityId: car.CarID})
	utils.SendResponse(w, http.StatusCreated, car, "Car added successfully", nil)
}

// PUT /car/update/:id
func UpdateCar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	carID := ps.ByName("id")

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(car); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	Normalize(&car)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"car_number":       car.CarNumber,
		"insurance":        car.Insurance,
		"pollution":        car.Pollution,
		"service_reminder": car.ServiceReminder,
	}}

	res, err := db.CarCollection.UpdateOne(ctx, bson.M{"carid": carID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating car")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Car not found")
		return
	}

	mq.Emit(r.Context(), "car-updated", models.Index{EntityType: "car", Method: "PUT", EntityId: carID})
	utils.SendResponse(w, http.StatusOK, nil, "Car updated successfully", nil)
}

// DELETE /car/delete/:id
func DeleteCar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	carID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CarCollection.DeleteOne(ctx, bson.M{"carid": carID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting car")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Car not found")
		return
	}

	mq.Emit(r.Context(), "car-deleted", models.Index{EntityType: "car", Method: "DELETE", EntityId: carID})
	utils.SendResponse(w, http.StatusOK, nil, "Car deleted successfully", nil)
}
