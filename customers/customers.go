package customers

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

const listCacheKey = "list:customer"

// Validate checks required customer fields and returns a per-field error
// map; an empty map means the record is submittable.
func Validate(c models.Customer) map[string]string {
	errs := map[string]string{}
	if c.Name == "" {
		errs["name"] = "Name is required"
	}
	if c.Phone == "" {
		errs["phone"] = "Phone is required"
	}
	return errs
}

// Filter keeps customers matching the query on any searchable field.
func Filter(customers []models.Customer, q string) []models.Customer {
	if q == "" {
		return customers
	}
	filtered := []models.Customer{}
	for _, c := range customers {
		if utils.ContainsIgnoreCase(c.Name, q) ||
			utils.ContainsIgnoreCase(c.Email, q) ||
			utils.ContainsIgnoreCase(c.Phone, q) ||
			utils.ContainsIgnoreCase(c.Address, q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GET /customer/all
func GetCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query().Get("q")

	// Cache only the unfiltered list
	if q == "" {
		if cached, _ := rdx.RdxGet(listCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	customers, err := utils.FindAndDecode[models.Customer](ctx, db.CustomerCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching customers")
		return
	}

	customers = Filter(customers, q)

	if q == "" {
		if data, err := json.Marshal(utils.M{"data": customers}); err == nil {
			rdx.SetWithExpiry(listCacheKey, string(data), 5*time.Minute)
		}
	}
	utils.JSON(w, http.StatusOK, customers)
}

// GET /customer/mono/:id
func GetCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var c models.Customer
	err := db.CustomerCollection.FindOne(ctx, bson.M{"customerid": ps.ByName("id")}).Decode(&c)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// POST /customer/add
func CreateCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(c); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	c.CustomerID = utils.GenerateRandomString(13)
	c.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CustomerCollection.InsertOne(ctx, c); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting customer")
		return
	}

	mq.Emit(r.Context(), "customer-created", models.Index{EntityType: "customer", Method: "POST", EntityId: c.CustomerID})
	utils.SendResponse(w, http.StatusCreated, c, "Customer added successfully", nil)
}

// PUT /customer/update/:id
func UpdateCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := ps.ByName("id")

	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(c); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"address": c.Address,
	}}

	res, err := db.CustomerCollection.UpdateOne(ctx, bson.M{"customerid": customerID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating customer")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}

	mq.Emit(r.Context(), "customer-updated", models.Index{EntityType: "customer", Method: "PUT", EntityId: customerID})
	utils.SendResponse(w, http.StatusOK, nil, "Customer updated successfully", nil)
}

// DELETE /customer/delete/:id
func DeleteCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CustomerCollection.DeleteOne(ctx, bson.M{"customerid": customerID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting customer")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}

	mq.Emit(r.Context(), "customer-deleted", models.Index{EntityType: "customer", Method: "DELETE", EntityId: customerID})
	utils.SendResponse(w, http.StatusOK, nil, "Customer deleted successfully", nil)
}
