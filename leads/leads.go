package leads

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

// Normalize coerces the free-form fields a submit carries: the follow-up
// date is stored as RFC3339 UTC whatever shape the form sent, and the
// interest status lands on a named variant. Unparseable dates are left
// as submitted; the reminder scanner skips them.
func Normalize(lead *models.Lead) {
	if t, ok := utils.ParseTimestamp(lead.FollowUpDate); ok {
		lead.FollowUpDate = t.Format(time.RFC3339)
	}
	if t, ok := utils.ParseTimestamp(lead.MeetingDate); ok {
		lead.MeetingDate = t.Format(time.RFC3339)
	}
	lead.Status = models.ParseInterestStatus(string(lead.Status))
	if lead.FollowUpStatus == "" {
		lead.FollowUpStatus = "Pending"
	}
}

// Validate checks the fields the lead form requires.
func Validate(lead models.Lead) map[string]string {
	errs := map[string]string{}
	if lead.Name == "" {
		errs["name"] = "Name is required"
	}
	if lead.Phone == "" {
		errs["phone"] = "Phone is required"
	}
	if lead.Enquiry == "" || lead.Enquiry == "Select Enquiry" {
		errs["enquiry"] = "Enquiry type is required"
	}
	return errs
}

// Filter keeps leads matching the query on any searchable field.
func Filter(leads []models.Lead, q string) []models.Lead {
	if q == "" {
		return leads
	}
	filtered := []models.Lead{}
	for _, l := range leads {
		if utils.ContainsIgnoreCase(l.Name, q) ||
			utils.ContainsIgnoreCase(l.Email, q) ||
			utils.ContainsIgnoreCase(l.Phone, q) ||
			utils.ContainsIgnoreCase(l.Enquiry, q) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// GET /lead/all
func GetLeads(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	leads, err := utils.FindAndDecode[models.Lead](ctx, db.LeadCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching leads")
		return
	}

	leads = Filter(leads, r.URL.Query().Get("q"))
	utils.JSON(w, http.StatusOK, leads)
}

// GET /lead/mono/:id
func GetLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var lead models.Lead
	err := db.LeadCollection.FindOne(ctx, bson.M{"leadid": ps.ByName("id")}).Decode(&lead)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Lead not found")
		return
	}
	utils.JSON(w, http.StatusOK, lead)
}

// POST /lead/add
func CreateLead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(lead); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	Normalize(&lead)
	lead.LeadID = utils.GenerateRandomString(13)
	lead.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.LeadCollection.InsertOne(ctx, lead); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting lead")
		return
	}

	mq.Emit(r.Context(), "lead-created", models.Index{EntityType: "lead", Method: "POST", EntityId: lead.LeadID})
	utils.SendResponse(w, http.StatusCreated, lead, "Lead added successfully", nil)
}

// PUT /lead/update/:id
func UpdateLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	leadID := ps.ByName("id")

	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(lead); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	Normalize(&lead)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":             lead.Name,
		"email":            lead.Email,
		"phone":            lead.Phone,
		"address":          lead.Address,
		"enquiry":          lead.Enquiry,
		"follow_up_date":   lead.FollowUpDate,
		"follow_up_status": lead.FollowUpStatus,
		"meeting_date":     lead.MeetingDate,
		"status":           lead.Status,
		"call_date":        lead.CallDate,
		"notes":            lead.Notes,
	}}
	if len(lead.Subscription) > 0 {
		update["$set"].(bson.M)["subscription"] = lead.Subscription
	}

	res, err := db.LeadCollection.UpdateOne(ctx, bson.M{"leadid": leadID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating lead")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Lead not found")
		return
	}

	mq.Emit(r.Context(), "lead-updated", models.Index{EntityType: "lead", Method: "PUT", EntityId: leadID})
	utils.SendResponse(w, http.StatusOK, nil, "Lead updated successfully", nil)
}

// DELETE /lead/delete/:id
func DeleteLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	leadID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.LeadCollection.DeleteOne(ctx, bson.M{"leadid": leadID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting lead")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Lead not found")
		return
	}

	mq.Emit(r.Context(), "lead-deleted", models.Index{EntityType: "lead", Method: "DELETE", EntityId: leadID})
	utils.SendResponse(w, http.StatusOK, nil, "Lead deleted successfully", nil)
}
