package dashboard

import (
	"context"
	"net/http"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MonthlyRevenue is one bar of the revenue chart.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Stats is the dashboard landing-page payload.
type Stats struct {
	Customers          int64            `json:"customers"`
	Leads              int64            `json:"leads"`
	Cars               int64            `json:"cars"`
	Invoices           int64            `json:"invoices"`
	Itineraries        int64            `json:"itineraries"`
	Hotels             int64            `json:"hotels"`
	Destinations       int64            `json:"destinations"`
	LeadsInterested    int64            `json:"leadsInterested"`
	LeadsNotInterested int64            `json:"leadsNotInterested"`
	LeadsUndecided     int64            `json:"leadsUndecided"`
	RevenueByMonth     []MonthlyRevenue `json:"revenueByMonth"`
	UpcomingReminders  int64            `json:"upcomingReminders"`
}

// GET /dashboard/stats
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	stats := Stats{RevenueByMonth: []MonthlyRevenue{}}

	counts := []struct {
		coll   *mongo.Collection
		filter bson.M
		dest   *int64
	}{
		{db.CustomerCollection, bson.M{}, &stats.Customers},
		{db.LeadCollection, bson.M{}, &stats.Leads},
		{db.CarCollection, bson.M{}, &stats.Cars},
		{db.InvoiceCollection, bson.M{}, &stats.Invoices},
		{db.ItineraryCollection, bson.M{"deleted": bson.M{"$ne": true}}, &stats.Itineraries},
		{db.HotelCollection, bson.M{}, &stats.Hotels},
		{db.DestinationCollection, bson.M{}, &stats.Destinations},
		{db.LeadCollection, bson.M{"status": models.Interested}, &stats.LeadsInterested},
		{db.LeadCollection, bson.M{"status": models.NotInterested}, &stats.LeadsNotInterested},
		{db.LeadCollection, bson.M{"status": bson.M{"$nin": []models.InterestStatus{models.Interested, models.NotInterested}}}, &stats.LeadsUndecided},
		{db.NotificationCollection, bson.M{"due_at": bson.M{"$gte": time.Now().UTC()}}, &stats.UpcomingReminders},
	}
	for _, c := range counts {
		n, err := c.coll.CountDocuments(ctx, c.filter)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error computing stats")
			return
		}
		*c.dest = n
	}

	revenue, err := revenueByMonth(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error computing revenue")
		return
	}
	stats.RevenueByMonth = revenue

	utils.JSON(w, http.StatusOK, stats)
}

// revenueByMonth sums invoice totals per calendar month over the last
// twelve months, oldest first.
func revenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	since := time.Now().UTC().AddDate(-1, 0, 0)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"},
			},
			"revenue": bson.M{"$sum": "$amount_details.total_amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := db.InvoiceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Month   string  `bson:"_id"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := []MonthlyRevenue{}
	for _, row := range rows {
		out = append(out, MonthlyRevenue{Month: row.Month, Revenue: row.Revenue})
	}
	return out, nil
}
