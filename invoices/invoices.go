package invoices

import (
	"context"
	"encoding/json"
	"fmt"
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

// Validate checks the header fields and every line item; row errors are
// keyed row_<field>_<index> so the form can render them inline.
func Validate(inv models.Invoice) map[string]string {
	errs := map[string]string{}
	if inv.CustomerName == "" {
		errs["customerName"] = "Customer name is required"
	}
	if inv.InvoiceDate == "" {
		errs["invoiceDate"] = "Invoice date is required"
	}
	if inv.DueDate == "" {
		errs["dueDate"] = "Due date is required"
	}
	if inv.CustomerGST == "" {
		errs["customerGST"] = "Customer GST is required"
	}
	if inv.CustomerAddress == "" {
		errs["customerAddress"] = "Customer address is required"
	}
	if inv.CustomerPhone == "" {
		errs["customerPhone"] = "Customer phone is required"
	}
	if inv.CustomerEmail == "" {
		errs["customerEmail"] = "Customer email is required"
	}
	if inv.CustomerAadhar == "" {
		errs["customerAadhar"] = "Customer Aadhar is required"
	}
	if inv.DispatchThrough == "" {
		errs["dispatchThrough"] = "Dispatch through is required"
	}
	if len(inv.ProductDetails) == 0 {
		errs["productDetails"] = "At least one line item is required"
	}
	for i, row := range inv.ProductDetails {
		if row.Description == "" {
			errs[fmt.Sprintf("row_description_%d", i)] = "Description is required"
		}
		if row.Unit == "" {
			errs[fmt.Sprintf("row_unit_%d", i)] = "Unit is required"
		}
		if row.Quantity <= 0 {
			errs[fmt.Sprintf("row_quantity_%d", i)] = "Quantity is required"
		}
		if row.Price < 0 {
			errs[fmt.Sprintf("row_price_%d", i)] = "Price is required"
		}
		if row.DiscountPercentage < 0 || row.DiscountPercentage > 100 {
			errs[fmt.Sprintf("row_discount_%d", i)] = "Discount must be between 0 and 100"
		}
	}
	return errs
}

// Filter keeps invoices matching the query on customer fields.
func Filter(invoices []models.Invoice, q string) []models.Invoice {
	if q == "" {
		return invoices
	}
	filtered := []models.Invoice{}
	for _, inv := range invoices {
		if utils.ContainsIgnoreCase(inv.CustomerName, q) ||
			utils.ContainsIgnoreCase(inv.CustomerPhone, q) ||
			utils.ContainsIgnoreCase(inv.CustomerEmail, q) ||
			utils.ContainsIgnoreCase(fmt.Sprintf("%d", inv.InvoiceNumber), q) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// nextInvoiceNumber increments and returns the invoice counter.
func nextInvoiceNumber(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := db.CounterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "invoice"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// GET /invoices/next-invoice-number
func NextInvoiceNumber(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Peek without incrementing; the number is claimed on create.
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := db.CounterCollection.FindOne(ctx, bson.M{"_id": "invoice"}).Decode(&counter)
	if err != nil {
		counter.Seq = 0
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"nextInvoiceNumber": counter.Seq + 1})
}

// GET /invoices/all
func GetInvoices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	invoices, err := utils.FindAndDecode[models.Invoice](ctx, db.InvoiceCollection, bson.M{}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching invoices")
		return
	}

	invoices = Filter(invoices, r.URL.Query().Get("q"))
	utils.JSON(w, http.StatusOK, invoices)
}

// GET /invoices/mono/:id
func GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var inv models.Invoice
	err := db.InvoiceCollection.FindOne(ctx, bson.M{"invoiceid": ps.ByName("id")}).Decode(&inv)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

// POST /invoices/create
func CreateInvoice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inv models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := Validate(inv); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	number, err := nextInvoiceNumber(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error allocating invoice number")
		return
	}

	Recalculate(&inv)
	inv.InvoiceID = utils.GenerateRandomString(13)
	inv.InvoiceNumber = number
	inv.CreatedAt = time.Now().UTC()

	if _, err := db.InvoiceCollection.InsertOne(ctx, inv); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting invoice")
		return
	}

	mq.Emit(r.Context(), "invoice-created", models.Index{EntityType: "invoice", Method: "POST", EntityId: inv.InvoiceID})
	utils.SendResponse(w, http.StatusCreated, inv, "Invoice created successfully", nil)
}

// PUT /invoices/update/:id
func UpdateInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	invoiceID := ps.ByName("id")

	var inv models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := Validate(inv); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	Recalculate(&inv)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"invoice_date":     inv.InvoiceDate,
		"due_date":         inv.DueDate,
		"customer_name":    inv.CustomerName,
		"customer_gst":     inv.CustomerGST,
		"customer_address": inv.CustomerAddress,
		"customer_phone":   inv.CustomerPhone,
		"customer_email":   inv.CustomerEmail,
		"customer_aadhar":  inv.CustomerAadhar,
		"dispatch_through": inv.DispatchThrough,
		"product_details":  inv.ProductDetails,
		"amount_details":   inv.AmountDetails,
	}}

	res, err := db.InvoiceCollection.UpdateOne(ctx, bson.M{"invoiceid": invoiceID}, update)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating invoice")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	mq.Emit(r.Context(), "invoice-updated", models.Index{EntityType: "invoice", Method: "PUT", EntityId: invoiceID})
	utils.SendResponse(w, http.StatusOK, nil, "Invoice updated successfully", nil)
}

// DELETE /invoices/delete/:id
func DeleteInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	invoiceID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.InvoiceCollection.DeleteOne(ctx, bson.M{"invoiceid": invoiceID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting invoice")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	mq.Emit(r.Context(), "invoice-deleted", models.Index{EntityType: "invoice", Method: "DELETE", EntityId: invoiceID})
	utils.SendResponse(w, http.StatusOK, nil, "Invoice deleted successfully", nil)
}
