package models

import "time"

type LineItem struct {
	Description        string  `json:"description" bson:"description"`
	Unit               string  `json:"unit" bson:"unit"`
	Quantity           float64 `json:"quantity" bson:"quantity"`
	Price              float64 `json:"price" bson:"price"`
	DiscountPercentage float64 `json:"discountPercentage" bson:"discount_percentage"`
	Amount             float64 `json:"amount" bson:"amount"`
}

type AmountDetails struct {
	GSTPercentage   float64 `json:"gstPercentage" bson:"gst_percentage"`
	DiscountOnTotal float64 `json:"discountOnTotal" bson:"discount_on_total"`
	TotalAmount     float64 `json:"totalAmount" bson:"total_amount"`
}

type Invoice struct {
	InvoiceID       string        `json:"invoiceid" bson:"invoiceid"`
	InvoiceNumber   int           `json:"invoiceNumber" bson:"invoice_number"`
	InvoiceDate     string        `json:"invoiceDate" bson:"invoice_date"`
	DueDate         string        `json:"dueDate" bson:"due_date"`
	CustomerName    string        `json:"customerName" bson:"customer_name"`
	CustomerGST     string        `json:"customerGST" bson:"customer_gst"`
	CustomerAddress string        `json:"customerAddress" bson:"customer_address"`
	CustomerPhone   string        `json:"customerPhone" bson:"customer_phone"`
	CustomerEmail   string        `json:"customerEmail" bson:"customer_email"`
	CustomerAadhar  string        `json:"customerAadhar" bson:"customer_aadhar"`
	DispatchThrough string        `json:"dispatchThrough" bson:"dispatch_through"`
	ProductDetails  []LineItem    `json:"productDetails" bson:"product_details"`
	AmountDetails   AmountDetails `json:"amountDetails" bson:"amount_details"`
	CreatedAt       time.Time     `json:"createdAt" bson:"created_at"`
}
