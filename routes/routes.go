package routes

import (
	"net/http"

	"tripdesk/auth"
	"tripdesk/cars"
	"tripdesk/customers"
	"tripdesk/dashboard"
	"tripdesk/destinations"
	"tripdesk/gallery"
	"tripdesk/hotels"
	"tripdesk/invoices"
	"tripdesk/itinerary"
	"tripdesk/leads"
	"tripdesk/middleware"
	"tripdesk/notify"
	"tripdesk/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/gallerypic/*filepath", http.Dir("static/gallerypic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/user/register", rl.Limit(auth.Register))
	router.POST("/user/login", rl.Limit(auth.Login))
	router.POST("/user/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/user/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCustomerRoutes(router *httprouter.Router) {
	router.GET("/customer/all", middleware.Authenticate(customers.GetCustomers))
	router.GET("/customer/mono/:id", middleware.Authenticate(customers.GetCustomer))
	router.POST("/customer/add", middleware.Authenticate(customers.CreateCustomer))
	router.PUT("/customer/update/:id", middleware.Authenticate(customers.UpdateCustomer))
	router.DELETE("/customer/delete/:id", middleware.Authenticate(customers.DeleteCustomer))
}

func AddLeadRoutes(router *httprouter.Router) {
	router.GET("/lead/all", middleware.Authenticate(leads.GetLeads))
	router.GET("/lead/mono/:id", middleware.Authenticate(leads.GetLead))
	router.POST("/lead/add", middleware.Authenticate(leads.CreateLead))
	router.PUT("/lead/update/:id", middleware.Authenticate(leads.UpdateLead))
	router.DELETE("/lead/delete/:id", middleware.Authenticate(leads.DeleteLead))
}

func AddCarRoutes(router *httprouter.Router) {
	router.GET("/car/all", middleware.Authenticate(cars.GetCars))
	router.GET("/car/mono/:id", middleware.Authenticate(cars.GetCar))
	router.POST("/car/add", middleware.Authenticate(cars.CreateCar))
	router.PUT("/car/update/:id", middleware.Authenticate(cars.UpdateCar))
	router.DELETE("/car/delete/:id", middleware.Authenticate(cars.DeleteCar))
}

func AddInvoiceRoutes(router *httprouter.Router) {
	router.GET("/invoices/all", middleware.Authenticate(invoices.GetInvoices))
	router.GET("/invoices/mono/:id", middleware.Authenticate(invoices.GetInvoice))
	router.GET("/invoices/next-invoice-number", middleware.Authenticate(invoices.NextInvoiceNumber))
	router.POST("/invoices/create", middleware.Authenticate(invoices.CreateInvoice))
	router.PUT("/invoices/update/:id", middleware.Authenticate(invoices.UpdateInvoice))
	router.DELETE("/invoices/delete/:id", middleware.Authenticate(invoices.DeleteInvoice))
}

// The "Iternary" spelling is load-bearing: every deployed client calls
// these paths.
func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/Iternary/all", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/Iternary/mono/:id", middleware.Authenticate(itinerary.GetItinerary))
	router.POST("/Iternary/add", middleware.Authenticate(itinerary.CreateItinerary))
	router.PUT("/Iternary/update/:id", middleware.Authenticate(itinerary.UpdateItinerary))
	router.DELETE("/Iternary/delete/:id", middleware.Authenticate(itinerary.DeleteItinerary))
	router.GET("/Iternary/print/:id", middleware.Authenticate(itinerary.PrintItinerary))
}

func AddHotelRoutes(router *httprouter.Router) {
	router.GET("/hotels/all", middleware.Authenticate(hotels.GetHotels))
	router.GET("/hotels/options", middleware.Authenticate(hotels.GetHotelOptions))
	router.GET("/hotels/mono/:id", middleware.Authenticate(hotels.GetHotel))
	router.POST("/hotels/add", middleware.Authenticate(hotels.CreateHotel))
	router.PUT("/hotels/update/:id", middleware.Authenticate(hotels.UpdateHotel))
	router.DELETE("/hotels/delete/:id", middleware.Authenticate(hotels.DeleteHotel))

	router.GET("/hotels/gallery/:id", middleware.Authenticate(gallery.ListImages("hotel")))
	router.POST("/hotels/gallery/:id", middleware.Authenticate(gallery.UploadImage("hotel")))
}

func AddDestinationRoutes(router *httprouter.Router) {
	router.GET("/destinations/all", middleware.Authenticate(destinations.GetDestinations))
	router.GET("/destinations/options", middleware.Authenticate(destinations.GetDestinationOptions))
	router.GET("/destinations/mono/:id", middleware.Authenticate(destinations.GetDestination))
	router.POST("/destinations/add", middleware.Authenticate(destinations.CreateDestination))
	router.PUT("/destinations/update/:id", middleware.Authenticate(destinations.UpdateDestination))
	router.DELETE("/destinations/delete/:id", middleware.Authenticate(destinations.DeleteDestination))

	router.GET("/destinations/gallery/:id", middleware.Authenticate(gallery.ListImages("destination")))
	router.POST("/destinations/gallery/:id", middleware.Authenticate(gallery.UploadImage("destination")))

	router.DELETE("/gallery/delete/:id", middleware.Authenticate(gallery.DeleteImage))
}

func AddPushRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.POST("/push/register", middleware.Authenticate(notify.RegisterToken))
	router.POST("/push/subscribe", middleware.Authenticate(notify.Subscribe))
	router.GET("/push/reminders", middleware.Authenticate(notify.GetReminders))
	router.GET("/ws/notifications", middleware.Authenticate(notify.WebSocketHandler(hub)))
}

func AddDashboardRoutes(router *httprouter.Router) {
	router.GET("/dashboard/stats", middleware.Authenticate(dashboard.GetStats))
}
