package http

import (
	"net/http"

	"hongmove-frontdesk/internal/delivery/http/handler"
	"hongmove-frontdesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	bookingHandler      *handler.BookingHandler
	locationHandler     *handler.LocationHandler
	requestMiddleware   *middleware.RequestMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	locationHandler *handler.LocationHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		bookingHandler:      bookingHandler,
		locationHandler:     locationHandler,
		requestMiddleware:   requestMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// Setup registers every route. Request tagging and CORS wrap the router itself so
// that preflights and unmatched paths get them too.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking form
	api.Handle("/bookings", r.rateLimitMiddleware.Limit(http.HandlerFunc(r.bookingHandler.CreateBooking))).Methods(http.MethodPost)

	// Admin booking management (upstream enforces the admin token)
	api.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.CancelBooking).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{id}/resend-email", r.bookingHandler.ResendBookingEmail).Methods(http.MethodPost)

	// Location catalog
	api.HandleFunc("/locations", r.locationHandler.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations/categories", r.locationHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/locations/lookup", r.locationHandler.LookupLocation).Methods(http.MethodGet)

	return r.requestMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
