package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resort-backend/internal/handlers"
	"resort-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	propertyTypeHandler *handlers.PropertyTypeHandler,
	photoHandler *handlers.PhotoHandler,
	agentHandler *handlers.AgentHandler,
	overrideHandler *handlers.OverrideHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	serviceRequestHandler *handlers.ServiceRequestHandler,
	offerHandler *handlers.OfferHandler,
	notificationHandler *handlers.NotificationHandler,
	razorpayHandler *handlers.RazorpayHandler,
	totpHandler *handlers.TOTPHandler,
	auditHandler *handlers.AuditHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)

	// Public
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/verify-totp", authHandler.VerifyTOTP).Methods("POST")

	// Session
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Staff accounts (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.Handle("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.List))).Methods("GET")
	usersAPI.Handle("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Create))).Methods("POST")
	usersAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Update))).Methods("PUT")
	usersAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Delete))).Methods("DELETE")
	usersAPI.Handle("/{id}/toggle-active", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.ToggleActive))).Methods("POST")

	// Property types and rooms
	propertyAPI := r.PathPrefix("/api/property-types").Subrouter()
	propertyAPI.Use(authMiddleware.Authenticate)
	propertyAPI.HandleFunc("", propertyTypeHandler.List).Methods("GET")
	propertyAPI.Handle("", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(propertyTypeHandler.Create))).Methods("POST")
	propertyAPI.HandleFunc("/{id}", propertyTypeHandler.Get).Methods("GET")
	propertyAPI.Handle("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(propertyTypeHandler.Update))).Methods("PUT")
	propertyAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(propertyTypeHandler.Delete))).Methods("DELETE")
	propertyAPI.HandleFunc("/{id}/rooms", propertyTypeHandler.ListRooms).Methods("GET")
	propertyAPI.HandleFunc("/{id}/photos", photoHandler.List).Methods("GET")

	// Photos
	photosAPI := r.PathPrefix("/api/photos").Subrouter()
	photosAPI.Use(authMiddleware.Authenticate)
	photosAPI.Handle("/upload", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(photoHandler.InitiateUpload))).Methods("POST")
	photosAPI.Handle("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(photoHandler.Delete))).Methods("DELETE")

	// Agents and their notification feed
	agentsAPI := r.PathPrefix("/api/agents").Subrouter()
	agentsAPI.Use(authMiddleware.Authenticate)
	agentsAPI.HandleFunc("", agentHandler.List).Methods("GET")
	agentsAPI.HandleFunc("", agentHandler.Create).Methods("POST")
	agentsAPI.HandleFunc("/{id}", agentHandler.Get).Methods("GET")
	agentsAPI.Handle("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(agentHandler.Update))).Methods("PUT")
	agentsAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(agentHandler.Delete))).Methods("DELETE")
	agentsAPI.Handle("/{id}/approve", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(agentHandler.Approve))).Methods("POST")
	agentsAPI.Handle("/{id}/reject", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(agentHandler.Reject))).Methods("POST")
	agentsAPI.HandleFunc("/{id}/notifications", notificationHandler.ListByAgent).Methods("GET")
	agentsAPI.HandleFunc("/{id}/notifications/unread-count", notificationHandler.UnreadCount).Methods("GET")
	agentsAPI.HandleFunc("/{id}/notifications/read-all", notificationHandler.MarkAllRead).Methods("POST")

	// Commission overrides (admin only)
	overridesAPI := r.PathPrefix("/api/commission-overrides").Subrouter()
	overridesAPI.Use(authMiddleware.Authenticate)
	overridesAPI.Use(authMiddleware.RequireAdmin)
	overridesAPI.HandleFunc("", overrideHandler.List).Methods("GET")
	overridesAPI.HandleFunc("", overrideHandler.Create).Methods("POST")
	overridesAPI.HandleFunc("/{id}", overrideHandler.Update).Methods("PUT")
	overridesAPI.HandleFunc("/{id}", overrideHandler.Delete).Methods("DELETE")
	overridesAPI.HandleFunc("/{id}/toggle-active", overrideHandler.ToggleActive).Methods("POST")

	// Booking requests
	bookingsAPI := r.PathPrefix("/api/bookings").Subrouter()
	bookingsAPI.Use(authMiddleware.Authenticate)
	bookingsAPI.HandleFunc("", bookingHandler.List).Methods("GET")
	bookingsAPI.HandleFunc("", bookingHandler.Create).Methods("POST")
	bookingsAPI.HandleFunc("/summary", bookingHandler.Summary).Methods("GET")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.Get).Methods("GET")
	bookingsAPI.Handle("/{id}/approve", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(bookingHandler.Approve))).Methods("POST")
	bookingsAPI.Handle("/{id}/reject", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(bookingHandler.Reject))).Methods("POST")

	// Payments and receipts
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.List).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.Get).Methods("GET")
	paymentsAPI.HandleFunc("/{id}/settle", paymentHandler.Settle).Methods("POST")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.Receipt).Methods("GET")

	// Payment config (admin only)
	configAPI := r.PathPrefix("/api/payment-config").Subrouter()
	configAPI.Use(authMiddleware.Authenticate)
	configAPI.HandleFunc("", paymentHandler.GetConfig).Methods("GET")
	configAPI.Handle("", authMiddleware.RequireAdmin(http.HandlerFunc(paymentHandler.SaveConfig))).Methods("PUT")

	// Service requests
	serviceAPI := r.PathPrefix("/api/service-requests").Subrouter()
	serviceAPI.Use(authMiddleware.Authenticate)
	serviceAPI.HandleFunc("", serviceRequestHandler.List).Methods("GET")
	serviceAPI.HandleFunc("", serviceRequestHandler.Create).Methods("POST")
	serviceAPI.HandleFunc("/{id}", serviceRequestHandler.Get).Methods("GET")
	serviceAPI.HandleFunc("/{id}/start", serviceRequestHandler.Start).Methods("POST")
	serviceAPI.HandleFunc("/{id}/complete", serviceRequestHandler.Complete).Methods("POST")
	serviceAPI.HandleFunc("/{id}/cancel", serviceRequestHandler.Cancel).Methods("POST")

	// Special offers
	offersAPI := r.PathPrefix("/api/offers").Subrouter()
	offersAPI.Use(authMiddleware.Authenticate)
	offersAPI.HandleFunc("", offerHandler.List).Methods("GET")
	offersAPI.Handle("", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(offerHandler.Create))).Methods("POST")
	offersAPI.Handle("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(offerHandler.Update))).Methods("PUT")
	offersAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(offerHandler.Delete))).Methods("DELETE")
	offersAPI.Handle("/{id}/toggle-active", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(offerHandler.ToggleActive))).Methods("POST")

	// Notifications (mark single read)
	notificationsAPI := r.PathPrefix("/api/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("/{id}/read", notificationHandler.MarkRead).Methods("POST")

	// Online payments
	razorpayAPI := r.PathPrefix("/api/razorpay").Subrouter()
	razorpayAPI.Use(authMiddleware.Authenticate)
	razorpayAPI.HandleFunc("/status", razorpayHandler.Status).Methods("GET")
	razorpayAPI.HandleFunc("/orders", razorpayHandler.CreateOrder).Methods("POST")
	razorpayAPI.HandleFunc("/verify", razorpayHandler.VerifyPayment).Methods("POST")
	razorpayAPI.Handle("/transactions", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(razorpayHandler.ListTransactions))).Methods("GET")

	// 2FA
	totpAPI := r.PathPrefix("/api/totp").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.Enable).Methods("POST")
	totpAPI.HandleFunc("/status", totpHandler.Status).Methods("GET")
	totpAPI.HandleFunc("/disable", totpHandler.Disable).Methods("POST")

	// Audit trails (admin only)
	auditAPI := r.PathPrefix("/api/audit").Subrouter()
	auditAPI.Use(authMiddleware.Authenticate)
	auditAPI.Use(authMiddleware.RequireAdmin)
	auditAPI.HandleFunc("/actions", auditHandler.ListActions).Methods("GET")
	auditAPI.HandleFunc("/logins", auditHandler.ListLogins).Methods("GET")

	return r
}
