package rest

import (
	"net/http"

	"github.com/heartmarshall/learnhub/internal/transport/middleware"
)

// Handlers groups the page handlers of the BFF.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Learning      *LearningHandler
	Rewards       *RewardHandler
	Bookings      *BookingHandler
	Notifications *NotificationHandler
	Profile       *ProfileHandler
	Admin         *AdminHandler
}

// guards admits requests to member and admin pages.
type guards interface {
	RequireAuth(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

// NewRouter mounts every route. loginLimit throttles sign-in attempts and may
// be nil. Request-wide middleware is applied by the caller.
func NewRouter(h Handlers, g guards, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	member := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, g.RequireAuth(fn))
	}
	adminOnly := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, g.RequireAdmin(fn))
	}

	// Probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	mux.HandleFunc("GET /login", h.Auth.LoginPage)
	mux.Handle("POST /login", middleware.Wrap(http.HandlerFunc(h.Auth.Login), loginLimit))
	mux.HandleFunc("POST /logout", h.Auth.Logout)
	mux.HandleFunc("GET /me", h.Auth.Me)

	// Learning
	member("GET /categories", h.Learning.Categories)
	member("GET /categories/{id}/subjects", h.Learning.CategorySubjects)
	member("GET /subjects/{id}", h.Learning.Subject)
	member("GET /episodes/{id}", h.Learning.Episode)
	member("PUT /episodes/{id}/progress", h.Learning.SaveProgress)
	member("GET /progress", h.Learning.Progress)
	member("GET /stats", h.Learning.Statistics)

	// Rewards
	member("GET /rewards", h.Rewards.Rewards)
	member("POST /rewards/{id}/redeem", h.Rewards.Redeem)
	member("GET /redemptions", h.Rewards.Redemptions)

	// Bookings
	member("GET /rooms", h.Bookings.Rooms)
	member("GET /rooms/{id}/schedule", h.Bookings.Schedule)
	member("GET /bookings", h.Bookings.MyBookings)
	member("POST /bookings", h.Bookings.Create)
	member("DELETE /bookings/{id}", h.Bookings.Cancel)

	// Notifications
	member("GET /notifications", h.Notifications.List)
	member("GET /notifications/unread", h.Notifications.Unread)
	member("POST /notifications/read", h.Notifications.MarkAllRead)
	member("POST /notifications/{id}/read", h.Notifications.MarkRead)
	member("DELETE /notifications/{id}", h.Notifications.Delete)

	// Profile
	member("PATCH /profile", h.Profile.Update)
	member("PUT /profile/avatar", h.Profile.UploadAvatar)

	// Admin
	adminOnly("GET /admin/users", h.Admin.Users)
	adminOnly("PUT /admin/users/{id}/active", h.Admin.SetUserActive)
	adminOnly("PUT /admin/users/{id}/role", h.Admin.SetUserRole)
	adminOnly("POST /admin/categories", h.Admin.CreateCategory)
	adminOnly("PUT /admin/categories/{id}", h.Admin.UpdateCategory)
	adminOnly("DELETE /admin/categories/{id}", h.Admin.DeleteCategory)
	adminOnly("POST /admin/subjects", h.Admin.CreateSubject)
	adminOnly("PUT /admin/subjects/{id}", h.Admin.UpdateSubject)
	adminOnly("DELETE /admin/subjects/{id}", h.Admin.DeleteSubject)
	adminOnly("POST /admin/episodes", h.Admin.CreateEpisode)
	adminOnly("PUT /admin/episodes/{id}", h.Admin.UpdateEpisode)
	adminOnly("DELETE /admin/episodes/{id}", h.Admin.DeleteEpisode)
	adminOnly("POST /admin/rewards", h.Admin.CreateReward)
	adminOnly("PUT /admin/rewards/{id}", h.Admin.UpdateReward)
	adminOnly("PUT /admin/covers/{kind}", h.Admin.UploadCover)
	adminOnly("GET /admin/bookings", h.Admin.Bookings)
	adminOnly("PUT /admin/bookings/{id}/status", h.Admin.SetBookingStatus)

	return mux
}

// NewReminderRouter mounts the reminder function on "/".
func NewReminderRouter(h *HealthHandler, reminders *ReminderHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.Handle("/", reminders)
	return mux
}
