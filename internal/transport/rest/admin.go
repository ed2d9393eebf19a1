package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/service/admin"
	"github.com/heartmarshall/learnhub/internal/service/booking"
)

type adminService interface {
	ListUsers(ctx context.Context, input admin.ListUsersInput) ([]domain.Profile, int, error)
	SetUserActive(ctx context.Context, targetID uuid.UUID, active bool) (*domain.Profile, error)
	SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.Profile, error)

	CreateCategory(ctx context.Context, input admin.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input admin.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateSubject(ctx context.Context, input admin.SubjectInput) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, id uuid.UUID, input admin.SubjectInput) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error
	CreateEpisode(ctx context.Context, input admin.EpisodeInput) (*domain.Episode, error)
	UpdateEpisode(ctx context.Context, id uuid.UUID, input admin.EpisodeInput) (*domain.Episode, error)
	DeleteEpisode(ctx context.Context, id uuid.UUID) error

	CreateReward(ctx context.Context, input admin.RewardInput) (*domain.Reward, error)
	UpdateReward(ctx context.Context, id uuid.UUID, input admin.RewardInput) (*domain.Reward, error)

	UploadCover(ctx context.Context, kind admin.CoverKind, body io.Reader) (*admin.Cover, error)
}

type bookingAdminService interface {
	ListAllBookings(ctx context.Context, input booking.ListAllInput) ([]domain.RoomBooking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.RoomBooking, error)
}

// AdminHandler serves the admin console. Routes are mounted behind the
// admin guard; the services check the role again.
type AdminHandler struct {
	responder
	svc           adminService
	bookings      bookingAdminService
	maxCoverBytes int64
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(logger *slog.Logger, loc *i18n.Localizer, svc adminService, bookings bookingAdminService, maxCoverBytes int64) *AdminHandler {
	return &AdminHandler{
		responder:     responder{log: logger.With("handler", "admin"), i18n: loc},
		svc:           svc,
		bookings:      bookings,
		maxCoverBytes: maxCoverBytes,
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userPage struct {
	Users []profileView `json:"users"`
	Total int           `json:"total"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type setRoleRequest struct {
	Role domain.UserRole `json:"role"`
}

// Users handles GET /admin/users?search=&role=&limit=&offset=.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	users, total, err := h.svc.ListUsers(r.Context(), admin.ListUsersInput{
		Search: q.Get("search"),
		Role:   domain.UserRole(q.Get("role")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	// Avatars are not resolved in the list; the console shows initials.
	views := make([]profileView, 0, len(users))
	for i := range users {
		views = append(views, toProfileView(&users[i], nil))
	}
	writeJSON(w, http.StatusOK, userPage{Users: views, Total: total})
}

// SetUserActive handles PUT /admin/users/{id}/active.
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setActiveRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Active == nil {
		h.fail(w, r, domain.NewValidationError("active", "required"))
		return
	}
	p, err := h.svc.SetUserActive(r.Context(), id, *req.Active)
	if err != nil {
		h.fail(w, r, err, explainSelfLockout)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(p, nil))
}

// SetUserRole handles PUT /admin/users/{id}/role.
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setRoleRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.SetUserRole(r.Context(), id, req.Role)
	if err != nil {
		h.fail(w, r, err, explainSelfLockout)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(p, nil))
}

func explainSelfLockout(err error) (string, []any, bool) {
	if errors.Is(err, admin.ErrSelfLockout) {
		return i18n.MsgSelfDemotion, nil, true
	}
	return "", nil, false
}

// ---------------------------------------------------------------------------
// Content
// ---------------------------------------------------------------------------

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, h.svc.CreateCategory, toCategoryView)
}

// UpdateCategory handles PUT /admin/categories/{id}.
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, h.svc.UpdateCategory, toCategoryView)
}

// DeleteCategory handles DELETE /admin/categories/{id}.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.svc.DeleteCategory)
}

// CreateSubject handles POST /admin/subjects.
func (h *AdminHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, h.svc.CreateSubject, toSubjectView)
}

// UpdateSubject handles PUT /admin/subjects/{id}.
func (h *AdminHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, h.svc.UpdateSubject, toSubjectView)
}

// DeleteSubject handles DELETE /admin/subjects/{id}.
func (h *AdminHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.svc.DeleteSubject)
}

// CreateEpisode handles POST /admin/episodes.
func (h *AdminHandler) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, h.svc.CreateEpisode, toEpisodeView)
}

// UpdateEpisode handles PUT /admin/episodes/{id}.
func (h *AdminHandler) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, h.svc.UpdateEpisode, toEpisodeView)
}

// DeleteEpisode handles DELETE /admin/episodes/{id}.
func (h *AdminHandler) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.svc.DeleteEpisode)
}

// CreateReward handles POST /admin/rewards.
func (h *AdminHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, h.svc.CreateReward, toRewardView)
}

// UpdateReward handles PUT /admin/rewards/{id}.
func (h *AdminHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, h.svc.UpdateReward, toRewardView)
}

type coverResponse struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

// UploadCover handles PUT /admin/covers/{kind} with the image as the raw body.
func (h *AdminHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	cover, err := h.svc.UploadCover(r.Context(), admin.CoverKind(r.PathValue("kind")), r.Body)
	if err != nil {
		h.fail(w, r, err, explainUpload("cover", h.maxCoverBytes))
		return
	}
	writeJSON(w, http.StatusCreated, coverResponse{Path: cover.Path, PublicURL: cover.PublicURL})
}

func create[In, Out, View any](h *AdminHandler, w http.ResponseWriter, r *http.Request,
	op func(context.Context, In) (*Out, error), view func(Out) View,
) {
	var input In
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := op(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view(*out))
}

func update[In, Out, View any](h *AdminHandler, w http.ResponseWriter, r *http.Request,
	op func(context.Context, uuid.UUID, In) (*Out, error), view func(Out) View,
) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var input In
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := op(r.Context(), id, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view(*out))
}

func (h *AdminHandler) remove(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) error) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := op(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

type setStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// Bookings handles GET /admin/bookings?status=&from=&limit=&offset=.
// from is an RFC 3339 time.
func (h *AdminHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	var from time.Time
	if raw := q.Get("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			h.fail(w, r, domain.NewValidationError("from", "expected RFC 3339 time"))
			return
		}
	}
	list, err := h.bookings.ListAllBookings(r.Context(), booking.ListAllInput{
		Status: domain.BookingStatus(q.Get("status")),
		From:   from,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toBookingView))
}

// SetBookingStatus handles PUT /admin/bookings/{id}/status.
func (h *AdminHandler) SetBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setStatusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.bookings.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingView(*b))
}
