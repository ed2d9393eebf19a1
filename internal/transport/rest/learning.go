package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/service/learning"
	"github.com/heartmarshall/learnhub/internal/stats"
)

// maxProgressIDs caps the episode ids of one progress lookup.
const maxProgressIDs = 200

type learningService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubjects(ctx context.Context, categoryID uuid.UUID) ([]domain.Subject, error)
	GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListEpisodes(ctx context.Context, subjectID uuid.UUID) ([]domain.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error)
	CategoryOverview(ctx context.Context, categoryID uuid.UUID) ([]learning.SubjectOverview, error)
	EpisodesProgress(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.EpisodeProgress, error)
	SaveProgress(ctx context.Context, input learning.SaveProgressInput) (*domain.EpisodeProgress, error)
	Statistics(ctx context.Context) (stats.Summary, error)
}

// LearningHandler serves the catalog, watch progress and statistics.
type LearningHandler struct {
	responder
	svc learningService
}

// NewLearningHandler creates a LearningHandler.
func NewLearningHandler(logger *slog.Logger, loc *i18n.Localizer, svc learningService) *LearningHandler {
	return &LearningHandler{
		responder: responder{log: logger.With("handler", "learning"), i18n: loc},
		svc:       svc,
	}
}

type subjectPage struct {
	Subject  subjectView   `json:"subject"`
	Episodes []episodeView `json:"episodes"`
}

type saveProgressRequest struct {
	WatchedSeconds  int `json:"watched_seconds"`
	ProgressPercent int `json:"progress_percent"`
}

// Categories handles GET /categories.
func (h *LearningHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cats, toCategoryView))
}

// CategorySubjects handles GET /categories/{id}/subjects. With ?overview=1 each
// subject carries the caller's completion.
func (h *LearningHandler) CategorySubjects(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if r.URL.Query().Has("overview") {
		overview, err := h.svc.CategoryOverview(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, mapSlice(overview, toSubjectOverviewView))
		return
	}

	subjects, err := h.svc.ListSubjects(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(subjects, toSubjectView))
}

// Subject handles GET /subjects/{id}: the subject with its episodes.
func (h *LearningHandler) Subject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	subject, err := h.svc.GetSubject(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	episodes, err := h.svc.ListEpisodes(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subjectPage{
		Subject:  toSubjectView(*subject),
		Episodes: mapSlice(episodes, toEpisodeView),
	})
}

// Episode handles GET /episodes/{id}.
func (h *LearningHandler) Episode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ep, err := h.svc.GetEpisode(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEpisodeView(*ep))
}

// Progress handles GET /progress?ids=a,b,c. Episodes never watched are absent
// from the result.
func (h *LearningHandler) Progress(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	progress, err := h.svc.EpisodesProgress(r.Context(), ids)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make(map[string]progressView, len(progress))
	for id, p := range progress {
		out[id.String()] = toProgressView(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// SaveProgress handles PUT /episodes/{id}/progress.
func (h *LearningHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req saveProgressRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.SaveProgress(r.Context(), learning.SaveProgressInput{
		EpisodeID:       id,
		WatchedSeconds:  req.WatchedSeconds,
		ProgressPercent: req.ProgressPercent,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressView(*p))
}

// Statistics handles GET /stats.
func (h *LearningHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsView(summary))
}

// parseIDs reads a comma separated list of UUIDs.
func parseIDs(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) > maxProgressIDs {
		return nil, domain.NewValidationError("ids", "too many ids")
	}
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, domain.NewValidationError("ids", "invalid id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
