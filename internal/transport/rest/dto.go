package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/learning"
	"github.com/heartmarshall/learnhub/internal/stats"
)

// JSON views of domain values. Field names are snake_case like the backend
// tables so the browser sees one naming scheme.

type profileView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Initials  string    `json:"initials"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfileView(p *domain.Profile, avatarURL *string) profileView {
	return profileView{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Initials:  p.Initials(),
		Phone:     p.Phone,
		Role:      p.Role.String(),
		IsActive:  p.IsActive,
		AvatarURL: avatarURL,
		CreatedAt: p.CreatedAt,
	}
}

type categoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverPath   *string   `json:"cover_path"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
}

func toCategoryView(c domain.Category) categoryView {
	return categoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CoverPath:   c.CoverPath,
		SortOrder:   c.SortOrder,
		IsPublished: c.IsPublished,
	}
}

type subjectView struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverPath   *string   `json:"cover_path"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
}

func toSubjectView(s domain.Subject) subjectView {
	return subjectView{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Title:       s.Title,
		Description: s.Description,
		CoverPath:   s.CoverPath,
		SortOrder:   s.SortOrder,
		IsPublished: s.IsPublished,
	}
}

type episodeView struct {
	ID              uuid.UUID `json:"id"`
	SubjectID       uuid.UUID `json:"subject_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"video_url"`
	DurationSeconds int       `json:"duration_seconds"`
	Points          int       `json:"points"`
	SortOrder       int       `json:"sort_order"`
	IsPublished     bool      `json:"is_published"`
}

func toEpisodeView(e domain.Episode) episodeView {
	return episodeView{
		ID:              e.ID,
		SubjectID:       e.SubjectID,
		Title:           e.Title,
		Description:     e.Description,
		VideoURL:        e.VideoURL,
		DurationSeconds: e.DurationSeconds,
		Points:          e.Points,
		SortOrder:       e.SortOrder,
		IsPublished:     e.IsPublished,
	}
}

type progressView struct {
	EpisodeID       uuid.UUID  `json:"episode_id"`
	WatchedSeconds  int        `json:"watched_seconds"`
	ProgressPercent int        `json:"progress_percent"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toProgressView(p domain.EpisodeProgress) progressView {
	return progressView{
		EpisodeID:       p.EpisodeID,
		WatchedSeconds:  p.WatchedSeconds,
		ProgressPercent: p.ProgressPercent,
		Completed:       p.Completed,
		CompletedAt:     p.CompletedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type subjectOverviewView struct {
	Subject           subjectView `json:"subject"`
	Episodes          int         `json:"episodes"`
	CompletedEpisodes int         `json:"completed_episodes"`
	Percent           int         `json:"percent"`
	PointsEarned      int         `json:"points_earned"`
	PointsTotal       int         `json:"points_total"`
}

func toSubjectOverviewView(o learning.SubjectOverview) subjectOverviewView {
	return subjectOverviewView{
		Subject:           toSubjectView(o.Subject),
		Episodes:          o.Episodes,
		CompletedEpisodes: o.CompletedEpisodes,
		Percent:           o.Percent,
		PointsEarned:      o.PointsEarned,
		PointsTotal:       o.PointsTotal,
	}
}

type statsView struct {
	TotalPoints       int     `json:"total_points"`
	Level             int     `json:"level"`
	LevelProgress     float64 `json:"level_progress"`
	NextLevelAt       int     `json:"next_level_at"`
	PointsToNext      int     `json:"points_to_next"`
	CurrentStreak     int     `json:"current_streak"`
	MaxStreak         int     `json:"max_streak"`
	CompletedEpisodes int     `json:"completed_episodes"`
	// Activity counts progress updates in the last 7, 14 and 30 days.
	Activity [3]int `json:"activity"`
}

func toStatsView(s stats.Summary) statsView {
	return statsView(s)
}

type rewardView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Stock       *int      `json:"stock"`
	ImagePath   *string   `json:"image_path"`
	IsActive    bool      `json:"is_active"`
	InStock     bool      `json:"in_stock"`
}

func toRewardView(rw domain.Reward) rewardView {
	return rewardView{
		ID:          rw.ID,
		Name:        rw.Name,
		Description: rw.Description,
		Cost:        rw.Cost,
		Stock:       rw.Stock,
		ImagePath:   rw.ImagePath,
		IsActive:    rw.IsActive,
		InStock:     rw.InStock(),
	}
}

type redemptionView struct {
	ID        uuid.UUID `json:"id"`
	RewardID  uuid.UUID `json:"reward_id"`
	Cost      int       `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

func toRedemptionView(r domain.Redemption) redemptionView {
	return redemptionView{ID: r.ID, RewardID: r.RewardID, Cost: r.Cost, CreatedAt: r.CreatedAt}
}

type roomView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Capacity int       `json:"capacity"`
	IsActive bool      `json:"is_active"`
}

func toRoomView(r domain.Room) roomView {
	return roomView(r)
}

type bookingView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingView(b domain.RoomBooking) bookingView {
	return bookingView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Purpose:   b.Purpose,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}

type notificationView struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   *string        `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at"`
	CreatedAt time.Time      `json:"created_at"`
}

func toNotificationView(n domain.Notification) notificationView {
	return notificationView{
		ID:        n.ID,
		Type:      n.Type.String(),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// mapSlice converts every element of in with fn. It never returns nil so
// empty lists encode as [].
func mapSlice[T, V any](in []T, fn func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
