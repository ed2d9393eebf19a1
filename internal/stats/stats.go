// Package stats derives display statistics from wallet, streak and progress rows.
// Everything here is pure: callers pass the clock in.
package stats

import (
	"time"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// PointsPerLevel is the number of points between two levels.
const PointsPerLevel = 500

// ActivityWindowDays is how far back ActivityBuckets looks.
const ActivityWindowDays = 30

// Level returns the level reached with the given points, starting at 1.
func Level(points int) int {
	return max(1, clamp(points)/PointsPerLevel+1)
}

// LevelProgressPercent returns the progress towards the next level in [0, 100).
func LevelProgressPercent(points int) float64 {
	p := clamp(points)
	within := p - (p/PointsPerLevel)*PointsPerLevel
	return float64(within) / PointsPerLevel * 100
}

// NextLevelThreshold returns the point total at which the next level starts.
func NextLevelThreshold(points int) int {
	return (clamp(points)/PointsPerLevel + 1) * PointsPerLevel
}

// ActivityBuckets counts progress updates into three 10-day ranges, oldest first:
// index 0 holds (20, 30] days ago, index 1 holds (10, 20] and index 2 holds [0, 10].
// Timestamps older than 30 days or in the future are ignored.
func ActivityBuckets(updates []time.Time, now time.Time) [3]int {
	var buckets [3]int
	for _, ts := range updates {
		daysAgo := now.Sub(ts).Hours() / 24
		switch {
		case daysAgo < 0 || daysAgo > ActivityWindowDays:
			continue
		case daysAgo > 20:
			buckets[0]++
		case daysAgo > 10:
			buckets[1]++
		default:
			buckets[2]++
		}
	}
	return buckets
}

// Summary is the dashboard view of a learner's statistics.
type Summary struct {
	TotalPoints       int
	Level             int
	LevelProgress     float64
	NextLevelAt       int
	PointsToNext      int
	CurrentStreak     int
	MaxStreak         int
	CompletedEpisodes int
	Activity          [3]int
}

// Summarize combines wallet, streak and recent progress update times into a
// Summary. A nil wallet or streak counts as zero.
func Summarize(wallet *domain.Wallet, streak *domain.Streak, updates []time.Time, completed int, now time.Time) Summary {
	var points int
	if wallet != nil {
		points = clamp(wallet.TotalPoints)
	}

	s := Summary{
		TotalPoints:       points,
		Level:             Level(points),
		LevelProgress:     LevelProgressPercent(points),
		NextLevelAt:       NextLevelThreshold(points),
		CompletedEpisodes: completed,
		Activity:          ActivityBuckets(updates, now),
	}
	s.PointsToNext = s.NextLevelAt - points
	if streak != nil {
		s.CurrentStreak = streak.CurrentStreak
		s.MaxStreak = max(streak.MaxStreak, streak.CurrentStreak)
	}
	return s
}

func clamp(points int) int {
	if points < 0 {
		return 0
	}
	return points
}
