package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"storedash-be/internal/models"
	"storedash-be/internal/processor"
	"storedash-be/internal/utils"

	"github.com/sahilm/fuzzy"
)

// DashboardService serves the read side: snapshot first, live query otherwise.
type DashboardService struct {
	perf   PerformanceStore
	snaps  SnapshotStore
	maxAge time.Duration
	now    func() time.Time
}

func NewDashboardService(perf PerformanceStore, snaps SnapshotStore, maxAge time.Duration) *DashboardService {
	return &DashboardService{
		perf:   perf,
		snaps:  snaps,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// fresh reports whether a snapshot is younger than the freshness window.
func (s *DashboardService) fresh(snap *models.Snapshot) bool {
	return snap != nil && s.now().Sub(snap.UpdatedAt) < s.maxAge
}

// Snapshots describe the latest data only, so older periods always go live.
func (s *DashboardService) snapshotPeriod(period string) bool {
	return s.snaps != nil && period == processor.PeriodFromTime(s.now())
}

func (s *DashboardService) GetLeaderboards(ctx context.Context, period string) (*models.Leaderboards, error) {
	if s.snapshotPeriod(period) {
		if lb := s.leaderboardsSnapshot(ctx); lb != nil {
			lb.Period = period
			return lb, nil
		}
	}

	lb, err := s.perf.GetLeaderboards(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("load leaderboards: %w", err)
	}
	lb.Source = models.SourceLive
	return lb, nil
}

func (s *DashboardService) leaderboardsSnapshot(ctx context.Context) *models.Leaderboards {
	snap, err := s.snaps.GetDashboardSnapshot(ctx)
	if err != nil {
		log.Printf("snapshot: leaderboards read failed, using live data: %v", err)
		return nil
	}
	if !s.fresh(snap) {
		return nil
	}

	var lb models.Leaderboards
	if err := utils.ParseJSON(snap.JSONData, &lb); err != nil {
		log.Printf("snapshot: leaderboards payload unreadable, using live data: %v", err)
		return nil
	}
	if lb.Sales == nil && lb.BDC == nil {
		log.Println("snapshot: leaderboards payload has no boards, using live data")
		return nil
	}
	if lb.Sales == nil {
		lb.Sales = []models.SalesRecord{}
	}
	if lb.BDC == nil {
		lb.BDC = []models.BdcRecord{}
	}
	lb.Source = models.SourceSnapshot
	return &lb
}

// GetPersonDetails returns ErrPersonNotFound when no live row exists.
func (s *DashboardService) GetPersonDetails(ctx context.Context, name, period string) (*models.PersonView, error) {
	if s.snapshotPeriod(period) {
		if view := s.personSnapshot(ctx, name); view != nil {
			return view, nil
		}
	}

	detail, err := s.perf.GetPersonDetail(ctx, name, period)
	if err != nil {
		return nil, fmt.Errorf("load person details: %w", err)
	}
	if detail == nil {
		return nil, ErrPersonNotFound
	}

	view := detail.View()
	view.Source = models.SourceLive
	return &view, nil
}

func (s *DashboardService) personSnapshot(ctx context.Context, name string) *models.PersonView {
	snap, err := s.snaps.GetPersonSnapshot(ctx, name)
	if err != nil {
		log.Printf("snapshot: person %q read failed, using live data: %v", name, err)
		return nil
	}
	if !s.fresh(snap) {
		return nil
	}

	var view models.PersonView
	if err := utils.ParseJSON(snap.JSONData, &view); err != nil {
		log.Printf("snapshot: person %q payload unreadable, using live data: %v", name, err)
		return nil
	}
	if view.Block.Name == "" {
		log.Printf("snapshot: person %q payload has no block, using live data", name)
		return nil
	}
	view.Source = models.SourceSnapshot
	return &view
}

func (s *DashboardService) GetCallSheets(ctx context.Context, name, period string) ([]models.CallSheetRow, error) {
	rows, err := s.perf.GetCallSheets(ctx, name, period)
	if err != nil {
		return nil, fmt.Errorf("load call sheets: %w", err)
	}
	return rows, nil
}

type personCandidates []models.PersonMatch

func (p personCandidates) String(i int) string {
	return strings.ToLower(utils.FoldAccents(p[i].Name))
}

func (p personCandidates) Len() int { return len(p) }

// SearchPeople fuzzy-matches query against the names on the period's
// leaderboards, best match first.
func (s *DashboardService) SearchPeople(ctx context.Context, query, period string, limit int) ([]models.PersonMatch, error) {
	lb, err := s.GetLeaderboards(ctx, period)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var candidates personCandidates
	for _, r := range lb.Sales {
		if key := models.NameKey(r.Name); !seen[key] {
			seen[key] = true
			candidates = append(candidates, models.PersonMatch{Name: r.Name, Type: models.PersonTypeSales})
		}
	}
	for _, r := range lb.BDC {
		if key := models.NameKey(r.Name); !seen[key] {
			seen[key] = true
			candidates = append(candidates, models.PersonMatch{Name: r.Name, Type: models.PersonTypeBDC})
		}
	}

	query = strings.ToLower(utils.FoldAccents(strings.TrimSpace(query)))
	if query == "" {
		return []models.PersonMatch{}, nil
	}

	results := fuzzy.FindFrom(query, candidates)
	matches := make([]models.PersonMatch, 0, len(results))
	for _, r := range results {
		m := candidates[r.Index]
		m.Score = r.Score
		matches = append(matches, m)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}
