package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
)

type StatsService struct {
	statsRepository repository.StatsRepository
}

func NewStatsService(statsRepository repository.StatsRepository) *StatsService {
	return &StatsService{statsRepository: statsRepository}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// RecordVisit bumps today's visit counter.
func (s *StatsService) RecordVisit() error {
	return s.statsRepository.Increment(today(), "visits")
}

// RecordActiveUser, RecordWish and RecordTodo are best-effort side effects
// of other operations: failures are logged, never surfaced to the caller.
func (s *StatsService) RecordActiveUser() {
	s.record("users")
}

func (s *StatsService) RecordWish() {
	s.record("wishes")
}

func (s *StatsService) RecordTodo() {
	s.record("todos")
}

func (s *StatsService) record(field string) {
	err := s.statsRepository.Increment(today(), field)
	if err != nil {
		slog.Warn("failed to record stat", "error", err, "field", field)
	}
}

// Snapshot returns today's row together with lifetime totals.
func (s *StatsService) Snapshot() (*model.DailyStat, *model.StatTotals, error) {
	stat, err := s.statsRepository.ByDate(today())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	totals, err := s.statsRepository.Totals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get stat totals: %w", err)
	}

	return stat, totals, nil
}
