package service

import (
	"fmt"
	"time"

	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
)

type WishService struct {
	wishRepository repository.WishRepository
	statsService   *StatsService
}

func NewWishService(wishRepository repository.WishRepository, statsService *StatsService) *WishService {
	return &WishService{
		wishRepository: wishRepository,
		statsService:   statsService,
	}
}

// Create persists a shaped wish. userID is nil for anonymous submissions;
// wishes are immutable once stored.
func (s *WishService) Create(userID *int64, rec transform.WishRecord) (*model.Wish, error) {
	wish := &model.Wish{
		UserID:      userID,
		Name:        rec.Name,
		Content:     rec.Content,
		Category:    rec.Category,
		IsAnonymous: rec.IsAnonymous,
		CreatedAt:   time.Now(),
	}

	err := s.wishRepository.Create(wish)
	if err != nil {
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	s.statsService.RecordWish()

	return wish, nil
}

// List returns one page of wishes plus the unpaginated total.
func (s *WishService) List(category string, page transform.Page) ([]*model.Wish, int, error) {
	wishes, err := s.wishRepository.List(category, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list wishes: %w", err)
	}

	total, err := s.wishRepository.Count(category)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count wishes: %w", err)
	}

	return wishes, total, nil
}
