package service

import (
	"errors"
	"fmt"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
)

type MusicService struct {
	songRepository repository.SongRepository
}

func NewMusicService(songRepository repository.SongRepository) *MusicService {
	return &MusicService{songRepository: songRepository}
}

func (s *MusicService) Playlist() ([]*model.Song, error) {
	songs, err := s.songRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

// Play records one playback and returns the new count.
func (s *MusicService) Play(songID int64) (int, error) {
	count, err := s.songRepository.IncrementPlayCount(songID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return 0, apperr.NotFound("song")
		}
		return 0, fmt.Errorf("failed to increment play count: %w", err)
	}
	return count, nil
}
