package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
)

type stubMusicService struct {
	songs []*model.Song
	count int
	err   error
}

func (s *stubMusicService) Playlist() ([]*model.Song, error) {
	return s.songs, s.err
}

func (s *stubMusicService) Play(songID int64) (int, error) {
	return s.count, s.err
}

func TestMusicPlay(t *testing.T) {
	h := NewMusicHandler(&stubMusicService{count: 4}, false)

	req := httptest.NewRequest(http.MethodPost, "/music/2/play", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.Play(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["play_count"] != 4.0 {
		t.Errorf("data = %+v, want play_count 4", data)
	}
}

func TestMusicPlayUnknownSong(t *testing.T) {
	h := NewMusicHandler(&stubMusicService{err: apperr.NotFound("song")}, false)

	req := httptest.NewRequest(http.MethodPost, "/music/99/play", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Play(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMusicPlaylist(t *testing.T) {
	artist := "Klassik Kids"
	h := NewMusicHandler(&stubMusicService{songs: []*model.Song{{ID: 1, Title: "Stille Nacht", Artist: &artist}}}, false)

	rec := httptest.NewRecorder()
	h.Playlist(rec, httptest.NewRequest(http.MethodGet, "/music", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("data = %+v", envelope["data"])
	}
}
