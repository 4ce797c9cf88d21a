package handler

import (
	"net/http"

	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

type MusicService interface {
	Playlist() ([]*model.Song, error)
	Play(songID int64) (int, error)
}

type MusicHandler struct {
	responder
	music MusicService
}

func NewMusicHandler(music MusicService, verbose bool) *MusicHandler {
	return &MusicHandler{responder: responder{verbose: verbose}, music: music}
}

func (h *MusicHandler) Playlist(w http.ResponseWriter, r *http.Request) {
	songs, err := h.music.Playlist()
	if err != nil {
		h.err(w, err)
		return
	}
	h.data(w, http.StatusOK, transform.Collection(songs, transform.NewSongView))
}

// Play bumps the play counter and returns the new count.
func (h *MusicHandler) Play(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.err(w, err)
		return
	}

	count, err := h.music.Play(id)
	if err != nil {
		h.err(w, err)
		return
	}
	h.data(w, http.StatusOK, map[string]any{"id": id, "play_count": count})
}
