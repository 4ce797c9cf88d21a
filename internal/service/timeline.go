package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinselworks/noel/internal/markdown"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimelineService syncs the markdown content directory into the
// timeline_events table at startup and serves the read-only listing. Files
// live under <contentPath>/timeline/<slug>.md with frontmatter for title,
// date, meta and sort_order; the body becomes the description.
type TimelineService struct {
	timelineRepository repository.TimelineRepository
	parser             *markdown.Parser
	contentPath        string
}

func NewTimelineService(timelineRepository repository.TimelineRepository, contentPath string) *TimelineService {
	return &TimelineService{
		timelineRepository: timelineRepository,
		parser:             markdown.NewParser(),
		contentPath:        contentPath,
	}
}

// Sync upserts every content file by slug. A broken file is skipped with a
// warning so one bad entry cannot take the timeline down.
func (s *TimelineService) Sync() error {
	pattern := filepath.Join(s.contentPath, "timeline", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to scan timeline content: %w", err)
	}

	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")

		event, err := s.parseEvent(slug, file)
		if err != nil {
			slog.Warn("skipping timeline entry", "error", err, "file", file)
			continue
		}

		err = s.timelineRepository.Upsert(event)
		if err != nil {
			return fmt.Errorf("failed to upsert timeline event %q: %w", slug, err)
		}
	}

	slog.Info("timeline content synced", "entries", len(files))
	return nil
}

func (s *TimelineService) parseEvent(slug, path string) (*model.TimelineEvent, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, err
	}

	event := &model.TimelineEvent{
		Slug:  slug,
		Title: titleFromSlug(slug),
	}

	if title, ok := meta["title"].(string); ok && title != "" {
		event.Title = title
	}
	if date, ok := meta["date"].(string); ok {
		event.EventDate = date
	}
	if m, ok := meta["meta"].(string); ok && m != "" {
		event.Meta = &m
	}
	event.SortOrder = transform.ToInt(meta["sort_order"], 0)

	description := strings.TrimSpace(string(html))
	if description != "" {
		event.Description = &description
	}

	return event, nil
}

func (s *TimelineService) List() ([]*model.TimelineEvent, error) {
	events, err := s.timelineRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}

// titleFromSlug turns "first-snow" into "First Snow" as a fallback when the
// frontmatter names no title.
func titleFromSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
