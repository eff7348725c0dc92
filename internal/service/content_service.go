package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dom/power-league-website/internal/cache"
	"github.com/dom/power-league-website/internal/config"
	"github.com/dom/power-league-website/internal/domain"
	"github.com/dom/power-league-website/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Cache keys, one per query.
const (
	CacheKeyLeagues      = "leagues"
	CacheKeyLeagueLinks  = "league-links"
	CacheKeyLocations    = "locations"
	CacheKeyAnnouncement = "motd"
)

// CMS document types that the revalidation webhook may name.
const (
	DocumentTypeLeague       = "powerLeague"
	DocumentTypeLocation     = "location"
	DocumentTypeAnnouncement = "motd"
)

var documentCacheKeys = map[string][]string{
	DocumentTypeLeague:       {CacheKeyLeagues, CacheKeyLeagueLinks},
	DocumentTypeLocation:     {CacheKeyLocations},
	DocumentTypeAnnouncement: {CacheKeyAnnouncement},
}

// ContentService reads league, venue and announcement content and never
// fails: a broken source yields an empty, degraded Result.
//
// Values returned by the cached accessors are shared between requests and
// must not be modified.
type ContentService struct {
	leagueRepo       repository.LeagueSeasonRepository
	venueRepo        repository.VenueRepository
	announcementRepo repository.AnnouncementRepository
	cache            *cache.Cache
	clock            clockwork.Clock
	leagueTTL        time.Duration
	announcementTTL  time.Duration
	logger           zerolog.Logger
}

func NewContentService(repos *repository.Repositories, contentCache *cache.Cache, cfg *config.Config, clock clockwork.Clock, logger zerolog.Logger) *ContentService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if contentCache == nil {
		contentCache = cache.New(clock)
	}
	return &ContentService{
		leagueRepo:       repos.LeagueSeason,
		venueRepo:        repos.Venue,
		announcementRepo: repos.Announcement,
		cache:            contentCache,
		clock:            clock,
		leagueTTL:        cfg.LeagueCacheTTL,
		announcementTTL:  cfg.AnnouncementCacheTTL,
		logger:           logger.With().Str("component", "content").Logger(),
	}
}

// FetchLeagueSeasons queries the source directly, newest season first.
// Seasons without a start date go last; ties keep the source order.
func (s *ContentService) FetchLeagueSeasons(ctx context.Context) Result[[]*domain.LeagueSeason] {
	res := fetch(ctx, s, "FetchLeagueSeasons", []*domain.LeagueSeason{}, s.leagueRepo.List)
	if !res.IsDegraded() {
		res.Data = compact(res.Data)
		slices.SortStableFunc(res.Data, func(a, b *domain.LeagueSeason) int {
			return compareStartDesc(a.StartDate, b.StartDate)
		})
	}
	return res
}

// FetchLeagueLinks is FetchLeagueSeasons reduced to title and registration link.
func (s *ContentService) FetchLeagueLinks(ctx context.Context) Result[[]*domain.LeagueLink] {
	res := fetch(ctx, s, "FetchLeagueLinks", []*domain.LeagueLink{}, s.leagueRepo.ListLinks)
	if !res.IsDegraded() {
		res.Data = compact(res.Data)
		slices.SortStableFunc(res.Data, func(a, b *domain.LeagueLink) int {
			return compareStartDesc(a.StartDate, b.StartDate)
		})
	}
	return res
}

// FetchVenues queries the source directly, ordered by name.
func (s *ContentService) FetchVenues(ctx context.Context) Result[[]*domain.VenueLocation] {
	res := fetch(ctx, s, "FetchVenues", []*domain.VenueLocation{}, s.venueRepo.List)
	if !res.IsDegraded() {
		res.Data = compact(res.Data)
		col := collate.New(language.AmericanEnglish, collate.IgnoreCase)
		slices.SortStableFunc(res.Data, func(a, b *domain.VenueLocation) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return res
}

// FetchActiveAnnouncement returns the announcement to show right now, or a
// nil Data when none qualifies.
func (s *ContentService) FetchActiveAnnouncement(ctx context.Context) Result[*domain.Announcement] {
	candidates := fetch(ctx, s, "FetchActiveAnnouncement", []*domain.Announcement{}, s.announcementRepo.ListActive)
	if candidates.IsDegraded() {
		return Result[*domain.Announcement]{
			Status:     candidates.Status,
			Reason:     candidates.Reason,
			IncidentID: candidates.IncidentID,
		}
	}
	return Ok(selectAnnouncement(candidates.Data, s.clock.Now()))
}

func (s *ContentService) LeagueSeasonsResult(ctx context.Context) Result[[]*domain.LeagueSeason] {
	return cache.GetOrFetch(ctx, s.cache, CacheKeyLeagues, s.leagueTTL, s.FetchLeagueSeasons)
}

func (s *ContentService) LeagueSeasons(ctx context.Context) []*domain.LeagueSeason {
	return s.LeagueSeasonsResult(ctx).Data
}

// LeagueLinks keeps the Result so the navigation endpoint can report failures.
func (s *ContentService) LeagueLinks(ctx context.Context) Result[[]*domain.LeagueLink] {
	return cache.GetOrFetch(ctx, s.cache, CacheKeyLeagueLinks, s.leagueTTL, s.FetchLeagueLinks)
}

func (s *ContentService) VenuesResult(ctx context.Context) Result[[]*domain.VenueLocation] {
	return cache.GetOrFetch(ctx, s.cache, CacheKeyLocations, s.leagueTTL, s.FetchVenues)
}

func (s *ContentService) Venues(ctx context.Context) []*domain.VenueLocation {
	return s.VenuesResult(ctx).Data
}

func (s *ContentService) ActiveAnnouncementResult(ctx context.Context) Result[*domain.Announcement] {
	return cache.GetOrFetch(ctx, s.cache, CacheKeyAnnouncement, s.announcementTTL, s.FetchActiveAnnouncement)
}

func (s *ContentService) ActiveAnnouncement(ctx context.Context) *domain.Announcement {
	return s.ActiveAnnouncementResult(ctx).Data
}

// Revalidate drops the cache entries fed by documentType and returns the
// keys it dropped. An empty documentType drops everything.
func (s *ContentService) Revalidate(documentType string) []string {
	documentType = strings.TrimSpace(documentType)

	var keys []string
	if documentType == "" {
		for _, k := range documentCacheKeys {
			keys = append(keys, k...)
		}
		slices.Sort(keys)
		s.cache.InvalidateAll()
	} else {
		var ok bool
		if keys, ok = documentCacheKeys[documentType]; !ok {
			s.logger.Warn().
				Str("op", "Revalidate").
				Str("document_type", documentType).
				Msg("unknown document type, nothing revalidated")
			return nil
		}
		s.cache.Invalidate(keys...)
	}

	s.logger.Info().
		Str("op", "Revalidate").
		Str("document_type", documentType).
		Strs("keys", keys).
		Msg("content cache revalidated")
	return keys
}

func fetch[T any](ctx context.Context, s *ContentService, op string, empty T, query func(context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Degraded(empty, fmt.Errorf("%w: panic: %v", domain.ErrContentUnavailable, p))
			s.logDegraded(op, res.Reason, res.IncidentID.String())
		}
	}()

	data, err := query(ctx)
	if err != nil {
		res = Degraded(empty, err)
		s.logDegraded(op, res.Reason, res.IncidentID.String())
		return res
	}
	return Ok(data)
}

func (s *ContentService) logDegraded(op string, reason error, incidentID string) {
	s.logger.Warn().
		Str("op", op).
		Str("incident_id", incidentID).
		Err(reason).
		Msg("content source failed, serving empty result")
}

func selectAnnouncement(candidates []*domain.Announcement, now time.Time) *domain.Announcement {
	var selected *domain.Announcement
	for _, a := range candidates {
		if a == nil || !a.VisibleAt(now) {
			continue
		}
		if selected == nil || a.SortKey().After(selected.SortKey()) {
			selected = a
		}
	}
	return selected
}

// compareStartDesc orders later dates first and missing dates last.
func compareStartDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return b.Compare(*a)
	}
}

func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}
