package services

import (
	"strconv"
	"strings"

	"craftlink/internal/appErrors"
	"craftlink/internal/repositories"
	"craftlink/internal/services/dto"

	"gorm.io/gorm"
)

// SearchPageSize is the fixed discovery page size.
const SearchPageSize = 12

// SearchService is the artisan discovery engine. It never errors on bad
// input: malformed numeric filters are dropped, unknown sort keys fall back
// to newest, and an empty result is an empty page. Only the verified+active
// slice of the catalog is ever visible through it.
type SearchService interface {
	SearchArtisans(req *dto.ArtisanSearchRequest) (*dto.ArtisanSearchResponse, error)
}

type searchService struct {
	db          *gorm.DB
	artisanRepo repositories.ArtisanRepository
}

func NewSearchService(db *gorm.DB, artisanRepo repositories.ArtisanRepository) SearchService {
	return &searchService{db: db, artisanRepo: artisanRepo}
}

func (s *searchService) SearchArtisans(req *dto.ArtisanSearchRequest) (*dto.ArtisanSearchResponse, error) {
	criteria := normalizeCriteria(req)

	profiles, total, err := s.artisanRepo.Search(s.db, criteria)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	// The repository attaches the raw aggregation snapshot; the public
	// contract carries one-decimal ratings.
	for i := range profiles {
		profiles[i].AverageRating = RoundRating(profiles[i].AverageRating)
	}

	return &dto.ArtisanSearchResponse{
		Items:      profiles,
		TotalCount: total,
		PageNumber: criteria.Page,
		PageCount:  pageCount(total, criteria.PageSize),
	}, nil
}

// normalizeCriteria converts the raw query-string fields into repository
// criteria, recovering locally from anything malformed. A query string that
// round-trips through a UI must never fail the search.
func normalizeCriteria(req *dto.ArtisanSearchRequest) repositories.ArtisanSearchCriteria {
	criteria := repositories.ArtisanSearchCriteria{
		Query:      strings.TrimSpace(req.Search),
		CategoryID: req.Category,
		StateID:    req.State,
		CityID:     req.City,
		SortBy:     normalizeSortKey(req.SortBy),
		Page:       normalizePage(req.Page),
		PageSize:   SearchPageSize,
	}

	criteria.MinRate = parseRate(req.MinRate)
	criteria.MaxRate = parseRate(req.MaxRate)
	criteria.MinRating = parseRatingThreshold(req.MinRating)

	// verified_only is accepted for contract compatibility but is subsumed
	// by the unconditional eligibility predicate.

	return criteria
}

func normalizeSortKey(sortBy string) string {
	switch sortBy {
	case "rating", "price_low", "price_high", "newest":
		return sortBy
	}
	return "newest"
}

func normalizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseRate returns nil for absent, non-numeric or negative values — the
// filter is simply dropped.
func parseRate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

// parseRatingThreshold accepts 1..5 only; anything else is ignored.
func parseRatingThreshold(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 1 || value > 5 {
		return nil
	}
	return &value
}

func pageCount(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
