package services

import (
	"context"
	"sort"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/store"
)

type StatsService struct {
	store *store.Store
}

func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

// PopularCategories counts public recipes per category, most popular first.
func (s *StatsService) PopularCategories(ctx context.Context) ([]dto.CategoryCountStat, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, r := range ds.Recipes {
		if r.IsPublic {
			counts[r.CategoryID]++
		}
	}

	items := make([]dto.CategoryCountStat, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		items = append(items, dto.CategoryCountStat{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			RecipeCount:  counts[c.ID],
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RecipeCount > items[j].RecipeCount
	})
	return items, nil
}

// RatingPerCategory averages the ratings of public recipes per category,
// highest average first.
func (s *StatsService) RatingPerCategory(ctx context.Context) ([]dto.CategoryRatingStat, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}

	recipeCategory := make(map[string]string, len(ds.Recipes))
	recipePublic := make(map[string]bool, len(ds.Recipes))
	for _, r := range ds.Recipes {
		recipeCategory[r.ID] = r.CategoryID
		recipePublic[r.ID] = r.IsPublic
	}

	valuesByCategory := make(map[string][]int)
	for _, rating := range ds.Ratings {
		if !recipePublic[rating.RecipeID] {
			continue
		}
		cat := recipeCategory[rating.RecipeID]
		valuesByCategory[cat] = append(valuesByCategory[cat], rating.Value)
	}

	items := make([]dto.CategoryRatingStat, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		values := valuesByCategory[c.ID]
		items = append(items, dto.CategoryRatingStat{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			AvgRating:    avgOf(values),
			RatingsCount: len(values),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AvgRating > items[j].AvgRating
	})
	return items, nil
}
