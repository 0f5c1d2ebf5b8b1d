package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

const defaultModerationPageSize = 10

func (s *ReportService) Create(ctx context.Context, creds authz.Credentials, req dto.ReportCreate) (*models.Report, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanExplore(actor) {
		return nil, apierr.Forbidden("Reports are not available for this role.")
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apierr.Validation("Reason is required.")
	}

	if req.TargetType == models.ReportTargetRecipe {
		recipe := ds.RecipeByID(req.TargetID)
		if recipe == nil || !recipe.IsPublic {
			return nil, apierr.NotFound("Recipe not found.")
		}
	} else {
		if ds.CommentByID(req.TargetID) == nil {
			return nil, apierr.NotFound("Comment not found.")
		}
	}

	report := models.Report{
		ID:         uuid.NewString(),
		ReporterID: actor.ID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     reason,
		Details:    strings.TrimSpace(req.Details),
		Status:     models.ReportOpen,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		d.Reports = append([]models.Report{report}, d.Reports...)
	}); err != nil {
		return nil, err
	}
	return &report, nil
}

// ModerationQueue pages all reports for manager/admin review, newest first.
func (s *ReportService) ModerationQueue(ctx context.Context, creds authz.Credentials, q dto.ModerationQueueQuery) (*dto.PagedResult[models.Report], error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return nil, err
	}

	items := make([]models.Report, 0, len(ds.Reports))
	for _, r := range ds.Reports {
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		// "report" means no target-type filter.
		if q.Type != "" && q.Type != "report" && string(r.TargetType) != q.Type {
			continue
		}
		items = append(items, r)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	page := dto.ClampPage(q.Page)
	pageSize := dto.ClampPageSize(q.PageSize, defaultModerationPageSize)
	return &dto.PagedResult[models.Report]{
		Items:    dto.Paginate(items, page, pageSize),
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ReportService) Resolve(ctx context.Context, creds authz.Credentials, reportID string) (*models.Report, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return nil, err
	}

	if ds.ReportByID(reportID) == nil {
		return nil, apierr.NotFound("Report not found.")
	}

	var resolved models.Report
	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		if rep := d.ReportByID(reportID); rep != nil {
			now := time.Now().UTC()
			rep.Status = models.ReportResolved
			rep.ReviewedByID = actor.ID
			rep.ReviewedAt = &now
			resolved = *rep
		}
	}); err != nil {
		return nil, err
	}
	return &resolved, nil
}

// Remove marks the report removed and applies the moderation side effect:
// the target comment is soft-removed, or the target recipe is unpublished.
func (s *ReportService) Remove(ctx context.Context, creds authz.Credentials, reportID string) (*models.Report, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return nil, err
	}

	if ds.ReportByID(reportID) == nil {
		return nil, apierr.NotFound("Report not found.")
	}

	var removed models.Report
	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		rep := d.ReportByID(reportID)
		if rep == nil {
			return
		}
		now := time.Now().UTC()
		rep.Status = models.ReportRemoved
		rep.ReviewedByID = actor.ID
		rep.ReviewedAt = &now

		switch rep.TargetType {
		case models.ReportTargetComment:
			if c := d.CommentByID(rep.TargetID); c != nil {
				c.Status = models.CommentRemoved
			}
		case models.ReportTargetRecipe:
			if r := d.RecipeByID(rep.TargetID); r != nil {
				r.IsPublic = false
			}
		}
		removed = *rep
	}); err != nil {
		return nil, err
	}
	return &removed, nil
}
