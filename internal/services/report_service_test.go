package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
)

func TestCreateReport(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewReportService(st)

	report, err := svc.Create(ctx, credsFor(benID), dto.ReportCreate{
		TargetType: models.ReportTargetRecipe,
		TargetID:   "r1",
		Reason:     "Spam",
		Details:    "  looks copied  ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportOpen, report.Status)
	assert.Equal(t, benID, report.ReporterID)
	assert.Equal(t, "looks copied", report.Details)

	ds, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.ID, ds.Reports[0].ID)
}

func TestCreateReportRules(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newTestStore(t))

	_, err := svc.Create(ctx, authz.Anonymous, dto.ReportCreate{
		TargetType: models.ReportTargetRecipe, TargetID: "r1", Reason: "Spam",
	})
	requireCode(t, err, apierr.CodeAuthRequired)

	_, err = svc.Create(ctx, credsFor(managerID), dto.ReportCreate{
		TargetType: models.ReportTargetRecipe, TargetID: "r1", Reason: "Spam",
	})
	requireCode(t, err, apierr.CodeForbidden)

	// Private recipes are unreportable by the public.
	_, err = svc.Create(ctx, credsFor(benID), dto.ReportCreate{
		TargetType: models.ReportTargetRecipe, TargetID: "r2", Reason: "Spam",
	})
	requireCode(t, err, apierr.CodeNotFound)

	_, err = svc.Create(ctx, credsFor(benID), dto.ReportCreate{
		TargetType: models.ReportTargetComment, TargetID: "missing", Reason: "Spam",
	})
	requireCode(t, err, apierr.CodeNotFound)

	_, err = svc.Create(ctx, credsFor(benID), dto.ReportCreate{
		TargetType: models.ReportTargetRecipe, TargetID: "r1", Reason: "   ",
	})
	requireCode(t, err, apierr.CodeValidation)
}

func TestModerationQueueAccess(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newTestStore(t))

	_, err := svc.ModerationQueue(ctx, authz.Anonymous, dto.ModerationQueueQuery{})
	requireCode(t, err, apierr.CodeAuthRequired)

	_, err = svc.ModerationQueue(ctx, credsFor(benID), dto.ModerationQueueQuery{})
	requireCode(t, err, apierr.CodeForbidden)

	result, err := svc.ModerationQueue(ctx, credsFor(managerID), dto.ModerationQueueQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	// Newest first.
	assert.Equal(t, "rep2", result.Items[0].ID)
}

func TestModerationQueueFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newTestStore(t))

	result, err := svc.ModerationQueue(ctx, credsFor(adminID), dto.ModerationQueueQuery{Type: "comment"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "rep1", result.Items[0].ID)

	// "report" is the catch-all type, equivalent to no filter.
	result, err = svc.ModerationQueue(ctx, credsFor(adminID), dto.ModerationQueueQuery{Type: "report"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	result, err = svc.ModerationQueue(ctx, credsFor(adminID), dto.ModerationQueueQuery{Status: models.ReportResolved})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestResolveReport(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewReportService(st)

	report, err := svc.Resolve(ctx, credsFor(managerID), "rep1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, report.Status)
	assert.Equal(t, managerID, report.ReviewedByID)
	require.NotNil(t, report.ReviewedAt)

	// Resolving leaves the target untouched.
	ds, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CommentActive, ds.CommentByID("com2").Status)

	_, err = svc.Resolve(ctx, credsFor(managerID), "missing")
	requireCode(t, err, apierr.CodeNotFound)
}

func TestRemoveReportCascadesToComment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewReportService(st)

	report, err := svc.Remove(ctx, credsFor(adminID), "rep1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportRemoved, report.Status)

	ds, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CommentRemoved, ds.CommentByID("com2").Status)
}

func TestRemoveReportCascadesToRecipe(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewReportService(st)

	_, err := svc.Remove(ctx, credsFor(adminID), "rep2")
	require.NoError(t, err)

	// The recipe is unpublished, not deleted.
	ds, err := st.Load(ctx)
	require.NoError(t, err)
	recipe := ds.RecipeByID("r3")
	require.NotNil(t, recipe)
	assert.False(t, recipe.IsPublic)
}

func TestRemoveReportAccess(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newTestStore(t))

	_, err := svc.Remove(ctx, credsFor(benID), "rep1")
	requireCode(t, err, apierr.CodeForbidden)
}
