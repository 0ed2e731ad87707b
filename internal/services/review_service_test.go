package services

import (
	"testing"

	"craftlink/internal/appErrors"
	"craftlink/internal/models"
	"craftlink/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewAndDuplicate(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	client := createTestUser(t, db, models.UserRoleClient, true)
	artisan := createTestArtisan(t, db, fx, true, true, 40)

	review, err := container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating:  5,
		Comment: "Fixed the leak in an hour",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.True(t, review.Recommend) // defaults to true when omitted

	_, err = container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating:  1,
		Comment: "Trying to overwrite",
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateReview)

	// The original review survives the rejected duplicate.
	var kept models.Review
	require.NoError(t, db.First(&kept, "id = ?", review.ID).Error)
	assert.Equal(t, 5, kept.Rating)
}

func TestSubmitReviewEligibilityChecks(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	verified := createTestArtisan(t, db, fx, true, true, 40)
	unverified := createTestArtisan(t, db, fx, false, true, 40)

	// Only client accounts may review.
	artisanUser := createTestUser(t, db, models.UserRoleArtisan, true)
	_, err := container.ReviewService.SubmitReview(artisanUser.ID, verified.ID, &dto.SubmitReviewRequest{
		Rating: 5, Comment: "Nice colleague",
	})
	assert.ErrorIs(t, err, appErrors.ErrNotEligible)

	// Unverified artisans cannot collect reviews.
	client := createTestUser(t, db, models.UserRoleClient, true)
	_, err = container.ReviewService.SubmitReview(client.ID, unverified.ID, &dto.SubmitReviewRequest{
		Rating: 5, Comment: "Too early",
	})
	assert.ErrorIs(t, err, appErrors.ErrNotEligible)

	_, err = container.ReviewService.SubmitReview(client.ID, "00000000-0000-0000-0000-000000000000", &dto.SubmitReviewRequest{
		Rating: 5, Comment: "Ghost",
	})
	assert.ErrorIs(t, err, appErrors.ErrArtisanNotFound)
}

func TestListArtisanReviews(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Carpentry")
	artisan := createTestArtisan(t, db, fx, true, true, 40)
	rateArtisan(t, db, artisan.ID, 5, 5, 3)

	resp, err := container.ReviewService.ListArtisanReviews(artisan.ID, "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Len(t, resp.Reviews, 3)
	assert.Equal(t, int64(2), resp.RatingCounts[5])
	assert.Equal(t, int64(1), resp.RatingCounts[3])
	assert.Equal(t, int64(0), resp.RatingCounts[4])

	resp, err = container.ReviewService.ListArtisanReviews(artisan.ID, "5", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalCount)

	// A malformed star filter is dropped, not an error.
	resp, err = container.ReviewService.ListArtisanReviews(artisan.ID, "ten", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount)
}

func TestListArtisanReviewsHiddenArtisan(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Carpentry")
	pending := createTestArtisan(t, db, fx, false, false, 40)

	_, err := container.ReviewService.ListArtisanReviews(pending.ID, "", 1)
	assert.ErrorIs(t, err, appErrors.ErrArtisanNotFound)
}

func TestVoteHelpfulReplacesPreviousVote(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	artisan := createTestArtisan(t, db, fx, true, true, 40)
	client := createTestUser(t, db, models.UserRoleClient, true)
	voter := createTestUser(t, db, models.UserRoleClient, true)

	review, err := container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating: 4, Comment: "Good value",
	})
	require.NoError(t, err)

	count, err := container.ReviewService.VoteHelpful(review.ID, voter.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = container.ReviewService.VoteHelpful(review.ID, voter.ID, false)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = container.ReviewService.VoteHelpful("00000000-0000-0000-0000-000000000000", voter.ID, true)
	assert.ErrorIs(t, err, appErrors.ErrReviewNotFound)
}

func TestReportReviewAndDuplicate(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	artisan := createTestArtisan(t, db, fx, true, true, 40)
	client := createTestUser(t, db, models.UserRoleClient, true)
	reporter := createTestUser(t, db, models.UserRoleClient, true)

	review, err := container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating: 1, Comment: "Suspicious",
	})
	require.NoError(t, err)

	report, err := container.ReviewService.ReportReview(review.ID, reporter.ID, &dto.ReportReviewRequest{
		Reason: "spam",
	})
	require.NoError(t, err)
	assert.False(t, report.IsResolved)
	assert.Equal(t, models.ReportReasonSpam, report.Reason)

	_, err = container.ReviewService.ReportReview(review.ID, reporter.ID, &dto.ReportReviewRequest{
		Reason: "fake",
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateReport)
}

func TestResolveReportIsIdempotent(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	artisan := createTestArtisan(t, db, fx, true, true, 40)
	client := createTestUser(t, db, models.UserRoleClient, true)
	reporter := createTestUser(t, db, models.UserRoleClient, true)
	admin := createTestUser(t, db, models.UserRoleAdmin, true)
	otherAdmin := createTestUser(t, db, models.UserRoleAdmin, true)

	review, err := container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating: 1, Comment: "Suspicious",
	})
	require.NoError(t, err)
	report, err := container.ReviewService.ReportReview(review.ID, reporter.ID, &dto.ReportReviewRequest{
		Reason: "spam",
	})
	require.NoError(t, err)

	resolved, err := container.ReviewService.ResolveReport(report.ID, admin.ID)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, admin.ID, *resolved.ResolvedBy)
	require.NotNil(t, resolved.ResolvedAt)
	firstResolvedAt := *resolved.ResolvedAt

	// Resolving again succeeds and keeps the original resolution.
	again, err := container.ReviewService.ResolveReport(report.ID, otherAdmin.ID)
	require.NoError(t, err)
	assert.True(t, again.IsResolved)
	require.NotNil(t, again.ResolvedBy)
	assert.Equal(t, admin.ID, *again.ResolvedBy)
	require.NotNil(t, again.ResolvedAt)
	assert.True(t, again.ResolvedAt.Equal(firstResolvedAt))

	_, err = container.ReviewService.ResolveReport("00000000-0000-0000-0000-000000000000", admin.ID)
	assert.ErrorIs(t, err, appErrors.ErrReportNotFound)
}

func TestListReportsQueue(t *testing.T) {
	db, container := newTestContainer(t)
	fx := seedTestCatalog(t, db, "Plumbing")
	artisan := createTestArtisan(t, db, fx, true, true, 40)
	client := createTestUser(t, db, models.UserRoleClient, true)
	admin := createTestUser(t, db, models.UserRoleAdmin, true)

	review, err := container.ReviewService.SubmitReview(client.ID, artisan.ID, &dto.SubmitReviewRequest{
		Rating: 1, Comment: "Suspicious",
	})
	require.NoError(t, err)

	for _, reason := range []string{"spam", "fake"} {
		reporter := createTestUser(t, db, models.UserRoleClient, true)
		_, err := container.ReviewService.ReportReview(review.ID, reporter.ID, &dto.ReportReviewRequest{Reason: reason})
		require.NoError(t, err)
	}

	resp, err := container.ReviewService.ListReports(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalCount)

	_, err = container.ReviewService.ResolveReport(resp.Reports[0].ID, admin.ID)
	require.NoError(t, err)

	unresolved := false
	resp, err = container.ReviewService.ListReports(&unresolved, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
}
