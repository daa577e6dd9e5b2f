package repository_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"recruitment/domain"
	"recruitment/internal/testdb"
	"recruitment/services/notification/repository"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func itoa(i int) string       { return strconv.Itoa(i) }

func newRepo(t *testing.T) (domain.NotificationRepo, *gorm.DB) {
	t.Helper()
	gdb := testdb.Open(t)
	clock := testdb.Clock(time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC))
	return repository.NewNotificationRepositoryWithClock(gdb, clock), gdb
}

func count(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func fullPayload() *domain.NotificationPayload {
	return &domain.NotificationPayload{
		Title:                strPtr("SSC CGL 2025"),
		Category:             strPtr("SSC"),
		Department:           strPtr("Staff Selection Commission"),
		TotalVacancies:       domain.NewNumber(7500),
		IsAdminCardAvailable: boolPtr(true),

		ApplicationBeginDate: domain.NewDate(2025, time.June, 1),
		LastDateForApply:     domain.NewDate(2025, time.July, 1),

		GeneralFee:      domain.NewNumber(100),
		ScFee:           domain.NewNumber(0),
		OtherFeeDetails: strPtr("Women exempted"),

		MinAge: domain.NewNumber(18),
		MaxAge: domain.NewNumber(32),

		Qualification:  strPtr("Graduate"),
		Specialization: strPtr("Any"),
		MinPercentage:  domain.NewNumber(55.5),

		ApplyOnlineURL:     strPtr("https://ssc.gov.in/apply"),
		NotificationPdfURL: strPtr("https://ssc.gov.in/cgl.pdf"),
	}
}

func TestAddCompleteNotification_AllGroups(t *testing.T) {
	repo, gdb := newRepo(t)
	ctx := context.Background()

	res, err := repo.AddCompleteNotification(ctx, fullPayload())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Notification added successfully", res.Message)
	assert.NotZero(t, res.NotificationID)

	assert.EqualValues(t, 1, count(t, gdb, &domain.Notification{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.ImportantDate{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Fee{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Eligibility{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.EducationQualification{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Link{}))

	var eligibility domain.Eligibility
	require.NoError(t, gdb.Where("notification_id = ?", res.NotificationID).First(&eligibility).Error)
	var education domain.EducationQualification
	require.NoError(t, gdb.First(&education).Error)
	assert.Equal(t, eligibility.ID, education.EligibilityID)

	view, err := repo.GetNotificationByID(ctx, res.NotificationID)
	require.NoError(t, err)
	assert.Equal(t, "SSC CGL 2025", *view.Title)
	assert.EqualValues(t, 7500, *view.TotalVacancies)
	assert.True(t, view.IsAdminCardAvailable)
	assert.False(t, view.IsResultPublished)
	assert.False(t, view.IsArchived)
	assert.Nil(t, view.ApprovedAt)
	require.NotNil(t, view.ApplicationBeginDate)
	assert.Equal(t, "2025-06-01", view.ApplicationBeginDate.Format("2006-01-02"))
	assert.Nil(t, view.ExamDate)
	assert.InDelta(t, 100, *view.GeneralFee, 0.001)
	require.NotNil(t, view.ScFee)
	assert.InDelta(t, 0, *view.ScFee, 0.001)
	assert.Nil(t, view.ObcFee)
	assert.EqualValues(t, 32, *view.MaxAge)
	assert.Equal(t, "Graduate", *view.Qualification)
	assert.InDelta(t, 55.5, *view.MinPercentage, 0.001)
	assert.Equal(t, "https://ssc.gov.in/apply", *view.ApplyOnlineURL)
	assert.Nil(t, view.ResultURL)
}

func TestAddCompleteNotification_TitleAndCategoryOnly(t *testing.T) {
	repo, gdb := newRepo(t)

	res, err := repo.AddCompleteNotification(context.Background(), &domain.NotificationPayload{
		Title:    strPtr("Railway Group D"),
		Category: strPtr("Railway"),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, count(t, gdb, &domain.Notification{}))
	assert.Zero(t, count(t, gdb, &domain.ImportantDate{}))
	assert.Zero(t, count(t, gdb, &domain.Fee{}))
	assert.Zero(t, count(t, gdb, &domain.Eligibility{}))
	assert.Zero(t, count(t, gdb, &domain.EducationQualification{}))
	assert.Zero(t, count(t, gdb, &domain.Link{}))

	view, err := repo.GetNotificationByID(context.Background(), res.NotificationID)
	require.NoError(t, err)
	assert.Equal(t, "Railway", *view.Category)
	assert.Nil(t, view.Department)
	assert.Nil(t, view.TotalVacancies)
	assert.False(t, view.IsAdminCardAvailable)
	assert.Nil(t, view.ApplicationBeginDate)
	assert.Nil(t, view.GeneralFee)
	assert.Nil(t, view.Qualification)
	assert.Nil(t, view.ApplyOnlineURL)
}

func TestAddCompleteNotification_EducationNeedsEligibility(t *testing.T) {
	repo, gdb := newRepo(t)

	_, err := repo.AddCompleteNotification(context.Background(), &domain.NotificationPayload{
		Title:         strPtr("Clerk"),
		Qualification: strPtr("12th pass"),
	})
	require.NoError(t, err)
	assert.Zero(t, count(t, gdb, &domain.Eligibility{}))
	assert.Zero(t, count(t, gdb, &domain.EducationQualification{}))

	_, err = repo.AddCompleteNotification(context.Background(), &domain.NotificationPayload{
		Title:          strPtr("Constable"),
		MinAge:         domain.NewNumber(18),
		Specialization: strPtr("Science"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count(t, gdb, &domain.Eligibility{}))
	assert.Zero(t, count(t, gdb, &domain.EducationQualification{}))
}

func TestAddCompleteNotification_RollsBackOnFailure(t *testing.T) {
	repo, gdb := newRepo(t)
	require.NoError(t, gdb.Migrator().DropTable(&domain.Link{}))

	_, err := repo.AddCompleteNotification(context.Background(), fullPayload())
	require.Error(t, err)

	assert.Zero(t, count(t, gdb, &domain.Notification{}))
	assert.Zero(t, count(t, gdb, &domain.ImportantDate{}))
	assert.Zero(t, count(t, gdb, &domain.Fee{}))
	assert.Zero(t, count(t, gdb, &domain.Eligibility{}))
	assert.Zero(t, count(t, gdb, &domain.EducationQualification{}))
}

func TestEditNotification(t *testing.T) {
	repo, gdb := newRepo(t)
	ctx := context.Background()

	res, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{
		Title:            strPtr("Bank PO"),
		Category:         strPtr("Bank"),
		LastDateForApply: domain.NewDate(2025, time.March, 10),
		MinAge:           domain.NewNumber(21),
	})
	require.NoError(t, err)
	assert.Zero(t, count(t, gdb, &domain.Fee{}))

	view, err := repo.EditNotification(ctx, res.NotificationID, &domain.NotificationPayload{
		Title:             strPtr("Bank PO 2025"),
		IsResultPublished: boolPtr(true),
		ExamDate:          domain.NewDate(2025, time.April, 20),
		GeneralFee:        domain.NewNumber(850),
		MaxAge:            domain.NewNumber(30),
		Qualification:     strPtr("Graduate"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bank PO 2025", *view.Title)
	assert.True(t, view.IsResultPublished)
	assert.NotNil(t, view.UpdatedAt)
	// Fields absent from the edit are cleared.
	assert.Nil(t, view.Category)
	assert.Nil(t, view.LastDateForApply)
	assert.Nil(t, view.MinAge)

	require.NotNil(t, view.ExamDate)
	assert.Equal(t, "2025-04-20", view.ExamDate.Format("2006-01-02"))
	assert.InDelta(t, 850, *view.GeneralFee, 0.001)
	assert.EqualValues(t, 30, *view.MaxAge)
	assert.Equal(t, "Graduate", *view.Qualification)

	assert.EqualValues(t, 1, count(t, gdb, &domain.ImportantDate{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Fee{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Eligibility{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.EducationQualification{}))
	assert.Zero(t, count(t, gdb, &domain.Link{}))
}

func TestEditNotification_KeepsOneRowPerGroup(t *testing.T) {
	repo, gdb := newRepo(t)
	ctx := context.Background()

	res, err := repo.AddCompleteNotification(ctx, fullPayload())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := repo.EditNotification(ctx, res.NotificationID, fullPayload())
		require.NoError(t, err)
	}

	assert.EqualValues(t, 1, count(t, gdb, &domain.ImportantDate{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Fee{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Eligibility{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.EducationQualification{}))
	assert.EqualValues(t, 1, count(t, gdb, &domain.Link{}))
}

func TestNotFound(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetNotificationByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.EditNotification(ctx, 404, &domain.NotificationPayload{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.ApproveNotification(ctx, 404, "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.ArchiveNotification(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.UnarchiveNotification(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArchiveAndUnarchive(t *testing.T) {
	repo, gdb := newRepo(t)
	ctx := context.Background()

	first, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{Title: strPtr("First")})
	require.NoError(t, err)
	second, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{Title: strPtr("Second")})
	require.NoError(t, err)

	list, err := repo.ViewNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.NotificationID, list[0].ID)

	archived, err := repo.ArchiveNotification(ctx, first.NotificationID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	list, err = repo.ViewNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.NotificationID, list[0].ID)
	assert.EqualValues(t, 2, count(t, gdb, &domain.Notification{}))

	restored, err := repo.UnarchiveNotification(ctx, first.NotificationID)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)

	list, err = repo.ViewNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestViewNotifications_Empty(t *testing.T) {
	repo, _ := newRepo(t)

	list, err := repo.ViewNotifications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestApproveNotification(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	res, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{Title: strPtr("UPSC CSE")})
	require.NoError(t, err)

	n, err := repo.ApproveNotification(ctx, res.NotificationID, "editor", "reviewer")
	require.NoError(t, err)
	require.NotNil(t, n.ApprovedAt)
	require.NotNil(t, n.VerifiedAt)
	assert.Equal(t, "editor", *n.ApprovedBy)
	assert.Equal(t, "reviewer", *n.VerifiedBy)
	assert.True(t, n.ApprovedAt.Equal(*n.VerifiedAt))

	again, err := repo.ApproveNotification(ctx, res.NotificationID, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", *again.ApprovedBy)
	assert.True(t, again.ApprovedAt.After(*n.ApprovedAt))
}

func addApproved(t *testing.T, repo domain.NotificationRepo, title string, category *string) int {
	t.Helper()
	ctx := context.Background()
	res, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{Title: strPtr(title), Category: category})
	require.NoError(t, err)
	_, err = repo.ApproveNotification(ctx, res.NotificationID, "admin", "admin")
	require.NoError(t, err)
	return res.NotificationID
}

func TestGetHomePageNotifications(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	bankOld := addApproved(t, repo, "Bank Clerk", strPtr("Bank"))
	bankNew := addApproved(t, repo, "Bank PO", strPtr("Bank"))
	loose := addApproved(t, repo, "Misc", nil)
	blank := addApproved(t, repo, "Blank", strPtr("   "))

	_, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{Title: strPtr("Pending"), Category: strPtr("Bank")})
	require.NoError(t, err)

	archived := addApproved(t, repo, "Old", strPtr("Railway"))
	_, err = repo.ArchiveNotification(ctx, archived)
	require.NoError(t, err)

	grouped, err := repo.GetHomePageNotifications(ctx)
	require.NoError(t, err)

	require.Len(t, grouped, 2)
	assert.Equal(t, []domain.NotificationSummary{
		{Name: "Bank PO", NotificationID: itoa(bankNew)},
		{Name: "Bank Clerk", NotificationID: itoa(bankOld)},
	}, grouped["Bank"])
	assert.Equal(t, []domain.NotificationSummary{
		{Name: "Blank", NotificationID: itoa(blank)},
		{Name: "Misc", NotificationID: itoa(loose)},
	}, grouped[domain.UncategorizedCategory])
	assert.NotContains(t, grouped, "Railway")
}

func TestGetNotificationsByCategory(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first := addApproved(t, repo, "Bank 1", strPtr("Bank"))
	second := addApproved(t, repo, "Bank 2", strPtr("Bank"))
	third := addApproved(t, repo, "Bank 3", strPtr("Bank"))
	addApproved(t, repo, "SSC 1", strPtr("SSC"))

	page1, err := repo.GetNotificationsByCategory(ctx, "Bank", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page1.Total)
	assert.Equal(t, 1, page1.Page)
	assert.True(t, page1.HasMore)
	assert.Equal(t, []domain.NotificationSummary{
		{Name: "Bank 3", NotificationID: itoa(third)},
		{Name: "Bank 2", NotificationID: itoa(second)},
	}, page1.Data)

	page2, err := repo.GetNotificationsByCategory(ctx, "Bank", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page2.Total)
	assert.Equal(t, 2, page2.Page)
	assert.False(t, page2.HasMore)
	assert.Equal(t, []domain.NotificationSummary{
		{Name: "Bank 1", NotificationID: itoa(first)},
	}, page2.Data)

	empty, err := repo.GetNotificationsByCategory(ctx, "Defence", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
	assert.False(t, empty.HasMore)
}

func TestGetNotificationsByCategory_PageBeyondRange(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	addApproved(t, repo, "Bank 1", strPtr("Bank"))
	addApproved(t, repo, "Bank 2", strPtr("Bank"))

	far, err := repo.GetNotificationsByCategory(ctx, "Bank", 1<<62, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 2, far.Total)
	assert.Empty(t, far.Data)
	assert.False(t, far.HasMore)

	past, err := repo.GetNotificationsByCategory(ctx, "Bank", 3, 1)
	require.NoError(t, err)
	assert.Empty(t, past.Data)
	assert.False(t, past.HasMore)
}

func TestEditNotification_RollsBackOnFailure(t *testing.T) {
	repo, gdb := newRepo(t)
	ctx := context.Background()

	res, err := repo.AddCompleteNotification(ctx, &domain.NotificationPayload{
		Title:      strPtr("Orig"),
		GeneralFee: domain.NewNumber(5),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Migrator().DropTable(&domain.Link{}))

	_, err = repo.EditNotification(ctx, res.NotificationID, &domain.NotificationPayload{
		Title:          strPtr("Changed"),
		GeneralFee:     domain.NewNumber(900),
		ApplyOnlineURL: strPtr("https://example.com/apply"),
	})
	require.ErrorContains(t, err, "could not save links")

	var n domain.Notification
	require.NoError(t, gdb.First(&n, res.NotificationID).Error)
	assert.Equal(t, "Orig", *n.Title)
	assert.Nil(t, n.UpdatedAt)

	var fee domain.Fee
	require.NoError(t, gdb.Where("notification_id = ?", res.NotificationID).First(&fee).Error)
	assert.InDelta(t, 5, *fee.GeneralFee, 0.001)
}
