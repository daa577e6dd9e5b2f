package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recruitment/domain"
)

type notificationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepo {
	return NewNotificationRepositoryWithClock(db, time.Now)
}

// NewNotificationRepositoryWithClock lets callers pin created_at / approved_at stamps.
func NewNotificationRepositoryWithClock(db *gorm.DB, now func() time.Time) domain.NotificationRepo {
	return &notificationRepository{
		db:  db,
		now: now,
	}
}

// detailRow is any of the sub tables hanging off a notification.
type detailRow interface {
	domain.ImportantDate | domain.Fee | domain.Eligibility | domain.EducationQualification | domain.Link
	HasAnyField() bool
}

// createIfPresent inserts row only when its group carries data, never a row of nulls.
func createIfPresent[T detailRow](tx *gorm.DB, row *T) (bool, error) {
	if !(*row).HasAnyField() {
		return false, nil
	}
	if err := tx.Omit(clause.Associations).Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}

// upsertByParent updates the single row owned by parentID, or falls back to createIfPresent.
// It returns the id of the existing row, 0 when none was found.
func upsertByParent[T detailRow](tx *gorm.DB, row *T, parentColumn string, parentID int, columns map[string]any) (int, bool, error) {
	var ids []int
	if err := tx.Model(new(T)).Where(parentColumn+" = ?", parentID).Limit(1).Pluck("id", &ids).Error; err != nil {
		return 0, false, err
	}

	if len(ids) > 0 {
		if err := tx.Model(new(T)).Where("id = ?", ids[0]).Updates(columns).Error; err != nil {
			return 0, false, err
		}
		return ids[0], false, nil
	}

	created, err := createIfPresent(tx, row)
	return 0, created, err
}

func (nr *notificationRepository) AddCompleteNotification(ctx context.Context, payload *domain.NotificationPayload) (*domain.AddNotificationResult, error) {
	tx := nr.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	notification := payload.NotificationRow()
	notification.CreatedAt = nr.now()
	if err := tx.Omit(clause.Associations).Create(&notification).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert notification: %w", err)
	}
	notificationID := notification.ID

	dates := payload.ImportantDatesRow(notificationID)
	if _, err := createIfPresent(tx, &dates); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert important dates: %w", err)
	}

	fees := payload.FeesRow(notificationID)
	if _, err := createIfPresent(tx, &fees); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert fees: %w", err)
	}

	eligibility := payload.EligibilityRow(notificationID)
	created, err := createIfPresent(tx, &eligibility)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert eligibility: %w", err)
	}

	if created {
		education := payload.EducationRow(eligibility.ID)
		if _, err := createIfPresent(tx, &education); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not insert education qualification: %w", err)
		}
	}

	links := payload.LinksRow(notificationID)
	if _, err := createIfPresent(tx, &links); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert links: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit notification: %w", err)
	}

	return &domain.AddNotificationResult{
		Success:        true,
		NotificationID: notificationID,
		Message:        "Notification added successfully",
	}, nil
}

func (nr *notificationRepository) EditNotification(ctx context.Context, id int, payload *domain.NotificationPayload) (*domain.NotificationView, error) {
	tx := nr.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// The main row is always rewritten, absent fields become NULL / false.
	row := payload.NotificationRow()
	res := tx.Model(&domain.Notification{}).Where("id = ?", id).Updates(map[string]any{
		"title":                   row.Title,
		"category":                row.Category,
		"department":              row.Department,
		"total_vacancies":         row.TotalVacancies,
		"is_admin_card_available": row.IsAdminCardAvailable,
		"is_result_published":     row.IsResultPublished,
		"is_answer_key_published": row.IsAnswerKeyPublished,
		"updated_at":              nr.now(),
	})
	if res.Error != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not update notification %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}

	dates := payload.ImportantDatesRow(id)
	if _, _, err := upsertByParent(tx, &dates, "notification_id", id, datesColumns(dates)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not save important dates: %w", err)
	}

	fees := payload.FeesRow(id)
	if _, _, err := upsertByParent(tx, &fees, "notification_id", id, feesColumns(fees)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not save fees: %w", err)
	}

	eligibility := payload.EligibilityRow(id)
	eligibilityID, created, err := upsertByParent(tx, &eligibility, "notification_id", id, eligibilityColumns(eligibility))
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not save eligibility: %w", err)
	}
	if created {
		eligibilityID = eligibility.ID
	}

	if eligibilityID != 0 {
		education := payload.EducationRow(eligibilityID)
		if _, _, err := upsertByParent(tx, &education, "eligibility_id", eligibilityID, educationColumns(education)); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not save education qualification: %w", err)
		}
	}

	links := payload.LinksRow(id)
	if _, _, err := upsertByParent(tx, &links, "notification_id", id, linksColumns(links)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not save links: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit notification %d: %w", id, err)
	}

	return nr.GetNotificationByID(ctx, id)
}

func datesColumns(d domain.ImportantDate) map[string]any {
	return map[string]any{
		"application_begin_date":    d.ApplicationBeginDate,
		"last_date_for_apply":       d.LastDateForApply,
		"exam_date":                 d.ExamDate,
		"admit_card_available_date": d.AdmitCardAvailableDate,
		"result_date":               d.ResultDate,
	}
}

func feesColumns(f domain.Fee) map[string]any {
	return map[string]any{
		"general_fee":       f.GeneralFee,
		"obc_fee":           f.ObcFee,
		"sc_fee":            f.ScFee,
		"st_fee":            f.StFee,
		"ph_fee":            f.PhFee,
		"other_fee_details": f.OtherFeeDetails,
	}
}

func eligibilityColumns(e domain.Eligibility) map[string]any {
	return map[string]any{
		"min_age":                e.MinAge,
		"max_age":                e.MaxAge,
		"age_relaxation_details": e.AgeRelaxationDetails,
	}
}

func educationColumns(q domain.EducationQualification) map[string]any {
	return map[string]any{
		"qualification":      q.Qualification,
		"specialization":     q.Specialization,
		"min_percentage":     q.MinPercentage,
		"additional_details": q.AdditionalDetails,
	}
}

func linksColumns(l domain.Link) map[string]any {
	return map[string]any{
		"apply_online_url":     l.ApplyOnlineURL,
		"notification_pdf_url": l.NotificationPdfURL,
		"official_website_url": l.OfficialWebsiteURL,
		"admit_card_url":       l.AdmitCardURL,
		"result_url":           l.ResultURL,
		"answer_key_url":       l.AnswerKeyURL,
		"other_links":          l.OtherLinks,
	}
}

func (nr *notificationRepository) ViewNotifications(ctx context.Context) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	err := nr.db.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %w", err)
	}
	return notifications, nil
}

const notificationViewColumns = `n.*,
	d.application_begin_date, d.last_date_for_apply, d.exam_date,
	d.admit_card_available_date, d.result_date,
	f.general_fee, f.obc_fee, f.sc_fee, f.st_fee, f.ph_fee, f.other_fee_details,
	e.min_age, e.max_age, e.age_relaxation_details,
	eq.qualification, eq.specialization, eq.min_percentage, eq.additional_details,
	l.apply_online_url, l.notification_pdf_url, l.official_website_url,
	l.admit_card_url, l.result_url, l.answer_key_url, l.other_links`

func (nr *notificationRepository) GetNotificationByID(ctx context.Context, id int) (*domain.NotificationView, error) {
	var view domain.NotificationView
	res := nr.db.WithContext(ctx).
		Table("notifications AS n").
		Select(notificationViewColumns).
		Joins("LEFT JOIN important_dates d ON n.id = d.notification_id").
		Joins("LEFT JOIN fees f ON n.id = f.notification_id").
		Joins("LEFT JOIN eligibility e ON n.id = e.notification_id").
		Joins("LEFT JOIN education_qualifications eq ON e.id = eq.eligibility_id").
		Joins("LEFT JOIN links l ON n.id = l.notification_id").
		Where("n.id = ?", id).
		Limit(1).
		Scan(&view)
	if res.Error != nil {
		return nil, fmt.Errorf("could not get notification %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	return &view, nil
}

func (nr *notificationRepository) ApproveNotification(ctx context.Context, id int, approvedBy, verifiedBy string) (*domain.Notification, error) {
	now := nr.now()
	return nr.updateAndFetch(ctx, id, map[string]any{
		"approved_at": now,
		"approved_by": approvedBy,
		"verified_at": now,
		"verified_by": verifiedBy,
	})
}

func (nr *notificationRepository) ArchiveNotification(ctx context.Context, id int) (*domain.Notification, error) {
	return nr.updateAndFetch(ctx, id, map[string]any{
		"is_archived": true,
		"updated_at":  nr.now(),
	})
}

func (nr *notificationRepository) UnarchiveNotification(ctx context.Context, id int) (*domain.Notification, error) {
	return nr.updateAndFetch(ctx, id, map[string]any{
		"is_archived": false,
		"updated_at":  nr.now(),
	})
}

func (nr *notificationRepository) updateAndFetch(ctx context.Context, id int, columns map[string]any) (*domain.Notification, error) {
	var notification domain.Notification
	err := nr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Notification{}).Where("id = ?", id).Updates(columns)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.First(&notification, id).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not update notification %d: %w", id, err)
	}
	return &notification, nil
}

// publiclyVisible keeps only approved notifications that are not archived.
func publiclyVisible(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ? AND approved_at IS NOT NULL", false)
}

func inCategory(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", category)
	}
}

func (nr *notificationRepository) GetHomePageNotifications(ctx context.Context) (map[string][]domain.NotificationSummary, error) {
	var rows []domain.Notification
	err := nr.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Select("id", "title", "category").
		Scopes(publiclyVisible).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get home page notifications: %w", err)
	}

	grouped := make(map[string][]domain.NotificationSummary)
	for _, n := range rows {
		category := domain.UncategorizedCategory
		if n.Category != nil && *n.Category != "" {
			category = *n.Category
		}
		grouped[category] = append(grouped[category], summarize(n))
	}

	return grouped, nil
}

// maxOffset bounds OFFSET so (page-1)*limit never wraps.
const maxOffset = math.MaxInt32

func (nr *notificationRepository) GetNotificationsByCategory(ctx context.Context, category string, page, limit int) (*domain.CategoryPage, error) {
	inRange := page >= 1 && limit >= 1 && page-1 <= maxOffset/limit
	offset := 0
	if inRange {
		offset = (page - 1) * limit
	}

	rows := []domain.Notification{}
	if inRange {
		err := nr.db.WithContext(ctx).
			Model(&domain.Notification{}).
			Select("id", "title").
			Scopes(publiclyVisible, inCategory(category)).
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Offset(offset).
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("could not get notifications for category %s: %w", category, err)
		}
	}

	var total int64
	err := nr.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Scopes(publiclyVisible, inCategory(category)).
		Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("could not count notifications for category %s: %w", category, err)
	}

	data := make([]domain.NotificationSummary, 0, len(rows))
	for _, n := range rows {
		data = append(data, summarize(n))
	}

	return &domain.CategoryPage{
		Data:    data,
		Total:   total,
		Page:    page,
		HasMore: inRange && int64(offset)+int64(len(rows)) < total,
	}, nil
}

func summarize(n domain.Notification) domain.NotificationSummary {
	name := ""
	if n.Title != nil {
		name = *n.Title
	}
	return domain.NotificationSummary{
		Name:           name,
		NotificationID: strconv.Itoa(n.ID),
	}
}
