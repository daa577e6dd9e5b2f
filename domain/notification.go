package domain

import (
	"context"
	"time"
)

type Notification struct {
	ID                   int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                *string    `gorm:"type:varchar(255)" json:"title"`
	Category             *string    `gorm:"type:varchar(100);index" json:"category"`
	Department           *string    `gorm:"type:varchar(255)" json:"department"`
	TotalVacancies       *int64     `json:"total_vacancies"`
	IsAdminCardAvailable bool       `gorm:"not null;default:false" json:"isAdminCardAvailable"`
	IsResultPublished    bool       `gorm:"not null;default:false" json:"isResultPublished"`
	IsAnswerKeyPublished bool       `gorm:"not null;default:false" json:"isAnswerKeyPublished"`
	IsArchived           bool       `gorm:"not null;default:false;index" json:"is_archived"`
	ApprovedAt           *time.Time `json:"approved_at"`
	ApprovedBy           *string    `gorm:"type:varchar(100)" json:"approved_by"`
	VerifiedAt           *time.Time `json:"verified_at"`
	VerifiedBy           *string    `gorm:"type:varchar(100)" json:"verified_by"`
	CreatedAt            time.Time  `gorm:"autoCreateTime:false;not null;index" json:"created_at"`
	UpdatedAt            *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

type ImportantDate struct {
	ID                     int          `gorm:"primaryKey;autoIncrement" json:"id"`
	NotificationID         int          `gorm:"not null;uniqueIndex" json:"notification_id"`
	Notification           Notification `gorm:"foreignKey:NotificationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ApplicationBeginDate   *time.Time   `gorm:"type:date" json:"application_begin_date"`
	LastDateForApply       *time.Time   `gorm:"type:date" json:"last_date_for_apply"`
	ExamDate               *time.Time   `gorm:"type:date" json:"exam_date"`
	AdmitCardAvailableDate *time.Time   `gorm:"type:date" json:"admit_card_available_date"`
	ResultDate             *time.Time   `gorm:"type:date" json:"result_date"`
}

type Fee struct {
	ID              int          `gorm:"primaryKey;autoIncrement" json:"id"`
	NotificationID  int          `gorm:"not null;uniqueIndex" json:"notification_id"`
	Notification    Notification `gorm:"foreignKey:NotificationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	GeneralFee      *float64     `gorm:"type:numeric(10,2)" json:"general_fee"`
	ObcFee          *float64     `gorm:"type:numeric(10,2)" json:"obc_fee"`
	ScFee           *float64     `gorm:"type:numeric(10,2)" json:"sc_fee"`
	StFee           *float64     `gorm:"type:numeric(10,2)" json:"st_fee"`
	PhFee           *float64     `gorm:"type:numeric(10,2)" json:"ph_fee"`
	OtherFeeDetails *string      `gorm:"type:text" json:"other_fee_details"`
}

type Eligibility struct {
	ID                   int          `gorm:"primaryKey;autoIncrement" json:"id"`
	NotificationID       int          `gorm:"not null;uniqueIndex" json:"notification_id"`
	Notification         Notification `gorm:"foreignKey:NotificationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MinAge               *int64       `json:"min_age"`
	MaxAge               *int64       `json:"max_age"`
	AgeRelaxationDetails *string      `gorm:"type:text" json:"age_relaxation_details"`
}

func (Eligibility) TableName() string {
	return "eligibility"
}

type EducationQualification struct {
	ID                int         `gorm:"primaryKey;autoIncrement" json:"id"`
	EligibilityID     int         `gorm:"not null;uniqueIndex" json:"eligibility_id"`
	Eligibility       Eligibility `gorm:"foreignKey:EligibilityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Qualification     *string     `gorm:"type:varchar(255)" json:"qualification"`
	Specialization    *string     `gorm:"type:varchar(255)" json:"specialization"`
	MinPercentage     *float64    `gorm:"type:numeric(5,2)" json:"min_percentage"`
	AdditionalDetails *string     `gorm:"type:text" json:"additional_details"`
}

type Link struct {
	ID                 int          `gorm:"primaryKey;autoIncrement" json:"id"`
	NotificationID     int          `gorm:"not null;uniqueIndex" json:"notification_id"`
	Notification       Notification `gorm:"foreignKey:NotificationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ApplyOnlineURL     *string      `gorm:"column:apply_online_url;type:text" json:"apply_online_url"`
	NotificationPdfURL *string      `gorm:"column:notification_pdf_url;type:text" json:"notification_pdf_url"`
	OfficialWebsiteURL *string      `gorm:"column:official_website_url;type:text" json:"official_website_url"`
	AdmitCardURL       *string      `gorm:"column:admit_card_url;type:text" json:"admit_card_url"`
	ResultURL          *string      `gorm:"column:result_url;type:text" json:"result_url"`
	AnswerKeyURL       *string      `gorm:"column:answer_key_url;type:text" json:"answer_key_url"`
	OtherLinks         *string      `gorm:"type:text" json:"other_links"`
}

// HasAnyField reports whether the row carries at least one value worth persisting.
func (d ImportantDate) HasAnyField() bool {
	return d.ApplicationBeginDate != nil || d.LastDateForApply != nil || d.ExamDate != nil ||
		d.AdmitCardAvailableDate != nil || d.ResultDate != nil
}

func (f Fee) HasAnyField() bool {
	return f.GeneralFee != nil || f.ObcFee != nil || f.ScFee != nil || f.StFee != nil ||
		f.PhFee != nil || f.OtherFeeDetails != nil
}

func (e Eligibility) HasAnyField() bool {
	return e.MinAge != nil || e.MaxAge != nil || e.AgeRelaxationDetails != nil
}

// HasAnyField is keyed on the qualification alone, the other columns only refine it.
func (q EducationQualification) HasAnyField() bool {
	return q.Qualification != nil
}

func (l Link) HasAnyField() bool {
	return l.ApplyOnlineURL != nil || l.NotificationPdfURL != nil || l.OfficialWebsiteURL != nil ||
		l.AdmitCardURL != nil || l.ResultURL != nil || l.AnswerKeyURL != nil || l.OtherLinks != nil
}

// NotificationView is the flattened left join of a notification and its sub rows.
type NotificationView struct {
	Notification

	ApplicationBeginDate   *time.Time `json:"application_begin_date"`
	LastDateForApply       *time.Time `json:"last_date_for_apply"`
	ExamDate               *time.Time `json:"exam_date"`
	AdmitCardAvailableDate *time.Time `json:"admit_card_available_date"`
	ResultDate             *time.Time `json:"result_date"`

	GeneralFee      *float64 `json:"general_fee"`
	ObcFee          *float64 `json:"obc_fee"`
	ScFee           *float64 `json:"sc_fee"`
	StFee           *float64 `json:"st_fee"`
	PhFee           *float64 `json:"ph_fee"`
	OtherFeeDetails *string  `json:"other_fee_details"`

	MinAge               *int64  `json:"min_age"`
	MaxAge               *int64  `json:"max_age"`
	AgeRelaxationDetails *string `json:"age_relaxation_details"`

	Qualification     *string  `json:"qualification"`
	Specialization    *string  `json:"specialization"`
	MinPercentage     *float64 `json:"min_percentage"`
	AdditionalDetails *string  `json:"additional_details"`

	ApplyOnlineURL     *string `gorm:"column:apply_online_url" json:"apply_online_url"`
	NotificationPdfURL *string `gorm:"column:notification_pdf_url" json:"notification_pdf_url"`
	OfficialWebsiteURL *string `gorm:"column:official_website_url" json:"official_website_url"`
	AdmitCardURL       *string `gorm:"column:admit_card_url" json:"admit_card_url"`
	ResultURL          *string `gorm:"column:result_url" json:"result_url"`
	AnswerKeyURL       *string `gorm:"column:answer_key_url" json:"answer_key_url"`
	OtherLinks         *string `json:"other_links"`
}

type NotificationSummary struct {
	Name           string `json:"name"`
	NotificationID string `json:"notification_id"`
}

type CategoryPage struct {
	Data    []NotificationSummary `json:"data"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	HasMore bool                  `json:"hasMore"`
}

type AddNotificationResult struct {
	Success        bool   `json:"success"`
	NotificationID int    `json:"notificationId"`
	Message        string `json:"message"`
}

const UncategorizedCategory = "Uncategorized"

type NotificationRepo interface {
	AddCompleteNotification(ctx context.Context, payload *NotificationPayload) (*AddNotificationResult, error)
	ViewNotifications(ctx context.Context) ([]Notification, error)
	GetNotificationByID(ctx context.Context, id int) (*NotificationView, error)
	EditNotification(ctx context.Context, id int, payload *NotificationPayload) (*NotificationView, error)
	ApproveNotification(ctx context.Context, id int, approvedBy, verifiedBy string) (*Notification, error)
	ArchiveNotification(ctx context.Context, id int) (*Notification, error)
	UnarchiveNotification(ctx context.Context, id int) (*Notification, error)
	GetHomePageNotifications(ctx context.Context) (map[string][]NotificationSummary, error)
	GetNotificationsByCategory(ctx context.Context, category string, page, limit int) (*CategoryPage, error)
}

type NotificationUseCase interface {
	AddCompleteNotification(ctx context.Context, payload *NotificationPayload) (*AddNotificationResult, error)
	ViewNotifications(ctx context.Context) ([]Notification, error)
	GetNotificationByID(ctx context.Context, id int) (*NotificationView, error)
	EditNotification(ctx context.Context, id int, payload *NotificationPayload) (*NotificationView, error)
	ApproveNotification(ctx context.Context, id int, approvedBy, verifiedBy string) (*Notification, error)
	ArchiveNotification(ctx context.Context, id int) (*Notification, error)
	UnarchiveNotification(ctx context.Context, id int) (*Notification, error)
	GetHomePageNotifications(ctx context.Context) (map[string][]NotificationSummary, error)
	GetNotificationsByCategory(ctx context.Context, category string, page, limit int) (*CategoryPage, error)
}
