package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number accepts a JSON number or a numeric string. null and "" leave it unset.
type Number struct {
	Float float64
	Valid bool
}

func NewNumber(f float64) Number {
	return Number{Float: f, Valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || string(raw) == "null" {
		*n = Number{}
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		s, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid number %s: %w", text, err)
		}
		text = strings.TrimSpace(s)
		if text == "" {
			*n = Number{}
			return nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %q", text)
	}

	*n = Number{Float: f, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Float, 'f', -1, 64)), nil
}

// IntPtr truncates toward zero, "12.7" becomes 12.
func (n Number) IntPtr() *int64 {
	if !n.Valid {
		return nil
	}
	v := int64(math.Trunc(n.Float))
	return &v
}

func (n Number) FloatPtr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float
	return &v
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// Date accepts "2006-01-02" or an RFC 3339 timestamp. null and "" leave it unset.
type Date struct {
	Time  time.Time
	Valid bool
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || string(raw) == "null" {
		*d = Date{}
		return nil
	}
	if raw[0] != '"' {
		return fmt.Errorf("invalid date %s: expected a string", raw)
	}

	s, err := strconv.Unquote(string(raw))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", raw, err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Time: t, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Time.Format("2006-01-02"))), nil
}

func (d Date) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// NotificationPayload is the body of both add and edit. Unknown keys are rejected by the decoder.
type NotificationPayload struct {
	Title                *string `json:"title" valid:"runelength(1|255)~Title must be at most 255 characters"`
	Category             *string `json:"category" valid:"runelength(1|100)~Category must be at most 100 characters"`
	Department           *string `json:"department" valid:"runelength(1|255)~Department must be at most 255 characters"`
	TotalVacancies       Number  `json:"total_vacancies" valid:"-"`
	IsAdminCardAvailable *bool   `json:"isAdminCardAvailable"`
	IsResultPublished    *bool   `json:"isResultPublished"`
	IsAnswerKeyPublished *bool   `json:"isAnswerKeyPublished"`

	ApplicationBeginDate   Date `json:"application_begin_date" valid:"-"`
	LastDateForApply       Date `json:"last_date_for_apply" valid:"-"`
	ExamDate               Date `json:"exam_date" valid:"-"`
	AdmitCardAvailableDate Date `json:"admit_card_available_date" valid:"-"`
	ResultDate             Date `json:"result_date" valid:"-"`

	GeneralFee      Number  `json:"general_fee" valid:"-"`
	ObcFee          Number  `json:"obc_fee" valid:"-"`
	ScFee           Number  `json:"sc_fee" valid:"-"`
	StFee           Number  `json:"st_fee" valid:"-"`
	PhFee           Number  `json:"ph_fee" valid:"-"`
	OtherFeeDetails *string `json:"other_fee_details"`

	MinAge               Number  `json:"min_age" valid:"-"`
	MaxAge               Number  `json:"max_age" valid:"-"`
	AgeRelaxationDetails *string `json:"age_relaxation_details"`

	Qualification     *string `json:"qualification" valid:"runelength(1|255)~Qualification must be at most 255 characters"`
	Specialization    *string `json:"specialization" valid:"runelength(1|255)~Specialization must be at most 255 characters"`
	MinPercentage     Number  `json:"min_percentage" valid:"-"`
	AdditionalDetails *string `json:"additional_details"`

	ApplyOnlineURL     *string `json:"apply_online_url" valid:"url~apply_online_url must be a valid URL"`
	NotificationPdfURL *string `json:"notification_pdf_url" valid:"url~notification_pdf_url must be a valid URL"`
	OfficialWebsiteURL *string `json:"official_website_url" valid:"url~official_website_url must be a valid URL"`
	AdmitCardURL       *string `json:"admit_card_url" valid:"url~admit_card_url must be a valid URL"`
	ResultURL          *string `json:"result_url" valid:"url~result_url must be a valid URL"`
	AnswerKeyURL       *string `json:"answer_key_url" valid:"url~answer_key_url must be a valid URL"`
	OtherLinks         *string `json:"other_links"`
}

// NotificationRow maps the main table columns. Absent flags become false.
func (p *NotificationPayload) NotificationRow() Notification {
	return Notification{
		Title:                nullableString(p.Title),
		Category:             nullableString(p.Category),
		Department:           nullableString(p.Department),
		TotalVacancies:       p.TotalVacancies.IntPtr(),
		IsAdminCardAvailable: boolValue(p.IsAdminCardAvailable),
		IsResultPublished:    boolValue(p.IsResultPublished),
		IsAnswerKeyPublished: boolValue(p.IsAnswerKeyPublished),
	}
}

func (p *NotificationPayload) ImportantDatesRow(notificationID int) ImportantDate {
	return ImportantDate{
		NotificationID:         notificationID,
		ApplicationBeginDate:   p.ApplicationBeginDate.Ptr(),
		LastDateForApply:       p.LastDateForApply.Ptr(),
		ExamDate:               p.ExamDate.Ptr(),
		AdmitCardAvailableDate: p.AdmitCardAvailableDate.Ptr(),
		ResultDate:             p.ResultDate.Ptr(),
	}
}

func (p *NotificationPayload) FeesRow(notificationID int) Fee {
	return Fee{
		NotificationID:  notificationID,
		GeneralFee:      p.GeneralFee.FloatPtr(),
		ObcFee:          p.ObcFee.FloatPtr(),
		ScFee:           p.ScFee.FloatPtr(),
		StFee:           p.StFee.FloatPtr(),
		PhFee:           p.PhFee.FloatPtr(),
		OtherFeeDetails: nullableString(p.OtherFeeDetails),
	}
}

func (p *NotificationPayload) EligibilityRow(notificationID int) Eligibility {
	return Eligibility{
		NotificationID:       notificationID,
		MinAge:               p.MinAge.IntPtr(),
		MaxAge:               p.MaxAge.IntPtr(),
		AgeRelaxationDetails: nullableString(p.AgeRelaxationDetails),
	}
}

func (p *NotificationPayload) EducationRow(eligibilityID int) EducationQualification {
	return EducationQualification{
		EligibilityID:     eligibilityID,
		Qualification:     nullableString(p.Qualification),
		Specialization:    nullableString(p.Specialization),
		MinPercentage:     p.MinPercentage.FloatPtr(),
		AdditionalDetails: nullableString(p.AdditionalDetails),
	}
}

func (p *NotificationPayload) LinksRow(notificationID int) Link {
	return Link{
		NotificationID:     notificationID,
		ApplyOnlineURL:     nullableString(p.ApplyOnlineURL),
		NotificationPdfURL: nullableString(p.NotificationPdfURL),
		OfficialWebsiteURL: nullableString(p.OfficialWebsiteURL),
		AdmitCardURL:       nullableString(p.AdmitCardURL),
		ResultURL:          nullableString(p.ResultURL),
		AnswerKeyURL:       nullableString(p.AnswerKeyURL),
		OtherLinks:         nullableString(p.OtherLinks),
	}
}

type ApprovePayload struct {
	ApprovedBy string `json:"approved_by" valid:"runelength(1|100)~approved_by must be at most 100 characters"`
	VerifiedBy string `json:"verified_by" valid:"runelength(1|100)~verified_by must be at most 100 characters"`
}

const DefaultApprover = "admin"

func nullableString(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
