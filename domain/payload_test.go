package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitment/domain"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		want  float64
	}{
		{"number", `12`, true, 12},
		{"numeric string", `"12.75"`, true, 12.75},
		{"padded string", `" 40 "`, true, 40},
		{"zero", `0`, true, 0},
		{"null", `null`, false, 0},
		{"empty string", `""`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n domain.Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.Float)
		})
	}
}

func TestNumberUnmarshalRejectsGarbage(t *testing.T) {
	for _, in := range []string{`"abc"`, `"12abc"`, `true`, `"NaN"`, `[1]`} {
		var n domain.Number
		assert.Error(t, json.Unmarshal([]byte(in), &n), in)
	}
}

func TestNumberIntPtrTruncates(t *testing.T) {
	assert.EqualValues(t, 12, *domain.NewNumber(12.7).IntPtr())
	assert.EqualValues(t, -3, *domain.NewNumber(-3.9).IntPtr())
	assert.Nil(t, domain.Number{}.IntPtr())
	assert.Nil(t, domain.Number{}.FloatPtr())
}

func TestDateUnmarshal(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-15"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2025-03-15T10:30:00Z"`), &d))
	assert.Equal(t, "2025-03-15", d.Time.Format("2006-01-02"))

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.False(t, d.Valid)
	assert.Nil(t, d.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2025"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20250315`), &d))
}

func TestPayloadDecodesMixedInput(t *testing.T) {
	body := `{
		"title": "SSC GD",
		"category": "  ",
		"total_vacancies": "39481",
		"isResultPublished": true,
		"exam_date": "2025-02-04",
		"general_fee": 100,
		"min_age": "",
		"qualification": "10th pass"
	}`

	var p domain.NotificationPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	row := p.NotificationRow()
	assert.Equal(t, "SSC GD", *row.Title)
	assert.Nil(t, row.Category)
	assert.EqualValues(t, 39481, *row.TotalVacancies)
	assert.True(t, row.IsResultPublished)
	assert.False(t, row.IsAdminCardAvailable)

	assert.True(t, p.ImportantDatesRow(1).HasAnyField())
	assert.True(t, p.FeesRow(1).HasAnyField())
	assert.False(t, p.EligibilityRow(1).HasAnyField())
	assert.True(t, p.EducationRow(1).HasAnyField())
	assert.False(t, p.LinksRow(1).HasAnyField())
}

func TestHasAnyField(t *testing.T) {
	zero := 0.0
	text := "details"

	assert.False(t, domain.ImportantDate{NotificationID: 1}.HasAnyField())
	assert.True(t, domain.Fee{PhFee: &zero}.HasAnyField())
	assert.True(t, domain.Fee{OtherFeeDetails: &text}.HasAnyField())
	assert.False(t, domain.Eligibility{NotificationID: 1}.HasAnyField())
	assert.True(t, domain.Link{OtherLinks: &text}.HasAnyField())

	// Specialization alone does not make an education row.
	assert.False(t, domain.EducationQualification{Specialization: &text}.HasAnyField())
	assert.True(t, domain.EducationQualification{Qualification: &text}.HasAnyField())
}

func TestValidate(t *testing.T) {
	bad := "not a url"
	long := strings.Repeat("a", 300)

	appErr := domain.Validate(&domain.NotificationPayload{ApplyOnlineURL: &bad})
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, domain.KindBadRequest, appErr.Kind)
	assert.Contains(t, appErr.Details["errors"], "apply_online_url must be a valid URL")

	appErr = domain.Validate(&domain.NotificationPayload{Title: &long})
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details["errors"], "Title must be at most 255 characters")

	good := "https://example.com/apply"
	title := "Title"
	assert.Nil(t, domain.Validate(&domain.NotificationPayload{Title: &title, ApplyOnlineURL: &good}))
	assert.Nil(t, domain.Validate(&domain.NotificationPayload{}))
}
