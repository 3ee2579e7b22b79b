package inspect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/forwardinfo/internal/inspect"
)

func TestFormatChat(t *testing.T) {
	t.Parallel()

	t.Run("with username", func(t *testing.T) {
		t.Parallel()
		got := inspect.FormatChat(inspect.ChatProfile{ID: -1001234, Title: "News.Daily", Username: "news_daily"})
		assert.Contains(t, got, "*Title:* News\\.Daily\n")
		assert.Contains(t, got, "*Username:* @news\\_daily\n")
		assert.Contains(t, got, "*Chat ID:* `-1001234`")
	})

	t.Run("without username", func(t *testing.T) {
		t.Parallel()
		got := inspect.FormatChat(inspect.ChatProfile{ID: -5, Title: "Group"})
		assert.Contains(t, got, "*Username:* none\n")
	})
}

func TestFormatUserSections(t *testing.T) {
	t.Parallel()

	u := inspect.UserProfile{ID: 1_500_000_000, Username: "alice", FirstName: "Alice", LastName: "Smith"}
	got := inspect.FormatUser(u, inspect.EstimateAge(u.ID), inspect.RiskAssessment{})

	header := strings.Index(got, "👤 *User info*")
	age := strings.Index(got, "📅 *Created:* approximately in 2019 or later\\.")
	sep := strings.Index(got, "\\-\\-\\-")
	risk := strings.Index(got, "✅ *Security analysis:*\nNothing suspicious found\\.")

	require.NotEqual(t, -1, header)
	require.NotEqual(t, -1, age)
	require.NotEqual(t, -1, sep)
	require.NotEqual(t, -1, risk)
	assert.Less(t, header, age)
	assert.Less(t, age, sep)
	assert.Less(t, sep, risk)

	assert.Contains(t, got, "*Name:* Alice Smith\n")
	assert.Contains(t, got, "*Username:* @alice\n")
	assert.Contains(t, got, "*User ID:* `1500000000`\n\n")
}

func TestFormatUserEarliestBucket(t *testing.T) {
	t.Parallel()

	got := inspect.FormatUser(inspect.UserProfile{ID: 7, FirstName: "Old"}, inspect.EstimateAge(7), inspect.RiskAssessment{})
	assert.Contains(t, got, "approximately before 2015\\.")
	assert.NotContains(t, got, "or later")
}

func TestFormatUserRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		risk     inspect.RiskAssessment
		headline string
	}{
		{
			name:     "low",
			risk:     inspect.RiskAssessment{Score: 1, Tier: inspect.TierLow, Findings: []string{"no username set"}},
			headline: "⚠️ *Security analysis:* 🟢 *Low risk*",
		},
		{
			name:     "medium",
			risk:     inspect.RiskAssessment{Score: 3, Tier: inspect.TierMedium, Findings: []string{"no profile photo", "no username set"}},
			headline: "⚠️ *Security analysis:* 🟡 *Medium caution*",
		},
		{
			name: "high",
			risk: inspect.RiskAssessment{Score: 6, Tier: inspect.TierHigh, Findings: []string{
				"name contains suspicious term 'support'",
				"name contains suspicious term 'telegram'",
			}},
			headline: "⚠️ *Security analysis:* 🔴 *High caution*",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := inspect.FormatUser(inspect.UserProfile{ID: 1, FirstName: "X"}, inspect.EstimateAge(1), tc.risk)
			assert.Contains(t, got, tc.headline)
			assert.NotContains(t, got, "Nothing suspicious found")

			last := -1
			for _, f := range tc.risk.Findings {
				idx := strings.Index(got, "• "+f)
				require.NotEqual(t, -1, idx, "finding %q missing", f)
				assert.Greater(t, idx, last, "finding %q out of order", f)
				last = idx
			}
		})
	}
}

func TestFormatEscapesUserText(t *testing.T) {
	t.Parallel()

	u := inspect.UserProfile{ID: 1, FirstName: "*Bold*", LastName: "[link](x)", Username: "under_score"}
	got := inspect.FormatUser(u, inspect.EstimateAge(1), inspect.RiskAssessment{})
	assert.Contains(t, got, "*Name:* \\*Bold\\* \\[link\\]\\(x\\)\n")
	assert.Contains(t, got, "@under\\_score")

	hidden := inspect.FormatHidden(`Mr. X_(y) \o/`)
	assert.Contains(t, hidden, `Mr\. X\_\(y\) \\o/`)
}

func TestFormatHidden(t *testing.T) {
	t.Parallel()

	got := inspect.FormatHidden("John")
	assert.Equal(t,
		"🚫 *Identity hidden*\n\nThe user John has hidden their account from forwarded messages\\.",
		got)
}
