package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPromptText(t *testing.T) {
	assert.True(t, strings.HasPrefix(SystemPrompt, "You are a sustainability and packaging expert"))
	assert.Contains(t, SystemPrompt, "Life Cycle Assessment (LCA)")
	assert.Contains(t, SystemPrompt, "ESG (Environmental, Social, Governance) reporting")
	assert.True(t, strings.HasSuffix(SystemPrompt, "tailored to packaging solutions."))
}

func TestESGSummaryEmbedsReportBetweenDelimiters(t *testing.T) {
	out := ESGSummary("our emissions fell 12% year over year")

	assert.Contains(t, out, "1. A concise summary of the company's ESG performance.")
	assert.Contains(t, out, "2. A benchmarking analysis compared to industry standards or leaders (if possible).")
	assert.Contains(t, out, "3. Key recommendations for improvement.")
	assert.Contains(t, out, "-----\nour emissions fell 12% year over year\n-----\n")
}

func TestESGSummaryTruncatesAt3500Characters(t *testing.T) {
	long := strings.Repeat("a", 5000)
	out := ESGSummary(long)

	start := strings.Index(out, "-----\n") + len("-----\n")
	end := strings.LastIndex(out, "\n-----")
	require.Greater(t, end, start)
	embedded := out[start:end]

	assert.Len(t, embedded, 3500)
	assert.Equal(t, strings.Repeat("a", 3500), embedded)
}

func TestESGSummaryKeepsShortReportIntact(t *testing.T) {
	exactly := strings.Repeat("b", 3500)
	assert.Contains(t, ESGSummary(exactly), exactly)

	short := "short report"
	assert.Contains(t, ESGSummary(short), short)
}

func TestSustainabilityAssessmentRendering(t *testing.T) {
	out := SustainabilityAssessment(Packaging{
		Material:    "Glass",
		WeightGrams: 320.5,
		Recyclable:  true,
		Renewable:   false,
	})

	assert.Contains(t, out, "- Material: Glass\n")
	assert.Contains(t, out, "- Weight: 320.5 grams\n")
	assert.Contains(t, out, "- Recyclable: Yes\n")
	assert.Contains(t, out, "- Made from renewable resources: No\n")
	assert.Contains(t, out, "1. A sustainability score out of 10 (with justification).")
	assert.Contains(t, out, "2. A brief assessment and recommendations for improvement.")
	assert.NotContains(t, out, "true")
	assert.NotContains(t, out, "false")
}

func TestSustainabilityAssessmentBooleanLiterals(t *testing.T) {
	both := SustainabilityAssessment(Packaging{Material: "Paper", WeightGrams: 10, Recyclable: false, Renewable: true})
	assert.Contains(t, both, "- Recyclable: No\n")
	assert.Contains(t, both, "- Made from renewable resources: Yes\n")
}
