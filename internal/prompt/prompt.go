// Package prompt builds the fixed prompt texts sent to the chat gateway.
// All builders are pure string formatting with no failure modes.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// SystemPrompt is sent verbatim as the first system message of every
// conversation, across the chat, ESG-analysis, and assessment paths.
const SystemPrompt = "You are a sustainability and packaging expert specializing in Life Cycle Assessment (LCA), ESG (Environmental, Social, Governance) reporting, " +
	"and materiality analysis for packaging. Answer user questions as an industry authority, using up-to-date standards, real-world examples, and " +
	"clear explanations tailored to packaging solutions."

// reportExcerptLimit bounds the report text embedded in the ESG analysis
// prompt. The cut is a hard character cut with no word-boundary awareness;
// anything past the limit is silently dropped to bound request size.
const reportExcerptLimit = 3500

// Packaging carries the structured form fields of the assessment view.
type Packaging struct {
	Material    string
	WeightGrams float64
	Recyclable  bool
	Renewable   bool
}

// ESGSummary renders the analysis prompt for an extracted ESG report,
// embedding at most the first 3500 characters of the text between literal
// delimiter lines.
func ESGSummary(reportText string) string {
	if runes := []rune(reportText); len(runes) > reportExcerptLimit {
		reportText = string(runes[:reportExcerptLimit])
	}
	var b strings.Builder
	b.WriteString("Below is the extracted text from a company's ESG report. Please provide:\n")
	b.WriteString("1. A concise summary of the company's ESG performance.\n")
	b.WriteString("2. A benchmarking analysis compared to industry standards or leaders (if possible).\n")
	b.WriteString("3. Key recommendations for improvement.\n")
	b.WriteString("Here is the ESG report:\n")
	b.WriteString("-----\n")
	b.WriteString(reportText)
	b.WriteString("\n-----\n")
	return b.String()
}

// SustainabilityAssessment renders the scoring prompt for a packaging form.
// Boolean flags are rendered as the literal strings "Yes" and "No".
func SustainabilityAssessment(p Packaging) string {
	var b strings.Builder
	b.WriteString("Packaging parameters:\n")
	fmt.Fprintf(&b, "- Material: %s\n", p.Material)
	fmt.Fprintf(&b, "- Weight: %s grams\n", formatGrams(p.WeightGrams))
	fmt.Fprintf(&b, "- Recyclable: %s\n", yesNo(p.Recyclable))
	fmt.Fprintf(&b, "- Made from renewable resources: %s\n\n", yesNo(p.Renewable))
	b.WriteString("Based on these, provide:\n")
	b.WriteString("1. A sustainability score out of 10 (with justification).\n")
	b.WriteString("2. A brief assessment and recommendations for improvement.")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatGrams(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
