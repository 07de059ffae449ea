package scoring

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/resumeforge/resumeforge/pkg/analysis"
)

// Models wrap JSON in prose or code fences more often than not, and
// occasionally return something that is not JSON at all. Parsing is
// therefore layered: strict unmarshal, then fenced/brace extraction, then
// tolerant field pulls, then documented defaults. A reply never fails the
// request at this layer.

func parseATSReport(raw string) analysis.ATSReport {
	var report analysis.ATSReport
	if jsonStr, ok := extractJSON(raw); ok {
		if err := json.Unmarshal([]byte(jsonStr), &report); err == nil {
			return report
		}
		// Partially valid JSON: pull what is readable field by field.
		report.ATSScore = int(gjson.Get(jsonStr, "ats_score").Int())
		report.ScoreBreakdown.KeywordMatch = int(gjson.Get(jsonStr, "score_breakdown.keyword_match").Int())
		report.ScoreBreakdown.ExperienceMatch = int(gjson.Get(jsonStr, "score_breakdown.experience_match").Int())
		report.ScoreBreakdown.SkillMatch = int(gjson.Get(jsonStr, "score_breakdown.skill_match").Int())
		report.ScoreBreakdown.EducationMatch = int(gjson.Get(jsonStr, "score_breakdown.education_match").Int())
		report.MissingKeywords = stringList(gjson.Get(jsonStr, "missing_keywords"))
		report.Strengths = stringList(gjson.Get(jsonStr, "strengths"))
		report.Weaknesses = stringList(gjson.Get(jsonStr, "weaknesses"))
		report.Recommendations = stringList(gjson.Get(jsonStr, "recommendations"))
		if report.ATSScore > 0 || len(report.Strengths) > 0 {
			return report
		}
	}
	// Unparseable reply: the documented demo defaults.
	return analysis.ATSReport{
		ATSScore:        75,
		Strengths:       []string{"Experience in relevant field", "Technical skills match"},
		Weaknesses:      []string{"Resume could be more tailored to the job"},
		Recommendations: []string{"Add more keywords from the job description"},
	}
}

func parseFeedbackReport(raw string) analysis.FeedbackReport {
	var report analysis.FeedbackReport
	if jsonStr, ok := extractJSON(raw); ok {
		if err := json.Unmarshal([]byte(jsonStr), &report); err == nil {
			return report
		}
		report.Overview = gjson.Get(jsonStr, "overview").String()
		report.PriorityImprovements = stringList(gjson.Get(jsonStr, "priority_improvements"))
		sections := gjson.Get(jsonStr, "section_analysis")
		if sections.Exists() {
			report.SectionAnalysis = map[string][]string{}
			sections.ForEach(func(key, value gjson.Result) bool {
				report.SectionAnalysis[key.String()] = stringList(value)
				return true
			})
		}
		if report.Overview != "" || len(report.PriorityImprovements) > 0 || len(report.SectionAnalysis) > 0 {
			return report
		}
	}
	return analysis.FeedbackReport{
		Overview:             "Automatic feedback was unavailable for this resume.",
		PriorityImprovements: []string{"Resume could be more tailored to the job"},
	}
}

// extractJSON finds the JSON object in a model reply: the whole reply, a
// ```json fenced block, or the outermost brace span.
func extractJSON(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if json.Valid([]byte(raw)) && strings.HasPrefix(raw, "{") {
		return raw, true
	}
	if i := strings.Index(raw, "```json"); i >= 0 {
		rest := raw[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			candidate := strings.TrimSpace(rest[:j])
			if candidate != "" {
				return candidate, true
			}
		}
	}
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			return raw[i : j+1], true
		}
	}
	return "", false
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	for _, item := range r.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
