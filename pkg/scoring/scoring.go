// Package scoring implements the ATS scoring and feedback collaborator on
// top of a chat LLM.
package scoring

import (
	"context"
	"fmt"

	"github.com/resumeforge/resumeforge/pkg/analysis"
	"github.com/resumeforge/resumeforge/pkg/llm"
)

const systemPrompt = "You are an ATS (Applicant Tracking System) analyst. " +
	"Return your result strictly as JSON with no commentary."

const atsPromptFormat = `Conduct a comprehensive ATS analysis of this resume against the job description.
Provide detailed scoring in this exact JSON format:
{
  "ats_score": 0-100,
  "score_breakdown": {
    "keyword_match": 0-100,
    "experience_match": 0-100,
    "skill_match": 0-100,
    "education_match": 0-100
  },
  "missing_keywords": ["list", "of", "missing", "terms"],
  "strengths": ["list", "of", "strengths"],
  "weaknesses": ["list", "of", "weaknesses"],
  "recommendations": ["list", "of", "actionable", "steps"]
}

Resume:
%s

Job Description:
%s

Analysis Guidelines:
1. Be strict but fair in scoring.
2. Prioritize role-specific technical skills.
3. Identify both hard and soft skills.
4. Consider industry-standard terminology.`

const feedbackPromptFormat = `Analyze this resume and provide structured feedback in exactly this JSON format:
{
  "overview": "summary",
  "section_analysis": {
    "summary": ["strength/weakness"],
    "experience": ["strength/weakness"],
    "education": ["strength/weakness"],
    "skills": ["strength/weakness"]
  },
  "priority_improvements": ["list", "of", "improvements"],
  "score_breakdown": {
    "clarity": 0-100,
    "relevance": 0-100,
    "quantification": 0-100,
    "ats_optimization": 0-100
  }
}

Resume Content:
%s`

// maxPromptChars bounds the resume text sent to the model.
const maxPromptChars = 12_000

// Service implements analysis.Scorer over a chat model.
type Service struct {
	model llm.ChatModel
}

func New(model llm.ChatModel) *Service { return &Service{model: model} }

// ATSScore asks the model for a match report against the job description.
func (s *Service) ATSScore(ctx context.Context, doc analysis.Document, jobDescription string) (analysis.ATSReport, error) {
	prompt := fmt.Sprintf(atsPromptFormat, clip(doc.TextContent), jobDescription)
	raw, err := s.model.Ask(ctx, systemPrompt, prompt)
	if err != nil {
		return analysis.ATSReport{}, fmt.Errorf("ats scoring: %w", err)
	}
	return parseATSReport(raw), nil
}

// Feedback asks the model for qualitative per-section feedback.
func (s *Service) Feedback(ctx context.Context, doc analysis.Document) (analysis.FeedbackReport, error) {
	prompt := fmt.Sprintf(feedbackPromptFormat, clip(doc.TextContent))
	raw, err := s.model.Ask(ctx, systemPrompt, prompt)
	if err != nil {
		return analysis.FeedbackReport{}, fmt.Errorf("resume feedback: %w", err)
	}
	return parseFeedbackReport(raw), nil
}

func clip(text string) string {
	if len(text) > maxPromptChars {
		return text[:maxPromptChars]
	}
	return text
}
