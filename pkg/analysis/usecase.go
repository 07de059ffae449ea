package analysis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/resumeforge/resumeforge/pkg/extract"
)

// minPlausibleTextLen is the extraction sanity threshold: anything shorter
// is treated as a failed extraction and replaced by placeholderResumeText.
const minPlausibleTextLen = 100

// placeholderResumeText keeps scoring usable when extraction yields almost
// nothing. Result.PlaceholderUsed tells callers it fired.
const placeholderResumeText = "Software Engineer with 5 years of experience in JavaScript, React, and Node.js. " +
	"Developed and maintained web applications for clients in finance and healthcare. " +
	"Implemented responsive designs and optimized application performance. " +
	"Collaborated with cross-functional teams to deliver high-quality software solutions. " +
	"Bachelor's degree in Computer Science from University of Technology."

// Defaults applied when the scoring collaborator omits a field.
const (
	defaultATSScore        = 75
	defaultMatchPercentage = 70
)

var genericStrengths = []string{"Good experience", "Relevant skills"}

// negativeMarkers exclude a feedback line from the derived strengths list.
var negativeMarkers = []string{"weak", "improve", "lack"}

// UseCase is the resume analysis scenario.
type UseCase interface {
	Analyze(ctx context.Context, req Request) (Result, error)
}

type service struct {
	extractor extract.TextExtractor
	scorer    Scorer
	timeout   time.Duration
	log       *slog.Logger
}

// NewService wires the pipeline. timeout bounds each external leg
// (extraction, scoring); zero disables the bound.
func NewService(extractor extract.TextExtractor, scorer Scorer, timeout time.Duration, log *slog.Logger) UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &service{extractor: extractor, scorer: scorer, timeout: timeout, log: log}
}

// Analyze runs the full pipeline. Failures come back as *Error with a kind
// the handler can map to an HTTP status; no collaborator is called once
// validation fails.
func (s *service) Analyze(ctx context.Context, req Request) (Result, error) {
	if len(req.File) == 0 || strings.TrimSpace(req.JobDescription) == "" {
		return Result{}, newError(KindMissingInput, errors.New("resume file and job description are required"))
	}

	extracted, err := s.extract(ctx, req)
	if err != nil {
		return Result{}, newError(KindExtractionFailed, err)
	}

	doc := Document{TextContent: extracted.Text, Sections: extracted.Sections}
	placeholderUsed := false
	if len(doc.TextContent) < minPlausibleTextLen {
		s.log.Warn("extracted text too short, scoring placeholder resume",
			"filename", req.Filename, "extracted_len", len(doc.TextContent))
		doc.TextContent = placeholderResumeText
		placeholderUsed = true
	}
	if doc.Sections == nil {
		doc.Sections = map[string]string{}
	}

	ats, feedback, err := s.score(ctx, doc, req.JobDescription)
	if err != nil {
		return Result{}, newError(KindScoringFailed, err)
	}

	result := merge(ats, feedback)
	result.PlaceholderUsed = placeholderUsed
	return result, nil
}

func (s *service) extract(ctx context.Context, req Request) (extract.ExtractedResume, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.extractor.Extract(ctx, req.Filename, req.File)
}

// score fans out the two collaborator calls and joins them. The pair is a
// joint operation: the first failure cancels the sibling and fails the
// request.
func (s *service) score(ctx context.Context, doc Document, jobDescription string) (ATSReport, FeedbackReport, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var ats ATSReport
	var feedback FeedbackReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ats, err = s.scorer.ATSScore(gctx, doc, jobDescription)
		return err
	})
	g.Go(func() error {
		var err error
		feedback, err = s.scorer.Feedback(gctx, doc)
		return err
	})
	if err := g.Wait(); err != nil {
		return ATSReport{}, FeedbackReport{}, err
	}
	return ats, feedback, nil
}

// merge reshapes the two collaborator reports into one Result, filling
// documented defaults for anything an upstream left out.
func merge(ats ATSReport, feedback FeedbackReport) Result {
	r := Result{
		ATSScore:            ats.ATSScore,
		MatchPercentage:     ats.ScoreBreakdown.KeywordMatch,
		MissingKeywords:     orEmpty(ats.MissingKeywords),
		MatchedKeywords:     orEmpty(ats.Strengths),
		AreasForImprovement: firstNonEmpty(feedback.PriorityImprovements, ats.Weaknesses),
		Suggestions:         orEmpty(ats.Recommendations),
	}
	if r.ATSScore == 0 {
		r.ATSScore = defaultATSScore
	}
	if r.MatchPercentage == 0 {
		r.MatchPercentage = defaultMatchPercentage
	}
	r.Strengths = deriveStrengths(feedback)
	return r
}

// deriveStrengths pulls positive statements out of the per-section feedback
// when the collaborator has no dedicated strengths field: any line without a
// negative-sentiment marker counts. When no positive line remains, the fixed
// generic pair is used so the field is never empty. The ATS strengths feed
// the matched-keywords field, not this one.
func deriveStrengths(feedback FeedbackReport) []string {
	var strengths []string
	for _, section := range []string{"summary", "experience", "education", "skills"} {
		for _, line := range feedback.SectionAnalysis[section] {
			if !hasNegativeMarker(line) {
				strengths = append(strengths, line)
			}
		}
	}
	if len(strengths) > 0 {
		return strengths
	}
	return append([]string(nil), genericStrengths...)
}

func hasNegativeMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range negativeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func firstNonEmpty(candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return []string{}
}
