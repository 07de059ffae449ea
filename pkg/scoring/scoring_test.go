package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/pkg/analysis"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.reply, f.err
}

func TestATSScorePromptCarriesResumeAndJob(t *testing.T) {
	model := &fakeModel{reply: atsJSON}
	svc := New(model)

	doc := analysis.Document{TextContent: "Go developer resume body"}
	report, err := svc.ATSScore(context.Background(), doc, "Backend engineer, Go required")
	require.NoError(t, err)
	assert.Equal(t, 82, report.ATSScore)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Go developer resume body")
	assert.Contains(t, model.prompts[0], "Backend engineer, Go required")
}

func TestATSScoreModelFailure(t *testing.T) {
	svc := New(&fakeModel{err: errors.New("upstream 502")})
	_, err := svc.ATSScore(context.Background(), analysis.Document{TextContent: "x"}, "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ats scoring")
}

func TestFeedbackClipsOversizedResume(t *testing.T) {
	model := &fakeModel{reply: `{"overview":"ok"}`}
	svc := New(model)

	doc := analysis.Document{TextContent: strings.Repeat("x", maxPromptChars*3)}
	_, err := svc.Feedback(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	assert.Less(t, len(model.prompts[0]), maxPromptChars*2)
}
