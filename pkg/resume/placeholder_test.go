package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveDataNamedProfilePassesThrough(t *testing.T) {
	d := DefaultResumeData()
	d.PersonalInfo.FullName = "Ada Lovelace"
	d.Experience = []Experience{{ID: "e1", Company: "Analytical Engines"}}

	got := EffectiveData(d)
	assert.Equal(t, d, got)
}

func TestEffectiveDataSubstitutesPlaceholder(t *testing.T) {
	got := EffectiveData(ResumeData{})

	assert.Equal(t, "John Doe", got.PersonalInfo.FullName)
	assert.NotEmpty(t, got.Experience)
	assert.NotEmpty(t, got.Education)
	assert.NotEmpty(t, got.Skills)
	// A profile with no styles at all gets the placeholder defaults.
	assert.Equal(t, DefaultStyles(), got.Styles)
}

func TestEffectiveDataKeepsUserStyles(t *testing.T) {
	d := ResumeData{
		Styles: Styles{
			PrimaryColor:   "#ff0000",
			FontSize:       14,
			HiddenSections: []string{SectionProjects},
		},
		SelectedTemplate: "creative",
	}

	got := EffectiveData(d)
	assert.Equal(t, "John Doe", got.PersonalInfo.FullName)
	assert.Equal(t, "#ff0000", got.Styles.PrimaryColor)
	assert.Equal(t, float64(14), got.Styles.FontSize)
	assert.Equal(t, []string{SectionProjects}, got.Styles.HiddenSections)
	assert.Equal(t, "creative", got.SelectedTemplate)
}

func TestOrderedSections(t *testing.T) {
	tests := []struct {
		name  string
		order []string
		want  []string
	}{
		{
			name: "empty order falls back to defaults",
			want: []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects},
		},
		{
			name:  "partial order gets missing defaults appended",
			order: []string{SectionSkills, SectionSummary},
			want:  []string{SectionSkills, SectionSummary, SectionExperience, SectionEducation, SectionProjects},
		},
		{
			name:  "unknown names are kept in place",
			order: []string{"languages", SectionSummary},
			want:  []string{"languages", SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Styles{SectionOrder: tt.order}
			assert.Equal(t, tt.want, s.OrderedSections())
		})
	}
}

func TestIsHidden(t *testing.T) {
	s := Styles{HiddenSections: []string{SectionEducation}}
	assert.True(t, s.IsHidden(SectionEducation))
	assert.False(t, s.IsHidden(SectionSummary))
}
