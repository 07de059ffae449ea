package resume

// Section names used by Styles.SectionOrder and Styles.HiddenSections.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// PersonalInfo groups the contact block. Every field is optional: an empty
// value means "omit this content", never an error.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is one employment entry. Slice order is display order;
// IDs are assigned once by the owning editor and never reused.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"fieldOfStudy,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	GraduationDate string `json:"graduationDate,omitempty"`
}

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Level string `json:"level,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// CustomSection is a user-defined section rendered generically
// (title + free text) by every template.
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// Styles carries per-resume presentation options shared by all templates.
type Styles struct {
	FontFamily     string   `json:"fontFamily,omitempty"`
	FontSize       float64  `json:"fontSize,omitempty"`   // px
	LineHeight     float64  `json:"lineHeight,omitempty"` // multiplier
	PrimaryColor   string   `json:"primaryColor,omitempty"`
	ShowBorders    bool     `json:"showBorders"`
	Spacing        float64  `json:"spacing,omitempty"` // px
	SectionOrder   []string `json:"sectionOrder,omitempty"`
	HiddenSections []string `json:"hiddenSections,omitempty"`
}

// ResumeData is the shared schema every component reads or writes.
// It is owned by the editing session and persisted as a whole.
type ResumeData struct {
	PersonalInfo     PersonalInfo    `json:"personalInfo"`
	Experience       []Experience    `json:"experience,omitempty"`
	Education        []Education     `json:"education,omitempty"`
	Skills           []Skill         `json:"skills,omitempty"`
	Projects         []Project       `json:"projects,omitempty"`
	CustomSections   []CustomSection `json:"customSections,omitempty"`
	Styles           Styles          `json:"styles"`
	SelectedTemplate string          `json:"selectedTemplate,omitempty"`
}

// DefaultStyles returns the presentation defaults used for a fresh profile.
// FontFamily and PrimaryColor stay empty: until the user overrides them,
// each template renders with its own font stack and accent color.
func DefaultStyles() Styles {
	return Styles{
		FontSize:    12,
		LineHeight:  1.5,
		ShowBorders: true,
		Spacing:     24,
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects,
		},
	}
}

// DefaultResumeData is the empty profile a session starts from.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Styles:           DefaultStyles(),
		SelectedTemplate: "professional",
	}
}

// IsHidden reports whether a section was hidden by the user.
func (s Styles) IsHidden(section string) bool {
	for _, h := range s.HiddenSections {
		if h == section {
			return true
		}
	}
	return false
}

// OrderedSections returns the user's section order with any section the user
// never reordered appended in default order. Unknown names are kept so
// templates can skip them safely.
func (s Styles) OrderedSections() []string {
	if len(s.SectionOrder) == 0 {
		return DefaultStyles().SectionOrder
	}
	out := make([]string, len(s.SectionOrder))
	copy(out, s.SectionOrder)
	for _, def := range DefaultStyles().SectionOrder {
		seen := false
		for _, have := range out {
			if have == def {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, def)
		}
	}
	return out
}
