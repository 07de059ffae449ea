package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var (
	layoutOnce sync.Once
	layout     *template.Template
	layoutErr  error
)

func sharedLayout() (*template.Template, error) {
	layoutOnce.Do(func() {
		layout, layoutErr = template.New("resume.gohtml").
			Funcs(template.FuncMap{
				"lines":     splitLines,
				"join":      strings.Join,
				"dateRange": dateRange,
			}).
			ParseFS(templateFS, "templates/*.gohtml")
	})
	return layout, layoutErr
}

// htmlRenderer renders the shared layout under one theme.
type htmlRenderer struct {
	theme Theme
	tpl   *template.Template
}

// New resolves a template id to its renderer. Unknown ids are an error so
// callers can fall back to the default renderer explicitly.
func New(templateID string) (Renderer, error) {
	theme, ok := themes[templateID]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}
	tpl, err := sharedLayout()
	if err != nil {
		return nil, fmt.Errorf("parse resume layout: %w", err)
	}
	return &htmlRenderer{theme: theme, tpl: tpl}, nil
}

// Fallback returns the minimal renderer used whenever a requested template
// cannot be loaded. The minimal theme is compiled in, so this never fails.
func Fallback() Renderer {
	r, err := New(FallbackThemeID)
	if err != nil {
		panic("render: fallback theme missing: " + err.Error())
	}
	return r
}

type viewModel struct {
	Theme       Theme
	Data        resume.ResumeData
	Accent      string
	FontFamily  template.CSS
	FontSize    float64
	LineHeight  float64
	Spacing     float64
	ShowBorders bool
	Sections    []string
}

// fontStackPattern admits CSS font-family lists, including single-quoted
// names like 'Times New Roman'. html/template's CSS filter rejects any
// quoted value, so vetted stacks are emitted as template.CSS instead.
var fontStackPattern = regexp.MustCompile(`^[A-Za-z0-9 ,'-]+$`)

func safeFontStack(stack string) template.CSS {
	if fontStackPattern.MatchString(stack) {
		return template.CSS(stack)
	}
	return "sans-serif"
}

func (r *htmlRenderer) Render(data resume.ResumeData) (Document, error) {
	fontStack := r.theme.FontStack
	if data.Styles.FontFamily != "" {
		fontStack = data.Styles.FontFamily
	}
	vm := viewModel{
		Theme:       r.theme,
		Data:        data,
		Accent:      r.theme.Accent,
		FontFamily:  safeFontStack(fontStack),
		FontSize:    12,
		LineHeight:  1.5,
		Spacing:     24,
		ShowBorders: data.Styles.ShowBorders,
	}
	if data.Styles.PrimaryColor != "" {
		vm.Accent = data.Styles.PrimaryColor
	}
	if data.Styles.FontSize > 0 {
		vm.FontSize = data.Styles.FontSize
	}
	if data.Styles.LineHeight > 0 {
		vm.LineHeight = data.Styles.LineHeight
	}
	if data.Styles.Spacing > 0 {
		vm.Spacing = data.Styles.Spacing
	}
	for _, section := range data.Styles.OrderedSections() {
		if !data.Styles.IsHidden(section) {
			vm.Sections = append(vm.Sections, section)
		}
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, vm); err != nil {
		return Document{}, fmt.Errorf("render template %s: %w", r.theme.ID, err)
	}
	return Document{TemplateID: r.theme.ID, HTML: buf.Bytes()}, nil
}

// splitLines breaks a free-text description into bullet lines, stripping
// leading bullet glyphs the editor may have inserted.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-* \t")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " – Present"
	default:
		return start + " – " + end
	}
}
