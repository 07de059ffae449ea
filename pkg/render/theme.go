package render

// Theme carries the cosmetic variation between templates: palette, type
// stack and a handful of layout switches. Every catalog id maps to one
// theme; the layout itself is shared.
type Theme struct {
	ID              string
	Accent          string // used when the profile has no primaryColor
	FontStack       string // used when the profile has no fontFamily
	HeaderAlign     string // "left" or "center"
	UppercaseTitles bool
	SkillsAsTags    bool
	SectionRule     bool // horizontal rule under section headings
}

// FallbackThemeID is the minimal theme used when a requested template
// cannot be resolved.
const FallbackThemeID = "minimal"

var serif = "Georgia, 'Times New Roman', serif"
var sans = "Inter, Helvetica, Arial, sans-serif"
var mono = "'JetBrains Mono', 'Courier New', monospace"

var themes = map[string]Theme{
	// Basic
	"minimal":      {Accent: "#1a1a1a", FontStack: sans, HeaderAlign: "left"},
	"professional": {Accent: "#0ea5e9", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"executive":    {Accent: "#1e293b", FontStack: serif, HeaderAlign: "center", UppercaseTitles: true, SectionRule: true},
	"modern":       {Accent: "#6366f1", FontStack: sans, HeaderAlign: "left", SkillsAsTags: true},
	"technical":    {Accent: "#0f766e", FontStack: mono, HeaderAlign: "left", SkillsAsTags: true},
	"clean":        {Accent: "#334155", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"simple":       {Accent: "#111111", FontStack: sans, HeaderAlign: "left"},
	"elegant":      {Accent: "#7c2d12", FontStack: serif, HeaderAlign: "center", SectionRule: true},
	"compact":      {Accent: "#0369a1", FontStack: sans, HeaderAlign: "left"},
	"minimalist":   {Accent: "#262626", FontStack: sans, HeaderAlign: "center"},

	// Professional
	"corporate":      {Accent: "#1d4ed8", FontStack: sans, HeaderAlign: "left", UppercaseTitles: true, SectionRule: true},
	"creative":       {Accent: "#db2777", FontStack: sans, HeaderAlign: "center", SkillsAsTags: true},
	"tech-modern":    {Accent: "#059669", FontStack: mono, HeaderAlign: "left", SkillsAsTags: true},
	"academic":       {Accent: "#374151", FontStack: serif, HeaderAlign: "left", SectionRule: true},
	"startup":        {Accent: "#ea580c", FontStack: sans, HeaderAlign: "left", SkillsAsTags: true},
	"executive-plus": {Accent: "#0f172a", FontStack: serif, HeaderAlign: "center", UppercaseTitles: true, SectionRule: true},
	"minimalist-pro": {Accent: "#404040", FontStack: sans, HeaderAlign: "left"},

	// Industry
	"developer":          {Accent: "#16a34a", FontStack: mono, HeaderAlign: "left", SkillsAsTags: true},
	"consultant":         {Accent: "#0e7490", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"graduate":           {Accent: "#4f46e5", FontStack: sans, HeaderAlign: "center"},
	"federal":            {Accent: "#1f2937", FontStack: serif, HeaderAlign: "left", UppercaseTitles: true},
	"healthcare":         {Accent: "#0891b2", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"legal":              {Accent: "#44403c", FontStack: serif, HeaderAlign: "left", UppercaseTitles: true, SectionRule: true},
	"marketing":          {Accent: "#c026d3", FontStack: sans, HeaderAlign: "center", SkillsAsTags: true},
	"engineering":        {Accent: "#475569", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"finance":            {Accent: "#166534", FontStack: serif, HeaderAlign: "left", SectionRule: true},
	"data-science":       {Accent: "#7c3aed", FontStack: mono, HeaderAlign: "left", SkillsAsTags: true},
	"project-manager":    {Accent: "#b45309", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"creative-director":  {Accent: "#be123c", FontStack: serif, HeaderAlign: "center", SkillsAsTags: true},
	"ux-designer":        {Accent: "#9333ea", FontStack: sans, HeaderAlign: "center", SkillsAsTags: true},

	// Format
	"chronological": {Accent: "#334155", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"functional":    {Accent: "#0d9488", FontStack: sans, HeaderAlign: "left"},
	"hybrid":        {Accent: "#2563eb", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"infographic":   {Accent: "#f59e0b", FontStack: sans, HeaderAlign: "center", SkillsAsTags: true},
	"international": {Accent: "#155e75", FontStack: sans, HeaderAlign: "left"},

	// Specialized
	"government-affairs":  {Accent: "#1e3a8a", FontStack: serif, HeaderAlign: "left", UppercaseTitles: true},
	"nonprofit":           {Accent: "#15803d", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"sales-executive":     {Accent: "#b91c1c", FontStack: sans, HeaderAlign: "left", UppercaseTitles: true, SectionRule: true},
	"remote-professional": {Accent: "#0284c7", FontStack: sans, HeaderAlign: "left", SkillsAsTags: true},
	"career-change":       {Accent: "#7e22ce", FontStack: sans, HeaderAlign: "left"},
	"executive-assistant": {Accent: "#52525b", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"human-resources":     {Accent: "#db2777", FontStack: sans, HeaderAlign: "left", SectionRule: true},
	"supply-chain":        {Accent: "#92400e", FontStack: sans, HeaderAlign: "left"},
	"education":           {Accent: "#1d4ed8", FontStack: serif, HeaderAlign: "left", SectionRule: true},
	"cybersecurity":       {Accent: "#047857", FontStack: mono, HeaderAlign: "left", SkillsAsTags: true, UppercaseTitles: true},
}

func init() {
	for id, th := range themes {
		th.ID = id
		themes[id] = th
	}
}

// ThemeIDs lists every known theme id.
func ThemeIDs() []string {
	out := make([]string, 0, len(themes))
	for id := range themes {
		out = append(out, id)
	}
	return out
}
