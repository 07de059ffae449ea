package registry

import "github.com/resumeforge/resumeforge/pkg/render"

// DefaultTemplateID is the template used when a requested id is unknown.
const DefaultTemplateID = "professional"

func tpl(id, name, description string, category Category, isNew bool, tags ...string) Descriptor {
	return Descriptor{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Tags:        tags,
		IsNew:       isNew,
		Loader:      func() (render.Renderer, error) { return render.New(id) },
	}
}

// Catalog returns every shipped template descriptor in display order.
func Catalog() []Descriptor {
	return []Descriptor{
		tpl("minimal", "Minimal", "Clean and straightforward design that focuses on content", CategoryBasic, false, "Clean", "ATS-Friendly", "Minimalist"),
		tpl("professional", "Professional", "Traditional format with a modern touch", CategoryBasic, false, "Business", "Corporate", "ATS-Friendly"),
		tpl("executive", "Executive", "Sophisticated design for senior positions", CategoryBasic, false, "Leadership", "Management", "Corporate"),
		tpl("modern", "Modern", "Contemporary layout with subtle design elements", CategoryBasic, false, "Creative", "Clean", "Stylish"),
		tpl("technical", "Technical", "Optimized for technical roles and skills", CategoryBasic, false, "IT", "Engineering", "Developer"),
		tpl("clean", "Clean", "Simple and elegant design with clear sections", CategoryBasic, false, "Minimalist", "ATS-Friendly", "Professional"),
		tpl("simple", "Simple", "No-frills layout that puts content first", CategoryBasic, false, "Basic", "ATS-Friendly", "Clean"),
		tpl("elegant", "Elegant", "Refined design with sophisticated typography", CategoryBasic, false, "Stylish", "Professional", "Serif"),
		tpl("compact", "Compact", "Space-efficient layout for comprehensive resumes", CategoryBasic, false, "Dense", "Comprehensive", "ATS-Friendly"),
		tpl("minimalist", "Minimalist", "Ultra-clean design with perfect white space balance", CategoryBasic, false, "Minimal", "Clean", "ATS-Friendly"),

		tpl("corporate", "Corporate", "Professional design for corporate environments", CategoryProfessional, true, "Business", "Corporate", "Traditional"),
		tpl("creative", "Creative", "Unique layout for creative professionals", CategoryProfessional, true, "Design", "Artistic", "Unique"),
		tpl("tech-modern", "Tech Modern", "Contemporary design for tech industry professionals", CategoryProfessional, true, "IT", "Modern", "Tech"),
		tpl("academic", "Academic", "Structured layout for academic and research positions", CategoryProfessional, true, "Research", "Education", "Detailed"),
		tpl("startup", "Startup", "Fresh and dynamic design for startup environments", CategoryProfessional, true, "Innovative", "Dynamic", "Contemporary"),
		tpl("executive-plus", "Executive Plus", "Premium design for C-level executives", CategoryProfessional, true, "Leadership", "Executive", "Premium"),
		tpl("minimalist-pro", "Minimalist Pro", "Professional minimalist design with subtle accents", CategoryProfessional, true, "Minimal", "Professional", "Clean"),

		tpl("developer", "Developer", "Specialized layout for software developers", CategoryIndustry, true, "Coding", "Programming", "IT"),
		tpl("consultant", "Consultant", "Professional design for consultants and advisors", CategoryIndustry, true, "Consulting", "Business", "Advisory"),
		tpl("graduate", "Graduate", "Clean design for recent graduates", CategoryIndustry, true, "Entry-Level", "Student", "First Job"),
		tpl("federal", "Federal", "Specialized format for government positions", CategoryIndustry, true, "Government", "Public Sector", "Detailed"),
		tpl("healthcare", "Healthcare", "Tailored for medical and healthcare professionals", CategoryIndustry, true, "Medical", "Healthcare", "Clinical"),
		tpl("legal", "Legal", "Professional format for legal professionals", CategoryIndustry, true, "Law", "Attorney", "Formal"),
		tpl("marketing", "Marketing", "Dynamic design for marketing professionals", CategoryIndustry, true, "Marketing", "Digital", "Creative"),
		tpl("engineering", "Engineering", "Technical layout for engineering disciplines", CategoryIndustry, true, "Engineering", "Technical", "Detailed"),
		tpl("finance", "Finance", "Professional design for finance industry", CategoryIndustry, true, "Finance", "Banking", "Corporate"),
		tpl("data-science", "Data Science", "Specialized for data scientists and analysts", CategoryIndustry, true, "Data", "Analytics", "Technical"),
		tpl("project-manager", "Project Manager", "Highlights project management skills and achievements", CategoryIndustry, true, "Management", "Leadership", "Projects"),
		tpl("creative-director", "Creative Director", "Bold design for creative leadership roles", CategoryIndustry, true, "Leadership", "Design", "Creative"),
		tpl("ux-designer", "UX Designer", "Clean layout highlighting UX/UI skills and projects", CategoryIndustry, true, "UX", "Design", "Portfolio"),

		tpl("chronological", "Chronological", "Traditional chronological format, highly ATS-friendly", CategoryFormat, true, "Traditional", "ATS-Optimized", "Timeline"),
		tpl("functional", "Functional", "Skills-focused layout for career changers", CategoryFormat, true, "Skills-Based", "Career Change", "Versatile"),
		tpl("hybrid", "Hybrid", "Combines chronological and functional formats", CategoryFormat, true, "Combination", "Versatile", "Comprehensive"),
		tpl("infographic", "Infographic", "Visual elements while maintaining ATS compatibility", CategoryFormat, true, "Visual", "Creative", "Graphic"),
		tpl("international", "International", "Format suitable for international applications", CategoryFormat, true, "Global", "Multilingual", "International"),

		tpl("government-affairs", "Government Affairs", "Specialized for government relations and policy professionals", CategorySpecialized, true, "Government", "Policy", "ATS-Friendly"),
		tpl("nonprofit", "Nonprofit", "Focused on mission-driven work and impact", CategorySpecialized, true, "Nonprofit", "Social Impact", "ATS-Friendly"),
		tpl("sales-executive", "Sales Executive", "Highlights sales achievements and metrics", CategorySpecialized, true, "Sales", "Revenue", "ATS-Friendly"),
		tpl("remote-professional", "Remote Professional", "Optimized for remote work positions", CategorySpecialized, true, "Remote", "Digital", "ATS-Friendly"),
		tpl("career-change", "Career Change", "Emphasizes transferable skills for career transitions", CategorySpecialized, true, "Transition", "Skills", "ATS-Friendly"),
		tpl("executive-assistant", "Executive Assistant", "Professional layout for administrative professionals", CategorySpecialized, true, "Administrative", "Support", "ATS-Friendly"),
		tpl("human-resources", "Human Resources", "Specialized for HR professionals at all levels", CategorySpecialized, true, "HR", "Recruitment", "ATS-Friendly"),
		tpl("supply-chain", "Supply Chain", "Focused on logistics and supply chain achievements", CategorySpecialized, true, "Logistics", "Operations", "ATS-Friendly"),
		tpl("education", "Education", "Designed for teachers and education professionals", CategorySpecialized, true, "Teaching", "Education", "ATS-Friendly"),
		tpl("cybersecurity", "Cybersecurity", "Specialized for security professionals", CategorySpecialized, true, "Security", "Technical", "ATS-Friendly"),
	}
}

// NewCatalogRegistry builds the registry over the shipped catalog.
func NewCatalogRegistry() (*Registry, error) {
	return New(Catalog()...)
}
