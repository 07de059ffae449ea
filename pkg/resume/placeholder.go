package resume

// PlaceholderData returns the fixed demo profile shown when a user has not
// entered any data yet. It lets every template render a complete preview
// before a profile exists.
func PlaceholderData() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			FullName: "John Doe",
			Title:    "Senior Software Engineer",
			Email:    "john.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "New York, NY",
			Summary: "Experienced software engineer with 8+ years of experience in full-stack development. " +
				"Proficient in JavaScript, React, Node.js, and cloud technologies. " +
				"Passionate about creating scalable and user-friendly applications.",
		},
		Experience: []Experience{
			{
				ID:        "exp-1",
				Company:   "Tech Innovations Inc.",
				Position:  "Senior Software Engineer",
				Location:  "New York, NY",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Description: "Led a team of 5 developers to build a scalable e-commerce platform.\n" +
					"Implemented CI/CD pipelines reducing deployment time by 40%.\n" +
					"Optimized database queries resulting in 30% faster page load times.",
			},
			{
				ID:        "exp-2",
				Company:   "Digital Solutions LLC",
				Position:  "Software Developer",
				Location:  "Boston, MA",
				StartDate: "Mar 2017",
				EndDate:   "Dec 2019",
				Description: "Developed responsive web applications using React and Node.js.\n" +
					"Collaborated with UX designers to implement user-friendly interfaces.\n" +
					"Maintained and improved legacy code bases.",
			},
		},
		Education: []Education{
			{
				ID:             "edu-1",
				Institution:    "University of Technology",
				Degree:         "Bachelor of Science",
				FieldOfStudy:   "Computer Science",
				GraduationDate: "May 2017",
			},
			{
				ID:             "edu-2",
				Institution:    "Online Academy",
				Degree:         "Certificate",
				FieldOfStudy:   "Cloud Architecture",
				GraduationDate: "Dec 2019",
			},
		},
		Skills: []Skill{
			{ID: "skill-1", Name: "JavaScript"},
			{ID: "skill-2", Name: "React"},
			{ID: "skill-3", Name: "Node.js"},
			{ID: "skill-4", Name: "TypeScript"},
			{ID: "skill-5", Name: "AWS"},
			{ID: "skill-6", Name: "Docker"},
			{ID: "skill-7", Name: "GraphQL"},
			{ID: "skill-8", Name: "MongoDB"},
		},
		Projects: []Project{
			{
				ID:           "proj-1",
				Name:         "Storefront Platform",
				Description:  "Multi-tenant e-commerce storefront with real-time inventory.",
				URL:          "https://github.com/johndoe/storefront",
				Technologies: []string{"React", "Node.js", "PostgreSQL"},
				StartDate:    "2021",
				EndDate:      "2023",
			},
		},
		Styles:           DefaultStyles(),
		SelectedTemplate: "professional",
	}
}

// EffectiveData applies the preview substitution rule: when the profile has
// no full name, the placeholder dataset is shown instead, keeping any styles
// the user has already picked. A named profile is returned unmodified.
func EffectiveData(d ResumeData) ResumeData {
	if d.PersonalInfo.FullName != "" {
		return d
	}
	out := PlaceholderData()
	if hasStyles(d.Styles) {
		out.Styles = d.Styles
	}
	if d.SelectedTemplate != "" {
		out.SelectedTemplate = d.SelectedTemplate
	}
	return out
}

func hasStyles(s Styles) bool {
	return s.FontFamily != "" || s.FontSize != 0 || s.PrimaryColor != "" ||
		len(s.SectionOrder) > 0 || len(s.HiddenSections) > 0
}
