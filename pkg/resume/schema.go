package resume

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// profileSchema constrains profile payloads accepted over the API. Content
// fields stay optional (missing data is legal everywhere), but shapes and
// numeric ranges are enforced so a malformed client cannot corrupt a stored
// profile.
const profileSchema = `{
  "type": "object",
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "fullName": {"type": "string"},
        "title": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "summary": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"},
        "website": {"type": "string"}
      },
      "additionalProperties": false
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "company": {"type": "string"},
          "position": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["id"],
        "additionalProperties": false
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "fieldOfStudy": {"type": "string"},
          "startDate": {"type": "string"},
          "graduationDate": {"type": "string"}
        },
        "required": ["id"],
        "additionalProperties": false
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "level": {"type": "string"}
        },
        "required": ["id"],
        "additionalProperties": false
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "url": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        },
        "required": ["id"],
        "additionalProperties": false
      }
    },
    "customSections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "content": {"type": "string"}
        },
        "required": ["id"],
        "additionalProperties": false
      }
    },
    "styles": {
      "type": "object",
      "properties": {
        "fontFamily": {"type": "string"},
        "fontSize": {"type": "number", "minimum": 6, "maximum": 72},
        "lineHeight": {"type": "number", "minimum": 0.5, "maximum": 4},
        "primaryColor": {"type": "string"},
        "showBorders": {"type": "boolean"},
        "spacing": {"type": "number", "minimum": 0, "maximum": 200},
        "sectionOrder": {"type": "array", "items": {"type": "string"}},
        "hiddenSections": {"type": "array", "items": {"type": "string"}}
      },
      "additionalProperties": false
    },
    "selectedTemplate": {"type": "string"}
  },
  "additionalProperties": false
}`

var compiledProfileSchema = gojsonschema.NewStringLoader(profileSchema)

// ValidateProfileJSON checks a raw profile payload against the profile
// schema and reports every violation in one error.
func ValidateProfileJSON(payload []byte) error {
	result, err := gojsonschema.Validate(compiledProfileSchema, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid profile: %s", strings.Join(problems, "; "))
}

// ValidateIDs enforces the uniqueness invariant on every id-bearing
// sequence of a profile.
func ValidateIDs(d ResumeData) error {
	check := func(kind string, ids []string) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("duplicate %s id %q", kind, id)
			}
			seen[id] = struct{}{}
		}
		return nil
	}
	expIDs := make([]string, 0, len(d.Experience))
	for _, e := range d.Experience {
		expIDs = append(expIDs, e.ID)
	}
	if err := check("experience", expIDs); err != nil {
		return err
	}
	eduIDs := make([]string, 0, len(d.Education))
	for _, e := range d.Education {
		eduIDs = append(eduIDs, e.ID)
	}
	if err := check("education", eduIDs); err != nil {
		return err
	}
	skillIDs := make([]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		skillIDs = append(skillIDs, s.ID)
	}
	if err := check("skill", skillIDs); err != nil {
		return err
	}
	projIDs := make([]string, 0, len(d.Projects))
	for _, p := range d.Projects {
		projIDs = append(projIDs, p.ID)
	}
	if err := check("project", projIDs); err != nil {
		return err
	}
	customIDs := make([]string, 0, len(d.CustomSections))
	for _, c := range d.CustomSections {
		customIDs = append(customIDs, c.ID)
	}
	return check("custom section", customIDs)
}
