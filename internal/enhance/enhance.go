// Package enhance produces templated "AI enhanced" text for resume sections.
package enhance

import (
	"fmt"
	"strings"
)

// Enhance embellishes content for section. Whitespace-only content is returned unchanged.
func Enhance(section, content string, chooser Chooser) string {
	if strings.TrimSpace(content) == "" {
		return content
	}
	if chooser == nil {
		chooser = DefaultChooser
	}

	switch section {
	case SectionSummary:
		tmpl := pick(summaryTemplates, chooser)
		r := strings.NewReplacer("{role}", DetectRole(content), "{domain}", DetectDomain(content))
		return content + " " + r.Replace(tmpl)
	case SectionExperience:
		return content + "\n" + pick(experienceTemplates, chooser)
	case SectionEducation:
		return content + "\n" + pick(educationTemplates, chooser)
	default:
		return content + genericSuffix
	}
}

// DetectRole returns the first known role keyword found in content, or "professional".
func DetectRole(content string) string {
	lower := strings.ToLower(content)
	for _, role := range roles {
		if strings.Contains(lower, role) {
			return role
		}
	}
	return defaultRole
}

// DetectDomain returns the first known domain sharing any word with content, or "their field".
func DetectDomain(content string) string {
	lower := strings.ToLower(content)
	for _, domain := range domains {
		for _, word := range strings.Fields(domain) {
			if strings.Contains(lower, word) {
				return domain
			}
		}
	}
	return defaultDomain
}

func pick(templates []string, chooser Chooser) string {
	i := chooser.Intn(len(templates))
	if i < 0 || i >= len(templates) {
		panic(fmt.Sprintf("chooser returned index %d for %d templates", i, len(templates)))
	}
	return templates[i]
}
