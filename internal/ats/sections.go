package ats

import "strings"

// Section is a canonical CV section and the keyword variants that reveal it.
type Section struct {
	Name     string
	Keywords []string
}

var sections = []Section{
	{Name: "Work Experience", Keywords: []string{"experiencia", "experience", "work history", "employment"}},
	{Name: "Education", Keywords: []string{"educación", "education", "formación", "academic", "university", "universidad"}},
	{Name: "Skills", Keywords: []string{"habilidades", "skills", "competencias", "technologies", "tecnologías"}},
	{Name: "Summary/Profile", Keywords: []string{"perfil", "profile", "resumen", "summary", "about me", "sobre mí"}},
	{Name: "Contact", Keywords: []string{"contacto", "contact", "email", "teléfono", "phone"}},
}

// Sections returns a copy of the section catalog in scoring order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Name: s.Name, Keywords: append([]string(nil), s.Keywords...)}
	}
	return out
}

// detectSections reports which catalog sections have a keyword anywhere in text, in catalog order.
func detectSections(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(sections))
	for _, s := range sections {
		for _, kw := range s.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, s.Name)
				break
			}
		}
	}
	return found
}
