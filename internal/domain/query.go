package domain

import (
	"sort"
	"strings"
)

// ProjectFilter narrows a project listing. Zero value matches everything.
type ProjectFilter struct {
	Query        string // case-insensitive search over title, description, organization, technologies
	Technology   string // exact technology name
	FeaturedOnly bool
}

// FilterProjects returns the projects matching f, in document order
func FilterProjects(projects []Project, f ProjectFilter) []Project {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if f.Technology != "" && !contains(p.Technologies, f.Technology) {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func matchesQuery(p Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Organization), q) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), q) {
			return true
		}
	}
	return false
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

// Technologies returns every distinct technology, sorted
func Technologies(projects []Project) []string {
	seen := make(map[string]bool)
	var techs []string
	for _, p := range projects {
		for _, t := range p.Technologies {
			if !seen[t] {
				seen[t] = true
				techs = append(techs, t)
			}
		}
	}
	sort.Strings(techs)
	return techs
}

// Showcase picks the first n projects, featured ones ahead of the rest
func Showcase(projects []Project, n int) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	for _, p := range projects {
		if !p.Featured {
			out = append(out, p.Clone())
		}
	}
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// FilterSkills returns the skills in category; an empty category matches all
func FilterSkills(skills []Skill, category SkillCategory) []Skill {
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if category == "" || s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// SkillsByCategory groups skills by category. Every category has an entry.
func SkillsByCategory(skills []Skill) map[SkillCategory][]Skill {
	groups := make(map[SkillCategory][]Skill, len(SkillCategories))
	for _, c := range SkillCategories {
		groups[c] = []Skill{}
	}
	for _, s := range skills {
		groups[s.Category] = append(groups[s.Category], s)
	}
	return groups
}

// SkillStats summarizes the skills page
type SkillStats struct {
	Total       int                   `json:"total"`
	MaxProjects int                   `json:"maxProjects"`
	Frequent    int                   `json:"frequent"`
	ByCategory  map[SkillCategory]int `json:"byCategory"`
}

// FrequentSkillThreshold is the project count from which a skill is frequently used
const FrequentSkillThreshold = 2

// ComputeSkillStats counts against projects, not the stored ProjectCount
func ComputeSkillStats(skills []Skill, projects []Project) SkillStats {
	stats := SkillStats{
		Total:      len(skills),
		ByCategory: make(map[SkillCategory]int, len(SkillCategories)),
	}
	for _, c := range SkillCategories {
		stats.ByCategory[c] = 0
	}
	for _, s := range skills {
		n := ProjectCountForSkill(s.Name, projects)
		if n > stats.MaxProjects {
			stats.MaxProjects = n
		}
		if n >= FrequentSkillThreshold {
			stats.Frequent++
		}
		stats.ByCategory[s.Category]++
	}
	return stats
}

// FilterExperiences returns experiences of type t; an empty type matches all
func FilterExperiences(experiences []Experience, t ExperienceType) []Experience {
	out := make([]Experience, 0, len(experiences))
	for _, e := range experiences {
		if t == "" || e.Type == t {
			out = append(out, e.Clone())
		}
	}
	return out
}

// CountExperiencesByType tallies experiences per type
func CountExperiencesByType(experiences []Experience) map[ExperienceType]int {
	counts := map[ExperienceType]int{
		ExperienceWork:         0,
		ExperienceEvent:        0,
		ExperienceOrganization: 0,
	}
	for _, e := range experiences {
		counts[e.Type]++
	}
	return counts
}
