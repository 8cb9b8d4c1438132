package domain

import "strings"

// ProjectCountForSkill counts the projects using a skill.
//
// A project uses the skill when any of its technologies contains the skill
// name, or the skill name contains the technology, ignoring case. The match is
// deliberately loose: "Git" and "Git & Github" match each other.
func ProjectCountForSkill(skillName string, projects []Project) int {
	name := strings.ToLower(skillName)
	count := 0
	for _, p := range projects {
		for _, tech := range p.Technologies {
			t := strings.ToLower(tech)
			if strings.Contains(t, name) || strings.Contains(name, t) {
				count++
				break
			}
		}
	}
	return count
}

// RecomputeSkillCounts returns a copy of skills with every ProjectCount
// derived from projects. Order and other fields are preserved.
func RecomputeSkillCounts(skills []Skill, projects []Project) []Skill {
	if skills == nil {
		return nil
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		s.ProjectCount = ProjectCountForSkill(s.Name, projects)
		out[i] = s
	}
	return out
}
