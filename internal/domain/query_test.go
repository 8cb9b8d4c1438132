package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []Project {
	return []Project{
		{ID: "1", Title: "Game Server", Description: "realtime rooms", Organization: "Client", Technologies: []string{"Node.js", "Docker"}},
		{ID: "2", Title: "Air Monitor", Description: "IoT dashboard", Organization: "Lab", Technologies: []string{"MQTT", "Laravel"}, Featured: true},
		{ID: "3", Title: "Rover", Description: "robot", Organization: "Personal", Technologies: []string{"C++"}},
		{ID: "4", Title: "Canteen", Description: "food orders", Organization: "University", Technologies: []string{"Laravel", "MySQL"}, Featured: true},
	}
}

func ids(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestFilterProjects(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name   string
		filter ProjectFilter
		want   []string
	}{
		{"zero filter", ProjectFilter{}, []string{"1", "2", "3", "4"}},
		{"featured", ProjectFilter{FeaturedOnly: true}, []string{"2", "4"}},
		{"technology exact", ProjectFilter{Technology: "Laravel"}, []string{"2", "4"}},
		{"technology is case sensitive", ProjectFilter{Technology: "laravel"}, []string{}},
		{"query title", ProjectFilter{Query: "rover"}, []string{"3"}},
		{"query organization", ProjectFilter{Query: "UNIVERSITY"}, []string{"4"}},
		{"query technology", ProjectFilter{Query: "docker"}, []string{"1"}},
		{"combined", ProjectFilter{Query: "iot", FeaturedOnly: true}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterProjects(projects, tt.filter)))
		})
	}
}

func TestTechnologies(t *testing.T) {
	assert.Equal(t,
		[]string{"C++", "Docker", "Laravel", "MQTT", "MySQL", "Node.js"},
		Technologies(sampleProjects()))
	assert.Empty(t, Technologies(nil))
}

func TestShowcase(t *testing.T) {
	projects := sampleProjects()
	assert.Equal(t, []string{"2", "4", "1"}, ids(Showcase(projects, 3)))
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(Showcase(projects, 10)))
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(Showcase(projects, -1)))
}

func TestSkillsByCategory(t *testing.T) {
	skills := []Skill{
		{ID: "1", Name: "Go", Category: CategoryBackend},
		{ID: "2", Name: "Figma", Category: CategoryDesign},
		{ID: "3", Name: "Postgres", Category: CategoryBackend},
	}

	groups := SkillsByCategory(skills)
	require.Len(t, groups, len(SkillCategories))
	assert.Len(t, groups[CategoryBackend], 2)
	assert.Len(t, groups[CategoryDesign], 1)
	assert.Empty(t, groups[CategoryMobile])

	assert.Len(t, FilterSkills(skills, ""), 3)
	assert.Len(t, FilterSkills(skills, CategoryBackend), 2)
}

func TestComputeSkillStats(t *testing.T) {
	skills := []Skill{
		{ID: "1", Name: "Laravel", Category: CategoryBackend},
		{ID: "2", Name: "Docker", Category: CategoryDevops},
		{ID: "3", Name: "Figma", Category: CategoryDesign},
	}

	stats := ComputeSkillStats(skills, sampleProjects())
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.MaxProjects)
	assert.Equal(t, 1, stats.Frequent)
	assert.Equal(t, 1, stats.ByCategory[CategoryBackend])
	assert.Equal(t, 0, stats.ByCategory[CategoryMobile])
}

func TestFilterExperiences(t *testing.T) {
	exps := []Experience{
		{ID: "1", Type: ExperienceWork},
		{ID: "2", Type: ExperienceEvent},
		{ID: "3", Type: ExperienceWork},
	}

	assert.Len(t, FilterExperiences(exps, ""), 3)
	assert.Len(t, FilterExperiences(exps, ExperienceWork), 2)
	assert.Equal(t, map[ExperienceType]int{
		ExperienceWork:         2,
		ExperienceEvent:        1,
		ExperienceOrganization: 0,
	}, CountExperiencesByType(exps))
}
