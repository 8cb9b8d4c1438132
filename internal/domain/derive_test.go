package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectWith(id string, techs ...string) Project {
	return Project{ID: id, Title: "p" + id, Description: "d", Technologies: techs}
}

func TestProjectCountForSkill(t *testing.T) {
	projects := []Project{
		projectWith("1", "Node.js", "Socket.io", "Docker"),
		projectWith("2", "Git & Github"),
		projectWith("3", "git"),
		projectWith("4", "Java", "Android"),
		projectWith("5"),
	}

	tests := []struct {
		name  string
		skill string
		want  int
	}{
		{"exact match", "Docker", 1},
		{"case insensitive", "docker", 1},
		{"technology contains skill", "Git", 2},
		{"skill contains technology", "Git & Github", 2},
		{"loose match counts java for javascript", "JavaScript", 1},
		{"no match", "Figma", 0},
		{"project counted once", "o", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectCountForSkill(tt.skill, projects))
		})
	}
}

func TestProjectCountForSkillBidirectional(t *testing.T) {
	assert.Equal(t, 1, ProjectCountForSkill("Git", []Project{projectWith("1", "Git & Github")}))
	assert.Equal(t, 1, ProjectCountForSkill("Git & Github", []Project{projectWith("1", "Git")}))
}

func TestRecomputeSkillCounts(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "Docker", Category: CategoryDevops, ProjectCount: 99},
		{ID: "b", Name: "Figma", Category: CategoryDesign, ProjectCount: 3},
		{ID: "c", Name: "Node.js", Category: CategoryBackend},
	}
	projects := []Project{
		projectWith("1", "Node.js", "Docker"),
		projectWith("2", "docker"),
	}

	got := RecomputeSkillCounts(skills, projects)
	require.Len(t, got, 3)

	assert.Equal(t, []Skill{
		{ID: "a", Name: "Docker", Category: CategoryDevops, ProjectCount: 2},
		{ID: "b", Name: "Figma", Category: CategoryDesign, ProjectCount: 0},
		{ID: "c", Name: "Node.js", Category: CategoryBackend, ProjectCount: 1},
	}, got)

	// input untouched
	assert.Equal(t, 99, skills[0].ProjectCount)
}

func TestRecomputeSkillCountsIdempotent(t *testing.T) {
	doc := Default()
	first := RecomputeSkillCounts(doc.Skills, doc.Projects)
	second := RecomputeSkillCounts(first, doc.Projects)
	assert.Equal(t, first, second)
	assert.Equal(t, first, RecomputeSkillCounts(doc.Skills, doc.Projects))
}

func TestDefaultIsConsistent(t *testing.T) {
	doc := Default()
	require.NotEmpty(t, doc.Skills)
	require.NotEmpty(t, doc.Projects)

	for _, s := range doc.Skills {
		assert.Equal(t, ProjectCountForSkill(s.Name, doc.Projects), s.ProjectCount, s.Name)
	}

	// fresh copy each call
	doc.Projects[0].Technologies[0] = "changed"
	assert.NotEqual(t, "changed", Default().Projects[0].Technologies[0])
}
