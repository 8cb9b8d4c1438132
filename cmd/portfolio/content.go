package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// resolveID finds the single id starting with prefix
func resolveID(ids []string, prefix string) (string, error) {
	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", errors.Errorf("not found: %s", prefix)
	case 1:
		return found[0], nil
	default:
		return "", errors.Errorf("ambiguous id %s matches %d entries", prefix, len(found))
	}
}

func projectIDs(doc domain.Document) []string {
	ids := make([]string, len(doc.Projects))
	for i, p := range doc.Projects {
		ids[i] = p.ID
	}
	return ids
}

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and edit projects",
	}
	cmd.AddCommand(projectsListCmd(), projectsAddCmd(), projectsUpdateCmd(), projectsDeleteCmd())
	return cmd
}

func projectsListCmd() *cobra.Command {
	var filter domain.ProjectFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				projects := domain.FilterProjects(a.store.Document().Projects, filter)
				if len(projects) == 0 {
					fmt.Println("No matching projects.")
					return nil
				}
				for _, p := range projects {
					star := " "
					if p.Featured {
						star = "*"
					}
					fmt.Printf("%s %s  %s  [%s]\n", star, shortID(p.ID), truncate(p.Title, 40),
						strings.Join(p.Technologies, ", "))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "search text")
	cmd.Flags().StringVar(&filter.Technology, "tech", "", "only projects using this technology")
	cmd.Flags().BoolVar(&filter.FeaturedOnly, "featured", false, "only featured projects")
	return cmd
}

// projectFlags binds every editable project field to cmd
type projectFlags struct {
	title, role, organization, duration, description string
	link, github                                     string
	technologies, achievements, images               []string
	featured                                         bool
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "project title")
	cmd.Flags().StringVar(&f.role, "role", "", "your role")
	cmd.Flags().StringVar(&f.organization, "org", "", "organization or client")
	cmd.Flags().StringVar(&f.duration, "duration", "", "e.g. \"Jan - Mar 2025\"")
	cmd.Flags().StringVar(&f.description, "description", "", "short description")
	cmd.Flags().StringVar(&f.link, "link", "", "live URL")
	cmd.Flags().StringVar(&f.github, "github", "", "repository URL")
	cmd.Flags().StringSliceVar(&f.technologies, "tech", nil, "technologies (comma separated)")
	cmd.Flags().StringSliceVar(&f.achievements, "achievement", nil, "achievements (repeatable)")
	cmd.Flags().StringSliceVar(&f.images, "image", nil, fmt.Sprintf("image URLs (at most %d)", domain.MaxProjectImages))
	cmd.Flags().BoolVar(&f.featured, "featured", false, "show on the home page")
}

func (f *projectFlags) project() domain.Project {
	return domain.Project{
		Title:        f.title,
		Role:         f.role,
		Organization: f.organization,
		Duration:     f.duration,
		Description:  f.description,
		Technologies: f.technologies,
		Achievements: f.achievements,
		Link:         f.link,
		GitHub:       f.github,
		Images:       f.images,
		Featured:     f.featured,
	}
}

// patch holds only the flags given on the command line
func (f *projectFlags) patch(cmd *cobra.Command) domain.ProjectPatch {
	var p domain.ProjectPatch
	changed := cmd.Flags().Changed
	if changed("title") {
		p.Title = &f.title
	}
	if changed("role") {
		p.Role = &f.role
	}
	if changed("org") {
		p.Organization = &f.organization
	}
	if changed("duration") {
		p.Duration = &f.duration
	}
	if changed("description") {
		p.Description = &f.description
	}
	if changed("link") {
		p.Link = &f.link
	}
	if changed("github") {
		p.GitHub = &f.github
	}
	if changed("tech") {
		p.Technologies = &f.technologies
	}
	if changed("achievement") {
		p.Achievements = &f.achievements
	}
	if changed("image") {
		p.Images = &f.images
	}
	if changed("featured") {
		p.Featured = &f.featured
	}
	return p
}

func projectsAddCmd() *cobra.Command {
	var f projectFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				id, err := a.store.AddProject(f.project())
				if err = saved(err); err != nil {
					return err
				}
				fmt.Printf("Added project: %s\n", shortID(id))
				return nil
			})
		},
	}

	f.register(cmd)
	return cmd
}

func projectsUpdateCmd() *cobra.Command {
	var f projectFlags

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Change fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				id, err := resolveID(projectIDs(a.store.Document()), args[0])
				if err != nil {
					return err
				}
				if err := saved(a.store.UpdateProject(id, f.patch(cmd))); err != nil {
					return err
				}
				fmt.Printf("Updated project: %s\n", shortID(id))
				return nil
			})
		},
	}

	f.register(cmd)
	return cmd
}

func projectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				id, err := resolveID(projectIDs(a.store.Document()), args[0])
				if err != nil {
					return err
				}
				if err := saved(a.store.DeleteProject(id)); err != nil {
					return err
				}
				fmt.Printf("Deleted project: %s\n", shortID(id))
				return nil
			})
		},
	}
}

func skillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List and edit skills",
	}
	cmd.AddCommand(skillsListCmd(), skillsAddCmd(), skillsDeleteCmd(), skillsStatsCmd())
	return cmd
}

func skillsListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				skills := domain.FilterSkills(a.store.Document().Skills, domain.SkillCategory(category))
				groups := domain.SkillsByCategory(skills)
				for _, c := range domain.SkillCategories {
					if len(groups[c]) == 0 {
						continue
					}
					fmt.Printf("%s\n", c)
					for _, s := range groups[c] {
						fmt.Printf("  %s  %-20s %d projects\n", shortID(s.ID), s.Name, s.ProjectCount)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	return cmd
}

func skillsAddCmd() *cobra.Command {
	var name, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				id, err := a.store.AddSkill(domain.Skill{Name: name, Category: domain.SkillCategory(category)})
				if err = saved(err); err != nil {
					return err
				}
				sk, _ := a.store.Skill(id)
				fmt.Printf("Added skill: %s (%d projects)\n", sk.Name, sk.ProjectCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "skill name")
	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryOther), "skill category")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func skillsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				skills := a.store.Document().Skills
				ids := make([]string, len(skills))
				for i, s := range skills {
					ids[i] = s.ID
				}
				id, err := resolveID(ids, args[0])
				if err != nil {
					return err
				}
				if err := saved(a.store.DeleteSkill(id)); err != nil {
					return err
				}
				fmt.Printf("Deleted skill: %s\n", shortID(id))
				return nil
			})
		},
	}
}

func skillsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				doc := a.store.Document()
				stats := domain.ComputeSkillStats(doc.Skills, doc.Projects)
				fmt.Printf("Skills:        %d\n", stats.Total)
				fmt.Printf("Most projects: %d\n", stats.MaxProjects)
				fmt.Printf("Used in %d+:    %d\n", domain.FrequentSkillThreshold, stats.Frequent)
				for _, c := range domain.SkillCategories {
					fmt.Printf("  %-10s %d\n", c, stats.ByCategory[c])
				}
				return nil
			})
		},
	}
}

func experiencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiences",
		Short: "List and edit experiences",
	}
	cmd.AddCommand(experiencesListCmd(), experiencesAddCmd(), experiencesDeleteCmd())
	return cmd
}

func experiencesListCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List experiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				exps := domain.FilterExperiences(a.store.Document().Experiences, domain.ExperienceType(kind))
				if len(exps) == 0 {
					fmt.Println("No matching experiences.")
					return nil
				}
				for _, e := range exps {
					fmt.Printf("%s  %-12s %s, %s (%s)\n", shortID(e.ID), e.Type, e.Title, e.Organization, e.Duration)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "work, organization, or event")
	return cmd
}

func experiencesAddCmd() *cobra.Command {
	var e domain.Experience
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an experience",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				e.Type = domain.ExperienceType(kind)
				id, err := a.store.AddExperience(e)
				if err = saved(err); err != nil {
					return err
				}
				fmt.Printf("Added experience: %s\n", shortID(id))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&e.Title, "title", "", "position or role")
	cmd.Flags().StringVar(&e.Organization, "org", "", "organization")
	cmd.Flags().StringVar(&e.Duration, "duration", "", "e.g. \"Sep 2024 - Present\"")
	cmd.Flags().StringVar(&e.Description, "description", "", "short description")
	cmd.Flags().StringSliceVar(&e.Responsibilities, "responsibility", nil, "responsibilities (repeatable)")
	cmd.Flags().StringVarP(&kind, "type", "t", string(domain.ExperienceWork), "work, organization, or event")
	return cmd
}

func experiencesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an experience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				exps := a.store.Document().Experiences
				ids := make([]string, len(exps))
				for i, e := range exps {
					ids[i] = e.ID
				}
				id, err := resolveID(ids, args[0])
				if err != nil {
					return err
				}
				if err := saved(a.store.DeleteExperience(id)); err != nil {
					return err
				}
				fmt.Printf("Deleted experience: %s\n", shortID(id))
				return nil
			})
		},
	}
}
