package domain

// Default returns a fresh copy of the bundled portfolio used when nothing has
// been saved yet. Skill counts are derived from the bundled projects.
func Default() Document {
	doc := seed.Clone()
	doc.Skills = RecomputeSkillCounts(doc.Skills, doc.Projects)
	return doc
}

var seed = Document{
	PersonalInfo: PersonalInfo{
		Name:     "Alex Rivera",
		Title:    "Software Engineering Student & Full-Stack Developer",
		Phone:    "+1 555 010 2030",
		Email:    "alex.rivera@example.com",
		LinkedIn: "linkedin.com/in/alex-rivera",
		GitHub:   "github.com/alex-rivera",
		Location: "Portland, Oregon",
		Summary: "Software engineering student building real-time systems, IoT tooling, " +
			"and full-stack web applications. Looking for internships in backend and " +
			"platform engineering.",
	},
	Skills: []Skill{
		{ID: "1", Name: "JavaScript", Category: CategoryFrontend},
		{ID: "2", Name: "Node.js", Category: CategoryBackend},
		{ID: "3", Name: "HTML", Category: CategoryFrontend},
		{ID: "4", Name: "MySQL", Category: CategoryBackend},
		{ID: "5", Name: "Git & Github", Category: CategoryDevops},
		{ID: "6", Name: "Tailwind", Category: CategoryFrontend},
		{ID: "7", Name: "Python", Category: CategoryBackend},
		{ID: "8", Name: "C++", Category: CategoryOther},
		{ID: "9", Name: "UI/UX", Category: CategoryDesign},
		{ID: "10", Name: "Socket.io", Category: CategoryBackend},
		{ID: "11", Name: "Figma", Category: CategoryDesign},
		{ID: "12", Name: "Docker", Category: CategoryDevops},
	},
	Projects: []Project{
		{
			ID:           "1",
			Title:        "Quizline: Multiplayer Study Game",
			Role:         "Backend Engineer",
			Organization: "Client Project, School of Nursing",
			Duration:     "Jun - Aug 2025",
			Description:  "Built and deployed a real-time game server for classroom review sessions with up to ten players per room.",
			Technologies: []string{"Node.js", "Socket.io", "Docker"},
			Achievements: []string{
				"Real-time rooms for 10+ concurrent players",
				"Browser-based play with no install",
				"Containerized deployment",
			},
			Featured: true,
		},
		{
			ID:           "2",
			Title:        "Indoor Air Quality Monitor",
			Role:         "Full-Stack & IoT Developer",
			Organization: "Campus Facilities Lab",
			Duration:     "Mar - May 2025",
			Description:  "Dashboard for live indoor air readings with smoke and fire alerts.",
			Technologies: []string{"Laravel", "ESP32", "MQTT", "IoT"},
			Achievements: []string{
				"Live readings over MQTT",
				"Automatic smoke and fire alerts",
			},
			Featured: true,
		},
		{
			ID:           "3",
			Title:        "Autonomous Rover",
			Role:         "Programmer",
			Organization: "Personal Project",
			Duration:     "Mar - May 2025",
			Description:  "Small autonomous rover with obstacle detection and grid path planning.",
			Technologies: []string{"C++", "A* Algorithm", "Robotics"},
			Achievements: []string{
				"85% path recognition accuracy",
				"A* path planning",
			},
		},
		{
			ID:           "4",
			Title:        "MQTT Browser Extension",
			Role:         "Developer",
			Organization: "Personal Project",
			Duration:     "Mar - Apr 2025",
			Description:  "Browser extension for publishing and inspecting MQTT topics.",
			Technologies: []string{"JavaScript", "Chrome Extensions", "MQTT"},
			Achievements: []string{
				"Handles 50-100 topics at once",
				"Direct browser to broker connection",
			},
		},
		{
			ID:           "5",
			Title:        "Stockroom: Android Inventory App",
			Role:         "Full-Stack Developer",
			Organization: "Personal Project",
			Duration:     "Jan - Apr 2025",
			Description:  "Offline-first Android app for small retail inventory.",
			Technologies: []string{"Java", "SQLite", "Android"},
			Achievements: []string{
				"Thousands of products on device",
				"Works fully offline",
			},
		},
		{
			ID:           "6",
			Title:        "Campus Eats",
			Role:         "Team Lead & Backend Developer",
			Organization: "University Hackathon",
			Duration:     "Oct - Nov 2024",
			Description:  "Food ordering platform for campus canteens to cut queue times.",
			Technologies: []string{"PHP", "Laravel", "MySQL", "Git"},
			Achievements: []string{
				"First place, campus hackathon",
				"Order management for multiple vendors",
			},
			Featured: true,
		},
	},
	Experiences: []Experience{
		{
			ID:           "1",
			Title:        "Project Manager",
			Organization: "Student Association Anniversary",
			Duration:     "May - Jul 2025",
			Description:  "Led a 40-person organizing committee across several divisions.",
			Responsibilities: []string{
				"Planned the timeline and delegated tasks",
				"Coordinated with external partners",
			},
			Type: ExperienceEvent,
		},
		{
			ID:           "2",
			Title:        "Teaching Assistant",
			Organization: "Department of Computer Science",
			Duration:     "Sep 2024 - Present",
			Description:  "Assistant for the introductory programming course.",
			Responsibilities: []string{
				"Ran weekly lab sessions",
				"Graded assignments",
			},
			Type: ExperienceWork,
		},
		{
			ID:           "3",
			Title:        "Liaison Officer",
			Organization: "Computing Society",
			Duration:     "Jun - Aug 2024",
			Description:  "Sourced and coordinated speakers for society events.",
			Responsibilities: []string{
				"Shortlisted speakers",
				"Handled speaker communication",
			},
			Type: ExperienceOrganization,
		},
	},
	Education: []Education{
		{
			ID:          "1",
			Institution: "Pacific State University",
			Degree:      "Bachelor of Science",
			Field:       "Software Engineering",
			Duration:    "Sep 2023 - Present",
			GPA:         "3.7",
			Honors:      []string{"Dean's List"},
		},
	},
	Achievements: []Achievement{
		{
			ID:           "1",
			Title:        "Campus Eats: Hackathon Winner",
			Description:  "Led the team that won the campus hackathon",
			Date:         "Nov 2024",
			Organization: "Pacific State University",
			Category:     "Competition",
		},
	},
	Languages: []Language{
		{ID: "1", Name: "English", Level: LevelNative},
		{ID: "2", Name: "Spanish", Level: LevelAdvanced},
		{ID: "3", Name: "Japanese", Level: LevelBasic},
	},
}
