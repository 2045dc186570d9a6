package registry

import "github.com/aadishiv23/aadios/internal/shared/types"

// Builtin returns the default catalogue in dock order
func Builtin() []types.Descriptor {
	return []types.Descriptor{
		{
			ID:          "projects",
			Name:        "Projects",
			Description: "Gallery of side projects and shipped apps",
			Category:    "portfolio",
			Kind:        types.KindProjects,
			DefaultSize: types.Size{Width: 800, Height: 600},
			Icon:        "/images/icons/projects.png",
			Color:       "#3B82F6",
			DarkColor:   "#60A5FA",
			TextColor:   "#ffffff",
			Dock:        1,
			Props:       types.ContentProps{Featured: []string{"fetchar", "crosswalk-buddy"}},
		},
		{
			ID:            "experience_apple",
			Name:          "Experience: Apple",
			Description:   "Software Engineering Intern, Shortcuts & App Intents",
			Category:      "experience",
			Kind:          types.KindExperience,
			DefaultSize:   types.Size{Width: 650, Height: 500},
			Icon:          "/images/icons/apple_logo.svg",
			Color:         "#A1A1AA",
			DarkColor:     "#333333",
			TextColor:     "#ffffff",
			DarkTextColor: "#ffffff",
			Dock:          2,
			Props:         types.ContentProps{ExperienceID: "apple"},
		},
		{
			ID:          "experience_fetch",
			Name:        "Experience: Fetch",
			Description: "iOS Software Engineering Intern, Search and Discover",
			Category:    "experience",
			Kind:        types.KindExperience,
			DefaultSize: types.Size{Width: 650, Height: 550},
			Icon:        "/images/logos/fetch-logo.png",
			Color:       "#7C3AED",
			DarkColor:   "#7A3CF7",
			TextColor:   "#ffffff",
			Dock:        3,
			Props:       types.ContentProps{ExperienceID: "fetch"},
		},
		{
			ID:          "experience_hf",
			Name:        "Experience: Henry Ford",
			Description: "Research & Software Engineering Intern, CrossWalk Buddy",
			Category:    "experience",
			Kind:        types.KindExperience,
			DefaultSize: types.Size{Width: 650, Height: 500},
			Icon:        "/images/logos/henry_logo_fr.webp",
			Color:       "#007BFF",
			DarkColor:   "#0072CE",
			TextColor:   "#ffffff",
			Dock:        4,
			Props:       types.ContentProps{ExperienceID: "henryford"},
		},
		{
			ID:          "contact",
			Name:        "Contact Me",
			Description: "Email and social links",
			Category:    "portfolio",
			Kind:        types.KindContact,
			DefaultSize: types.Size{Width: 500, Height: 350},
			Icon:        "/images/icons/contact.png",
			Color:       "#EF4444",
			DarkColor:   "#DC2626",
			TextColor:   "#ffffff",
			Dock:        5,
			Props:       types.ContentProps{Email: "aadishiv@umich.edu"},
		},
		{
			ID:          "terminal",
			Name:        "Terminal",
			Description: "Command line with hidden shortcuts",
			Category:    "utilities",
			Kind:        types.KindTerminal,
			DefaultSize: types.Size{Width: 640, Height: 420},
			Icon:        "/images/icons/terminal.png",
			Color:       "#111827",
			DarkColor:   "#030712",
			TextColor:   "#34D399",
			Props:       types.ContentProps{Prompt: "aadishiv@AadiOS ~ %"},
		},
		{
			ID:            "notes",
			Name:          "Notes",
			Description:   "Scratchpad that survives reloads",
			Category:      "utilities",
			Kind:          types.KindNotes,
			DefaultSize:   types.Size{Width: 420, Height: 360},
			Icon:          "/images/icons/notes.png",
			Color:         "#FDE68A",
			DarkColor:     "#78350F",
			TextColor:     "#1F2937",
			DarkTextColor: "#FEF3C7",
		},
		{
			ID:            "finder",
			Name:          "Finder",
			Description:   "Overview of experiences and projects",
			Category:      "utilities",
			Kind:          types.KindFinder,
			DefaultSize:   types.Size{Width: 720, Height: 480},
			Icon:          "/images/icons/finder.png",
			Color:         "#E5E7EB",
			DarkColor:     "#1F2937",
			TextColor:     "#111827",
			DarkTextColor: "#F9FAFB",
			Props:         types.ContentProps{Sections: []string{"experience", "portfolio"}},
		},
		{
			ID:          "about",
			Name:        "About This Portfolio",
			Description: "AadiOS v1.0, inspired by macOS",
			Category:    "system",
			Kind:        types.KindAbout,
			DefaultSize: types.Size{Width: 400, Height: 300},
			Icon:        "/images/icons/ASM.png",
			Color:       "#8B5CF6",
			DarkColor:   "#6D28D9",
			TextColor:   "#ffffff",
		},
		{
			ID:          "github",
			Name:        "GitHub",
			Category:    "links",
			Kind:        types.KindExternal,
			ExternalURL: "https://github.com/aadishiv23",
			Icon:        "/images/icons/github-logo.png",
			Color:       "#4B5563",
			DarkColor:   "#333333",
			TextColor:   "#ffffff",
			Dock:        6,
		},
		{
			ID:          "linkedin",
			Name:        "LinkedIn",
			Category:    "links",
			Kind:        types.KindExternal,
			ExternalURL: "https://www.linkedin.com/in/aadi-shiv-malhotra/",
			Icon:        "/images/icons/linkedin_logo.webp",
			Color:       "#0A66C2",
			DarkColor:   "#0A66C2",
			TextColor:   "#ffffff",
			Dock:        7,
		},
	}
}
