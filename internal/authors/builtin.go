package authors

import "github.com/blog-publisher-api/internal/models"

// DefaultAuthorID is the author unknown ids fall back to in the built-in directory
const DefaultAuthorID = "data-crusader"

// Builtin returns the directory shipped with the blog
func Builtin() *Directory {
	d, err := New(builtinAuthors(), DefaultAuthorID)
	if err != nil {
		panic(err)
	}
	return d
}

func builtinAuthors() []models.Author {
	return []models.Author{
		{
			ID:        "data-crusader",
			Name:      "Data Crusader",
			Role:      "Head of Data Strategy",
			Avatar:    "🦸‍♂️",
			Bio:       "A seasoned data professional with over 10 years of experience in enterprise data architecture and information asymmetry strategies.",
			Articles:  16,
			Followers: 1247,
		},
		{
			ID:        "cosmic-analyst",
			Name:      "Cosmic Analyst",
			Role:      "Data Architecture Lead",
			Avatar:    "🌌",
			Bio:       "Specializing in building scalable data universes that connect disparate enterprise systems across organizational boundaries.",
			Articles:  13,
			Followers: 892,
		},
		{
			ID:        "web-weaver",
			Name:      "Web Weaver",
			Role:      "Analytics Specialist",
			Avatar:    "🕷️",
			Bio:       "Expert in crafting compelling data narratives that transform complex information into actionable insights.",
			Articles:  19,
			Followers: 1156,
		},
	}
}
