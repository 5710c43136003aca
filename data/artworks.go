package data

import "github.com/SolomonAgyire/Gallery/models"

// Catalog holds every artwork the gallery sells.
var Catalog = []models.Artwork{
	{
		ID:          "1",
		Title:       "Sunset Horizon",
		Artist:      "Emma Johnson",
		Description: "A vibrant depiction of a sunset over calm waters, with rich oranges and purples reflecting on the surface.",
		Price:       1200,
		ImageURL:    "https://images.unsplash.com/photo-1518998053901-5348d3961a04?auto=format&fit=crop&w=1074&q=80",
		Dimensions:  `24" x 36"`,
		Medium:      "Oil on canvas",
		Year:        "2022",
	},
	{
		ID:          "2",
		Title:       "Urban Rhythm",
		Artist:      "Marcus Chen",
		Description: "An abstract representation of city life, with geometric shapes and bold colors creating a sense of movement and energy.",
		Price:       950,
		ImageURL:    "https://images.unsplash.com/photo-1549887552-cb1071d3e5ca?auto=format&fit=crop&w=765&q=80",
		Dimensions:  `30" x 30"`,
		Medium:      "Acrylic on canvas",
		Year:        "2021",
	},
	{
		ID:          "3",
		Title:       "Serene Forest",
		Artist:      "Olivia Martinez",
		Description: "A peaceful forest scene with sunlight filtering through the trees, creating a sense of tranquility and harmony with nature.",
		Price:       1500,
		ImageURL:    "https://images.unsplash.com/photo-1518021964703-4b2030f03085?auto=format&fit=crop&w=1074&q=80",
		Dimensions:  `36" x 48"`,
		Medium:      "Oil on canvas",
		Year:        "2023",
	},
	{
		ID:          "4",
		Title:       "Coastal Dreams",
		Artist:      "James Wilson",
		Description: "A dreamy coastal landscape with soft waves crashing against rocky shores, evoking a sense of nostalgia and longing.",
		Price:       1100,
		ImageURL:    "https://images.unsplash.com/photo-1518623489648-a173ef7824f3?auto=format&fit=crop&w=1074&q=80",
		Dimensions:  `24" x 36"`,
		Medium:      "Watercolor on paper",
		Year:        "2022",
	},
	{
		ID:          "5",
		Title:       "Abstract Emotions",
		Artist:      "Sophia Lee",
		Description: "An exploration of human emotions through abstract forms and vibrant colors, inviting viewers to interpret their own feelings.",
		Price:       1800,
		ImageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?auto=format&fit=crop&w=758&q=80",
		Dimensions:  `40" x 60"`,
		Medium:      "Mixed media on canvas",
		Year:        "2023",
	},
	{
		ID:          "6",
		Title:       "Mountain Majesty",
		Artist:      "Daniel Brown",
		Description: "A majestic mountain range at sunrise, with dramatic lighting highlighting the rugged peaks and valleys.",
		Price:       1350,
		ImageURL:    "https://images.unsplash.com/photo-1548516173-3cabfa4607e9?auto=format&fit=crop&w=687&q=80",
		Dimensions:  `30" x 40"`,
		Medium:      "Oil on canvas",
		Year:        "2021",
	},
	{
		ID:          "7",
		Title:       "Floral Symphony",
		Artist:      "Isabella Garcia",
		Description: "A vibrant arrangement of wildflowers in full bloom, celebrating the beauty and diversity of nature.",
		Price:       900,
		ImageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?auto=format&fit=crop&w=745&q=80",
		Dimensions:  `24" x 24"`,
		Medium:      "Acrylic on canvas",
		Year:        "2022",
	},
	{
		ID:          "8",
		Title:       "Urban Solitude",
		Artist:      "Michael Thompson",
		Description: "A contemplative scene of a solitary figure in an urban landscape, exploring themes of isolation in modern society.",
		Price:       1250,
		ImageURL:    "https://images.unsplash.com/photo-1501084817091-a4f3d1d19e07?auto=format&fit=crop&w=1170&q=80",
		Dimensions:  `36" x 48"`,
		Medium:      "Oil on canvas",
		Year:        "2023",
	},
	{
		ID:          "9",
		Title:       "Celestial Wonder",
		Artist:      "Aisha Patel",
		Description: "A cosmic scene depicting the wonders of the universe, with swirling galaxies and nebulae in deep blues and purples.",
		Price:       1600,
		ImageURL:    "https://images.unsplash.com/photo-1541367777708-7905fe3296c0?auto=format&fit=crop&w=1195&q=80",
		Dimensions:  `48" x 48"`,
		Medium:      "Mixed media on canvas",
		Year:        "2022",
	},
	{
		ID:          "10",
		Title:       "Autumn Reflections",
		Artist:      "Robert Kim",
		Description: "A serene autumn scene with colorful foliage reflected in a still lake, capturing the peaceful transition of seasons.",
		Price:       1150,
		ImageURL:    "https://images.unsplash.com/photo-1508669232496-137b159c1cdb?auto=format&fit=crop&w=687&q=80",
		Dimensions:  `30" x 40"`,
		Medium:      "Oil on canvas",
		Year:        "2021",
	},
	{
		ID:          "11",
		Title:       "Dancing Waves",
		Artist:      "Elena Rodriguez",
		Description: "A dynamic seascape capturing the powerful movement of ocean waves during a storm, with dramatic lighting and textures.",
		Price:       1300,
		ImageURL:    "https://images.unsplash.com/photo-1580136579312-94651dfd596d?auto=format&fit=crop&w=687&q=80",
		Dimensions:  `36" x 48"`,
		Medium:      "Oil on canvas",
		Year:        "2023",
	},
	{
		ID:          "12",
		Title:       "Geometric Harmony",
		Artist:      "David Wright",
		Description: "An abstract composition of geometric shapes in harmonious balance, exploring the relationship between form and color.",
		Price:       950,
		ImageURL:    "https://images.unsplash.com/photo-1605106702734-205df224ecce?auto=format&fit=crop&w=735&q=80",
		Dimensions:  `30" x 30"`,
		Medium:      "Acrylic on canvas",
		Year:        "2022",
	},
}

// featuredIDs are the pieces highlighted on the home page.
var featuredIDs = []string{"1", "2", "3", "5"}

// ByID looks an artwork up in the catalog.
func ByID(id string) (models.Artwork, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artwork{}, false
}

// Featured returns the home-page highlight set, in catalog order.
func Featured() []models.Artwork {
	out := make([]models.Artwork, 0, len(featuredIDs))
	for _, id := range featuredIDs {
		if a, ok := ByID(id); ok {
			out = append(out, a)
		}
	}
	return out
}
