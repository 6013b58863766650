package entity

import "fmt"

// AutoDetect is the subcategory name that lets the generator pick a fitting backdrop.
const AutoDetect = "Auto Detect"

// Category is a visual theme the generated background is drawn from.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	IsCustom      bool          `json:"is_custom,omitempty"` // free-text prompt instead of a catalog pick
}

// Subcategory narrows a Category to a specific setting.
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// HasSubcategories reports whether the category offers a subcategory pick.
func (c Category) HasSubcategories() bool {
	return len(c.Subcategories) > 0
}

// FindSubcategory returns the subcategory with the given id.
func (c Category) FindSubcategory(id string) (Subcategory, bool) {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return sub, true
		}
	}

	return Subcategory{}, false
}

func coverImage(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/1200", seed)
}

func sub(id, name, description, seed string) Subcategory {
	return Subcategory{
		ID:          id,
		Name:        name,
		Description: description,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/400/600", seed),
	}
}

//nolint:gochecknoglobals
var catalog = []Category{
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Design your own reality",
		Image:       coverImage("custom"),
		IsCustom:    true,
	},
	{
		ID:          "nature",
		Name:        "Nature",
		Description: "Breathtaking natural worlds",
		Image:       coverImage("nature"),
		Subcategories: []Subcategory{
			sub("nature-auto", AutoDetect, "Smart context placement", "n-auto"),
			sub("nature-forest", "Forest", "Ancient woodland", "forest"),
			sub("nature-desert", "Desert", "Sun-drenched dunes", "desert"),
			sub("nature-arctic", "Arctic", "Frozen wasteland", "arctic"),
			sub("nature-volcano", "Volcano", "Molten earth", "volc"),
		},
	},
	{
		ID:          "comic",
		Name:        "Comic",
		Description: "Step into the pages",
		Image:       coverImage("comic"),
		Subcategories: []Subcategory{
			sub("comic-auto", AutoDetect, "Classic comic world", "c-auto"),
		},
	},
	{
		ID:          "action",
		Name:        "Action",
		Description: "Pure adrenaline",
		Image:       coverImage("action"),
		Subcategories: []Subcategory{
			sub("action-auto", AutoDetect, "Dynamic battlefield", "a-auto"),
			sub("action-explosion", "Explosion", "Cinematic chaos", "explos"),
			sub("action-volcano", "Volcano", "Primal erupting power", "avolc"),
			sub("action-armageddon", "Armageddon", "End of days", "arma"),
		},
	},
	{
		ID:          "scifi",
		Name:        "Science Fiction",
		Description: "The future is now",
		Image:       coverImage("scifi"),
		Subcategories: []Subcategory{
			sub("scifi-auto", AutoDetect, "Techno-logical future", "s-auto"),
			sub("scifi-city", "Futuristic City", "Neon skyline", "neoncity"),
			sub("scifi-ship", "Starship Interiors", "Deep space vessel", "starship"),
			sub("scifi-dystopian", "Dystopian", "Cyberpunk decay", "dysto"),
		},
	},
	{
		ID:          "fantasy",
		Name:        "Fantasy",
		Description: "Magic and mystery",
		Image:       coverImage("fantasy"),
		Subcategories: []Subcategory{
			sub("fantasy-auto", AutoDetect, "Mythical realm", "f-auto"),
			sub("fantasy-forest", "Ethereal Forest", "Glowing flora", "ethforest"),
			sub("fantasy-falls", "Waterfalls", "Majestic cascades", "falls"),
			sub("fantasy-mtn", "Enchanted Mountains", "Sky-piercing peaks", "enchmtn"),
			sub("fantasy-elves", "Elven Enclaves", "Living architecture", "elves"),
			sub("fantasy-human", "Human Kingdoms", "High stone spires", "h-kingdom"),
			sub("fantasy-dwarf", "Dwarven Halls", "Mountain deeps", "dwarfh"),
			sub("fantasy-castles", "Haunted Castles", "Shadowy ruins", "hcast"),
			sub("fantasy-swamp", "Shadowy Swamps", "Dark waters", "swamp"),
			sub("fantasy-underworld", "Underworld Realm", "Chthonic glory", "under"),
			sub("fantasy-arcane", "Arcane Spaces", "Mystic laboratories", "arcane"),
		},
	},
	{
		ID:          "anime",
		Name:        "Anime",
		Description: "Be the hero",
		Image:       coverImage("anime"),
		Subcategories: []Subcategory{
			sub("anime-auto", AutoDetect, "Cel-shaded destiny", "an-auto"),
		},
	},
}

// Categories returns a copy of the static theme catalog in display order.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		c.Subcategories = append([]Subcategory(nil), c.Subcategories...)
		out[i] = c
	}

	return out
}

// FindCategory looks up a catalog category by id.
func FindCategory(id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			c.Subcategories = append([]Subcategory(nil), c.Subcategories...)

			return c, true
		}
	}

	return Category{}, false
}
