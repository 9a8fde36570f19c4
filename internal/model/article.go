package model

// Category groups articles by health topic.
type Category string

const (
	CategoryPCOS   Category = "PCOS"
	CategoryPCOD   Category = "PCOD"
	CategoryBreast Category = "Breast Health"
)

// Categories lists the known categories in display order.
func Categories() []Category {
	return []Category{CategoryPCOS, CategoryPCOD, CategoryBreast}
}

// Known reports whether c is one of the supported categories.
func (c Category) Known() bool {
	switch c {
	case CategoryPCOS, CategoryPCOD, CategoryBreast:
		return true
	}
	return false
}

// Glyph is the card icon shown in place of the article image.
func (c Category) Glyph() string {
	if c == CategoryBreast {
		return "♥"
	}
	return "📖"
}

// Gradient returns the two card colours (ANSI 256) for the category.
func (c Category) Gradient() (from, to string) {
	switch c {
	case CategoryPCOS:
		return "91", "162"
	case CategoryPCOD:
		return "25", "91"
	default:
		return "162", "25"
	}
}

// Article is a featured article shown on the home view.
type Article struct {
	ID       int      `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Excerpt  string   `yaml:"excerpt" json:"excerpt"`
	Body     string   `yaml:"body,omitempty" json:"body,omitempty"`
	Category Category `yaml:"category" json:"category"`
}

// Markdown renders the article as a Markdown document for the reader view.
func (a Article) Markdown() string {
	out := "# " + a.Title + "\n\n_" + string(a.Category) + "_\n\n> " + a.Excerpt + "\n"
	if a.Body != "" {
		out += "\n" + a.Body + "\n"
	}
	return out
}
