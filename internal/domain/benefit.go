package domain

// Benefit is one marketed value proposition shown on the landing page.
// It has no identity beyond its position in the catalog.
type Benefit struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Icon        string `yaml:"icon" json:"icon" validate:"required"`
}
