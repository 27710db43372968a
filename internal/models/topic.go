package models

// Topic is a category articles are filed under
type Topic struct {
	Slug        string `json:"slug" db:"slug" yaml:"slug"`
	Description string `json:"description" db:"description" yaml:"description"`
}
