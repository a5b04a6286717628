package entity

// Blog is a published or draft article. Content is editor HTML and is passed through untouched.
type Blog struct {
	Base
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Status   Status `json:"status"`
}
