package models

// ImageUpload is an optional featured image carried by a submission
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Submission holds the raw form fields of a create-article request
type Submission struct {
	Title         string       `form:"title"`
	Excerpt       string       `form:"excerpt"`
	Category      string       `form:"category"`
	Author        string       `form:"author"`
	Tags          string       `form:"tags"` // comma separated
	Content       string       `form:"content"`
	ContentFormat string       `form:"contentFormat"`
	Featured      string       `form:"featured"`
	Comments      string       `form:"comments"`
	Notification  string       `form:"notification"`
	Image         *ImageUpload `form:"-"`
}

// PublicationResult is returned to the submitter once every artifact is written
type PublicationResult struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	ImageJobID string `json:"imageJobId,omitempty"`
}
