package domain

import "time"

// Case is a portfolio entry describing a past event.
type Case struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type,omitempty"`
	Location  string `json:"location,omitempty"`
	DateLabel string `json:"date_label,omitempty"`
	ShortText string `json:"short_text,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Post is a blog article. Slug is unique across all posts.
type Post struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
