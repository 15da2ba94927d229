package domain

import (
	"time"
)

// CatalogEntry is the read model of a movie as seen by an export job.
type CatalogEntry struct {
	Title       string
	Description string
	ReleaseDate *time.Time
	Director    string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

type Movie struct {
	ID    int64
	Title string
}

// Subscriber is a user that receives catalog announcements.
type Subscriber struct {
	Mail      string
	FirstName string
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

const (
	ExportFilename    = "movies.csv"
	ExportContentType = "text/csv"
	ExportSubject     = "Export CSV de vos films"
	ExportBody        = "Voici l'export de vos films au format CSV."
)

type AnnouncementEvent string

const (
	AnnouncementCreated AnnouncementEvent = "created"
	AnnouncementUpdated AnnouncementEvent = "updated"
)
