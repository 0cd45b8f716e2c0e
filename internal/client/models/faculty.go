package models

// FacultyType distinguishes faculties from art academies.
type FacultyType string

const (
	FacultyTypeFaculty FacultyType = "faculty"
	FacultyTypeAcademy FacultyType = "academy"
)

// FacultyContacts holds the public contact block of a faculty.
type FacultyContacts struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// Faculty is addressed by slug everywhere in the API.
type Faculty struct {
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation,omitempty"`
	Type         FacultyType      `json:"type"`
	Contacts     *FacultyContacts `json:"contacts,omitempty"`
}

// Association is a student association tied to a faculty.
type Association struct {
	ID               int64             `json:"id"`
	Slug             string            `json:"slug"`
	Name             string            `json:"name"`
	Faculty          string            `json:"faculty,omitempty"`
	Type             string            `json:"type,omitempty"`
	LogoText         string            `json:"logoText,omitempty"`
	LogoBg           string            `json:"logoBg,omitempty"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	Description      string            `json:"description,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Links            map[string]string `json:"links,omitempty"`
}

// FavoriteFaculty is a faculty bookmarked by a student or ucenik account.
type FavoriteFaculty struct {
	ID          int64    `json:"id"`
	FacultySlug string   `json:"facultySlug"`
	Faculty     *Faculty `json:"faculty,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// Inquiry is a message sent to a faculty through the contact form. Anonymous
// senders are allowed, so sender identity travels in the body rather than
// being derived from the session.
type Inquiry struct {
	ID          int64  `json:"id"`
	FacultySlug string `json:"facultySlug"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Status      string `json:"status,omitempty"`
	Reply       string `json:"reply,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
