// Package api implements the typed HTTP client for the career portal REST
// backend. It translates method calls into JSON requests, attaches the bearer
// token when one is stored, and maps the backend's success envelope onto
// typed results and errors.
package api

import (
	"context"

	"github.com/mkresic/karijera/internal/client/models"
)

// Credentials is the login request body. Never stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up request body. Person roles send first/last
// name; employer and faculty accounts send a username instead.
type Registration struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Username  string      `json:"username,omitempty"`
	Role      models.Role `json:"role,omitempty"`
	Faculty   string      `json:"faculty,omitempty"`
	Interests []string    `json:"interests,omitempty"`
}

// LoginOutcome discriminates the three-way login result.
type LoginOutcome int

const (
	// LoginOK means the backend issued a token and a user.
	LoginOK LoginOutcome = iota
	// LoginAAIRedirect means the caller must send the user to the
	// institutional identity provider instead of treating this as a failure.
	LoginAAIRedirect
)

// LoginResult is the success side of a login or registration call. Failures
// are reported through the error return instead of a flag on this struct.
type LoginResult struct {
	Outcome     LoginOutcome
	Token       string
	User        *models.User
	AAILoginURL string
}

// AssociationFilter narrows association listings.
type AssociationFilter struct {
	Faculty string
	Query   string
}

// JobFilter narrows job listings.
type JobFilter struct {
	Type  models.JobType
	Query string
}

// ErasmusFilter narrows Erasmus project listings.
type ErasmusFilter struct {
	Faculty      string
	FieldOfStudy string
}

// JobDraft is the writable part of a posting.
type JobDraft struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Type         models.JobType `json:"type"`
	Company      string         `json:"company,omitempty"`
	Location     string         `json:"location,omitempty"`
	Salary       string         `json:"salary,omitempty"`
	Requirements []string       `json:"requirements,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
}

// ErasmusDraft is the writable part of an Erasmus project.
type ErasmusDraft struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	FacultySlug         string   `json:"facultySlug"`
	Country             string   `json:"country,omitempty"`
	University          string   `json:"university,omitempty"`
	FieldOfStudy        string   `json:"fieldOfStudy,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Benefits            []string `json:"benefits,omitempty"`
	ContactEmail        string   `json:"contactEmail,omitempty"`
	ContactPhone        string   `json:"contactPhone,omitempty"`
	Website             string   `json:"website,omitempty"`
}

// InquiryDraft is a message to a faculty. Sender fields travel in the body
// because inquiries may be sent without being logged in.
type InquiryDraft struct {
	FacultySlug string `json:"facultySlug"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// AssociationDraft is the writable part of an association.
type AssociationDraft struct {
	Name             string            `json:"name"`
	Faculty          string            `json:"faculty"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description,omitempty"`
	Type             string            `json:"type,omitempty"`
	LogoText         string            `json:"logoText,omitempty"`
	LogoBg           string            `json:"logoBg,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Links            map[string]string `json:"links,omitempty"`
}

// FacultyDraft is the writable part of a faculty record (admin only).
type FacultyDraft struct {
	Name         string             `json:"name,omitempty"`
	Type         models.FacultyType `json:"type,omitempty"`
	Abbreviation string             `json:"abbreviation,omitempty"`
	Email        string             `json:"email,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Address      string             `json:"address,omitempty"`
	Website      string             `json:"website,omitempty"`
}

// Client is the full backend surface the application depends on. The concrete
// transport lives in HTTPClient; tests substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, reg Registration) (*LoginResult, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	GoogleLoginURL() string

	// Catalog.
	Faculties(ctx context.Context, query string) ([]models.Faculty, error)
	Faculty(ctx context.Context, slug string) (*models.Faculty, error)
	Associations(ctx context.Context, filter AssociationFilter) ([]models.Association, error)
	Association(ctx context.Context, slug string) (*models.Association, error)
	Search(ctx context.Context, query, faculty string) (*models.SearchResults, error)

	// Jobs.
	Jobs(ctx context.Context, filter JobFilter) ([]models.Job, error)
	Job(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, draft JobDraft) (*models.Job, error)
	Apply(ctx context.Context, jobID int64, message string) (*models.JobApplication, error)
	Applications(ctx context.Context, jobID int64) ([]models.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.JobApplication, error)
	EmailApplicant(ctx context.Context, applicationID int64, subject, message string) error

	// Erasmus.
	ErasmusProjects(ctx context.Context, filter ErasmusFilter) ([]models.ErasmusProject, error)
	ErasmusProject(ctx context.Context, id int64) (*models.ErasmusProject, error)
	CreateErasmusProject(ctx context.Context, draft ErasmusDraft) (*models.ErasmusProject, error)
	UpdateErasmusProject(ctx context.Context, id int64, draft ErasmusDraft) (*models.ErasmusProject, error)
	DeleteErasmusProject(ctx context.Context, id int64) error

	// Favorites.
	AddFavoriteFaculty(ctx context.Context, slug string) (*models.FavoriteFaculty, error)
	FavoriteFaculties(ctx context.Context) ([]models.FavoriteFaculty, error)
	RemoveFavoriteFaculty(ctx context.Context, slug string) error
	IsFavoriteFaculty(ctx context.Context, slug string) (bool, error)

	// Inquiries.
	SendInquiry(ctx context.Context, draft InquiryDraft) (*models.Inquiry, error)
	MyInquiries(ctx context.Context) ([]models.Inquiry, error)
	FacultyInquiries(ctx context.Context, slug, status string) ([]models.Inquiry, error)
	MarkInquiryRead(ctx context.Context, id int64) error
	ReplyToInquiry(ctx context.Context, id int64, message string) error

	// Chatbot.
	CreateChatSession(ctx context.Context) (*models.ChatSession, error)
	DeleteChatSession(ctx context.Context, sessionID string) error
	SendChatMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error)
	ChatHistory(ctx context.Context, sessionID string) (*models.ChatHistory, error)

	// Admin.
	AdminFaculties(ctx context.Context) ([]models.Faculty, error)
	AdminCreateFaculty(ctx context.Context, draft FacultyDraft) (*models.Faculty, error)
	AdminUpdateFaculty(ctx context.Context, slug string, draft FacultyDraft) (*models.Faculty, error)
	AdminDeleteFaculty(ctx context.Context, slug string) error
	AdminAssociations(ctx context.Context) ([]models.Association, error)
	AdminUpdateAssociation(ctx context.Context, id int64, draft AssociationDraft) (*models.Association, error)
	AdminDeleteAssociation(ctx context.Context, id int64) error
	CreateAssociation(ctx context.Context, draft AssociationDraft) (*models.Association, error)
}
