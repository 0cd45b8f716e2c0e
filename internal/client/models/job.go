package models

// JobType enumerates the posting kinds the backend accepts.
type JobType string

const (
	JobTypeInternship JobType = "internship"
	JobTypeJob        JobType = "job"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
)

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Job is a job or internship posting.
type Job struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             JobType  `json:"type"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Salary           string   `json:"salary,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	Status           string   `json:"status,omitempty"`
	ApplicationCount int      `json:"applicationCount,omitempty"`
}

// JobSummary is the embedded job reference carried on applications.
type JobSummary struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Type  JobType `json:"type"`
}

// JobApplication links an applicant to a posting.
type JobApplication struct {
	ID        int64             `json:"id"`
	JobID     int64             `json:"jobId"`
	UserID    int64             `json:"userId"`
	UserEmail string            `json:"userEmail"`
	Message   string            `json:"message,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt string            `json:"createdAt,omitempty"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
	User      *User             `json:"user,omitempty"`
	Job       *JobSummary       `json:"job,omitempty"`
}

// ErasmusProject is an exchange opportunity published by a faculty account.
type ErasmusProject struct {
	ID                  int64    `json:"id"`
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
	Status              string   `json:"status,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
}
