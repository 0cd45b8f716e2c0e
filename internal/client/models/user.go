// Package models defines the portal's resource types as seen by the client:
// the role-tagged user, faculties, associations, jobs and applications,
// Erasmus projects, favorites, inquiries, chatbot messages, and the JSON
// envelopes the backend wraps them in.
package models

import (
	"encoding/json"
	"strings"
)

// Role classifies an account kind. The backend stores it as a plain string;
// the set below is what the portal issues today.
type Role string

const (
	RoleStudent  Role = "student"
	RoleUcenik   Role = "ucenik"
	RoleAlumni   Role = "alumni"
	RoleEmployer Role = "employer"
	RoleFaculty  Role = "faculty"
	RoleAdmin    Role = "admin"
)

// Profile carries the role-specific identity fields of a user. Person-like
// roles (student, ucenik, alumni, admin) have first/last names; institutional
// roles (employer, faculty) identify themselves by username.
type Profile interface {
	Role() Role
	DisplayName() string
}

// StudentProfile is the enrolled-student variant.
type StudentProfile struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Faculty   string   `json:"faculty,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func (p StudentProfile) Role() Role          { return RoleStudent }
func (p StudentProfile) DisplayName() string { return joinName(p.FirstName, p.LastName) }

// UcenikProfile is the secondary-school variant; no faculty affiliation yet.
type UcenikProfile struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Interests []string `json:"interests,omitempty"`
}

func (p UcenikProfile) Role() Role          { return RoleUcenik }
func (p UcenikProfile) DisplayName() string { return joinName(p.FirstName, p.LastName) }

// AlumniProfile keeps the graduate's former faculty.
type AlumniProfile struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Faculty   string   `json:"faculty,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func (p AlumniProfile) Role() Role          { return RoleAlumni }
func (p AlumniProfile) DisplayName() string { return joinName(p.FirstName, p.LastName) }

// EmployerProfile identifies a company account by username.
type EmployerProfile struct {
	Username string `json:"username"`
}

func (p EmployerProfile) Role() Role          { return RoleEmployer }
func (p EmployerProfile) DisplayName() string { return p.Username }

// FacultyProfile identifies a faculty account by username plus the faculty
// it administers.
type FacultyProfile struct {
	Username string `json:"username"`
	Faculty  string `json:"faculty,omitempty"`
}

func (p FacultyProfile) Role() Role          { return RoleFaculty }
func (p FacultyProfile) DisplayName() string { return p.Username }

// AdminProfile is the portal operator variant.
type AdminProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (p AdminProfile) Role() Role          { return RoleAdmin }
func (p AdminProfile) DisplayName() string { return joinName(p.FirstName, p.LastName) }

// GenericProfile preserves accounts with a role this client version does not
// know about, so an older binary never drops fields it cannot classify.
type GenericProfile struct {
	RoleName  Role
	FirstName string
	LastName  string
	Username  string
}

func (p GenericProfile) Role() Role { return p.RoleName }
func (p GenericProfile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return joinName(p.FirstName, p.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// User is the identity projection the backend returns. The wire format is a
// flat object discriminated by "role"; in memory the role-specific fields
// live in the Profile variant.
type User struct {
	ID      int64
	Email   string
	Profile Profile
}

func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

func (u *User) DisplayName() string {
	if u.Profile == nil {
		return u.Email
	}
	if n := u.Profile.DisplayName(); n != "" {
		return n
	}
	return u.Email
}

// userWire is the flat JSON shape shared by all roles.
type userWire struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Username  string   `json:"username,omitempty"`
	Faculty   *string  `json:"faculty,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	faculty := ""
	if w.Faculty != nil {
		faculty = *w.Faculty
	}

	u.ID = w.ID
	u.Email = w.Email

	switch w.Role {
	case RoleStudent:
		u.Profile = StudentProfile{FirstName: w.FirstName, LastName: w.LastName, Faculty: faculty, Interests: w.Interests}
	case RoleUcenik:
		u.Profile = UcenikProfile{FirstName: w.FirstName, LastName: w.LastName, Interests: w.Interests}
	case RoleAlumni:
		u.Profile = AlumniProfile{FirstName: w.FirstName, LastName: w.LastName, Faculty: faculty, Interests: w.Interests}
	case RoleEmployer:
		u.Profile = EmployerProfile{Username: w.Username}
	case RoleFaculty:
		u.Profile = FacultyProfile{Username: w.Username, Faculty: faculty}
	case RoleAdmin:
		u.Profile = AdminProfile{FirstName: w.FirstName, LastName: w.LastName}
	default:
		u.Profile = GenericProfile{RoleName: w.Role, FirstName: w.FirstName, LastName: w.LastName, Username: w.Username}
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	w := userWire{ID: u.ID, Email: u.Email, Role: u.Role()}

	switch p := u.Profile.(type) {
	case StudentProfile:
		w.FirstName, w.LastName, w.Interests = p.FirstName, p.LastName, p.Interests
		if p.Faculty != "" {
			w.Faculty = &p.Faculty
		}
	case UcenikProfile:
		w.FirstName, w.LastName, w.Interests = p.FirstName, p.LastName, p.Interests
	case AlumniProfile:
		w.FirstName, w.LastName, w.Interests = p.FirstName, p.LastName, p.Interests
		if p.Faculty != "" {
			w.Faculty = &p.Faculty
		}
	case EmployerProfile:
		w.Username = p.Username
	case FacultyProfile:
		w.Username = p.Username
		if p.Faculty != "" {
			w.Faculty = &p.Faculty
		}
	case AdminProfile:
		w.FirstName, w.LastName = p.FirstName, p.LastName
	case GenericProfile:
		w.FirstName, w.LastName, w.Username = p.FirstName, p.LastName, p.Username
	}
	return json.Marshal(w)
}
