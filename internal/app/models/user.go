package models

import (
	"time"

	"github.com/google/uuid"
)

// AppRole is the role a profile holds in the club.
type AppRole string

const (
	RoleStudent            AppRole = "student"
	RoleFaculty            AppRole = "faculty"
	RoleClubMentor         AppRole = "club_mentor"
	RoleStudentCoordinator AppRole = "student_coordinator"
)

// Valid reports whether r is a known role.
func (r AppRole) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleClubMentor, RoleStudentCoordinator:
		return true
	}
	return false
}

// RequiresSpecialCode reports whether signing up with r needs the club's special code.
func (r AppRole) RequiresSpecialCode() bool {
	return r == RoleClubMentor || r == RoleStudentCoordinator
}

// User defines the login identity based on the 'users' table
type User struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Email       string     `json:"email" db:"email" example:"user@club.edu"`
	Password    string     `json:"-" db:"password"` // bcrypt hash
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// Profile is the club-facing identity attached to a user.
type Profile struct {
	Base
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name" example:"Grace Hopper"`
	Role        AppRole   `json:"role" db:"role" example:"student"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	SpecialCode *string   `json:"-" db:"special_code"`
}

// IsAdmin reports whether the profile may use the admin panel.
func (p Profile) IsAdmin() bool {
	switch p.Role {
	case RoleFaculty, RoleClubMentor, RoleStudentCoordinator:
		return true
	}
	return false
}
