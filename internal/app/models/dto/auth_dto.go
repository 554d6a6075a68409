package dto

import "github.com/setnu/clubportal/internal/app/models"

// RegisterRequest signs a new member up
type RegisterRequest struct {
	Email       string         `json:"email" binding:"required,email" example:"member@club.edu"`
	Password    string         `json:"password" binding:"required,min=8" example:"Passw0rd!"`
	Name        string         `json:"name" binding:"required,min=2,max=100" example:"Grace Hopper"`
	Role        models.AppRole `json:"role" binding:"omitempty,oneof=student faculty club_mentor student_coordinator" example:"student"`
	Phone       string         `json:"phone" example:"+91 98765 43210"`
	SpecialCode string         `json:"specialCode"`
}

// LoginRequest authenticates an existing member
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"member@club.edu"`
	Password string `json:"password" binding:"required" example:"Passw0rd!"`
}

// TokenResponse carries the access token
type TokenResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresIn   int             `json:"expiresIn" example:"86400"`
	Profile     ProfileResponse `json:"profile"`
}

// ProfileResponse is the caller's identity as the front end sees it
type ProfileResponse struct {
	UserID  string         `json:"userId"`
	Email   string         `json:"email"`
	Name    string         `json:"name"`
	Role    models.AppRole `json:"role"`
	Phone   *string        `json:"phone,omitempty"`
	IsAdmin bool           `json:"isAdmin"`
}

// NewProfileResponse builds a ProfileResponse
func NewProfileResponse(email string, p *models.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:  p.UserID.String(),
		Email:   email,
		Name:    p.Name,
		Role:    p.Role,
		Phone:   p.Phone,
		IsAdmin: p.IsAdmin(),
	}
}
