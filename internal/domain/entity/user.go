// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the studio.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's login email.
	Roles     Roles     // Roles granted to the account.
	Profile   *UserProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Roles.Contains(RoleAdmin)
}

// SocialLinks are the optional public links a creator can show on their profile.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Discord   string `json:"discord,omitempty"`
	Website   string `json:"website,omitempty"`
}

// UserProfile is the public-facing profile of a user. Its ID equals the user ID.
type UserProfile struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name,omitempty"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
	Socials     SocialLinks `json:"socials"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PublicProfile is the subset of a profile attached to shared artifacts.
type PublicProfile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

// Public strips private fields from the profile.
func (p *UserProfile) Public() *PublicProfile {
	if p == nil {
		return nil
	}

	return &PublicProfile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}
