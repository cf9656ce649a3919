package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks holds the optional social media URLs attached to a
// profile. The whole set is replaced on every profile write, so a
// link omitted from an update is cleared rather than preserved.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is the professional profile aggregate for a user. Each user
// has at most one profile, enforced by the unique index on UserID.
type Profile struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	UserID         uint                        `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User                        `gorm:"foreignKey:UserID" json:"user"`
	Company        string                      `json:"company,omitempty"`
	Website        string                      `json:"website,omitempty"`
	Location       string                      `json:"location,omitempty"`
	Status         string                      `gorm:"not null" json:"status"`
	Skills         datatypes.JSONSlice[string] `json:"skills"`
	Bio            string                      `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string                      `json:"githubusername,omitempty"`
	Social         SocialLinks                 `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience                `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education                 `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time                   `json:"date"`
	UpdatedAt      time.Time                   `json:"-"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}

// Experience is a work history entry. Entries are listed most recently
// added first.
type Experience struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProfileID   uint           `gorm:"not null;index" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Company     string         `gorm:"not null" json:"company"`
	Location    string         `json:"location,omitempty"`
	From        time.Time      `gorm:"not null" json:"from"`
	To          *time.Time     `json:"to,omitempty"`
	Current     bool           `json:"current"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Education is a schooling entry, ordered the same way as Experience.
type Education struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ProfileID    uint           `gorm:"not null;index" json:"-"`
	School       string         `gorm:"not null" json:"school"`
	Degree       string         `gorm:"not null" json:"degree"`
	FieldOfStudy string         `gorm:"not null" json:"fieldofstudy"`
	From         time.Time      `gorm:"not null" json:"from"`
	To           *time.Time     `json:"to,omitempty"`
	Current      bool           `json:"current"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
