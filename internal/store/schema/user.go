package schema

import (
	"time"

	"github.com/feral-file/launchpad/internal/domain"
)

// User represents the users table - one row per identity-provider subject
type User struct {
	ID      string `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClerkID string `gorm:"column:clerk_id;not null;uniqueIndex;type:text"`

	Email      string            `gorm:"column:email;not null;type:text"`
	FirstName  string            `gorm:"column:first_name;type:text"`
	LastName   string            `gorm:"column:last_name;type:text"`
	ImageURL   string            `gorm:"column:image_url;type:text"`
	Occupation domain.Occupation `gorm:"column:occupation;type:text"`

	// Notification preferences
	EmailNotifications bool `gorm:"column:email_notifications;not null"`
	WeeklyDigest       bool `gorm:"column:weekly_digest;not null"`

	// Onboarding flags
	Onboarded        bool `gorm:"column:onboarded;not null;default:false"`
	ProfileCompleted bool `gorm:"column:profile_completed;not null;default:false"`

	// Role-specific fields; which ones are meaningful depends on Occupation
	CompanyName     string `gorm:"column:company_name;type:text"`
	JobTitle        string `gorm:"column:job_title;type:text"`
	LinkedinURL     string `gorm:"column:linkedin_url;type:text"`
	Bio             string `gorm:"column:bio;type:text"`
	InvestmentFocus string `gorm:"column:investment_focus;type:text"`
	CheckSize       string `gorm:"column:check_size;type:text"`
	PortfolioURL    string `gorm:"column:portfolio_url;type:text"`
	Expertise       string `gorm:"column:expertise;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// UserPatch lists the editable fields of a user; nil leaves the field untouched
type UserPatch struct {
	Email              *string
	FirstName          *string
	LastName           *string
	ImageURL           *string
	Occupation         *domain.Occupation
	EmailNotifications *bool
	WeeklyDigest       *bool
	Onboarded          *bool
	ProfileCompleted   *bool
	CompanyName        *string
	JobTitle           *string
	LinkedinURL        *string
	Bio                *string
	InvestmentFocus    *string
	CheckSize          *string
	PortfolioURL       *string
	Expertise          *string
}

// Apply merges the set fields onto u
func (p UserPatch) Apply(u *User) {
	setString(&u.Email, p.Email)
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.ImageURL, p.ImageURL)
	if p.Occupation != nil {
		u.Occupation = *p.Occupation
	}
	setBool(&u.EmailNotifications, p.EmailNotifications)
	setBool(&u.WeeklyDigest, p.WeeklyDigest)
	setBool(&u.Onboarded, p.Onboarded)
	setBool(&u.ProfileCompleted, p.ProfileCompleted)
	setString(&u.CompanyName, p.CompanyName)
	setString(&u.JobTitle, p.JobTitle)
	setString(&u.LinkedinURL, p.LinkedinURL)
	setString(&u.Bio, p.Bio)
	setString(&u.InvestmentFocus, p.InvestmentFocus)
	setString(&u.CheckSize, p.CheckSize)
	setString(&u.PortfolioURL, p.PortfolioURL)
	setString(&u.Expertise, p.Expertise)
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
