package models

// User is a generated account belonging to exactly one organization.
// Rows are created once per seed run and never mutated afterwards; the
// email embeds the numeric id so addresses stay unique without a lookup.
type User struct {
	ID             int64    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name           string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role           UserRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Email          string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber    string   `json:"phone_number" gorm:"size:30"`
	PasswordHash   string   `json:"-" gorm:"not null;size:100"`
	OrganizationID int64    `json:"organization_id" gorm:"not null;index" validate:"required"`
	JobTitle       string   `json:"job_title" gorm:"size:100"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
