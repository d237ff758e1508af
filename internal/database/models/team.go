package models

// Team groups 4-6 users from a single organization. The lead is the first
// sampled member and always appears in MemberIDs; the organization is
// implied by the lead, so the row carries no organization_id of its own.
type Team struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	LeadID    int64  `json:"lead_id" gorm:"not null;index" validate:"required"`
	MemberIDs IDList `json:"member_ids" gorm:"type:jsonb;not null"`

	// Relationships
	Lead *User `json:"lead,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
