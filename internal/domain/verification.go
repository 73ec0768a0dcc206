package domain

// Verification confirmation states. The transition is one-way: a pending
// row becomes confirmed and never reverts.
const (
	VerificationPending   = 0
	VerificationConfirmed = 1
)

// Verification is one technician's acknowledgment of one update. Rows are
// fanned out in bulk when an update is created, one per technician holding
// knowledge of the update's device at that moment. ConfirmedAt stays empty
// until the confirm operation stamps it.
type Verification struct {
	ID           int         `gorm:"primaryKey;autoIncrement" json:"id"`
	UpdateID     int         `gorm:"column:update_id;not null;uniqueIndex:idx_update_technician" json:"update_id"`
	Update       *Update     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UpdateID;references:ID" json:"update,omitempty"`
	TechnicianID int         `gorm:"column:technician_id;not null;uniqueIndex:idx_update_technician" json:"technician_id"`
	Technician   *Technician `gorm:"constraint:OnDelete:CASCADE;foreignKey:TechnicianID;references:ID" json:"technician,omitempty"`
	Confirmed    int         `gorm:"column:confirmed;not null;default:0" json:"confirmed"`
	ConfirmedAt  string      `gorm:"column:confirmed_at" json:"confirmed_at"`
}

func (Verification) TableName() string { return "verifications" }
