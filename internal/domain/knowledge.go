package domain

// Knowledge links a technician to a device they are qualified to service.
// One row per (technician, device) pair; rows disappear with either side.
type Knowledge struct {
	ID           int         `gorm:"primaryKey;autoIncrement" json:"id"`
	TechnicianID int         `gorm:"column:technician_id;not null;uniqueIndex:idx_technician_device" json:"technician_id"`
	Technician   *Technician `gorm:"constraint:OnDelete:CASCADE;foreignKey:TechnicianID;references:ID" json:"technician,omitempty"`
	DeviceID     int         `gorm:"column:device_id;not null;uniqueIndex:idx_technician_device" json:"device_id"`
	Device       *Device     `gorm:"constraint:OnDelete:CASCADE;foreignKey:DeviceID;references:ID" json:"device,omitempty"`
}

func (Knowledge) TableName() string { return "knowledge" }
