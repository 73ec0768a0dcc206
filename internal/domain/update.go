package domain

// Update is a firmware or software release for one device. Date is stored
// as TEXT in the canonical "yyyy-MM-dd HH:mm:ss" form. Pending is derived
// at read time from the verification rows and is never persisted.
type Update struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	DeviceID    int     `gorm:"column:device_id;not null;uniqueIndex:idx_device_version" json:"device_id"`
	Device      *Device `gorm:"constraint:OnDelete:CASCADE;foreignKey:DeviceID;references:ID" json:"device,omitempty"`
	Version     string  `gorm:"column:version;not null;uniqueIndex:idx_device_version" json:"version"`
	Description string  `gorm:"column:description;not null" json:"description"`
	Date        string  `gorm:"column:date;not null" json:"date"`
	Pending     int     `gorm:"->;-:migration" json:"pending"`
}

func (Update) TableName() string { return "updates" }
