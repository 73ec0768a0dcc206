package domain

// Device is identified to users by its manufacturer+model pair, which is
// unique across the table.
type Device struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Manufacturer string `gorm:"column:manufacturer;not null;uniqueIndex:idx_manufacturer_model" json:"manufacturer"`
	Model        string `gorm:"column:model;not null;uniqueIndex:idx_manufacturer_model" json:"model"`
}

func (Device) TableName() string { return "devices" }
