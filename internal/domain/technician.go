package domain

// Technician is a repair-lab worker. Drawer and Workstation are optional;
// an absent value never participates in uniqueness checks.
type Technician struct {
	ID              int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"column:name;not null" json:"name"`
	Surname         string  `gorm:"column:surname;not null" json:"surname"`
	Drawer          *int    `gorm:"column:drawer;uniqueIndex" json:"drawer,omitempty"`
	Workstation     *string `gorm:"column:workstation;uniqueIndex" json:"workstation,omitempty"`
	WorkstationUser *string `gorm:"column:workstation_user" json:"workstation_user,omitempty"`
}

func (Technician) TableName() string { return "technicians" }
