package department

import "time"

// Department is a suggestion entry for the staff form. The staff
// department column stays free text; this table only feeds the UI list.
type Department struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Department) TableName() string {
	return "departments"
}
