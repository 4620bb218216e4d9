package staff

import "time"

// Staff is the persistence model for a staff member. IDs are opaque
// UUID strings generated at create time.
type Staff struct {
	ID         string    `gorm:"primaryKey;column:id"`
	Name       string    `gorm:"column:name;not null"`
	Email      string    `gorm:"column:email;not null"`
	Department string    `gorm:"column:department;not null"`
	Role       string    `gorm:"column:role"`
	EmployeeID string    `gorm:"column:employee_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
