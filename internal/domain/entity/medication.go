package entity

// Medication is a medication schedule entry. Time holds the next dose time.
type Medication struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64  `gorm:"index" json:"user_id"`
	Name      string `gorm:"type:text" json:"name"`
	Dosage    string `gorm:"type:text" json:"dosage"`
	Frequency string `gorm:"type:text" json:"frequency"`
	Time      string `gorm:"type:text" json:"time"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Medication) TableName() string {
	return "medications"
}
