package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string `gorm:"not null"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
