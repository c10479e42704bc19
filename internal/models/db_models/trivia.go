package db_models

// Category groups trivia questions. The display name lives in the legacy
// "type" column.
type Category struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"column:type;not null"`
	Questions []Question `gorm:"foreignKey:CategoryID"`
}

type Question struct {
	ID         uint   `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	CategoryID uint   `gorm:"column:category;not null;index"`
	Difficulty int    `gorm:"not null"`
}
