package models

// Budget caps spending for one category in one calendar month. Like
// transactions, the category is held by name so budgets survive category
// renames and imported free-form rows.
type Budget struct {
	Base
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Category string `gorm:"not null" json:"category"`
	Amount   int64  `gorm:"type:bigint;not null" json:"amount"`
	Month    int    `gorm:"not null" json:"month"`
	Year     int    `gorm:"not null" json:"year"`
}
