package model

type Address struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	City       string `gorm:"column:city" json:"city"`
	PostalCode string `gorm:"column:postal_code" json:"postalCode"`
	Country    string `gorm:"column:country" json:"country"`
}
