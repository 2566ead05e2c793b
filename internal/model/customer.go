package model

// Customer references an Address by AddressID. The reference is not
// enforced by a foreign key, so Address is nil when it points nowhere.
type Customer struct {
	ID        int      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name      string   `gorm:"column:name;size:50;not null" json:"name"`
	Email     string   `gorm:"column:email" json:"email"`
	Phone     string   `gorm:"column:phone" json:"phone"`
	AddressID int      `gorm:"column:address_id;index" json:"addressId"`
	Address   *Address `gorm:"foreignKey:AddressID" json:"address"`
}

// All returns every persisted model, in migration order.
func All() []any {
	return []any{&Address{}, &Customer{}}
}
