package models

type Restaurant struct {
	ID           uint   `json:"id"          gorm:"primary_key"`
	Name         string `json:"name"        gorm:"type:varchar(100);not null"`
	CNPJ         string `json:"cnpj"        gorm:"type:varchar(14);unique_index;not null"`
	Email        string `json:"email"       gorm:"type:varchar(100);unique_index;not null"`
	PasswordHash string `json:"-"           gorm:"not null"`
	Phone        string `json:"phone"       gorm:"type:varchar(20)"`
	Description  string `json:"description"`
	City         string `json:"city"`
	State        string `json:"state"`
}
