package models

// Column widths shared by customers and restaurants.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxPhoneLength   = 20
	MaxZipCodeLength = 8
)

type Customer struct {
	ID           uint   `json:"id"            gorm:"primary_key"`
	Name         string `json:"name"          gorm:"type:varchar(100);not null"`
	CPF          string `json:"cpf"           gorm:"type:varchar(11);unique_index;not null"`
	Email        string `json:"email"         gorm:"type:varchar(100);unique_index;not null"`
	PasswordHash string `json:"-"             gorm:"not null"`
	Phone        string `json:"phone"         gorm:"type:varchar(20)"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	District     string `json:"district"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"      gorm:"type:varchar(8)"`
}
