package models

import (
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer     UserRole = "customer"
	RoleReceptionist UserRole = "receptionist"
	RoleManager      UserRole = "manager"
	RoleAdmin        UserRole = "admin"
)

type User struct {
	gorm.Model

	FullName string   `json:"fullName"`
	Email    string   `json:"email" gorm:"uniqueIndex;type:varchar(191)"`
	Password string   `json:"-" gorm:"column:password;size:255"`
	Phone    string   `json:"phone" gorm:"type:varchar(32)"`
	Role     UserRole `json:"role" gorm:"type:varchar(32);default:customer;index"`

	// Customers start inactive until they verify their email.
	Active bool `json:"active" gorm:"default:false"`
}

func (u *User) IsStaff() bool {
	switch u.Role {
	case RoleReceptionist, RoleManager, RoleAdmin:
		return true
	}
	return false
}
