package entity

import "time"

// User representa un usuario del back-office.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	FirstName    *string
	LastName     *string
	Role         string // admin, broker, user (ver domain/acl)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
