package models

import "time"

// Administrador lista os e-mails com permissão de escrita no catálogo.
// A capacidade é consultada a cada acesso, nunca cacheada na sessão.
type Administrador struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time
}
