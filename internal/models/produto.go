package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusProduto string

const (
	StatusAtivo   StatusProduto = "ATIVO"
	StatusInativo StatusProduto = "INATIVO"
)

// Produto é o item do catálogo. Campos de texto são gravados em maiúsculas;
// o código de barras contém apenas dígitos (máx. 44).
type Produto struct {
	ID           string        `gorm:"type:uuid;primaryKey" json:"id"`
	IDConsumer   string        `gorm:"size:50" json:"id_consumer"`
	CodigoBarras string        `gorm:"size:44" json:"codigo_barras"`
	Categoria    string        `gorm:"size:100;index" json:"categoria"`
	NomeProduto  string        `gorm:"size:150;not null" json:"nome_produto"`
	Preco        float64       `gorm:"not null" json:"preco"`
	Status       StatusProduto `gorm:"size:10;not null;default:ATIVO" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (p *Produto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusAtivo
	}
	return nil
}
