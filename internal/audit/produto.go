package audit

import (
	"fmt"
	"log"

	"pizzaria-backend/internal/models"
)

// ProdutoTrilha liga as escritas do catálogo à trilha de auditoria.
// Falha na gravação do log não derruba a operação principal.
type ProdutoTrilha struct{}

func (ProdutoTrilha) RegistrarProduto(userID uint, userName string, acao models.AuditAction, antes, depois *models.Produto) {
	opts := LogOptions{
		UserID:     userID,
		UserName:   userName,
		EntityType: EntityProduto,
		Action:     acao,
	}

	switch acao {
	case models.AuditActionCreate:
		opts.EntityID = depois.ID
		opts.After = depois
		opts.Description = fmt.Sprintf("Produto %s incluído", depois.NomeProduto)
	case models.AuditActionUpdate:
		opts.EntityID = antes.ID
		opts.Before = antes
		opts.After = depois
		opts.Description = fmt.Sprintf("Produto %s atualizado", depois.NomeProduto)
	case models.AuditActionDelete:
		opts.EntityID = antes.ID
		opts.Before = antes
		opts.Description = fmt.Sprintf("Produto %s excluído", antes.NomeProduto)
	default:
		return
	}

	if err := WriteLog(opts); err != nil {
		log.Printf("Audit: %v", err)
	}
}
