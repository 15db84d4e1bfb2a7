package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"pizzaria-backend/internal/database"
	"pizzaria-backend/internal/models"
)

const EntityProduto = "produto"

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb não aceita string vazia; o padrão é o JSON "null"
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log não pôde ser gravado: %w", err)
	}

	return nil
}

// UndoLog reverte uma escrita do catálogo: exclusão desfaz criação, o estado
// anterior desfaz atualização e a recriação desfaz exclusão.
func UndoLog(logID uint, userID uint, userName string) error {
	var entry models.AuditLog
	if err := database.DB.First(&entry, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log não encontrado: %w", err)
	}

	if entry.IsUndone {
		return fmt.Errorf("essa operação já foi desfeita")
	}
	if entry.EntityType != EntityProduto {
		return fmt.Errorf("tipo de entidade desconhecido: %s", entry.EntityType)
	}

	switch entry.Action {
	case models.AuditActionCreate:
		if err := database.DB.Delete(&models.Produto{}, "id = ?", entry.EntityID).Error; err != nil {
			return fmt.Errorf("produto não pôde ser excluído: %w", err)
		}

	case models.AuditActionUpdate:
		if err := restaurarProduto(entry.EntityID, entry.BeforeData); err != nil {
			return fmt.Errorf("produto não pôde ser restaurado: %w", err)
		}

	case models.AuditActionDelete:
		if err := recriarProduto(entry.BeforeData); err != nil {
			return fmt.Errorf("produto não pôde ser recriado: %w", err)
		}

	default:
		return fmt.Errorf("essa operação não pode ser desfeita")
	}

	now := time.Now()
	entry.IsUndone = true
	entry.UndoneBy = &userID
	entry.UndoneAt = &now

	if err := database.DB.Save(&entry).Error; err != nil {
		return fmt.Errorf("log não pôde ser atualizado: %w", err)
	}

	undoEntry := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Desfeito: %s", entry.Description),
		BeforeData:  entry.AfterData,
		AfterData:   entry.BeforeData,
		Undone:      true,
	}

	if err := database.DB.Create(&undoEntry).Error; err != nil {
		return fmt.Errorf("log de undo não pôde ser gravado: %w", err)
	}

	return nil
}

func recriarProduto(dataJSON string) error {
	var p models.Produto
	if err := json.Unmarshal([]byte(dataJSON), &p); err != nil {
		return err
	}
	// Mantém o mesmo id: referências antigas (e o próprio log) continuam válidas
	return database.DB.Create(&p).Error
}

func restaurarProduto(id string, dataJSON string) error {
	var p models.Produto
	if err := json.Unmarshal([]byte(dataJSON), &p); err != nil {
		return err
	}
	return database.DB.Model(&models.Produto{}).Where("id = ?", id).Updates(map[string]interface{}{
		"id_consumer":   p.IDConsumer,
		"codigo_barras": p.CodigoBarras,
		"categoria":     p.Categoria,
		"nome_produto":  p.NomeProduto,
		"preco":         p.Preco,
		"status":        p.Status,
	}).Error
}
