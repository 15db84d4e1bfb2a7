package database

import (
	"log"
	"strings"

	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Administrador{},
		&models.Produto{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	seedAdministrador(cfg.AdminEmail)

	log.Println("Conexão com o banco OK. Migration concluída.")
}

// seedAdministrador garante que o e-mail configurado exista na tabela
// administradores. A tabela não tem tela própria; sem esse seed ninguém
// conseguiria liberar as ações de escrita do catálogo.
func seedAdministrador(email string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		log.Println("[WARN] ADMIN_EMAIL não definido; nenhum administrador semeado.")
		return
	}

	var count int64
	DB.Model(&models.Administrador{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	if err := DB.Create(&models.Administrador{Email: email}).Error; err != nil {
		log.Printf("Erro ao semear administrador %s: %v", email, err)
		return
	}
	log.Printf("Administrador %s semeado.", email)
}
