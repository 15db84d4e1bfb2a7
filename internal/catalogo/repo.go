package catalogo

import (
	"context"
	"errors"

	"pizzaria-backend/internal/models"

	"gorm.io/gorm"
)

// ErrProdutoNaoEncontrado sinaliza atualização ou exclusão de id inexistente.
var ErrProdutoNaoEncontrado = errors.New("Produto não encontrado")

// Repo é o Store de produtos sobre o banco.
type Repo struct {
	db *gorm.DB
}

func NovoRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Listar(ctx context.Context) ([]models.Produto, error) {
	var produtos []models.Produto
	err := r.db.WithContext(ctx).Order("nome_produto asc").Find(&produtos).Error
	if err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *Repo) Inserir(ctx context.Context, p *models.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repo) Atualizar(ctx context.Context, id string, p models.Produto) error {
	var atual models.Produto
	if err := r.db.WithContext(ctx).First(&atual, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProdutoNaoEncontrado
		}
		return err
	}

	atual.IDConsumer = p.IDConsumer
	atual.CodigoBarras = p.CodigoBarras
	atual.Categoria = p.Categoria
	atual.NomeProduto = p.NomeProduto
	atual.Preco = p.Preco
	atual.Status = p.Status

	return r.db.WithContext(ctx).Save(&atual).Error
}

func (r *Repo) Excluir(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Produto{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProdutoNaoEncontrado
	}
	return nil
}

// Buscar devolve um produto pelo id, para o before do audit log.
func (r *Repo) Buscar(ctx context.Context, id string) (*models.Produto, error) {
	var p models.Produto
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// EhAdministrador verifica se o e-mail consta na tabela administradores.
// Consultado a cada requisição; a capacidade nunca fica em cache.
func (r *Repo) EhAdministrador(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Administrador{}).
		Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
