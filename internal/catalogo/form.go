package catalogo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"pizzaria-backend/internal/models"
)

// Modo é o estado único da tela de cadastro. Substitui o emaranhado de flags
// booleanas da primeira versão da tela: combinações inválidas (buscar durante
// uma exclusão, por exemplo) deixam de ser representáveis.
type Modo int

const (
	ModoOcioso Modo = iota
	ModoIncluindo
	ModoEditando
	ModoBuscando
	ModoConfirmandoExclusao
)

func (m Modo) String() string {
	switch m {
	case ModoOcioso:
		return "ocioso"
	case ModoIncluindo:
		return "incluindo"
	case ModoEditando:
		return "editando"
	case ModoBuscando:
		return "buscando"
	case ModoConfirmandoExclusao:
		return "confirmando-exclusao"
	}
	return "desconhecido"
}

// Campo identifica para onde o foco da tela deve ir após uma validação.
type Campo string

const (
	CampoIDConsumer   Campo = "id_consumer"
	CampoCodigoBarras Campo = "codigo_barras"
	CampoCategoria    Campo = "categoria"
	CampoNome         Campo = "nome_produto"
	CampoPreco        Campo = "preco"
	CampoSalvar       Campo = "btn_salvar"
)

var (
	ErrNomeObrigatorio = errors.New("Campo NOME DO PRODUTO é obrigatório")
	ErrPrecoInvalido   = errors.New("Campo PREÇO DE VENDA é obrigatório e deve ser maior que zero")
	ErrSomenteAdmin    = errors.New("Acesso restrito a administradores")
	ErrOperacaoEmCurso = errors.New("Conclua a operação atual antes de iniciar outra")
	ErrCatalogoVazio   = errors.New("Nenhum produto cadastrado")
	ErrForaDeModo      = errors.New("Ação indisponível no estado atual da tela")
)

// Store é o colaborador de persistência do cadastro de produtos.
type Store interface {
	Listar(ctx context.Context) ([]models.Produto, error)
	Inserir(ctx context.Context, p *models.Produto) error
	Atualizar(ctx context.Context, id string, p models.Produto) error
	Excluir(ctx context.Context, id string) error
}

// Rascunho é o formulário em edição. Preco guarda a string já mascarada,
// como o campo da tela; a conversão para float acontece só no salvar.
type Rascunho struct {
	ID           string
	IDConsumer   string
	CodigoBarras string
	Categoria    string
	NomeProduto  string
	Preco        string
	Status       models.StatusProduto
}

// Form controla o fluxo incluir/alterar/excluir do cadastro de produtos.
// Uma única instância por tela; não é seguro para uso concorrente.
type Form struct {
	store    Store
	admin    bool
	modo     Modo
	intencao Intencao
	rascunho Rascunho
	produtos []models.Produto
	foco     Campo
}

func NovoForm(store Store) *Form {
	f := &Form{store: store}
	f.limpar()
	return f
}

// DefinirAdmin registra a capacidade de administrador resolvida para a sessão
// atual. É reavaliada a cada ativação da tela, nunca guardada entre sessões.
func (f *Form) DefinirAdmin(admin bool) { f.admin = admin }

func (f *Form) Modo() Modo                 { return f.modo }
func (f *Form) Foco() Campo                { return f.foco }
func (f *Form) Rascunho() Rascunho         { return f.rascunho }
func (f *Form) Produtos() []models.Produto { return f.produtos }

// Carregar busca a lista completa no colaborador. Roda na montagem da tela e
// sempre que a tela de produtos volta a ficar ativa.
func (f *Form) Carregar(ctx context.Context) error {
	return f.recarregar(ctx)
}

// IniciarInclusao limpa o formulário e abre um rascunho novo. Só vale a
// partir do ocioso e exige administrador.
func (f *Form) IniciarInclusao() error {
	if !f.admin {
		return ErrSomenteAdmin
	}
	if f.modo != ModoOcioso {
		return ErrOperacaoEmCurso
	}

	f.limpar()
	f.modo = ModoIncluindo
	f.foco = CampoIDConsumer
	return nil
}

// IniciarAlteracao abre a busca para escolher qual registro editar.
func (f *Form) IniciarAlteracao() error {
	return f.iniciarBusca(IntencaoAlterar)
}

// IniciarExclusao abre a busca para escolher qual registro excluir.
func (f *Form) IniciarExclusao() error {
	return f.iniciarBusca(IntencaoExcluir)
}

func (f *Form) iniciarBusca(intencao Intencao) error {
	if !f.admin {
		return ErrSomenteAdmin
	}
	if f.modo != ModoOcioso {
		return ErrOperacaoEmCurso
	}
	if len(f.produtos) == 0 {
		return ErrCatalogoVazio
	}

	f.modo = ModoBuscando
	f.intencao = intencao
	return nil
}

// Buscar filtra a lista para a janela de seleção.
func (f *Form) Buscar(consulta string) ResultadoBusca {
	return FiltrarPorNome(f.produtos, consulta)
}

// FecharBusca abandona a seleção sem escolher nada; a tela volta ao ocioso
// intacta.
func (f *Form) FecharBusca() {
	if f.modo != ModoBuscando {
		return
	}
	f.modo = ModoOcioso
	f.intencao = ""
}

// Selecionar carrega o registro escolhido na busca para o formulário e
// segue conforme a intenção: edição ou confirmação de exclusão.
func (f *Form) Selecionar(p models.Produto) error {
	if f.modo != ModoBuscando {
		return ErrForaDeModo
	}

	status := p.Status
	if status == "" {
		status = models.StatusAtivo
	}
	f.rascunho = Rascunho{
		ID:           p.ID,
		IDConsumer:   p.IDConsumer,
		CodigoBarras: p.CodigoBarras,
		Categoria:    p.Categoria,
		NomeProduto:  p.NomeProduto,
		Preco:        mascararPreco(p.Preco),
		Status:       status,
	}

	if f.intencao == IntencaoExcluir {
		f.modo = ModoConfirmandoExclusao
	} else {
		f.modo = ModoEditando
	}
	f.intencao = ""
	return nil
}

// Setters dos campos. Fora de incluindo/editando os campos estão
// desabilitados e a digitação é ignorada, como na tela.

func (f *Form) DefinirIDConsumer(v string) {
	if f.editavel() {
		f.rascunho.IDConsumer = strings.ToUpper(v)
	}
}

func (f *Form) DefinirCodigoBarras(v string) {
	if f.editavel() {
		f.rascunho.CodigoBarras = NormalizarCodigoBarras(v)
	}
}

func (f *Form) DefinirCategoria(v string) {
	if f.editavel() {
		f.rascunho.Categoria = strings.ToUpper(strings.TrimSpace(v))
	}
}

func (f *Form) DefinirNome(v string) {
	if f.editavel() {
		f.rascunho.NomeProduto = strings.ToUpper(v)
	}
}

func (f *Form) DefinirPreco(v string) {
	if f.editavel() {
		f.rascunho.Preco = FormatarMoeda(v)
	}
}

func (f *Form) DefinirStatus(s models.StatusProduto) {
	if f.editavel() && (s == models.StatusAtivo || s == models.StatusInativo) {
		f.rascunho.Status = s
	}
}

// ValidarNome roda na perda de foco do campo nome: vazio devolve o foco ao
// próprio campo com o erro de obrigatoriedade.
func (f *Form) ValidarNome() error {
	if strings.TrimSpace(f.rascunho.NomeProduto) == "" {
		f.foco = CampoNome
		return ErrNomeObrigatorio
	}
	return nil
}

// ValidarPreco roda na perda de foco do campo preço: valor não positivo
// devolve o foco ao campo; válido avança o foco para o botão salvar.
func (f *Form) ValidarPreco() error {
	if MoedaParaFloat(f.rascunho.Preco) <= 0 {
		f.foco = CampoPreco
		return ErrPrecoInvalido
	}
	f.foco = CampoSalvar
	return nil
}

// Salvar valida e grava o rascunho: insert quando ainda não há id, update
// quando há. Erro do colaborador preserva o estado para nova tentativa; no
// sucesso a lista inteira é recarregada e a tela volta ao ocioso.
func (f *Form) Salvar(ctx context.Context) error {
	if f.modo != ModoIncluindo && f.modo != ModoEditando {
		return ErrForaDeModo
	}
	if err := f.ValidarNome(); err != nil {
		return err
	}
	if err := f.ValidarPreco(); err != nil {
		return err
	}

	payload := models.Produto{
		IDConsumer:   f.rascunho.IDConsumer,
		CodigoBarras: f.rascunho.CodigoBarras,
		Categoria:    f.rascunho.Categoria,
		NomeProduto:  f.rascunho.NomeProduto,
		Preco:        MoedaParaFloat(f.rascunho.Preco),
		Status:       f.rascunho.Status,
	}

	if f.rascunho.ID == "" {
		if err := f.store.Inserir(ctx, &payload); err != nil {
			return fmt.Errorf("Erro ao incluir: %w", err)
		}
	} else {
		if err := f.store.Atualizar(ctx, f.rascunho.ID, payload); err != nil {
			return fmt.Errorf("Erro ao salvar: %w", err)
		}
	}

	return f.concluir(ctx)
}

// ConfirmarExclusao conclui (ou não) a exclusão pendente. A recusa é um
// cancelamento normal: nada chega ao colaborador e a tela volta ao ocioso.
func (f *Form) ConfirmarExclusao(ctx context.Context, confirmado bool) error {
	if f.modo != ModoConfirmandoExclusao {
		return ErrForaDeModo
	}

	if !confirmado {
		f.limpar()
		return nil
	}

	if err := f.store.Excluir(ctx, f.rascunho.ID); err != nil {
		return fmt.Errorf("Erro ao excluir: %w", err)
	}

	return f.concluir(ctx)
}

// concluir encerra uma escrita que já foi gravada: o formulário é limpo
// incondicionalmente, mesmo quando a recarga da lista falha. Deixar o
// rascunho vivo aqui permitiria salvar de novo e duplicar o registro.
func (f *Form) concluir(ctx context.Context) error {
	err := f.recarregar(ctx)
	f.limpar()
	return err
}

// MensagemConfirmacao é o texto do alerta bloqueante de exclusão.
func (f *Form) MensagemConfirmacao() string {
	return fmt.Sprintf("ATENÇÃO: Deseja realmente EXCLUIR o produto %q? Esta operação é irreversível.", f.rascunho.NomeProduto)
}

// Cancelar descarta a edição em andamento e volta ao ocioso.
func (f *Form) Cancelar() {
	f.limpar()
}

func (f *Form) editavel() bool {
	return f.modo == ModoIncluindo || f.modo == ModoEditando
}

func (f *Form) limpar() {
	f.rascunho = Rascunho{Status: models.StatusAtivo}
	f.modo = ModoOcioso
	f.intencao = ""
	f.foco = ""
}

// recarregar substitui a lista inteira; nenhuma escrita mexe na lista em
// memória de forma incremental. A ordenação por nome vale mesmo quando o
// colaborador não a garante.
func (f *Form) recarregar(ctx context.Context) error {
	produtos, err := f.store.Listar(ctx)
	if err != nil {
		return fmt.Errorf("Erro ao carregar produtos: %w", err)
	}
	sort.Slice(produtos, func(i, j int) bool {
		return produtos[i].NomeProduto < produtos[j].NomeProduto
	})
	f.produtos = produtos
	return nil
}

// mascararPreco converte o float persistido para a string mascarada que o
// campo exibe ("5.0" -> "R$ 5,00").
func mascararPreco(preco float64) string {
	if math.Round(preco*100) <= 0 {
		return ""
	}
	return FormatarPreco(preco)
}
