package mockapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/jhoicas/logistica-console/pkg/jwt"
)

// Handler endpoints del mock.
type Handler struct {
	store    *Store
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
}

func success() dto.Envelope { return dto.Envelope{Success: true} }

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func internal(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

// parseDay fecha YYYY-MM-DD; vacío devuelve el tiempo cero.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login POST /auth/login. Credenciales inválidas: 401 con success=false.
func (h *Handler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Corpo inválido")
	}
	if in.Matricula == "" || in.Senha == "" {
		return badRequest(c, "VALIDATION", "Matrícula e senha são obrigatórios")
	}
	user, err := h.store.Authenticate(in.Matricula, in.Senha)
	if err != nil {
		msg := "Matrícula ou senha inválidos"
		if errors.Is(err, ErrInactiveUser) {
			msg = "Usuário inativo"
		}
		h.log.Info().Str("matricula", in.Matricula).Msg("login rechazado")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResponse{Message: msg})
	}
	token, err := jwt.Generate(h.secret, jwt.Claims{
		ID:        user.ID,
		Matricula: user.Matricula,
		Nome:      user.Nome,
		Cargo:     user.Cargo,
	}, h.tokenTTL)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(dto.LoginResponse{Success: true, Message: "Login realizado com sucesso", Token: token})
}

// ── Estoque ───────────────────────────────────────────────────────────────────

func (h *Handler) ListStock(c *fiber.Ctx) error {
	return c.JSON(dto.StockListResponse{Envelope: success(), Items: h.store.ListStock()})
}

func (h *Handler) GetStock(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	it, err := h.store.GetStock(id)
	if err != nil {
		return notFound(c, "Item não encontrado")
	}
	return c.JSON(dto.StockItemResponse{Envelope: success(), Item: it})
}

// stockBody lee y valida el body de alta/edición; msg vacío si es válido.
func stockBody(c *fiber.Ctx) (in dto.StockItemRequest, msg string) {
	if err := c.BodyParser(&in); err != nil {
		return in, "Corpo inválido"
	}
	if in.Product == "" || in.Unit == "" {
		return in, "Produto e unidade são obrigatórios"
	}
	if in.Quantity.IsNegative() {
		return in, "Quantidade não pode ser negativa"
	}
	return in, ""
}

func (h *Handler) CreateStock(c *fiber.Ctx) error {
	in, msg := stockBody(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	it := h.store.CreateStock(in)
	return c.Status(fiber.StatusCreated).JSON(dto.StockItemResponse{
		Envelope: dto.Envelope{Success: true, Message: "Item criado com sucesso"},
		Item:     &it,
	})
}

func (h *Handler) UpdateStock(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	in, msg := stockBody(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	it, err := h.store.UpdateStock(id, in)
	if err != nil {
		return notFound(c, "Item não encontrado")
	}
	return c.JSON(dto.StockItemResponse{
		Envelope: dto.Envelope{Success: true, Message: "Item atualizado com sucesso"},
		Item:     it,
	})
}

func (h *Handler) DeleteStock(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	if err := h.store.DeleteStock(id); err != nil {
		return notFound(c, "Item não encontrado")
	}
	return c.JSON(dto.Envelope{Success: true, Message: "Item excluído com sucesso"})
}

// ── Movimentação ──────────────────────────────────────────────────────────────

func (h *Handler) RegisterEntry(c *fiber.Ctx) error { return h.register(c, entity.MovementEntry) }
func (h *Handler) RegisterExit(c *fiber.Ctx) error  { return h.register(c, entity.MovementExit) }

func (h *Handler) register(c *fiber.Ctx, kind string) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Corpo inválido")
	}
	if in.StockItemID <= 0 || !in.Quantity.IsPositive() {
		return badRequest(c, "VALIDATION", "Item e quantidade positiva são obrigatórios")
	}
	if !entity.IsMovementReason(in.Reason) {
		return badRequest(c, "VALIDATION", "Motivo inválido")
	}
	m, err := h.store.RegisterMovement(kind, in, currentUserID(c))
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return badRequest(c, "ESTOQUE_INSUFICIENTE", "Quantidade insuficiente em estoque")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Item de estoque não encontrado")
	case err != nil:
		return internal(c, err)
	}
	msg := "Entrada registrada com sucesso"
	if kind == entity.MovementExit {
		msg = "Saída registrada com sucesso"
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Envelope: dto.Envelope{Success: true, Message: msg},
		Movement: m,
	})
}

func (h *Handler) ListMovements(c *fiber.Ctx) error {
	var q MovementQuery
	if v := c.Query("estoqueId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, "VALIDATION", "estoqueId inválido")
		}
		q.StockItemID = id
	}
	q.Type = c.Query("tipo")
	if q.Type != "" && !entity.IsMovementType(q.Type) {
		return badRequest(c, "VALIDATION", "Tipo inválido")
	}
	var err error
	if q.From, err = parseDay(c.Query("dataInicio")); err != nil {
		return badRequest(c, "VALIDATION", "dataInicio inválida")
	}
	if q.To, err = parseDay(c.Query("dataFim")); err != nil {
		return badRequest(c, "VALIDATION", "dataFim inválida")
	}
	return c.JSON(dto.MovementListResponse{Envelope: success(), Movements: h.store.ListMovements(q)})
}

func (h *Handler) GetMovement(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	m, err := h.store.GetMovement(id)
	if err != nil {
		return notFound(c, "Movimentação não encontrada")
	}
	return c.JSON(dto.MovementResponse{Envelope: success(), Movement: m})
}

func (h *Handler) StockReport(c *fiber.Ctx) error {
	rep := h.store.StockReport()
	return c.JSON(dto.StockReportResponse{Envelope: success(), Report: &rep})
}

// ── Vendas ────────────────────────────────────────────────────────────────────

func (h *Handler) CreateSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Corpo inválido")
	}
	for _, it := range in.Items {
		if it.StockItemID <= 0 || !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() {
			return badRequest(c, "VALIDATION", "Itens da venda inválidos")
		}
	}
	sale, err := h.store.CreateSale(in, currentUserID(c))
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", "A venda precisa de pelo menos um item")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Item de estoque não encontrado")
	case err != nil:
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		Envelope: dto.Envelope{Success: true, Message: "Venda registrada com sucesso"},
		Sale:     sale,
	})
}

func (h *Handler) ListSales(c *fiber.Ctx) error {
	var q SaleQuery
	var err error
	if q.From, err = parseDay(c.Query("dataInicio")); err != nil {
		return badRequest(c, "VALIDATION", "dataInicio inválida")
	}
	if q.To, err = parseDay(c.Query("dataFim")); err != nil {
		return badRequest(c, "VALIDATION", "dataFim inválida")
	}
	q.Status = c.Query("status")
	q.SellerID = int64(c.QueryInt("vendedorId"))
	q.CustomerID = int64(c.QueryInt("clienteId"))
	return c.JSON(dto.SaleListResponse{Envelope: success(), Sales: h.store.ListSales(q)})
}

func (h *Handler) GetSale(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	sale, err := h.store.GetSale(id)
	if err != nil {
		return notFound(c, "Venda não encontrada")
	}
	return c.JSON(dto.SaleResponse{Envelope: success(), Sale: sale})
}

func (h *Handler) UpdateSaleStatus(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "INVALID_ID", "ID inválido")
	}
	var in dto.SaleStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Corpo inválido")
	}
	sale, err := h.store.UpdateSaleStatus(id, in.Status)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", "Status inválido")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Venda não encontrada")
	case err != nil:
		return internal(c, err)
	}
	return c.JSON(dto.SaleResponse{
		Envelope: dto.Envelope{Success: true, Message: "Status atualizado com sucesso"},
		Sale:     sale,
	})
}

// ── Relatórios ────────────────────────────────────────────────────────────────

func (h *Handler) GeneralReport(c *fiber.Ctx) error {
	rep := h.store.GeneralReport()
	return c.JSON(dto.GeneralReportResponse{Envelope: success(), Report: &rep})
}

func (h *Handler) SalesReport(c *fiber.Ctx) error {
	rep, err := h.store.SalesReport(c.Query("periodo"), int64(c.QueryInt("vendedor")))
	if err != nil {
		return badRequest(c, "VALIDATION", "Período inválido, use AAAA-MM")
	}
	return c.JSON(dto.SalesReportResponse{Envelope: success(), Report: &rep})
}

func (h *Handler) DeliveriesReport(c *fiber.Ctx) error {
	rep := h.store.DeliveriesReport(c.Query("status"))
	return c.JSON(dto.DeliveriesReportResponse{Envelope: success(), Report: &rep})
}

func (h *Handler) UsersReport(c *fiber.Ctx) error {
	rep := h.store.UsersReport()
	return c.JSON(dto.UsersReportResponse{Envelope: success(), Report: &rep})
}
