package api_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/jhoicas/logistica-console/internal/infrastructure/api"
	"github.com/jhoicas/logistica-console/internal/mockapi"
	"github.com/jhoicas/logistica-console/internal/session"
	pkgjwt "github.com/jhoicas/logistica-console/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Contra el mock: sesión real, HTTP real
// ──────────────────────────────────────────────────────────────────────────────

func mockServer(t *testing.T) *api.Connector {
	t.Helper()
	store := mockapi.NewStore()
	require.NoError(t, mockapi.Seed(store))
	app := mockapi.New(mockapi.Config{JWTSecret: "mock-secret", TokenTTL: time.Hour}, store, zerolog.Nop())
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return api.NewConnector(srv.URL+"/api", 5*time.Second, zerolog.Nop())
}

func TestMock_LoginYRecorrido(t *testing.T) {
	conn := mockServer(t)
	store := session.NewMemoryStore("")
	client := conn.For(store)
	auth := session.NewAuthority(store, client.Auth(), zerolog.Nop())
	ctx := context.Background()

	_, err := auth.Login(ctx, dto.LoginRequest{Matricula: "op001", Senha: "senha123"})
	require.NoError(t, err)
	require.True(t, auth.IsAuthenticated())
	assert.Equal(t, "Bruno Lima", auth.CurrentUser().Nome)

	items, err := client.Estoque().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	mov, err := client.Movimentacao().RegisterEntry(ctx, dto.MovementRequest{
		StockItemID: items[0].ID, Quantity: decimal.NewFromInt(2), Reason: entity.ReasonPurchase,
	})
	require.NoError(t, err)
	assert.Equal(t, items[0].Quantity.Add(decimal.NewFromInt(2)).String(), mov.StockItem.Quantity.String())

	report, err := client.Movimentacao().StockReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(items), report.TotalItems)

	general, err := client.Relatorios().General(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, general.ActiveUsers)
}

func TestMock_CredencialesInvalidasNoGuardanToken(t *testing.T) {
	conn := mockServer(t)
	store := session.NewMemoryStore("")
	auth := session.NewAuthority(store, conn.For(store).Auth(), zerolog.Nop())

	_, err := auth.Login(context.Background(), dto.LoginRequest{Matricula: "op001", Senha: "errada"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Matrícula ou senha inválidos", apiErr.UserMessage())
	assert.False(t, auth.IsAuthenticated())
}

func TestMock_TokenRechazadoLimpiaLaSesion(t *testing.T) {
	conn := mockServer(t)
	// Firmado con otro secret: Decode lo acepta, la API no.
	foreign, err := pkgjwt.Generate("otro-secret", pkgjwt.Claims{ID: 1, Matricula: "op001"}, time.Hour)
	require.NoError(t, err)
	store := session.NewMemoryStore(foreign)
	client := conn.For(store)

	_, err = client.Vendas().List(context.Background(), dto.SaleFilter{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	tok, _ := store.Token()
	assert.Empty(t, tok)
}

func TestMock_SalidaSinSaldoMuestraMensajeDeLaAPI(t *testing.T) {
	conn := mockServer(t)
	store := session.NewMemoryStore("")
	client := conn.For(store)
	auth := session.NewAuthority(store, client.Auth(), zerolog.Nop())
	ctx := context.Background()
	_, err := auth.Login(ctx, dto.LoginRequest{Matricula: "admin", Senha: "admin123"})
	require.NoError(t, err)

	items, err := client.Estoque().List(ctx)
	require.NoError(t, err)
	var empty entity.StockItem
	for _, it := range items {
		if !it.InStock() {
			empty = it
		}
	}
	require.NotZero(t, empty.ID)

	_, err = client.Movimentacao().RegisterExit(ctx, dto.MovementRequest{
		StockItemID: empty.ID, Quantity: decimal.NewFromInt(1), Reason: entity.ReasonSale,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ESTOQUE_INSUFICIENTE", apiErr.Code)
	assert.True(t, auth.IsAuthenticated(), "un 400 no cierra la sesión")
}
