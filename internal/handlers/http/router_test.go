package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/domain/valueobjects"
	httphandlers "github.com/rafabene/hyperlocal-backend/internal/handlers/http"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/logging"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/persistence/sqlitetest"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/realtime"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/security"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

const password = "Senha@123"

type testServer struct {
	t          *testing.T
	router     *gin.Engine
	users      repositories.UserRepository
	franchises repositories.FranchiseRepository
	customers  repositories.CustomerRepository
	products   repositories.ProductRepository
	sales      repositories.SaleRepository
	hasher     *security.BcryptHasher
	seq        int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := sqlitetest.Open(t)
	log := logging.Discard()

	tokens, err := security.NewJWTTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	translations, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	s := &testServer{
		t:          t,
		users:      postgres.NewUserRepository(db),
		franchises: postgres.NewFranchiseRepository(db),
		customers:  postgres.NewCustomerRepository(db),
		products:   postgres.NewProductRepository(db),
		sales:      postgres.NewSaleRepository(db),
		hasher:     security.NewBcryptHasher(bcrypt.MinCost),
	}
	uow := postgres.NewUnitOfWork(db)
	tickets := postgres.NewTicketRepository(db)

	hub := realtime.NewHub(log, nil)
	t.Cleanup(hub.Close)

	scopes := services.NewScopeResolver(s.franchises)
	scores := services.NewScoreAggregator(s.sales, s.products, s.franchises, services.DefaultLookupConcurrency, log)

	s.router = httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:              "test",
		BaseURL:          "http://localhost:3333",
		AllowedOrigins:   "*",
		Logger:           log,
		I18n:             translations,
		Hub:              hub,
		AuthService:      services.NewAuthService(s.users, s.hasher, tokens, log),
		UserService:      services.NewUserService(s.users, s.franchises, s.hasher, uow, log),
		FranchiseService: services.NewFranchiseService(s.franchises, s.users, scopes, scores, uow, log),
		CustomerService:  services.NewCustomerService(s.customers, s.franchises, scopes, log),
		ProductService:   services.NewProductService(s.products, log),
		SaleService:      services.NewSaleService(s.sales, s.users, s.customers, s.franchises, s.products, scopes, scores, log),
		TicketService:    services.NewTicketService(tickets, s.franchises, scopes, log, httphandlers.NewTicketFeedPublisher(hub)),
	})
	return s
}

func (s *testServer) user(email string, role entities.Role, owner *entities.User) *entities.User {
	s.t.Helper()

	addr, err := valueobjects.NewEmail(email)
	require.NoError(s.t, err)
	hash, err := s.hasher.Hash(password)
	require.NoError(s.t, err)

	s.seq++
	u := &entities.User{
		Name:         "Usuário",
		Email:        addr,
		PasswordHash: hash,
		Role:         role,
		CPF:          cpfFor(s.seq),
		Address:      "Rua das Flores, 100",
		Phone:        "11987654321",
	}
	if owner != nil {
		u.OwnerID = &owner.ID
	}
	require.NoError(s.t, s.users.Create(context.Background(), u))
	return u
}

func cpfFor(n int) string {
	return fmt.Sprintf("%011d", n)
}

func (s *testServer) franchise(name, cnpj string, owner *entities.User) *entities.Franchise {
	s.t.Helper()

	f := &entities.Franchise{Name: name, Address: "Av. Paulista, 1000", CNPJ: cnpj, Phone: "1133334444"}
	if owner != nil {
		f.UserID = &owner.ID
	}
	require.NoError(s.t, s.franchises.Create(context.Background(), f))
	return f
}

func (s *testServer) customer(name, cnpj string, franchise *entities.Franchise) *entities.Customer {
	s.t.Helper()

	c := &entities.Customer{Name: name, Address: "Rua Augusta, 50", CNPJ: cnpj, Phone: "1122223333", FranchiseID: franchise.ID}
	require.NoError(s.t, s.customers.Create(context.Background(), c))
	return c
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) signIn(email string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/auth/signin", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.AccessToken)
	return resp.AccessToken
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hyperlocal API is up", decodeObject(t, w)["message"])

	w = s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignIn(t *testing.T) {
	s := newTestServer(t)
	s.user("ana@hyperlocal.com", entities.RoleOperator, nil)

	t.Run("credenciais corretas", func(t *testing.T) {
		assert.NotEmpty(t, s.signIn("ana@hyperlocal.com"))
	})

	t.Run("senha errada", func(t *testing.T) {
		w := s.do(http.MethodPost, "/auth/signin", "", map[string]string{"email": "ana@hyperlocal.com", "password": "Errada@123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

		body := decodeObject(t, w)
		assert.Equal(t, "Invalid email or password", body["detail"])
		assert.EqualValues(t, http.StatusBadRequest, body["status"])
		assert.Equal(t, "/auth/signin", body["instance"])
	})

	t.Run("corpo inválido", func(t *testing.T) {
		w := s.do(http.MethodPost, "/auth/signin", "", map[string]string{"email": "nao-e-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeObject(t, w)
		fields := []string{}
		for _, e := range body["errors"].([]interface{}) {
			fields = append(fields, e.(map[string]interface{})["field"].(string))
		}
		assert.ElementsMatch(t, []string{"email", "password"}, fields)
	})
}

func TestSigned(t *testing.T) {
	s := newTestServer(t)
	user := s.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)

	w := s.do(http.MethodGet, "/auth/signed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/auth/signed", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/auth/signed", s.signIn("ana@hyperlocal.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeObject(t, w)
	assert.Equal(t, user.ID, body["id"])
	assert.Equal(t, "FRANCHISEE", body["role"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestCreateUserHidesPassword(t *testing.T) {
	s := newTestServer(t)
	s.user("op@hyperlocal.com", entities.RoleOperator, nil)
	token := s.signIn("op@hyperlocal.com")

	w := s.do(http.MethodPost, "/user", token, map[string]string{
		"name":            "Novo Franqueado",
		"email":           "novo@hyperlocal.com",
		"password":        "Forte@123",
		"confirmPassword": "Forte@123",
		"cpf":             "12345678901",
		"address":         "Rua Nova, 123",
		"phone":           "11987654321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeObject(t, w)
	assert.Equal(t, "FRANCHISEE", body["role"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")

	w = s.do(http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, u := range decodeList(t, w) {
		assert.NotContains(t, u, "password")
	}
}

func TestCreateUserPasswordMismatch(t *testing.T) {
	s := newTestServer(t)
	s.user("op@hyperlocal.com", entities.RoleOperator, nil)

	w := s.do(http.MethodPost, "/user", s.signIn("op@hyperlocal.com"), map[string]string{
		"name":            "Novo Franqueado",
		"email":           "novo@hyperlocal.com",
		"password":        "Forte@123",
		"confirmPassword": "Outra@123",
		"cpf":             "12345678901",
		"address":         "Rua Nova, 123",
		"phone":           "11987654321",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	found, err := s.users.FindByEmail(context.Background(), "novo@hyperlocal.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRoleGuard(t *testing.T) {
	s := newTestServer(t)
	s.user("func@hyperlocal.com", entities.RoleEmployee, nil)
	token := s.signIn("func@hyperlocal.com")

	w := s.do(http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/product", token, map[string]interface{}{"name": "Agenda", "plan": "AVEC", "score": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScopedCustomerListing(t *testing.T) {
	s := newTestServer(t)
	owner := s.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
	s.user("func@hyperlocal.com", entities.RoleEmployee, owner)
	s.user("op@hyperlocal.com", entities.RoleOperator, nil)

	own := s.franchise("Centro", "11.111.111/0001-11", owner)
	other := s.franchise("Norte", "22.222.222/0001-22", nil)
	s.customer("Padaria", "33.333.333/0001-33", own)
	foreign := s.customer("Mercado", "44.444.444/0001-44", other)

	w := s.do(http.MethodGet, "/customer", s.signIn("func@hyperlocal.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Padaria", list[0]["name"])

	w = s.do(http.MethodGet, "/customer/"+foreign.ID, s.signIn("dono@hyperlocal.com"), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/customer", s.signIn("op@hyperlocal.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestCreateSale(t *testing.T) {
	s := newTestServer(t)
	owner := s.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
	franchise := s.franchise("Centro", "11.111.111/0001-11", owner)
	customer := s.customer("Padaria", "33.333.333/0001-33", franchise)
	product := &entities.Product{Name: "Agenda", Description: "Agenda online", Plan: entities.PlanAvec, Score: 7}
	require.NoError(t, s.products.Create(context.Background(), product))
	token := s.signIn("dono@hyperlocal.com")

	t.Run("produto inexistente", func(t *testing.T) {
		w := s.do(http.MethodPost, "/sale", token, map[string]string{
			"customerId":  customer.ID,
			"franchiseId": franchise.ID,
			"productId":   "00000000-0000-0000-0000-000000000000",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", decodeObject(t, w)["detail"])

		sales, err := s.sales.List(context.Background(), repositories.SaleFilters{})
		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("venda válida atualiza o score", func(t *testing.T) {
		w := s.do(http.MethodPost, "/sale", token, map[string]string{
			"customerId":  customer.ID,
			"franchiseId": franchise.ID,
			"productId":   product.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, owner.ID, decodeObject(t, w)["userId"])

		w = s.do(http.MethodGet, "/franchise/"+franchise.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 7, decodeObject(t, w)["score"])
	})
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t)
	s.user("op@hyperlocal.com", entities.RoleOperator, nil)

	w := s.do(http.MethodGet, "/franchise/nao-e-uuid", s.signIn("op@hyperlocal.com"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid identifier", decodeObject(t, w)["detail"])
}

func TestFranchiseValidationAndDelete(t *testing.T) {
	s := newTestServer(t)
	s.user("op@hyperlocal.com", entities.RoleOperator, nil)
	token := s.signIn("op@hyperlocal.com")

	w := s.do(http.MethodPost, "/franchise", token, map[string]string{
		"name": "Centro", "address": "Av. Brasil, 100", "cnpj": "123", "phone": "11987654321",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeObject(t, w)["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "cnpj", errs[0].(map[string]interface{})["field"])

	w = s.do(http.MethodPost, "/franchise", token, map[string]string{
		"name": "Centro", "address": "Av. Brasil, 100", "cnpj": "11.222.333/0001-81", "phone": "11987654321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeObject(t, w)["id"].(string)

	w = s.do(http.MethodDelete, "/franchise/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/franchise?deleted=TRUE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}
