package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/auth"
	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/checkout"
	eventscontroller "github.com/rainielmontanez/FSSPOS/controllers/events"
	scancontroller "github.com/rainielmontanez/FSSPOS/controllers/scan"
	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/scanner"
	"github.com/rainielmontanez/FSSPOS/store"
	"github.com/rainielmontanez/FSSPOS/users"
)

type testServer struct {
	engine        *gin.Engine
	employeeToken string
	adminToken    string
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "test-key")

	db, err := store.OpenBolt(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	err = db.Write(store.KeyProducts, []models.Product{
		{ID: 1, Name: "Cola", Category: "drinks", Price: 1.50, Stock: 10, Barcode: "111"},
		{ID: 2, Name: "Chips", Category: "snacks", Price: 2.25, Stock: 4},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	userStore := users.New(db)
	employee, err := userStore.Create("Ana", "ana", "secret123", models.RoleEmployee)
	if err != nil {
		t.Fatal(err)
	}
	admin, err := userStore.Create("Boss", "boss", "secret123", models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	employeeToken, err := auth.IssueToken(employee.ID, employee.Name, employee.Role)
	if err != nil {
		t.Fatal(err)
	}
	adminToken, err := auth.IssueToken(admin.ID, admin.Name, admin.Role)
	if err != nil {
		t.Fatal(err)
	}

	cat := catalog.New(db)
	cat.Load()
	carts := cart.NewStore()
	events := eventscontroller.NewHub()
	r := gin.New()
	SetupRoutes(r, Deps{
		DB:       db,
		Catalog:  cat,
		Carts:    carts,
		Checkout: checkout.New(db, cat, carts),
		Users:    userStore,
		Scan:     scancontroller.NewHub(scanner.NoDevices{}, cat, carts, events),
		Events:   events,
	})
	return &testServer{engine: r, employeeToken: employeeToken, adminToken: adminToken}
}

func (s *testServer) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartView {
	t.Helper()
	var v models.CartView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode cart: %v (%s)", err, w.Body.String())
	}
	return v
}

func TestLogin(t *testing.T) {
	s := setupServer(t)
	w := s.doJSON(t, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "ana", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login code %d: %s", w.Code, w.Body.String())
	}
	w = s.doJSON(t, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "ana", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestProductsRequireToken(t *testing.T) {
	s := setupServer(t)
	if w := s.doJSON(t, http.MethodGet, "/products", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestProductBrowsing(t *testing.T) {
	s := setupServer(t)
	w := s.doJSON(t, http.MethodGet, "/products?search=cOLa", s.employeeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code %d", w.Code)
	}
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "Cola" {
		t.Fatalf("filter failed: %+v", products)
	}

	w = s.doJSON(t, http.MethodGet, "/products/categories", s.employeeToken, nil)
	var cats []string
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatal(err)
	}
	if len(cats) != 3 || cats[0] != "all" {
		t.Fatalf("categories: %v", cats)
	}

	if w = s.doJSON(t, http.MethodGet, "/products/barcode/111", s.employeeToken, nil); w.Code != http.StatusOK {
		t.Fatalf("barcode hit code %d", w.Code)
	}
	if w = s.doJSON(t, http.MethodGet, "/products/barcode/999", s.employeeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("barcode miss code %d", w.Code)
	}
}

func TestCartFlow(t *testing.T) {
	s := setupServer(t)
	s.doJSON(t, http.MethodPost, "/cart/items", s.employeeToken, map[string]any{"product_id": 1})
	w := s.doJSON(t, http.MethodPost, "/cart/items", s.employeeToken, map[string]any{"product_id": 1})
	v := decodeCart(t, w)
	if len(v.Lines) != 1 || v.Lines[0].Quantity != 2 || v.Total != 3.00 {
		t.Fatalf("expected merged line qty 2 total 3.00, got %+v", v)
	}

	w = s.doJSON(t, http.MethodPut, "/cart/items/1", s.employeeToken, map[string]any{"quantity": 0})
	if v := decodeCart(t, w); len(v.Lines) != 0 {
		t.Fatalf("quantity 0 should remove line: %+v", v)
	}

	if w := s.doJSON(t, http.MethodPost, "/cart/items", s.employeeToken, map[string]any{"product_id": 99}); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown product should 400, got %d", w.Code)
	}
}

func TestScanFlow(t *testing.T) {
	s := setupServer(t)

	// camera start with no devices forces manual mode
	w := s.doJSON(t, http.MethodPost, "/scan/camera/start", s.employeeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("camera start code %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["mode"] != "manual" {
		t.Fatalf("expected forced manual mode, got %v", resp)
	}

	// manual hit adds to the cart
	w = s.doJSON(t, http.MethodPost, "/scan", s.employeeToken, map[string]any{"code": " 111 "})
	if w.Code != http.StatusOK {
		t.Fatalf("scan code %d: %s", w.Code, w.Body.String())
	}
	wCart := s.doJSON(t, http.MethodGet, "/cart", s.employeeToken, nil)
	if v := decodeCart(t, wCart); len(v.Lines) != 1 || v.Lines[0].Product.Barcode != "111" {
		t.Fatalf("scan hit did not reach cart: %+v", v)
	}

	// miss leaves the cart unchanged and posts a failure notice
	s.doJSON(t, http.MethodPost, "/scan", s.employeeToken, map[string]any{"code": "222"})
	wCart = s.doJSON(t, http.MethodGet, "/cart", s.employeeToken, nil)
	if v := decodeCart(t, wCart); len(v.Lines) != 1 {
		t.Fatalf("miss must not change cart: %+v", v)
	}
	w = s.doJSON(t, http.MethodGet, "/scan/notices", s.employeeToken, nil)
	var notices []scanner.Notice
	if err := json.Unmarshal(w.Body.Bytes(), &notices); err != nil {
		t.Fatal(err)
	}
	if len(notices) != 2 || notices[1].Kind != scanner.NoticeError || notices[1].Code != "222" {
		t.Fatalf("expected miss notice for 222: %+v", notices)
	}

	// empty input is rejected
	if w := s.doJSON(t, http.MethodPost, "/scan", s.employeeToken, map[string]any{"code": "   "}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty code should 400, got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	s := setupServer(t)

	if w := s.doJSON(t, http.MethodPost, "/checkout", s.employeeToken, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart checkout should 400, got %d", w.Code)
	}

	s.doJSON(t, http.MethodPost, "/cart/items", s.employeeToken, map[string]any{"product_id": 1})
	w := s.doJSON(t, http.MethodPost, "/checkout", s.employeeToken, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout code %d: %s", w.Code, w.Body.String())
	}
	var sale models.Sale
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatal(err)
	}
	if sale.Total != 1.50 || sale.CashierName != "Ana" {
		t.Fatalf("unexpected sale: %+v", sale)
	}

	wCart := s.doJSON(t, http.MethodGet, "/cart", s.employeeToken, nil)
	if v := decodeCart(t, wCart); len(v.Lines) != 0 {
		t.Fatalf("cart not cleared after checkout: %+v", v)
	}
}

func adminHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", token)
	req.Header.Set("X-API-KEY", "test-key")
}

func (s *testServer) doAdmin(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req, token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestAdminGating(t *testing.T) {
	s := setupServer(t)

	// missing API key
	w := s.doJSON(t, http.MethodPost, "/admin/products", s.adminToken, map[string]any{
		"name": "Water", "category": "drinks", "price": 1.0,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without API key, got %d", w.Code)
	}

	// employee role with a valid key
	w = s.doAdmin(t, http.MethodPost, "/admin/products", s.employeeToken, map[string]any{
		"name": "Water", "category": "drinks", "price": 1.0,
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", w.Code)
	}
}

func TestAdminProductManagement(t *testing.T) {
	s := setupServer(t)
	w := s.doAdmin(t, http.MethodPost, "/admin/products", s.adminToken, map[string]any{
		"name": "Water", "category": "drinks", "price": 1.0, "stock": 3, "barcode": "333",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create code %d: %s", w.Code, w.Body.String())
	}

	// duplicate barcode rejected
	w = s.doAdmin(t, http.MethodPost, "/admin/products", s.adminToken, map[string]any{
		"name": "Fake Cola", "category": "drinks", "price": 1.0, "barcode": "111",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate barcode, got %d", w.Code)
	}

	if w := s.doAdmin(t, http.MethodDelete, "/admin/products/3", s.adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("delete code %d: %s", w.Code, w.Body.String())
	}
	if w := s.doAdmin(t, http.MethodDelete, "/admin/products/99", s.adminToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting unknown product, got %d", w.Code)
	}
}

func TestAdminSalesAndSettings(t *testing.T) {
	s := setupServer(t)
	s.doJSON(t, http.MethodPost, "/cart/items", s.employeeToken, map[string]any{"product_id": 2})
	s.doJSON(t, http.MethodPost, "/checkout", s.employeeToken, nil)

	w := s.doAdmin(t, http.MethodGet, "/admin/sales", s.adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("sales code %d", w.Code)
	}
	var resp struct {
		Count int           `json:"count"`
		Sales []models.Sale `json:"sales"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Sales[0].Total != 2.25 {
		t.Fatalf("unexpected sales: %+v", resp)
	}

	// settings default, then update
	w = s.doJSON(t, http.MethodGet, "/settings", s.employeeToken, nil)
	var settings models.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatal(err)
	}
	if settings.StoreName != "FSSPOS" {
		t.Fatalf("expected default settings, got %+v", settings)
	}
	w = s.doAdmin(t, http.MethodPut, "/admin/settings", s.adminToken, models.Settings{
		StoreName: "Corner Shop", CurrencyCode: "PHP",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("settings update code %d: %s", w.Code, w.Body.String())
	}
	w = s.doJSON(t, http.MethodGet, "/settings", s.employeeToken, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatal(err)
	}
	if settings.StoreName != "Corner Shop" {
		t.Fatalf("settings not persisted: %+v", settings)
	}
}
