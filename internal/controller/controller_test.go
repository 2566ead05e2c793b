package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/unclebandit/customer-service/internal/controller"
	"github.com/unclebandit/customer-service/internal/db"
	"github.com/unclebandit/customer-service/internal/handler"
	"github.com/unclebandit/customer-service/internal/model"
	"github.com/unclebandit/customer-service/internal/repository"
	"github.com/unclebandit/customer-service/internal/service"
)

// newServer wires the real stack on an in-memory sqlite database.
func newServer(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { db.Close(gdb) })

	return handler.New(handler.Options{
		Addresses: &controller.AddressController{
			AddressService: &service.AddressService{AddressRepo: &repository.AddressRepository{DB: gdb}},
		},
		Customers: &controller.CustomerController{
			CustomerService: &service.CustomerService{CustomerRepo: &repository.CustomerRepository{DB: gdb}},
		},
	})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			assert.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func TestAddressLifecycle(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "POST", "/address", map[string]any{"id": 1, "city": "X", "postalCode": "11111", "country": "BR"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/address/address.Id", w.Header().Get("Location"))
	assert.Equal(t, model.Address{ID: 1, City: "X", PostalCode: "11111", Country: "BR"}, decode[model.Address](t, w))

	w = do(t, h, "GET", "/address/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Address{ID: 1, City: "X", PostalCode: "11111", Country: "BR"}, decode[model.Address](t, w))

	w = do(t, h, "DELETE", "/address/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, h, "GET", "/address/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Address not found.", strings.TrimSpace(w.Body.String()))
}

func TestAddressList(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "GET", "/address", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	do(t, h, "POST", "/address", map[string]any{"id": 2, "city": "B"})
	do(t, h, "POST", "/address", map[string]any{"id": 1, "city": "A"})

	list := decode[[]model.Address](t, do(t, h, "GET", "/address", nil))
	assert.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
}

func TestAddressUpdate(t *testing.T) {
	h := newServer(t)
	do(t, h, "POST", "/address", map[string]any{"id": 1, "city": "X", "postalCode": "11111", "country": "BR"})

	w := do(t, h, "PUT", "/address", map[string]any{"id": 1, "city": "Y"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Every field is overwritten, the identifier included; omitted fields become empty.
	assert.Equal(t, []model.Address{{ID: 1, City: "Y"}}, decode[[]model.Address](t, w))

	w = do(t, h, "PUT", "/address", map[string]any{"id": 99, "city": "Z"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Couldn't find address.", strings.TrimSpace(w.Body.String()))
}

func TestAddressDeleteMissing(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "DELETE", "/address/5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBadInput(t *testing.T) {
	h := newServer(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/address/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "DELETE", "/customer/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/address", "{").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "PUT", "/customer", "not json").Code)
}

func TestDuplicateAddressIsServerError(t *testing.T) {
	h := newServer(t)
	do(t, h, "POST", "/address", map[string]any{"id": 1})

	w := do(t, h, "POST", "/address", map[string]any{"id": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func customerBody(email, phone string) map[string]any {
	return map[string]any{"id": 1, "name": "Yuki", "email": email, "phone": phone, "addressId": 1}
}

func TestCustomerCreate(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "POST", "/customer", customerBody("a@b.com", "(61)99999-9999"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/customer/customer.Id", w.Header().Get("Location"))
	// the submitted payload is echoed, without an address
	assert.JSONEq(t, `{"id":1,"name":"Yuki","email":"a@b.com","phone":"(61)99999-9999","addressId":1}`, w.Body.String())
}

func TestCustomerCreateRejectsTrailingDot(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "POST", "/customer", customerBody("a@b.com.", "(61)99999-9999"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad format for the email.", strings.TrimSpace(w.Body.String()))

	w = do(t, h, "POST", "/customer", customerBody("a@b.com", "99999."))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad format for the phone.", strings.TrimSpace(w.Body.String()))

	assert.JSONEq(t, "[]", do(t, h, "GET", "/customer", nil).Body.String())
}

func TestCustomerCreateValidationDetails(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "POST", "/customer", map[string]any{"id": 1, "name": strings.Repeat("n", 51), "email": "nope", "phone": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	problem := decode[struct {
		Status int                 `json:"status"`
		Errors map[string][]string `json:"errors"`
	}](t, w)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Contains(t, problem.Errors, "name")
	assert.Contains(t, problem.Errors, "email")
	assert.Contains(t, problem.Errors, "phone")
}

func TestCustomerReadsAttachAddress(t *testing.T) {
	h := newServer(t)
	do(t, h, "POST", "/address", map[string]any{"id": 1, "city": "X", "postalCode": "11111", "country": "BR"})
	do(t, h, "POST", "/customer", customerBody("a@b.com", "123"))

	w := do(t, h, "GET", "/customer/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	c := decode[model.Customer](t, w)
	assert.NotNil(t, c.Address)
	assert.Equal(t, "X", c.Address.City)

	list := decode[[]model.Customer](t, do(t, h, "GET", "/customer", nil))
	assert.Len(t, list, 1)
	assert.Equal(t, "11111", list[0].Address.PostalCode)
}

func TestCustomerWithDanglingAddress(t *testing.T) {
	h := newServer(t)

	w := do(t, h, "POST", "/customer", customerBody("a@b.com", "123"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, "GET", "/customer/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"address":null`)
}

func TestCustomerUpdateAndDelete(t *testing.T) {
	h := newServer(t)
	do(t, h, "POST", "/address", map[string]any{"id": 2, "city": "Z"})
	do(t, h, "POST", "/customer", customerBody("a@b.com", "123"))

	body := customerBody("new@b.com", "456")
	body["addressId"] = 2
	w := do(t, h, "PUT", "/customer", body)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decode[[]model.Customer](t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, "new@b.com", list[0].Email)
	assert.Equal(t, "Z", list[0].Address.City)

	body["id"] = 7
	w = do(t, h, "PUT", "/customer", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Couldn't find customer.", strings.TrimSpace(w.Body.String()))

	w = do(t, h, "DELETE", "/customer/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/customer/1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "DELETE", "/customer/1", nil).Code)
}

func TestCORSAndHealth(t *testing.T) {
	h := newServer(t)

	req := httptest.NewRequest("OPTIONS", "/customer", nil)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, h, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
