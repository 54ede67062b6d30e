package routes

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	productControllers "github.com/junaidrashid-git/orbit-aether/controllers/product"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestClients_CreateEchoesPayload(t *testing.T) {
	r, _ := setupOrbit(t, false)

	w := doJSON(t, r, http.MethodPost, "/clients", map[string]interface{}{
		"name":    "Acme",
		"company": "Acme Ltd",
		"email":   "hello@acme.test",
		"revenue": 1200.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	client := decode[models.Client](t, w)
	assert.NotZero(t, client.ID)
	assert.Equal(t, "Acme", client.Name)
	assert.Equal(t, "Acme Ltd", client.Company)
	assert.Equal(t, "hello@acme.test", client.Email)
	assert.Equal(t, models.ClientStatusActive, client.Status)
	assert.Equal(t, 1200.5, client.Revenue)
}

func TestClients_ListNewestFirst(t *testing.T) {
	r, _ := setupOrbit(t, false)

	first := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "First"}))
	second := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients.php", map[string]string{"name": "Second"}))

	for _, path := range []string{"/clients", "/clients.php"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		clients := decode[[]models.Client](t, w)
		require.Len(t, clients, 2)
		assert.Equal(t, second.ID, clients[0].ID)
		assert.Equal(t, first.ID, clients[1].ID)
	}
}

func TestClients_Validation(t *testing.T) {
	r, _ := setupOrbit(t, false)

	w := doJSON(t, r, http.MethodPost, "/clients", map[string]string{"company": "No Name Inc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme", "status": "Sleeping"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/clients", map[string]string{"name": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ID is required"}`, w.Body.String())
}

func TestClients_PutIsIdempotent(t *testing.T) {
	r, _ := setupOrbit(t, false)
	created := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))

	payload := map[string]interface{}{
		"id":      fmt.Sprint(created.ID),
		"name":    "Acme Renamed",
		"company": "Acme Group",
		"status":  "Inactive",
		"revenue": 99,
	}

	w := doJSON(t, r, http.MethodPut, "/clients", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	afterFirst := doJSON(t, r, http.MethodGet, "/clients", nil).Body.String()

	w = doJSON(t, r, http.MethodPut, "/clients", payload)
	require.Equal(t, http.StatusOK, w.Code)
	afterSecond := doJSON(t, r, http.MethodGet, "/clients", nil).Body.String()

	assert.JSONEq(t, afterFirst, afterSecond)

	clients := decode[[]models.Client](t, doJSON(t, r, http.MethodGet, "/clients", nil))
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme Renamed", clients[0].Name)
	assert.Equal(t, models.ClientStatusInactive, clients[0].Status)
}

func TestDelete_NonexistentIDSucceeds(t *testing.T) {
	r, _ := setupOrbit(t, false)

	for _, resource := range []string{"clients", "suppliers", "orders", "products", "team", "tasks"} {
		t.Run(resource, func(t *testing.T) {
			w := doJSON(t, r, http.MethodDelete, "/"+resource+"?id=9999", nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true}`, w.Body.String())

			w = doJSON(t, r, http.MethodDelete, "/"+resource+"/9999", nil)
			assert.Equal(t, http.StatusOK, w.Code)

			w = doJSON(t, r, http.MethodDelete, "/"+resource+".php", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDelete_RemovesRow(t *testing.T) {
	r, _ := setupOrbit(t, false)
	supplier := decode[models.Supplier](t, doJSON(t, r, http.MethodPost, "/suppliers", map[string]string{
		"name":     "Paper Co",
		"contact":  "Jo",
		"category": "Office",
		"status":   "Paused",
	}))
	assert.Equal(t, models.SupplierStatusPaused, supplier.Status)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/suppliers.php?id=%d", supplier.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	suppliers := decode[[]models.Supplier](t, doJSON(t, r, http.MethodGet, "/suppliers", nil))
	assert.Empty(t, suppliers)
}

func TestOrders_JoinClientName(t *testing.T) {
	r, _ := setupOrbit(t, false)
	client := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": fmt.Sprint(client.ID),
		"amount":   250,
		"date":     "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Order](t, w)
	assert.Equal(t, "Acme", created.ClientName)
	assert.Equal(t, models.OrderStatusPending, created.Status)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": 4242,
		"amount":   10,
		"date":     "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	orders := decode[[]models.Order](t, doJSON(t, r, http.MethodGet, "/orders", nil))
	require.Len(t, orders, 2)
	assert.Equal(t, "2024-05-01", orders[0].Date, "newest date first")
	assert.Equal(t, models.UnknownClient, orders[0].ClientName)
	assert.Equal(t, "Acme", orders[1].ClientName)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{"amount": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrders_StatusOnlyUpdate(t *testing.T) {
	r, _ := setupOrbit(t, false)
	client := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))
	order := decode[models.Order](t, doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": client.ID,
		"amount":   100,
		"date":     "2024-01-01",
		"status":   "Pending",
	}))

	w := doJSON(t, r, http.MethodPut, "/orders", map[string]interface{}{
		"id":     fmt.Sprint(order.ID),
		"status": "Completed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[models.Order](t, w)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, 100.0, updated.Amount)
	assert.Equal(t, "2024-01-01", updated.Date)
	assert.Equal(t, client.ID, updated.ClientID)
	assert.Equal(t, "Acme", updated.ClientName)
}

func TestOrders_FullUpdate(t *testing.T) {
	r, _ := setupOrbit(t, false)
	acme := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))
	globex := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Globex"}))
	order := decode[models.Order](t, doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": acme.ID,
		"amount":   100,
		"date":     "2024-01-01",
	}))

	w := doJSON(t, r, http.MethodPut, "/orders", map[string]interface{}{
		"id":       order.ID,
		"clientId": globex.ID,
		"amount":   300,
		"date":     "2024-02-02",
		"status":   "Processing",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[models.Order](t, w)
	assert.Equal(t, "Globex", updated.ClientName)
	assert.Equal(t, 300.0, updated.Amount)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	w = doJSON(t, r, http.MethodPut, "/orders", map[string]interface{}{"id": order.ID, "status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrders_StatusUpdateWithIDInPath(t *testing.T) {
	r, _ := setupOrbit(t, false)
	client := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))
	order := decode[models.Order](t, doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": client.ID,
		"amount":   75,
		"date":     "2024-01-05",
	}))

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/orders/%d", order.ID), map[string]string{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Order](t, w)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, 75.0, updated.Amount)
	assert.Equal(t, client.ID, updated.ClientID)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/orders.php?id=%d", order.ID), map[string]string{"status": "Cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.OrderStatusCancelled, decode[models.Order](t, w).Status)
}

func TestOrders_FullUpdateKeepsDateWhenOmitted(t *testing.T) {
	r, _ := setupOrbit(t, false)
	client := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))
	order := decode[models.Order](t, doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"clientId": client.ID,
		"amount":   100,
		"date":     "2023-12-24",
	}))

	w := doJSON(t, r, http.MethodPut, "/orders", map[string]interface{}{
		"id":       order.ID,
		"clientId": client.ID,
		"amount":   120,
		"status":   "Processing",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Order](t, w)
	assert.Equal(t, "2023-12-24", updated.Date)
	assert.Equal(t, 120.0, updated.Amount)
}

func TestProducts_StatusDerivedFromStock(t *testing.T) {
	r, _ := setupOrbit(t, false)

	tests := []struct {
		stock int
		want  models.StockStatus
	}{
		{stock: 0, want: models.StockStatusOutOfStock},
		{stock: 4, want: models.StockStatusLowStock},
		{stock: 50, want: models.StockStatusInStock},
	}
	for _, tt := range tests {
		w := doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{
			"name":  fmt.Sprintf("Widget %d", tt.stock),
			"sku":   fmt.Sprintf("W-%d", tt.stock),
			"price": 9.99,
			"stock": tt.stock,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, tt.want, decode[models.Product](t, w).Status)
	}

	w := doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{"name": "No SKU"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/products?search=w-4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]models.Product](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, "Widget 4", found[0].Name)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", found[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "W-4", decode[models.Product](t, w).SKU)

	w = doJSON(t, r, http.MethodGet, "/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts_ExportWorkbook(t *testing.T) {
	r, _ := setupOrbit(t, false)
	doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{"name": "Desk", "sku": "D-1", "price": 120, "stock": 3, "category": "Furniture"})

	w := doJSON(t, r, http.MethodGet, "/products/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	rows := file.Sheets[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "SKU", rows[0].Cells[2].String())
	assert.Equal(t, "Desk", rows[1].Cells[1].String())
	assert.Equal(t, "Low Stock", rows[1].Cells[6].String())
}

func TestProducts_ImportWorkbook(t *testing.T) {
	r, _ := setupOrbit(t, false)
	existing := decode[models.Product](t, doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{
		"name": "Desk", "sku": "D-1", "price": 120, "stock": 3,
	}))

	existing.Price = 150
	existing.Stock = 40
	existing.Status = ""
	book, err := productControllers.BuildInventoryWorkbook([]models.Product{
		existing,
		{Name: "Chair", SKU: "C-1", Price: 45, Stock: 0},
		{Name: "", SKU: "BROKEN"},
	})
	require.NoError(t, err)

	var file bytes.Buffer
	require.NoError(t, book.Write(&file))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "products.xlsx")
	require.NoError(t, err)
	_, err = part.Write(file.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Import completed","created_count":1,"updated_count":1,"skipped_count":1}`, w.Body.String())

	products := decode[[]models.Product](t, doJSON(t, r, http.MethodGet, "/products", nil))
	require.Len(t, products, 2)
	assert.Equal(t, "Chair", products[0].Name)
	assert.Equal(t, models.StockStatusOutOfStock, products[0].Status)
	assert.Equal(t, 150.0, products[1].Price)
	assert.Equal(t, models.StockStatusInStock, products[1].Status)
}

func TestTeam_CreateAndLogin(t *testing.T) {
	r, _ := setupOrbit(t, false)

	w := doJSON(t, r, http.MethodPost, "/team", map[string]string{
		"name":  "Dana",
		"email": "dana@orbit.local",
		"role":  "Manager",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	member := decode[models.User](t, w)
	assert.Equal(t, models.JustNow, member.LastActive)
	assert.Equal(t, models.RoleManager, member.Role)

	// created without a password: the configured default applies
	w = doJSON(t, r, http.MethodPost, "/auth", map[string]string{"email": "dana@orbit.local", "password": "password"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/team", map[string]string{"name": "Dana 2", "email": "dana@orbit.local"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/team", map[string]string{"name": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/team", map[string]interface{}{
		"id":       member.ID,
		"role":     "Admin",
		"status":   "Inactive",
		"password": "rotated",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.User](t, w)
	assert.Equal(t, "Dana", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, models.MemberStatusInactive, updated.Status)

	w = doJSON(t, r, http.MethodPost, "/auth.php", map[string]string{"email": "dana@orbit.local", "password": "rotated"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeam_PartialUpdateKeepsRoleAndStatus(t *testing.T) {
	r, db := setupOrbit(t, false)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@orbit.local").First(&admin).Error)
	require.NoError(t, db.Model(&admin).Update("status", models.MemberStatusInactive).Error)

	w := doJSON(t, r, http.MethodPut, "/team", map[string]interface{}{"id": admin.ID, "name": "Boss"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[models.User](t, w)
	assert.Equal(t, "Boss", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, models.MemberStatusInactive, updated.Status)

	w = doJSON(t, r, http.MethodPut, "/team", map[string]interface{}{"id": admin.ID, "role": "Overlord"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTasks_AssigneeAndTags(t *testing.T) {
	r, _ := setupOrbit(t, false)
	dana := decode[models.User](t, doJSON(t, r, http.MethodPost, "/team", map[string]string{"name": "Dana", "email": "dana@orbit.local"}))

	w := doJSON(t, r, http.MethodPost, "/tasks", map[string]interface{}{
		"title":    "Ship catalog",
		"assignee": "Dana",
		"priority": "High",
		"tags":     []string{"launch", "web"},
		"dueDate":  "2024-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decode[models.Task](t, w)
	assert.Equal(t, "Dana", task.Assignee)
	assert.Equal(t, []string{"launch", "web"}, task.Tags)
	assert.Equal(t, models.TaskStatusTodo, task.Status)

	w = doJSON(t, r, http.MethodPost, "/tasks", map[string]interface{}{
		"title":   "Earlier task",
		"dueDate": "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.Unassigned, decode[models.Task](t, w).Assignee)

	w = doJSON(t, r, http.MethodPost, "/tasks", map[string]interface{}{"title": "Ghost work", "assignee": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tasks := decode[[]models.Task](t, doJSON(t, r, http.MethodGet, "/tasks", nil))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Earlier task", tasks[0].Title, "sorted by due date")
	assert.Equal(t, []string{}, tasks[0].Tags)
	assert.Equal(t, "Dana", tasks[1].Assignee)
	assert.Equal(t, []string{"launch", "web"}, tasks[1].Tags)

	w = doJSON(t, r, http.MethodPut, "/tasks", map[string]interface{}{
		"id":       task.ID,
		"title":    "Ship catalog",
		"assignee": "Dana",
		"priority": "Low",
		"tags":     []string{"web", "seo", "launch"},
		"dueDate":  "2024-06-01",
		"status":   "In Progress",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tasks = decode[[]models.Task](t, doJSON(t, r, http.MethodGet, "/tasks", nil))
	assert.Equal(t, []string{"web", "seo", "launch"}, tasks[1].Tags)
	assert.Equal(t, models.TaskStatusInProgress, tasks[1].Status)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/team?id=%d", dana.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks = decode[[]models.Task](t, doJSON(t, r, http.MethodGet, "/tasks", nil))
	assert.Equal(t, models.Unassigned, tasks[1].Assignee)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks = decode[[]models.Task](t, doJSON(t, r, http.MethodGet, "/tasks", nil))
	assert.Len(t, tasks, 1)
}

func TestDashboard(t *testing.T) {
	r, _ := setupOrbit(t, false)
	acme := decode[models.Client](t, doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Acme"}))
	doJSON(t, r, http.MethodPost, "/clients", map[string]string{"name": "Dormant", "status": "Inactive"})
	doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{"clientId": acme.ID, "amount": 100})
	doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{"clientId": acme.ID, "amount": 50, "status": "Completed"})
	doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{"clientId": acme.ID, "amount": 999, "status": "Cancelled"})
	doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{"name": "Desk", "sku": "D-1", "stock": 2})
	doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{"name": "Lamp", "sku": "L-1", "stock": 80})

	w := doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalRevenue":150,"activeClients":1,"pendingOrders":1,"lowStockItems":1}`, w.Body.String())
}

func TestOrbit_AuthRequired(t *testing.T) {
	r, _ := setupOrbit(t, true)

	w := doJSON(t, r, http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{"email": "admin@orbit.local", "password": "letmein"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[map[string]interface{}](t, w)
	bearer := "Bearer " + login["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/clients", nil, "Authorization", bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/me", nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@orbit.local", decode[models.User](t, w).Email)

	w = doJSON(t, r, http.MethodPut, "/me", map[string]string{"name": "Chief"}, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chief", decode[models.User](t, w).Name)
}

func TestOrbit_MethodNotAllowed(t *testing.T) {
	r, _ := setupOrbit(t, false)

	w := doJSON(t, r, http.MethodPatch, "/clients", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}
