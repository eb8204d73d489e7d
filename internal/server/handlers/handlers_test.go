package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/repository"
	"github.com/pedrocontreras2007/floricoop/internal/server/handlers"
	"github.com/pedrocontreras2007/floricoop/internal/server/router"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

type envelope[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// newTestServer wires the full route table against an empty memory-backed store.
func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	ctx := context.Background()
	adapter := repository.NewMemoryAdapter()
	for _, key := range []string{
		repository.KeyHarvests,
		repository.KeyInventory,
		repository.KeyLosses,
		repository.KeyReminders,
	} {
		if err := adapter.Write(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("prime adapter: %v", err)
		}
	}

	dataStore := store.New(ctx, adapter, nil, zap.NewNop())
	t.Cleanup(dataStore.Close)

	logger := zap.NewNop()
	engine := router.New(router.Handlers{
		Harvests:  handlers.NewHarvestHandler(dataStore, logger),
		Inventory: handlers.NewInventoryHandler(dataStore, logger),
		Losses:    handlers.NewLossHandler(dataStore, logger),
		Reminders: handlers.NewReminderHandler(dataStore, logger),
		Reports:   handlers.NewReportHandler(dataStore, logger),
		Auth:      handlers.NewAuthHandler(logger),
	}, logger)
	return engine, dataStore
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body.String(), err)
	}
	return env
}

func TestLogin(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "  Innovacode1857@Gmail.com ",
		"password": "innovacode",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (email compare is trimmed and case-insensitive)", rec.Code)
	}

	rec = do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "innovacode1857@gmail.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decode[any](t, rec); env.Success || env.Message == "" {
		t.Errorf("error envelope = %+v, want success=false with message", env)
	}
}

func TestHarvestLifecycle(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(t, engine, http.MethodPost, "/api/harvests", gin.H{
		"crop":                  "Café Arábica",
		"category":              "primera",
		"quantity":              12.6,
		"recordedBy":            "socio",
		"recordedByPartnerName": "Coop Andina",
		"salePriceClp":          1500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[models.Harvest](t, rec)
	if created.Data.ID == "" {
		t.Fatal("created harvest must carry a server-assigned id")
	}
	if created.Data.Quantity != 13 {
		t.Errorf("Quantity = %d, want 13 (rounded)", created.Data.Quantity)
	}
	if created.Data.PartnerName != "Coop Andina" {
		t.Errorf("PartnerName = %q, want Coop Andina", created.Data.PartnerName)
	}
	id := created.Data.ID

	rec = do(t, engine, http.MethodGet, "/api/harvests", nil)
	if list := decode[[]models.Harvest](t, rec); len(list.Data) != 1 || list.Data[0].ID != id {
		t.Fatalf("list = %+v, want just the created harvest", list.Data)
	}

	rec = do(t, engine, http.MethodPut, "/api/harvests/"+id+"/quantity", gin.H{
		"quantity":   7,
		"recordedBy": "presidente",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("quantity update status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, engine, http.MethodGet, "/api/harvests/"+id, nil)
	got := decode[models.Harvest](t, rec)
	if got.Data.Quantity != 7 {
		t.Errorf("Quantity after update = %d, want 7", got.Data.Quantity)
	}
	if got.Data.RecordedBy != models.RolePresidente {
		t.Errorf("RecordedBy = %s, want presidente", got.Data.RecordedBy)
	}
	if got.Data.PartnerName != "" {
		t.Errorf("PartnerName = %q, non-socio attribution must clear it", got.Data.PartnerName)
	}

	rec = do(t, engine, http.MethodDelete, "/api/harvests/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = do(t, engine, http.MethodDelete, "/api/harvests/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHarvestValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"unknown category", gin.H{"crop": "Café", "category": "cuarta", "recordedBy": "socio"}},
		{"unknown role", gin.H{"crop": "Café", "category": "primera", "recordedBy": "gerente"}},
		{"missing crop", gin.H{"category": "primera", "recordedBy": "socio"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, engine, http.MethodPost, "/api/harvests", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLossCreateDepletesInventorySource(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(t, engine, http.MethodPost, "/api/inventory", gin.H{
		"name":       "Semillas de quinoa",
		"quantity":   25,
		"category":   "planta",
		"recordedBy": "administrador",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item status = %d, body %s", rec.Code, rec.Body.String())
	}
	item := decode[models.InventoryItem](t, rec).Data

	rec = do(t, engine, http.MethodPost, "/api/losses", gin.H{
		"productName": "Semillas de quinoa",
		"quantity":    5,
		"reason":      "humedad",
		"recordedBy":  "administrador",
		"sourceType":  "inventory",
		"sourceId":    item.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create loss status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, engine, http.MethodGet, "/api/inventory/"+item.ID, nil)
	if got := decode[models.InventoryItem](t, rec).Data; got.Quantity != 20 {
		t.Errorf("Quantity = %d, want 20 after depletion", got.Quantity)
	}

	rec = do(t, engine, http.MethodGet, "/api/losses", nil)
	if losses := decode[[]models.Loss](t, rec).Data; len(losses) != 1 || losses[0].SourceID != item.ID {
		t.Errorf("losses = %+v, want one loss referencing the item", losses)
	}
}

func TestLossValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"zero quantity", gin.H{"productName": "Semillas", "quantity": 0, "reason": "humedad", "recordedBy": "socio"}},
		{"negative quantity", gin.H{"productName": "Semillas", "quantity": -3, "reason": "humedad", "recordedBy": "socio"}},
		{"unknown source type", gin.H{"productName": "Semillas", "quantity": 2, "reason": "humedad", "recordedBy": "socio", "sourceType": "bodega", "sourceId": "x"}},
		{"unknown role", gin.H{"productName": "Semillas", "quantity": 2, "reason": "humedad", "recordedBy": "gerente"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, engine, http.MethodPost, "/api/losses", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	rec := do(t, engine, http.MethodGet, "/api/losses", nil)
	if losses := decode[[]models.Loss](t, rec).Data; len(losses) != 0 {
		t.Errorf("losses = %+v, rejected payloads must not be recorded", losses)
	}
}

func TestLossDistributionQuery(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(t, engine, http.MethodGet, "/api/losses/distribution?recordedBy=intruso", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown role filter", rec.Code)
	}

	rec = do(t, engine, http.MethodGet, "/api/losses/distribution?recordedBy=socio", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestReminderOrdering(t *testing.T) {
	engine, _ := newTestServer(t)

	for i, at := range []string{"2030-05-20T10:00:00Z", "2030-05-18T10:00:00Z"} {
		rec := do(t, engine, http.MethodPost, "/api/reminders", gin.H{
			"title":       fmt.Sprintf("tarea %d", i),
			"scheduledAt": at,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create reminder status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec := do(t, engine, http.MethodGet, "/api/reminders", nil)
	list := decode[[]models.Reminder](t, rec).Data
	if len(list) != 2 {
		t.Fatalf("len(reminders) = %d, want 2", len(list))
	}
	if !list[0].ScheduledAt.Before(list[1].ScheduledAt) {
		t.Error("reminders must list soonest first")
	}
}

func TestCalendarMonthValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(t, engine, http.MethodGet, "/api/reports/calendar?month=mayo", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a malformed month", rec.Code)
	}

	rec = do(t, engine, http.MethodGet, "/api/reports/calendar?month=2030-05", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestReportEndpointsRespond(t *testing.T) {
	engine, _ := newTestServer(t)

	for _, path := range []string{
		"/api/reports/dashboard",
		"/api/reports/inventory",
		"/api/reports/stock-alerts",
		"/healthz",
	} {
		rec := do(t, engine, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}
