package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

func TestListHarvests(t *testing.T) {
	// The handler deliberately omits the Content-Type header: the envelope must
	// decode regardless, a 200 body must never read as an empty collection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/harvests" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Envelope[[]models.Harvest]{
			Data:    []models.Harvest{{ID: "h1", Crop: "Café"}},
			Success: true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")

	harvests, err := client.ListHarvests(context.Background())
	if err != nil {
		t.Fatalf("ListHarvests: %v", err)
	}
	if len(harvests) != 1 || harvests[0].ID != "h1" {
		t.Errorf("harvests = %+v, want one lot h1", harvests)
	}
}

func TestMutationPathsAndBodies(t *testing.T) {
	type seen struct {
		method, path string
		hasBody      bool
	}
	var got seen

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = seen{method: r.Method, path: r.URL.Path, hasBody: r.ContentLength > 0}
		json.NewEncoder(w).Encode(Envelope[any]{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		want seen
	}{
		{
			"create harvest",
			func() error { return client.CreateHarvest(ctx, models.Harvest{ID: "h1"}) },
			seen{http.MethodPost, "/api/harvests", true},
		},
		{
			"update inventory item",
			func() error { return client.UpdateInventoryItem(ctx, models.InventoryItem{ID: "i1"}) },
			seen{http.MethodPut, "/api/inventory/i1", true},
		},
		{
			"delete loss",
			func() error { return client.DeleteLoss(ctx, "l1") },
			seen{http.MethodDelete, "/api/losses/l1", false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); err != nil {
				t.Fatalf("call: %v", err)
			}
			if got != tc.want {
				t.Errorf("request = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestErrorStatusSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(Envelope[any]{Success: false, Message: "harvest not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if err := client.DeleteHarvest(context.Background(), "missing"); err == nil {
		t.Fatal("DeleteHarvest on 404 must error")
	}
	if _, err := client.ListLosses(context.Background()); err == nil {
		t.Fatal("ListLosses on 404 must error")
	}
}
