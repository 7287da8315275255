package dish

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestClientListByRestaurant(t *testing.T) {
	var gotVariables map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotVariables = req.Variables
		io.WriteString(w, `{"data":{"dishes":[
			{"UID_Dish":"dish-1","RestID":"rest-1","Name":"Boxcar Burger","Description":"A burger","Price":10,"Image":{"url":"/images/burger.jpg"}},
			{"UID_Dish":"dish-2","RestID":"rest-1","Name":"Caboose Fries","Description":"","Price":5.5,"Image":{"url":""}}
		]}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, quietLogger())
	dishes, err := client.ListByRestaurant(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if gotVariables["restID"] != "rest-1" {
		t.Errorf("unexpected query variables %v", gotVariables)
	}
	if len(dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(dishes))
	}
	// the nested image object flattens to the url string
	if dishes[0].Image != "/images/burger.jpg" {
		t.Errorf("unexpected image %q", dishes[0].Image)
	}
	if dishes[1].Price != 5.50 {
		t.Errorf("unexpected price %v", dishes[1].Price)
	}
}

func TestClientGetByUID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dishes/dish-1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Dish{UID: "dish-1", RestaurantUID: "rest-1", Name: "Boxcar Burger", Price: 10.00})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, quietLogger())
	d, err := client.GetByUID(context.Background(), "dish-1")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if d.Name != "Boxcar Burger" || d.Price != 10.00 {
		t.Errorf("unexpected dish %+v", d)
	}
}

func TestClientGetByUID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "dish not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, quietLogger())
	if _, err := client.GetByUID(context.Background(), "dish-404"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
