//go:build unit

package commerce_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/infra/commerce"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*commerce.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := commerce.NewClient(config.CommerceConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, logger)
	return client, server
}

func jsonResponse(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

func TestListProducts(t *testing.T) {
	const bareArray = `[
		{"id": "p1", "name": "Noir de Minuit", "slug": "noir-de-minuit", "price": "75.00", "is_bestseller": true},
		{"id": "p2", "name": "Fleur Sauvage", "slug": "fleur-sauvage", "price": "216.50"}
	]`

	t.Run("decodes a bare JSON array", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/", r.URL.Path)
			jsonResponse(t, w, http.StatusOK, bareArray)
		}))

		views, err := client.ListProducts(context.Background(), queries.ProductFilters{})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "noir-de-minuit", views[0].Slug)
		assert.Equal(t, money.Cents(7500), views[0].Price)
		assert.True(t, views[0].IsBestseller)
		assert.Equal(t, money.Cents(21650), views[1].Price)
	})

	t.Run("decodes the paginated results envelope", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusOK, `{"count": 2, "results": `+bareArray+`}`)
		}))

		views, err := client.ListProducts(context.Background(), queries.ProductFilters{})

		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("forwards collection and sort filters", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "noir", r.URL.Query().Get("collection"))
			assert.Equal(t, "price_asc", r.URL.Query().Get("sort"))
			jsonResponse(t, w, http.StatusOK, `[]`)
		}))

		views, err := client.ListProducts(context.Background(), queries.ProductFilters{Collection: "noir", Sort: "price_asc"})

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("malformed price is a decode failure", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusOK, `[{"id": "p1", "slug": "broken", "price": "seventy"}]`)
		}))

		_, err := client.ListProducts(context.Background(), queries.ProductFilters{})

		assert.True(t, infra.IsKind(err, infra.KindDecodeFailed))
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("maps the detail payload", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/noir-de-minuit/", r.URL.Path)
			jsonResponse(t, w, http.StatusOK, `{
				"id": "p1", "name": "Noir de Minuit", "slug": "noir-de-minuit", "price": "75.00",
				"description": "Smoky amber",
				"rating": {"average": 4.6, "count": 12},
				"sizes": [{"id": 1, "label": "50ml", "price": "75.00", "stock": 3, "is_available": true}],
				"accords": {"top": ["bergamot"], "heart": ["rose"], "base": ["oud"]}
			}`)
		}))

		view, err := client.GetProduct(context.Background(), "noir-de-minuit")

		require.NoError(t, err)
		assert.Equal(t, "Noir de Minuit", view.Name)
		assert.Equal(t, 4.6, view.Rating.Average)
		require.Len(t, view.Sizes, 1)
		assert.Equal(t, money.Cents(7500), view.Sizes[0].Price)
		assert.Equal(t, []string{"oud"}, view.Accords.Base)
	})

	t.Run("404 is a not-found error carrying the backend message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusNotFound, `{"detail": "No Product matches the given query."}`)
		}))

		_, err := client.GetProduct(context.Background(), "missing")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "No Product matches the given query.", infra.BackendMessage(err))
	})
}

func TestFetchCart(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/cart/session_1726000000000_abc123def/", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, `{
			"session_key": "session_1726000000000_abc123def",
			"items": [
				{"id": 7, "product": {"id": "p1", "name": "Noir de Minuit", "image": "/img/p1.jpg"}, "price": "75.00", "quantity": 2},
				{"id": 8, "product": {"id": "p2", "name": "Fleur Sauvage"}, "variant": 3, "price": "216.50", "quantity": 1}
			]
		}`)
	}))

	snapshot, err := client.FetchCart(context.Background(), "session_1726000000000_abc123def")

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, int64(7), snapshot.Items[0].ID)
	assert.Equal(t, money.Cents(7500), snapshot.Items[0].UnitPrice)
	require.NotNil(t, snapshot.Items[1].VariantID)
	assert.Equal(t, int64(3), *snapshot.Items[1].VariantID)
	assert.Equal(t, money.Cents(36650), snapshot.Subtotal())
}

func TestAddItem(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/cart/sk/add_item/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		jsonResponse(t, w, http.StatusOK, `{"session_key": "sk", "items": []}`)
	}))

	variantID := int64(3)
	err := client.AddItem(context.Background(), "sk", commands.NewCartItem{ProductID: "p1", VariantID: &variantID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, "p1", captured["product_id"])
	assert.Equal(t, float64(3), captured["variant_id"])
	assert.Equal(t, float64(2), captured["quantity"])
}

func TestValidatePromo(t *testing.T) {
	t.Run("accepted code carries the computed discount", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/promo/WELCOME10/validate/", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "100.00", body["subtotal"])

			jsonResponse(t, w, http.StatusOK, `{
				"valid": true, "discount_amount": 10.0, "promo": {"code": "WELCOME10"}
			}`)
		}))

		result, err := client.ValidatePromo(context.Background(), "WELCOME10", 10000)

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "WELCOME10", result.Code)
		assert.Equal(t, money.Cents(1000), result.Discount)
	})

	t.Run("rejected code is a result, not an error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusBadRequest, `{"message": "This promo code has expired"}`)
		}))

		result, err := client.ValidatePromo(context.Background(), "EXPIRED", 10000)

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "EXPIRED", result.Code)
		assert.Equal(t, "This promo code has expired", result.Message)
	})

	t.Run("unknown code behaves like a rejection", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusNotFound, `{"detail": "Not found."}`)
		}))

		result, err := client.ValidatePromo(context.Background(), "NOPE", 10000)

		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestInitializePayment(t *testing.T) {
	t.Run("unwraps the provider envelope", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/initialize_payment/", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "42", body["order_id"])
			assert.Equal(t, "https://shop.example/done", body["callback_url"])

			jsonResponse(t, w, http.StatusOK, `{
				"status": true,
				"data": {"authorization_url": "https://pay.example/42", "access_code": "ac_1", "reference": "PAY-42-1"}
			}`)
		}))

		init, err := client.InitializePayment(context.Background(), "42", "https://shop.example/done")

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/42", init.AuthorizationURL)
		assert.Equal(t, "PAY-42-1", init.Reference)
	})

	t.Run("status false is a backend rejection", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(t, w, http.StatusOK, `{"status": false, "message": "Invalid order"}`)
		}))

		_, err := client.InitializePayment(context.Background(), "42", "")

		assert.True(t, infra.IsKind(err, infra.KindBackendRejected))
		assert.Equal(t, "Invalid order", infra.BackendMessage(err))
	})
}

func TestVerifyPayment(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/verify_payment/", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, `{
			"status": true,
			"data": {"order_id": "42", "amount": 174.0, "status": "success"}
		}`)
	}))

	verification, err := client.VerifyPayment(context.Background(), "PAY-42-1")

	require.NoError(t, err)
	assert.Equal(t, "42", verification.OrderID)
	assert.Equal(t, money.Cents(17400), verification.Amount)
	assert.Equal(t, "success", verification.Status)
}

func TestPaystackConfig(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/paystack_config/", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, `{"public_key": "pk_test_abc"}`)
	}))

	key, err := client.PaystackConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "pk_test_abc", key)
}

func TestUnreachableBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := commerce.NewClient(config.CommerceConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	}, logger)

	_, err := client.PaystackConfig(context.Background())

	assert.True(t, infra.IsKind(err, infra.KindUnreachable))
}
