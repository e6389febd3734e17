package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/handlers"
	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/metrics"
	"github.com/andrelms/comercio-api/internal/repository"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. Each store gets the shared DB handle; nothing is a package-level
// singleton, so tests can build as many isolated routers as they need.
func New(db *gorm.DB, policy repository.DeletePolicy, log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	ch := handlers.NewCustomerHandler(repository.NewCustomerStore(db, policy))
	mux.HandleFunc("GET /api/customers", ch.List)
	mux.HandleFunc("POST /api/customers", ch.Create)
	mux.HandleFunc("GET /api/customers/{id}", ch.Get)
	mux.HandleFunc("PUT /api/customers/{id}", ch.Update)
	mux.HandleFunc("DELETE /api/customers/{id}", ch.Delete)
	mux.HandleFunc("GET /api/customers/taxid/{taxid}", ch.GetByTaxID)
	mux.HandleFunc("PUT /api/customers/{id}/sales/{saleId}", ch.AttachSale)
	mux.HandleFunc("DELETE /api/customers/{id}/sales/{saleId}", ch.DetachSale)

	sh := handlers.NewSupplierHandler(repository.NewSupplierStore(db, policy))
	mux.HandleFunc("GET /api/suppliers", sh.List)
	mux.HandleFunc("POST /api/suppliers", sh.Create)
	mux.HandleFunc("GET /api/suppliers/{id}", sh.Get)
	mux.HandleFunc("PUT /api/suppliers/{id}", sh.Update)
	mux.HandleFunc("DELETE /api/suppliers/{id}", sh.Delete)
	mux.HandleFunc("GET /api/suppliers/taxid/{taxid}", sh.GetByTaxID)
	mux.HandleFunc("PUT /api/suppliers/{id}/products/{productId}", sh.AttachProduct)
	mux.HandleFunc("DELETE /api/suppliers/{id}/products/{productId}", sh.DetachProduct)

	ph := handlers.NewProductHandler(repository.NewProductStore(db))
	mux.HandleFunc("GET /api/products", ph.List)
	mux.HandleFunc("POST /api/products", ph.Create)
	mux.HandleFunc("GET /api/products/{id}", ph.Get)
	mux.HandleFunc("PUT /api/products/{id}", ph.Update)
	mux.HandleFunc("DELETE /api/products/{id}", ph.Delete)
	mux.HandleFunc("GET /api/products/search", ph.Search)
	mux.HandleFunc("GET /api/products/supplier/{supplierId}", ph.BySupplier)
	mux.HandleFunc("GET /api/products/low-stock", ph.LowStock)

	vh := handlers.NewSaleHandler(repository.NewSaleStore(db))
	mux.HandleFunc("GET /api/sales", vh.List)
	mux.HandleFunc("POST /api/sales", vh.Create)
	mux.HandleFunc("GET /api/sales/{id}", vh.Get)
	mux.HandleFunc("PUT /api/sales/{id}", vh.Update)
	mux.HandleFunc("DELETE /api/sales/{id}", vh.Delete)
	mux.HandleFunc("GET /api/sales/customer/{customerId}", vh.ByCustomer)
	mux.HandleFunc("GET /api/sales/period", vh.ByPeriod)
	mux.HandleFunc("POST /api/sales/{id}/items", vh.AddItem)
	mux.HandleFunc("DELETE /api/sales/{id}/items/{itemId}", vh.RemoveItem)

	ih := handlers.NewSaleItemHandler(repository.NewSaleItemStore(db))
	mux.HandleFunc("GET /api/sale-items", ih.List)
	mux.HandleFunc("POST /api/sale-items", ih.Create)
	mux.HandleFunc("GET /api/sale-items/{id}", ih.Get)
	mux.HandleFunc("PUT /api/sale-items/{id}", ih.Update)
	mux.HandleFunc("DELETE /api/sale-items/{id}", ih.Delete)
	mux.HandleFunc("GET /api/sale-items/sale/{saleId}", ih.BySale)
	mux.HandleFunc("GET /api/sale-items/product/{productId}", ih.ByProduct)

	ah := handlers.NewAddressHandler(repository.NewAddressStore(db))
	mux.HandleFunc("GET /api/addresses", ah.List)
	mux.HandleFunc("POST /api/addresses", ah.Create)
	mux.HandleFunc("GET /api/addresses/{id}", ah.Get)
	mux.HandleFunc("PUT /api/addresses/{id}", ah.Update)
	mux.HandleFunc("DELETE /api/addresses/{id}", ah.Delete)

	return withRecover(log, withLogging(log, metrics.Instrument(mux)))
}
