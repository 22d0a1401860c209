package report

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/adapters"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/api"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/store/sqlite/history"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const dateLayout = "02-01-2006"

// Handler exposes the analysis service as the JSON boundary the external
// presentation layer consumes.
type Handler struct {
	service analysis.Service
}

func NewHandler(service analysis.Service) *Handler {
	return &Handler{service: service}
}

// UploadDataset ingests raw order-history bytes, normalizes them (reusing
// the cleaned set when the same content was uploaded before) and registers
// the dataset for subsequent queries.
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(raw) == 0 {
		http.Error(w, "empty upload", http.StatusBadRequest)
		return
	}

	ds, err := h.service.LoadBytes(ctx, raw)
	if err != nil {
		if errors.Is(err, history.ErrSourceMissing) {
			// Input error, not a zero-valued report.
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.Error().Err(err).Msg("failed to load dataset")
		http.Error(w, "failed to load dataset", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	h.encode(w, r, adapters.MapDatasetDomainToApi(ds))
}

// GetROI computes the ROI summary for a dataset under the supplied
// parameters and date range. Degenerate filters return explicit zeros.
func (h *Handler) GetROI(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	records, ok := h.filteredRecords(w, r, ds)
	if !ok {
		return
	}

	params, err := h.params(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := h.service.Summarize(records, params)
	h.encode(w, r, adapters.MapROISummaryDomainToApi(summary))
}

// ListProducts returns the distinct monitored products of a dataset.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	response := make([]api.Product, 0)
	for _, p := range ds.Products() {
		response = append(response, adapters.MapProductDomainToApi(p))
	}
	h.encode(w, r, response)
}

// GetProductAudit reports verification and ordered-unit totals for one
// product within the filtered range.
func (h *Handler) GetProductAudit(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "product"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	records, ok := h.filteredRecords(w, r, ds)
	if !ok {
		return
	}

	a := h.service.AuditProduct(records, productID)
	h.encode(w, r, adapters.MapProductAuditDomainToApi(a))
}

// ListRecords returns the cleaned record table for downstream filtering and
// pivoting by the presentation layer.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	records, ok := h.filteredRecords(w, r, ds)
	if !ok {
		return
	}

	response := make([]api.OrderRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapOrderRecordDomainToApi(rec))
	}
	h.encode(w, r, response)
}

func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) (*domain.Dataset, bool) {
	id := chi.URLParam(r, "dataset")
	ds, err := h.service.Dataset(r.Context(), id)
	if err != nil {
		http.Error(w, "dataset not found", http.StatusNotFound)
		return nil, false
	}
	return ds, true
}

func (h *Handler) filteredRecords(w http.ResponseWriter, r *http.Request, ds *domain.Dataset) ([]domain.OrderRecord, bool) {
	from, err := parseDateParam(r, "from")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return analysis.FilterRange(ds.Records, from, to), true
}

func (h *Handler) params(r *http.Request) (analysis.Params, error) {
	params := h.service.Defaults()

	if err := overrideFloat(r, "hourly_cost", &params.HourlyCost); err != nil {
		return params, err
	}
	if err := overrideFloat(r, "gap_minutes", &params.GapMinutes); err != nil {
		return params, err
	}
	if err := overrideFloat(r, "discount_seconds", &params.DiscountSeconds); err != nil {
		return params, err
	}
	return params, nil
}

func (h *Handler) encode(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errors.New("invalid " + name + " date, expected dd-mm-yyyy")
	}
	return &t, nil
}

func overrideFloat(r *http.Request, name string, target *float64) error {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errors.New("invalid " + name + " value")
	}
	*target = f
	return nil
}
