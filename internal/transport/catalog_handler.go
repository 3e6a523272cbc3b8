package transport

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"product-catalog/internal/catalog"
	"product-catalog/internal/domain"
	"product-catalog/internal/middleware"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MaxQueryLength is the number of characters of search text kept from a request
const MaxQueryLength = 200

// CatalogRequest is the view state as it arrives in the query string
type CatalogRequest struct {
	User       int    `json:"user" validate:"gte=0"`
	Query      string `json:"query"`
	Categories []int  `json:"category" validate:"dive,gt=0"`
	Sort       string `json:"sort" validate:"omitempty,oneof=id name category user"`
	Order      string `json:"order" validate:"omitempty,oneof=asc desc"`
}

// ProductListResponse is the JSON body of the product listing
type ProductListResponse struct {
	Total    int                      `json:"total"`
	Products []domain.EnrichedProduct `json:"products"`
}

// PageRenderer renders a catalog view as HTML
type PageRenderer interface {
	Render(w io.Writer, c *catalog.Catalog, v *catalog.View) error
}

// CatalogHandler handles HTTP requests for the catalog page and API
type CatalogHandler struct {
	catalogService service.CatalogService
	renderer       PageRenderer
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, renderer PageRenderer, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		renderer:       renderer,
		logger:         logger,
	}
}

// RegisterRoutes registers the page and the read-only API
func (h *CatalogHandler) RegisterRoutes(r chi.Router, apiMiddleware ...func(http.Handler) http.Handler) {
	r.Get("/", h.Page)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware...)
		r.Get("/products", h.ListProducts)
		r.Get("/users", h.ListUsers)
		r.Get("/categories", h.ListCategories)
	})
}

// Page renders the catalog page for the state in the query string
func (h *CatalogHandler) Page(w http.ResponseWriter, r *http.Request) {
	st, ok := h.decodeState(w, r)
	if !ok {
		return
	}

	view := h.catalogService.Browse(st)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, h.catalogService.Catalog(), view); err != nil {
		h.logger.Error("Failed to render catalog page", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
}

// ListProducts returns the visible products for the state in the query string
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	st, ok := h.decodeState(w, r)
	if !ok {
		return
	}

	rows := h.catalogService.Browse(st).Rows()

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Total:    len(rows),
		Products: rows,
	})
}

// ListUsers returns every category owner
func (h *CatalogHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalogService.Users())
}

// ListCategories returns every category
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalogService.Categories())
}

// decodeState parses and validates the query string. On failure it writes the error response.
func (h *CatalogHandler) decodeState(w http.ResponseWriter, r *http.Request) (catalog.State, bool) {
	req, errs := parseCatalogRequest(r.URL.Query())
	if len(errs) == 0 {
		if err := middleware.ValidateRequest(&req); err != nil {
			errs = middleware.FormatValidationErrors(err)
		}
	}

	if len(errs) > 0 {
		h.logger.Debug("Catalog request validation failed", zap.Any("errors", errs))
		middleware.RespondWithValidationErrors(w, errs)
		return catalog.State{}, false
	}

	return req.State(), true
}

func parseCatalogRequest(values url.Values) (CatalogRequest, []middleware.ValidationError) {
	var (
		req  CatalogRequest
		errs []middleware.ValidationError
	)

	if s := values.Get(catalog.ParamUser); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, middleware.ValidationError{Field: catalog.ParamUser, Message: "Value must be an integer"})
		}
		req.User = id
	}

	for _, s := range values[catalog.ParamCategory] {
		id, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, middleware.ValidationError{Field: catalog.ParamCategory, Message: "Value must be an integer"})
			continue
		}
		req.Categories = append(req.Categories, id)
	}

	req.Query = truncate(values.Get(catalog.ParamQuery), MaxQueryLength)
	req.Sort = values.Get(catalog.ParamSort)
	req.Order = values.Get(catalog.ParamOrder)

	return req, errs
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// State converts a validated request into view state. A sort field without an order sorts ascending.
func (req CatalogRequest) State() catalog.State {
	st := catalog.State{
		OwnerID:    req.User,
		Query:      req.Query,
		Categories: catalog.NewCategorySet(req.Categories...),
	}

	// validation has already restricted sort and order to known values
	field, _ := catalog.ParseSortField(req.Sort)
	direction, _ := catalog.ParseSortDirection(req.Order)
	if field != catalog.SortNone {
		if direction == catalog.DirectionNone {
			direction = catalog.Ascending
		}
		st.SortField = field
		st.SortDirection = direction
	}

	return st
}
