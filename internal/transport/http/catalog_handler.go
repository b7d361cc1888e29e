package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/compare_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
)

type listProductsResponse struct {
	Products  []productDTO `json:"products"`
	Sponsored []productDTO `json:"sponsored"`
	Trending  []productDTO `json:"trending"`
	Regular   []productDTO `json:"regular"`
	Total     int          `json:"total"`
}

// ListProducts handles GET /api/v1/catalog/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.deps.ListProducts.Execute(r.Context(), &list_products.Request{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Brand:      q.Get("brand"),
		PriceRange: q.Get("priceRange"),
		Sort:       q.Get("sort"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listProductsResponse{
		Products:  toProductDTOs(res.Products),
		Sponsored: toProductDTOs(res.Sponsored),
		Trending:  toProductDTOs(res.Trending),
		Regular:   toProductDTOs(res.Regular),
		Total:     len(res.Products),
	})
}

type productDetailResponse struct {
	Product productDTO `json:"product"`
	Brand   brandDTO   `json:"brand"`
}

// GetProduct handles GET /api/v1/catalog/products/{productID}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.GetProduct.Execute(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productDetailResponse{
		Product: toProductDTO(res.Product),
		Brand:   toBrandDTO(res.Brand),
	})
}

type filtersResponse struct {
	Categories  []optionDTO `json:"categories"`
	Brands      []brandDTO  `json:"brands"`
	PriceRanges []optionDTO `json:"priceRanges"`
	SortOptions []optionDTO `json:"sortOptions"`
}

// ListFilters handles GET /api/v1/catalog/filters.
func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.ListFilters.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	brands := make([]brandDTO, 0, len(res.Brands))
	for _, b := range res.Brands {
		brands = append(brands, toBrandDTO(b))
	}
	writeJSON(w, http.StatusOK, filtersResponse{
		Categories:  toOptionDTOs(res.Categories),
		Brands:      brands,
		PriceRanges: toOptionDTOs(res.PriceRanges),
		SortOptions: toOptionDTOs(res.SortOptions),
	})
}

type compareRowDTO struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type compareResponse struct {
	Products []productDTO    `json:"products"`
	SpecKeys []string        `json:"specKeys"`
	Rows     []compareRowDTO `json:"rows"`
}

// CompareProducts handles GET /api/v1/devices/{deviceID}/compare. The panel
// filters are brands (comma separated), category and priceRange.
func (h *Handler) CompareProducts(w http.ResponseWriter, r *http.Request) {
	store := h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID"))
	q := r.URL.Query()

	var brands []string
	if raw := q.Get("brands"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brands = append(brands, b)
			}
		}
	}

	res, err := h.deps.CompareProducts.Execute(r.Context(), &compare_products.Request{
		Products:   store.Snapshot().Compare,
		Brands:     brands,
		Category:   q.Get("category"),
		PriceRange: q.Get("priceRange"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := compareResponse{
		Products: toProductDTOs(res.Products),
		SpecKeys: res.SpecKeys,
		Rows:     make([]compareRowDTO, 0, len(res.Rows)),
	}
	if resp.SpecKeys == nil {
		resp.SpecKeys = []string{}
	}
	for _, row := range res.Rows {
		resp.Rows = append(resp.Rows, compareRowDTO{Key: row.Key, Values: row.Values})
	}
	writeJSON(w, http.StatusOK, resp)
}
