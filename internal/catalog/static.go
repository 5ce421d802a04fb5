package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
	"github.com/google/uuid"
)

// StaticSource serves the bundled demo dataset when the database tier is
// unavailable. It applies the same predicate, sort and slicing semantics as
// the repository so callers cannot tell the tiers apart.
type StaticSource struct {
	fabrics []models.Fabric
}

// NewStaticSource wraps a dataset; passing nil uses the bundled one.
func NewStaticSource(fabrics []models.Fabric) *StaticSource {
	if fabrics == nil {
		fabrics = defaultFabrics()
	}
	return &StaticSource{fabrics: fabrics}
}

// List filters, sorts and slices the in-memory dataset.
func (s *StaticSource) List(ctx context.Context, params ListParams) (*ListResult, error) {
	params = params.Normalize()

	matched := make([]models.Fabric, 0, len(s.fabrics))
	for _, fabric := range s.fabrics {
		if matches(fabric, params) {
			matched = append(matched, fabric)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return less(matched[i], matched[j], params.Sort, params.Direction)
	})

	start, end := pagination.Slice(len(matched), params.Pagination.Offset(), params.Pagination.Limit)
	page := make([]models.Fabric, end-start)
	copy(page, matched[start:end])
	return &ListResult{Fabrics: page, TotalCount: len(matched)}, nil
}

func strptr(s string) *string { return &s }

// defaultFabrics is the demo catalog shipped with the binary. Variant ids
// point at the commerce backend's seeded products so swatch and yardage adds
// keep working offline.
func defaultFabrics() []models.Fabric {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []models.Fabric{
		{
			ID:               uuid.MustParse("5b9f3d62-1c9e-4f7a-9a64-0c3a3f1f2a01"),
			SKU:              "VEL-EM-054",
			Name:             "Emerald Velvet",
			Description:      strptr("Plush cotton velvet with a deep emerald pile."),
			Category:         "Velvet",
			ColorFamily:      "Green",
			Pattern:          "Solid",
			Usage:            "Upholstery",
			PriceCents:       4500,
			SwatchPriceCents: 500,
			VariantID:        "variant_vel_em_yd",
			SwatchVariantID:  "variant_vel_em_sw",
			Thumbnail:        strptr("/images/fabrics/emerald-velvet.jpg"),
			InStock:          true,
			CreatedAt:        base,
			UpdatedAt:        base,
		},
		{
			ID:               uuid.MustParse("0f7a9a1e-6e2a-4d50-8a4a-7d1b9c2e3b02"),
			SKU:              "VEL-RB-054",
			Name:             "Royal Blue Velvet",
			Description:      strptr("Heavyweight velvet in a saturated royal blue."),
			Category:         "Velvet",
			ColorFamily:      "Blue",
			Pattern:          "Solid",
			Usage:            "Upholstery",
			PriceCents:       4800,
			SwatchPriceCents: 500,
			VariantID:        "variant_vel_rb_yd",
			SwatchVariantID:  "variant_vel_rb_sw",
			Thumbnail:        strptr("/images/fabrics/royal-blue-velvet.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 3),
			UpdatedAt:        base.AddDate(0, 0, 3),
		},
		{
			ID:               uuid.MustParse("9c0d2e41-3f6b-4a8c-b1d5-2e4f6a8c0d03"),
			SKU:              "LIN-NV-058",
			Name:             "Navy Linen",
			Description:      strptr("Washed European linen, softens with use."),
			Category:         "Linen",
			ColorFamily:      "Blue",
			Pattern:          "Solid",
			Usage:            "Drapery",
			PriceCents:       3200,
			SwatchPriceCents: 300,
			VariantID:        "variant_lin_nv_yd",
			SwatchVariantID:  "variant_lin_nv_sw",
			Thumbnail:        strptr("/images/fabrics/navy-linen.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 7),
			UpdatedAt:        base.AddDate(0, 0, 7),
		},
		{
			ID:               uuid.MustParse("2a4b6c8d-0e1f-4a2b-8c3d-4e5f6a7b8c04"),
			SKU:              "LIN-OT-058",
			Name:             "Oatmeal Linen",
			Description:      strptr("Natural flecked linen in a warm neutral."),
			Category:         "Linen",
			ColorFamily:      "Neutral",
			Pattern:          "Solid",
			Usage:            "Apparel",
			PriceCents:       2900,
			SwatchPriceCents: 300,
			VariantID:        "variant_lin_ot_yd",
			SwatchVariantID:  "variant_lin_ot_sw",
			Thumbnail:        strptr("/images/fabrics/oatmeal-linen.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 10),
			UpdatedAt:        base.AddDate(0, 0, 10),
		},
		{
			ID:               uuid.MustParse("7e9f1a3b-5c7d-4e8f-9a0b-1c2d3e4f5a05"),
			SKU:              "COT-GG-044",
			Name:             "Gingham Check Cotton",
			Description:      strptr("Classic yarn-dyed gingham in red and white."),
			Category:         "Cotton",
			ColorFamily:      "Red",
			Pattern:          "Check",
			Usage:            "Apparel",
			PriceCents:       1800,
			SwatchPriceCents: 200,
			VariantID:        "variant_cot_gg_yd",
			SwatchVariantID:  "variant_cot_gg_sw",
			Thumbnail:        strptr("/images/fabrics/gingham-cotton.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 14),
			UpdatedAt:        base.AddDate(0, 0, 14),
		},
		{
			ID:               uuid.MustParse("4d6e8f0a-2b3c-4d5e-8f9a-0b1c2d3e4f06"),
			SKU:              "SLK-CH-045",
			Name:             "Charmeuse Silk Ivory",
			Description:      strptr("Fluid silk charmeuse with a satin face."),
			Category:         "Silk",
			ColorFamily:      "Neutral",
			Pattern:          "Solid",
			Usage:            "Apparel",
			PriceCents:       6200,
			SwatchPriceCents: 600,
			VariantID:        "variant_slk_ch_yd",
			SwatchVariantID:  "variant_slk_ch_sw",
			Thumbnail:        strptr("/images/fabrics/charmeuse-ivory.jpg"),
			InStock:          false,
			CreatedAt:        base.AddDate(0, 0, 18),
			UpdatedAt:        base.AddDate(0, 0, 18),
		},
		{
			ID:               uuid.MustParse("6f8a0b2c-4d5e-4f6a-8b9c-0d1e2f3a4b07"),
			SKU:              "WOL-HB-060",
			Name:             "Herringbone Wool Grey",
			Description:      strptr("Midweight wool suiting in a tight herringbone."),
			Category:         "Wool",
			ColorFamily:      "Grey",
			Pattern:          "Herringbone",
			Usage:            "Apparel",
			PriceCents:       5400,
			SwatchPriceCents: 500,
			VariantID:        "variant_wol_hb_yd",
			SwatchVariantID:  "variant_wol_hb_sw",
			Thumbnail:        strptr("/images/fabrics/herringbone-grey.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 21),
			UpdatedAt:        base.AddDate(0, 0, 21),
		},
		{
			ID:               uuid.MustParse("8a0b2c4d-6e7f-4a8b-9c0d-1e2f3a4b5c08"),
			SKU:              "COT-FL-044",
			Name:             "Meadow Floral Cotton",
			Description:      strptr("Light quilting cotton with a scattered floral print."),
			Category:         "Cotton",
			ColorFamily:      "Green",
			Pattern:          "Floral",
			Usage:            "Quilting",
			PriceCents:       1600,
			SwatchPriceCents: 200,
			VariantID:        "variant_cot_fl_yd",
			SwatchVariantID:  "variant_cot_fl_sw",
			Thumbnail:        strptr("/images/fabrics/meadow-floral.jpg"),
			InStock:          true,
			CreatedAt:        base.AddDate(0, 0, 25),
			UpdatedAt:        base.AddDate(0, 0, 25),
		},
	}
}
