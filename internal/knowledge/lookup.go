package knowledge

import (
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

// Lookup resolves knowledge pins to their records. Read-only.
type Lookup struct {
	products *repository.ProductRepository
	lexikon  *repository.LexikonRepository
}

func NewLookup(products *repository.ProductRepository, lexikon *repository.LexikonRepository) *Lookup {
	return &Lookup{products: products, lexikon: lexikon}
}

// PinResolution is the result of resolving a pin list. Missing refs
// are data for an inline notice, not errors.
type PinResolution struct {
	Products            []models.Product
	MissingProductIDs   []string
	Lexikon             []models.LexikonEntry
	MissingLexikonCodes []string
}

// ResolvePins looks up pinned product IDs and lexikon codes, keeping
// the pin order for display. Duplicate pins resolve to the same record
// twice.
func (l *Lookup) ResolvePins(productIDs, lexikonCodes []string) (PinResolution, error) {
	var res PinResolution

	products, err := l.products.FindByIDs(productIDs)
	if err != nil {
		return res, err
	}
	productsByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	for _, id := range productIDs {
		if p, ok := productsByID[id]; ok {
			res.Products = append(res.Products, p)
		} else {
			res.MissingProductIDs = append(res.MissingProductIDs, id)
		}
	}

	entries, err := l.lexikon.FindByCodes(lexikonCodes)
	if err != nil {
		return res, err
	}
	entriesByCode := make(map[string]models.LexikonEntry, len(entries))
	for _, e := range entries {
		entriesByCode[e.Code] = e
	}
	for _, code := range lexikonCodes {
		if e, ok := entriesByCode[code]; ok {
			res.Lexikon = append(res.Lexikon, e)
		} else {
			res.MissingLexikonCodes = append(res.MissingLexikonCodes, code)
		}
	}

	return res, nil
}
