// Package knowledge seeds and resolves the read-mostly reference data:
// the product catalog and the kitchen glossary (Lexikon).
package knowledge

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"

	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

// Importer bulk-loads the two bundled seed files on first run. A parse
// failure of either file is logged and skipped; the app starts without
// that half of the knowledge base rather than failing.
type Importer struct {
	products *repository.ProductRepository
	lexikon  *repository.LexikonRepository
	logger   *zap.Logger
}

func NewImporter(products *repository.ProductRepository, lexikon *repository.LexikonRepository, logger *zap.Logger) *Importer {
	return &Importer{products: products, lexikon: lexikon, logger: logger}
}

// productDTO mirrors the seed file schema (German keys). Metadata may
// appear nested or flat; nested wins when both carry a value.
type productDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"kategorie"`
	Typ          string        `json:"typ"`
	Beschreibung string        `json:"beschreibung"`
	Allergene    string        `json:"allergene"`
	Zusatzstoffe string        `json:"zusatzstoffe"`
	Kcal100g     string        `json:"kcal_100g"`
	Fett         string        `json:"fett"`
	Zucker       string        `json:"zucker"`
	Metadata     *metadataDTO  `json:"metadata"`
	Rezept       *recipeDTO    `json:"rezept"`
}

type metadataDTO struct {
	Allergene    string `json:"allergene"`
	Zusatzstoffe string `json:"zusatzstoffe"`
	Kcal100g     string `json:"kcal_100g"`
	Fett         string `json:"fett"`
	Zucker       string `json:"zucker"`
}

type recipeDTO struct {
	Portionen   string          `json:"portionen"`
	Algorithmus []string        `json:"algorithmus"`
	Komponenten []ingredientDTO `json:"komponenten"`
}

type ingredientDTO struct {
	Name    string `json:"name"`
	Menge   string `json:"menge"`
	Einheit string `json:"einheit"`
}

type lexikonDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Kategorie    string `json:"kategorie"`
	Beschreibung string `json:"beschreibung"`
	Details      string `json:"details"`
}

// ImportIfNeeded seeds the knowledge base when it is empty. Any
// existing products or glossary rows mean a previous import ran and
// the whole step is skipped.
func (im *Importer) ImportIfNeeded(productsPath, lexikonPath string) error {
	productCount, err := im.products.Count()
	if err != nil {
		return err
	}
	lexCount, err := im.lexikon.Count()
	if err != nil {
		return err
	}
	if productCount > 0 || lexCount > 0 {
		im.logger.Info("knowledge import skipped, data present",
			zap.Int64("products", productCount), zap.Int64("lexikon", lexCount))
		return nil
	}

	im.importProducts(productsPath)
	im.importLexikon(lexikonPath)
	return nil
}

func (im *Importer) importProducts(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		im.logger.Error("produkte seed file unreadable", zap.String("path", path), zap.Error(err))
		return
	}

	var decoded []productDTO
	if err := json.Unmarshal(data, &decoded); err != nil {
		im.logger.Error("produkte seed file parse failed", zap.String("path", path), zap.Error(err))
		return
	}

	rows := DedupeProducts(decoded)
	if err := im.products.BulkInsert(rows); err != nil {
		im.logger.Error("product bulk insert failed", zap.Error(err))
		return
	}
	im.logger.Info("products imported", zap.Int("count", len(rows)))
}

func (im *Importer) importLexikon(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		im.logger.Error("lexikon seed file unreadable", zap.String("path", path), zap.Error(err))
		return
	}

	var decoded []lexikonDTO
	if err := json.Unmarshal(data, &decoded); err != nil {
		im.logger.Error("lexikon seed file parse failed", zap.String("path", path), zap.Error(err))
		return
	}

	rows := DedupeLexikon(decoded)
	if err := im.lexikon.BulkInsert(rows); err != nil {
		im.logger.Error("lexikon bulk insert failed", zap.Error(err))
		return
	}
	im.logger.Info("lexikon imported", zap.Int("count", len(rows)))
}

// DedupeProducts maps DTOs to entities, keyed by id, last entry wins.
func DedupeProducts(decoded []productDTO) []models.Product {
	byID := make(map[string]int, len(decoded))
	rows := make([]models.Product, 0, len(decoded))
	for _, p := range decoded {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		row := p.toModel(id)
		if idx, ok := byID[id]; ok {
			rows[idx] = row
			continue
		}
		byID[id] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

// DedupeLexikon maps DTOs to entities, keyed by trimmed code, last
// entry wins. Entries without code or name are skipped before they
// ever reach the store, so the code is always a usable primary key.
func DedupeLexikon(decoded []lexikonDTO) []models.LexikonEntry {
	byKey := make(map[string]int, len(decoded))
	rows := make([]models.LexikonEntry, 0, len(decoded))
	for _, e := range decoded {
		code := strings.TrimSpace(e.Code)
		name := strings.TrimSpace(e.Name)
		if code == "" || name == "" {
			continue
		}
		category := strings.TrimSpace(e.Kategorie)
		if category == "" {
			category = "Fachbuch"
		}
		key := code
		row := models.LexikonEntry{
			Code:        code,
			Name:        name,
			Category:    category,
			Description: e.Beschreibung,
			Details:     e.Details,
		}
		if idx, ok := byKey[key]; ok {
			rows[idx] = row
			continue
		}
		byKey[key] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

func (p productDTO) toModel(id string) models.Product {
	row := models.Product{
		ID:           id,
		Name:         p.Name,
		Category:     p.Category,
		DataSource:   p.Typ,
		Description:  p.Beschreibung,
		Allergens:    merged(p.Metadata, func(m *metadataDTO) string { return m.Allergene }, p.Allergene),
		Additives:    merged(p.Metadata, func(m *metadataDTO) string { return m.Zusatzstoffe }, p.Zusatzstoffe),
		Kcal:         merged(p.Metadata, func(m *metadataDTO) string { return m.Kcal100g }, p.Kcal100g),
		Fat:          merged(p.Metadata, func(m *metadataDTO) string { return m.Fett }, p.Fett),
		Sugar:        merged(p.Metadata, func(m *metadataDTO) string { return m.Zucker }, p.Zucker),
		StockUnit:    "Stk.",
	}
	if p.Rezept != nil {
		row.Portions = p.Rezept.Portionen
		row.AlgorithmText = strings.Join(p.Rezept.Algorithmus, "\n")
		for _, ing := range p.Rezept.Komponenten {
			row.Ingredients = append(row.Ingredients, models.Ingredient{
				ProductID: id,
				Name:      ing.Name,
				Amount:    ing.Menge,
				Unit:      ing.Einheit,
			})
		}
	}
	return row
}

// merged prefers the nested metadata value over the flat one.
func merged(m *metadataDTO, pick func(*metadataDTO) string, flat string) string {
	if m != nil {
		if v := strings.TrimSpace(pick(m)); v != "" {
			return v
		}
	}
	return strings.TrimSpace(flat)
}
