package models

// Product maps to the `products` table. Reference data, bulk-loaded
// once from the bundled produkte.json seed file.
type Product struct {
	ID            string       `gorm:"column:id;primaryKey;size:100" json:"id"`
	Name          string       `gorm:"column:name;size:300" json:"name"`
	Category      string       `gorm:"column:category;size:200" json:"category"`
	DataSource    string       `gorm:"column:data_source;size:100" json:"data_source"`
	Description   string       `gorm:"column:description;type:text" json:"description"`
	Allergens     string       `gorm:"column:allergens;size:500" json:"allergens"`
	Additives     string       `gorm:"column:additives;size:500" json:"additives"`
	Kcal          string       `gorm:"column:kcal;size:50" json:"kcal"`
	Fat           string       `gorm:"column:fat;size:50" json:"fat"`
	Sugar         string       `gorm:"column:sugar;size:50" json:"sugar"`
	StockQuantity int          `gorm:"column:stock_quantity;default:0" json:"stock_quantity"`
	StockUnit     string       `gorm:"column:stock_unit;size:50" json:"stock_unit"`
	Portions      string       `gorm:"column:portions;size:100" json:"portions"`
	AlgorithmText string       `gorm:"column:algorithm_text;type:text" json:"algorithm_text"`
	Ingredients   []Ingredient `gorm:"foreignKey:ProductID" json:"ingredients,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// Ingredient is one recipe component of a product.
type Ingredient struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID string `gorm:"column:product_id;size:100;index:idx_ingredients_product" json:"product_id"`
	Name      string `gorm:"column:name;size:300" json:"name"`
	Amount    string `gorm:"column:amount;size:100" json:"amount"`
	Unit      string `gorm:"column:unit;size:50" json:"unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// LexikonEntry maps to the `lexikon_entries` table (glossary).
type LexikonEntry struct {
	Code        string `gorm:"column:code;primaryKey;size:100" json:"code"`
	Name        string `gorm:"column:name;size:300" json:"name"`
	Category    string `gorm:"column:category;size:200" json:"category"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Details     string `gorm:"column:details;type:text" json:"details"`
}

func (LexikonEntry) TableName() string {
	return "lexikon_entries"
}
