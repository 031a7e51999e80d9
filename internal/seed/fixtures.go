// Package seed loads catalogue fixtures for the seed command, either from the
// built-in set, a local JSON file, or an S3 object.
package seed

// Fixture is a single seed product as found in a fixture file.
type Fixture struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// DefaultFixtures returns the built-in beverage catalogue used when no
// fixture source is configured.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{SKU: "BEB-0001", Name: "Coca-Cola 350ml", Price: 5.5, Stock: 25, Category: "refrigerante"},
		{SKU: "BEB-0002", Name: "Guaraná Antarctica 350ml", Price: 4.5, Stock: 30, Category: "refrigerante"},
		{SKU: "BEB-0003", Name: "Água Mineral 500ml", Price: 3.0, Stock: 50, Category: "agua"},
		{SKU: "BEB-0004", Name: "Suco de Laranja 300ml", Price: 6.0, Stock: 0, Category: "suco"},
		{SKU: "BEB-0005", Name: "Cerveja Heineken 350ml", Price: 8.0, Stock: 40, Category: "cerveja"},
		{SKU: "BEB-0006", Name: "Energético Red Bull 250ml", Price: 12.0, Stock: 15, Category: "energetico"},
		{SKU: "BEB-0007", Name: "Pepsi 350ml", Price: 5.0, Stock: 20, Category: "refrigerante"},
		{SKU: "BEB-0008", Name: "Água de Coco 330ml", Price: 4.0, Stock: 35, Category: "agua"},
		{SKU: "BEB-0009", Name: "Suco de Uva Integral 1L", Price: 12.0, Stock: 10, Category: "suco"},
		{SKU: "BEB-0010", Name: "Cerveja Budweiser 350ml", Price: 7.5, Stock: 30, Category: "cerveja"},
	}
}
