package report

import (
	"strconv"

	"github.com/hinananoha/booth-order-list/pkg/booth"
)

// BaseColumns is the number of order columns before the product columns.
const BaseColumns = 3

var baseHeader = [BaseColumns]string{"注文番号", "注文日時", "支払い状況"}

type Product struct {
	ID   string
	Name string
}

// Catalog is the set of products seen so far, in first-seen order. The first
// name seen for an ID is kept.
type Catalog struct {
	products []Product
	index    map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Register adds the product if its ID is new and reports whether it did.
func (c *Catalog) Register(id, name string) bool {
	if _, ok := c.index[id]; ok {
		return false
	}
	c.index[id] = len(c.products)
	c.products = append(c.products, Product{ID: id, Name: name})
	return true
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the catalog in column order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

type pivotRow struct {
	order      *booth.Order
	quantities map[string]int
}

// Pivot accumulates orders in input order and lays them out as one column per
// product.
type Pivot struct {
	catalog *Catalog
	rows    []pivotRow
}

func NewPivot() *Pivot {
	return &Pivot{catalog: NewCatalog()}
}

// Add folds an order into the pivot. Quantities for a product listed more than
// once in the same order are summed.
func (p *Pivot) Add(order *booth.Order) {
	quantities := make(map[string]int, len(order.Items))
	for _, item := range order.Items {
		p.catalog.Register(item.ProductID, item.Name)
		quantities[item.ProductID] += item.Quantity
	}
	p.rows = append(p.rows, pivotRow{order: order, quantities: quantities})
}

func (p *Pivot) Catalog() *Catalog {
	return p.catalog
}

// Orders reports how many orders were added.
func (p *Pivot) Orders() int {
	return len(p.rows)
}

// Table is the pivoted output: a header and one row per order.
type Table struct {
	Header   []string
	Rows     [][]string
	Products []Product
}

// Table builds the output table. Products an order did not buy are written as
// 0.
func (p *Pivot) Table() *Table {
	products := p.catalog.Products()

	header := make([]string, 0, BaseColumns+len(products))
	header = append(header, baseHeader[:]...)
	for _, prod := range products {
		header = append(header, prod.Name)
	}

	rows := make([][]string, 0, len(p.rows))
	for _, r := range p.rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, r.order.ID, r.order.PlacedRaw, r.order.StatusText)
		for _, prod := range products {
			rec = append(rec, strconv.Itoa(r.quantities[prod.ID]))
		}
		rows = append(rows, rec)
	}

	return &Table{Header: header, Rows: rows, Products: products}
}
