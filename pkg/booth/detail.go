package booth

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	entrySeparator = "\n"
	fieldSeparator = " / "
	pairSeparator  = " : "
)

// Keys recognized inside a product detail entry. The export uses the Japanese
// forms; the English ones appear in exports made with the English UI.
const (
	KeyProductID   = "商品ID"
	KeyProductIDEn = "product ID"
	KeyQuantity    = "数量"
	KeyQuantityEn  = "quantity"
)

// LineItem is one product entry of an order.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
}

// ParseDetail decodes the product detail cell of an order row. Entries are
// separated by newlines and fields by " / ". A field is either "key : value"
// or a bare value, which is taken as the product name.
//
// Blank entries are ignored. An entry without a product ID or a quantity is
// reported as a *DetailError.
func ParseDetail(cell string) ([]LineItem, error) {
	var items []LineItem
	for i, entry := range strings.Split(cell, entrySeparator) {
		entry = strings.TrimRight(entry, "\r")
		if strings.TrimSpace(entry) == "" {
			continue
		}
		item, err := parseEntry(entry)
		if err != nil {
			return nil, &DetailError{Entry: i, Reason: err.Error()}
		}
		items = append(items, item)
	}
	return items, nil
}

func parseEntry(entry string) (LineItem, error) {
	var (
		item        LineItem
		hasID       bool
		rawQuantity string
		hasQuantity bool
	)

	for _, field := range strings.Split(entry, fieldSeparator) {
		key, value, isPair := strings.Cut(field, pairSeparator)
		if !isPair {
			item.Name = field
			continue
		}
		switch key {
		case KeyProductID, KeyProductIDEn:
			item.ProductID = value
			hasID = true
		case KeyQuantity, KeyQuantityEn:
			rawQuantity = value
			hasQuantity = true
		}
	}

	if !hasID || item.ProductID == "" {
		return LineItem{}, fmt.Errorf("missing product ID in %q", entry)
	}
	if !hasQuantity {
		return LineItem{}, fmt.Errorf("missing quantity in %q", entry)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil {
		return LineItem{}, fmt.Errorf("quantity %q is not an integer", rawQuantity)
	}
	item.Quantity = qty

	if item.Name == "" {
		item.Name = item.ProductID
	}
	return item, nil
}

// FormatDetail encodes items in the layout ParseDetail reads.
func FormatDetail(items []LineItem) string {
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = strings.Join([]string{
			KeyProductID + pairSeparator + item.ProductID,
			KeyQuantity + pairSeparator + strconv.Itoa(item.Quantity),
			item.Name,
		}, fieldSeparator)
	}
	return strings.Join(entries, entrySeparator)
}
