package enums

// ItemType discriminates cart line items and drives merge behavior on add.
type ItemType string

const (
	ItemTypeSwatch   ItemType = "swatch"
	ItemTypeFabric   ItemType = "fabric"
	ItemTypeShipping ItemType = "shipping"
)

// Valid reports whether the value is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeSwatch, ItemTypeFabric, ItemTypeShipping:
		return true
	}
	return false
}
