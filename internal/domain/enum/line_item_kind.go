package enum

// LineItemKind tells how a line item is billed
type LineItemKind string

const (
	// KindService is billed by hours worked
	KindService LineItemKind = "service"
	// KindItem is billed by unit quantity
	KindItem LineItemKind = "item"
)

// IsValid reports whether the kind is one of the known billing modes
func (k LineItemKind) IsValid() bool {
	return k == KindService || k == KindItem
}
