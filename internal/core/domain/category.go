package domain

// FallbackIcon is shown for a category name that matches nothing in the registry.
const FallbackIcon = "💸"

// DefaultCategory is preselected when a transaction is recorded without one.
const DefaultCategory = "Groceries"

// Category is a named bucket for transactions with a display glyph.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// BuiltinCategories returns the fixed categories shipped with the app, in display order.
func BuiltinCategories() []Category {
	return []Category{
		{Name: "Groceries", Icon: "🛒"},
		{Name: "Transport", Icon: "🚗"},
		{Name: "Food", Icon: "🍔"},
		{Name: "Shopping", Icon: "🛍️"},
		{Name: "Salary", Icon: "💰"},
		{Name: "Other", Icon: "📦"},
	}
}
