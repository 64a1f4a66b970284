package logic

// CartItem is one line of the cart. Name is the line's unique key.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// LineTotal is Price × Quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartState is the ordered cart as persisted under the cart key, in first-add order.
type CartState struct {
	Items []CartItem
}

func EmptyState() *CartState {
	return &CartState{Items: []CartItem{}}
}

// Count is the sum of all quantities.
func (s *CartState) Count() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// Subtotal is the sum of line totals, unrounded.
func (s *CartState) Subtotal() float64 {
	var subtotal float64
	for _, item := range s.Items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// IndexOf returns the position of the item called name, or -1.
func (s *CartState) IndexOf(name string) int {
	for i, item := range s.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares nothing with s.
func (s *CartState) Clone() *CartState {
	items := make([]CartItem, len(s.Items))
	copy(items, s.Items)
	return &CartState{Items: items}
}

// normalize drops entries that could only come from a damaged store: blank
// names, non-positive quantities, and repeats of a name already seen (their
// quantity folds into the first occurrence).
func normalize(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, item := range items {
		if item.Name == "" || item.Quantity <= 0 {
			continue
		}
		if idx, ok := seen[item.Name]; ok {
			out[idx].Quantity += item.Quantity
			continue
		}
		seen[item.Name] = len(out)
		out = append(out, item)
	}
	return out
}
