package entity

import "github.com/google/uuid"

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 999

// CartLine is one (product, size) entry of a cart.
type CartLine struct {
	ProductID uuid.UUID
	Size      float64
	Quantity  int
}

// Cart is an ordered list of lines. Mutators never modify the receiver; they return a new Cart.
type Cart []CartLine

func (c Cart) indexOf(productID uuid.UUID, size float64) int {
	for i, line := range c {
		if line.ProductID == productID && line.Size == size {
			return i
		}
	}

	return -1
}

// Find returns the line for (productID, size), if any.
func (c Cart) Find(productID uuid.UUID, size float64) (CartLine, bool) {
	if i := c.indexOf(productID, size); i >= 0 {
		return c[i], true
	}

	return CartLine{}, false
}

// Add increases the quantity of an existing (productID, size) line or appends a new one.
// Quantities saturate at MaxLineQuantity.
func (c Cart) Add(productID uuid.UUID, size float64, quantity int) Cart {
	next := c.clone()
	if i := next.indexOf(productID, size); i >= 0 {
		if quantity >= MaxLineQuantity-next[i].Quantity {
			next[i].Quantity = MaxLineQuantity
		} else {
			next[i].Quantity += quantity
		}

		return next
	}

	return append(next, CartLine{ProductID: productID, Size: size, Quantity: min(quantity, MaxLineQuantity)})
}

// SetQuantity replaces the quantity of a matching line. A quantity of zero or less removes it.
// Without a matching line the cart is returned unchanged.
func (c Cart) SetQuantity(productID uuid.UUID, size float64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID, size)
	}

	next := c.clone()
	if i := next.indexOf(productID, size); i >= 0 {
		next[i].Quantity = min(quantity, MaxLineQuantity)
	}

	return next
}

// Remove drops the matching line. Removing a missing line is a no-op.
func (c Cart) Remove(productID uuid.UUID, size float64) Cart {
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID == productID && line.Size == size {
			continue
		}
		next = append(next, line)
	}

	return next
}

// ProductIDs returns the distinct product ids referenced by the cart, in line order.
func (c Cart) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(c))
	ids := make([]uuid.UUID, 0, len(c))
	for _, line := range c {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)

	return next
}
