package cart

import (
	"testing"

	"github.com/rainielmontanez/FSSPOS/models"
)

var (
	cola  = models.Product{ID: 1, Name: "Cola", Category: "drinks", Price: 1.50, Stock: 10, Barcode: "111"}
	chips = models.Product{ID: 2, Name: "Chips", Category: "snacks", Price: 2.25, Stock: 4}
)

func TestAddItem_MergesQuantityPerProduct(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	c.AddItem(cola)
	v := c.View()
	if len(v.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(v.Lines))
	}
	if v.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", v.Lines[0].Quantity)
	}
	if v.Total != 3.00 {
		t.Fatalf("expected total 3.00, got %v", v.Total)
	}
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	var c Cart
	c.AddItem(chips)
	c.AddItem(cola)
	c.AddItem(chips)
	v := c.View()
	if len(v.Lines) != 2 || v.Lines[0].Product.ID != 2 || v.Lines[1].Product.ID != 1 {
		t.Fatalf("insertion order broken: %+v", v.Lines)
	}
}

func TestUpdateQuantity_SetsExactly(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	c.UpdateQuantity(1, 5)
	v := c.View()
	if v.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", v.Lines[0].Quantity)
	}
	if v.Total != 7.50 {
		t.Fatalf("expected total 7.50, got %v", v.Total)
	}
}

func TestUpdateQuantity_ZeroOrBelowRemovesLine(t *testing.T) {
	for _, q := range []int{0, -3} {
		var c Cart
		c.AddItem(cola)
		c.UpdateQuantity(1, q)
		if v := c.View(); len(v.Lines) != 0 || v.Total != 0 {
			t.Fatalf("quantity %d should remove the line, got %+v", q, v)
		}
	}
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	c.UpdateQuantity(99, 7)
	v := c.View()
	if len(v.Lines) != 1 || v.Lines[0].Quantity != 1 {
		t.Fatalf("unknown id must not change the cart: %+v", v)
	}
}

func TestRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	c.AddItem(chips)
	c.RemoveItem(1)
	v := c.View()
	if len(v.Lines) != 1 || v.Lines[0].Product.ID != 2 {
		t.Fatalf("expected only chips left, got %+v", v.Lines)
	}
	// removing a missing line is a no-op, not an error
	c.RemoveItem(99)
	if v := c.View(); len(v.Lines) != 1 {
		t.Fatalf("remove of unknown id changed the cart: %+v", v)
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	c.AddItem(chips)
	c.Clear()
	if v := c.View(); len(v.Lines) != 0 || v.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", v)
	}
}

func TestTotal_NeverStale(t *testing.T) {
	var c Cart
	c.AddItem(cola)
	if got := c.Total(); got != 1.50 {
		t.Fatalf("total after add: %v", got)
	}
	c.UpdateQuantity(1, 4)
	if got := c.Total(); got != 6.00 {
		t.Fatalf("total after update: %v", got)
	}
	c.AddItem(chips)
	if got := c.Total(); got != 8.25 {
		t.Fatalf("total after second product: %v", got)
	}
	c.RemoveItem(1)
	if got := c.Total(); got != 2.25 {
		t.Fatalf("total after remove: %v", got)
	}
}

func TestStore_CartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.AddItem(10, cola)
	s.AddItem(20, chips)
	if v := s.View(10); len(v.Lines) != 1 || v.Lines[0].Product.ID != 1 {
		t.Fatalf("user 10 cart wrong: %+v", v)
	}
	if v := s.View(20); len(v.Lines) != 1 || v.Lines[0].Product.ID != 2 {
		t.Fatalf("user 20 cart wrong: %+v", v)
	}
	s.Clear(10)
	if v := s.View(20); len(v.Lines) != 1 {
		t.Fatalf("clearing user 10 touched user 20: %+v", v)
	}
}
