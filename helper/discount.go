package helper

import "github.com/eagledigitalhouse/eventpro-sub001/model"

// OrderTotals valores calculados no fechamento do pedido
type OrderTotals struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// ComputeTotals calcula subtotal, desconto e total de um carrinho. O cupom é
// opcional; quando presente, já deve ter passado por Validate.
func ComputeTotals(items []model.CartItem, coupon *model.Coupon) OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	var discount float64
	if coupon != nil {
		discount = coupon.Discount(subtotal)
	}

	return OrderTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}
