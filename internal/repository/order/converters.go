package order

import "meddelivery/internal/entities"

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:                 o.ID,
		PatientID:          o.PatientID,
		PharmacyID:         o.PharmacyID,
		DeliveryAddress:    o.DeliveryAddress,
		PaymentMethod:      o.PaymentMethod,
		PaymentStatus:      entities.PaymentStatusType(o.PaymentStatus),
		FulfillmentStatus:  entities.FulfillmentStatusType(o.FulfillmentStatus),
		DeliveryStatus:     entities.OrderDeliveryStatusType(o.DeliveryStatus),
		ActualDeliveryTime: o.ActualDeliveryTime,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	for _, item := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ID:       item.ID,
			OrderID:  item.OrderID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return order
}
