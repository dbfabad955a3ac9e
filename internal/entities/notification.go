package entities

type NotificationKind string

const (
	NotifyOrderStatus    NotificationKind = "order-status"
	NotifyDeliveryUpdate NotificationKind = "delivery-update"
	NotifyApprovalStatus NotificationKind = "approval-status"
	NotifyLowStock       NotificationKind = "low-stock"
	NotifyExpiryAlert    NotificationKind = "expiry-alert"
)

func (k NotificationKind) String() string {
	return string(k)
}
