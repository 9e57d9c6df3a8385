package enum

// DeliveryType is the three-way filter restricting which sale items count
// toward report aggregation. The wire values match what the web client sends.
type DeliveryType string

const (
	DeliveryAll        DeliveryType = "todos"
	DeliveryDelivery   DeliveryType = "delivery"
	DeliveryOnPremises DeliveryType = "presencial"
)

// ParseDeliveryType maps a query-string value to a DeliveryType, defaulting
// to DeliveryAll for empty or unknown input.
func ParseDeliveryType(s string) DeliveryType {
	switch DeliveryType(s) {
	case DeliveryDelivery:
		return DeliveryDelivery
	case DeliveryOnPremises:
		return DeliveryOnPremises
	default:
		return DeliveryAll
	}
}

// Matches reports whether an item with the given delivery flag passes the
// filter.
func (d DeliveryType) Matches(isDelivery bool) bool {
	switch d {
	case DeliveryDelivery:
		return isDelivery
	case DeliveryOnPremises:
		return !isDelivery
	default:
		return true
	}
}
