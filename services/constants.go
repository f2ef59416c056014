package services

// Boundary messages, kept stable because clients match on them.
const (
	MsgRestaurantAdded  = "restaurant added"
	MsgItemAdded        = "item added"
	MsgFetched          = "fetched"
	MsgRestaurantExists = "Restaurant already exists"
	MsgRestaurantAbsent = "Restaurant not found"
	MsgItemExists       = "Item already exists"
	MsgItemAbsent       = "Item not found"
)
