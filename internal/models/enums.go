package models

// PayoutModel is the settlement schedule for a merchant or PSP payment
// method configuration.
type PayoutModel int

const (
	PayoutModelManual PayoutModel = iota + 1
	PayoutModelDaily
	PayoutModelWeekly
	PayoutModelMonthly
	PayoutModelAnnual
)

var payoutModelLabels = map[PayoutModel]string{
	PayoutModelManual:  "Manual",
	PayoutModelDaily:   "Daily",
	PayoutModelWeekly:  "Weekly",
	PayoutModelMonthly: "Monthly",
	PayoutModelAnnual:  "Annual",
}

func (p PayoutModel) Label() string {
	return payoutModelLabels[p]
}

func (p PayoutModel) Valid() bool {
	_, ok := payoutModelLabels[p]
	return ok
}

// RefundOption is the refund policy attached to a PSP + payment method
// combination.
type RefundOption int

const (
	RefundOptionNone RefundOption = iota + 1
	RefundOptionOneTime
	RefundOptionMultiple
)

var refundOptionLabels = map[RefundOption]string{
	RefundOptionNone:     "No Refund",
	RefundOptionOneTime:  "One Time",
	RefundOptionMultiple: "Multiple Refunds",
}

func (r RefundOption) Label() string {
	return refundOptionLabels[r]
}

func (r RefundOption) Valid() bool {
	_, ok := refundOptionLabels[r]
	return ok
}

// SubscriptionModel describes how recurring billing is supported by a PSP
// payment method configuration.
type SubscriptionModel int

const (
	SubscriptionModelNone SubscriptionModel = iota + 1
	SubscriptionModelFixed
	SubscriptionModelUsageBased
)

var subscriptionModelLabels = map[SubscriptionModel]string{
	SubscriptionModelNone:       "None",
	SubscriptionModelFixed:      "Fixed",
	SubscriptionModelUsageBased: "Usage Based",
}

func (s SubscriptionModel) Label() string {
	return subscriptionModelLabels[s]
}

func (s SubscriptionModel) Valid() bool {
	_, ok := subscriptionModelLabels[s]
	return ok
}

// FeesType distinguishes flat fees from percentage fees.
type FeesType int

const (
	FeesTypeFixed FeesType = iota + 1
	FeesTypePercentage
)

var feesTypeLabels = map[FeesType]string{
	FeesTypeFixed:      "Fixed",
	FeesTypePercentage: "Percentage",
}

func (f FeesType) Label() string {
	return feesTypeLabels[f]
}

func (f FeesType) Valid() bool {
	_, ok := feesTypeLabels[f]
	return ok
}

// OrderType is the supported order flavor in a merchant's settings.
type OrderType int

const (
	OrderTypeOneTime OrderType = iota + 1
	OrderTypeRecurring
	OrderTypeBoth
)

var orderTypeLabels = map[OrderType]string{
	OrderTypeOneTime:   "One Time",
	OrderTypeRecurring: "Recurring",
	OrderTypeBoth:      "Both",
}

func (o OrderType) Label() string {
	return orderTypeLabels[o]
}

func (o OrderType) Valid() bool {
	_, ok := orderTypeLabels[o]
	return ok
}

// MessageDirection marks a message type as inbound or outbound.
type MessageDirection int

const (
	MessageDirectionInbound MessageDirection = iota + 1
	MessageDirectionOutbound
)

var messageDirectionLabels = map[MessageDirection]string{
	MessageDirectionInbound:  "Inbound",
	MessageDirectionOutbound: "Outbound",
}

func (m MessageDirection) Label() string {
	return messageDirectionLabels[m]
}

func (m MessageDirection) Valid() bool {
	_, ok := messageDirectionLabels[m]
	return ok
}
