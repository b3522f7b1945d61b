package model

// DatasetKind logical dataset inside a month folder
type DatasetKind string

const (
	DatasetKPI           DatasetKind = "kpi"
	DatasetItems         DatasetKind = "items"
	DatasetABV           DatasetKind = "abv"
	DatasetOrders        DatasetKind = "orders"
	DatasetTurnover      DatasetKind = "turnover"
	DatasetPurchasingGap DatasetKind = "purchasing_gap"
	DatasetPaymentMethod DatasetKind = "payment_method"
)

// DatasetKinds returns every dataset kind a month folder may carry.
func DatasetKinds() []DatasetKind {
	return []DatasetKind{
		DatasetKPI,
		DatasetItems,
		DatasetABV,
		DatasetOrders,
		DatasetTurnover,
		DatasetPurchasingGap,
		DatasetPaymentMethod,
	}
}
