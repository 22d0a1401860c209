package store

// OrderRecord is one raw row of the order-history table, exactly as the
// robot wrote it. Fields stay stringy: the source is known to emit malformed
// numbers and timestamps, and typing them is the normalizer's job.
type OrderRecord struct {
	ProductID    string
	Description  string
	TargetQty    string
	StockQty     string
	ToOrderQty   string
	AvailableQty string
	OrderedQty   string
	Supplier     string
	Timestamp    string
}
