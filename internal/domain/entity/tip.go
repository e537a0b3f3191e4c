package entity

// CareerTip is a single entry of the static career advice catalog.
// Tips are compiled into the binary; there is no persistence behind them.
type CareerTip struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Tip      string `json:"tip"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}
