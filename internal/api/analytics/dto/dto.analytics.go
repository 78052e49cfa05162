// Package analyticsdto - output cho domain analytics.
package analyticsdto

// SegmentCount số khách hàng trong một segment RFM.
type SegmentCount struct {
	Segment       string `json:"segment"`
	CustomerCount int    `json:"customerCount"`
}

// ProductPerformance doanh thu và số đơn vị bán của một sản phẩm.
type ProductPerformance struct {
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"unitsSold"`
}

// CountrySales doanh thu gộp theo quốc gia đoán từ địa chỉ giao hàng.
type CountrySales struct {
	Country    string  `json:"country"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}
