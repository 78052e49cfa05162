package analyticssvc

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	analyticsdto "design_commerce/internal/api/analytics/dto"
	ordermodels "design_commerce/internal/api/order/models"
)

var (
	usZipPattern     = regexp.MustCompile(`\b\d{5}(-\d{4})?\b`)
	caPostalPattern  = regexp.MustCompile(`(?i)\b[A-Z]\d[A-Z][ -]?\d[A-Z]\d\b`)
	pureDigitPattern = regexp.MustCompile(`^\d+$`)
)

// ProductPerformances gộp doanh thu và số đơn vị bán theo sản phẩm từ đơn
// đã thanh toán. Mỗi dòng hàng là một đơn vị, tên lấy từ snapshot trong đơn.
// Kết quả sort giảm dần theo doanh thu.
func ProductPerformances(orders []ordermodels.Order) []analyticsdto.ProductPerformance {
	index := make(map[string]int)
	result := make([]analyticsdto.ProductPerformance, 0)
	for i := range orders {
		for _, item := range orders[i].OrderItems {
			key := item.ProductID.Hex()
			pos, seen := index[key]
			if !seen {
				pos = len(result)
				index[key] = pos
				result = append(result, analyticsdto.ProductPerformance{Name: item.Name})
			}
			result[pos].Revenue += item.UnitPrice
			result[pos].UnitsSold++
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Revenue > result[b].Revenue
	})
	return result
}

// GuessCountryFromAddress đoán quốc gia từ địa chỉ dạng text tự do:
// lấy phần cuối sau dấu phẩy/xuống dòng, so khớp zip Mỹ, postal code Canada
// và vài tên nước phổ biến, còn lại viết hoa từng từ. Không đoán được
// trả về "Unknown".
func GuessCountryFromAddress(address string) string {
	parts := strings.FieldsFunc(strings.ToLower(address), func(r rune) bool {
		return r == ',' || r == '\n'
	})
	lastPart := ""
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			lastPart = trimmed
		}
	}
	if lastPart == "" {
		return "Unknown"
	}

	switch {
	case lastPart == "usa" || lastPart == "united states" || usZipPattern.MatchString(lastPart):
		return "USA"
	case lastPart == "canada" || caPostalPattern.MatchString(lastPart):
		return "Canada"
	case lastPart == "uk" || lastPart == "united kingdom":
		return "United Kingdom"
	case lastPart == "australia":
		return "Australia"
	case lastPart == "germany":
		return "Germany"
	case lastPart == "france":
		return "France"
	}

	// Số trần trụi nhiều khả năng là postcode thiếu tên nước
	if pureDigitPattern.MatchString(lastPart) {
		return "Unknown"
	}
	// Quá ngắn thường là mã bang/thành phố, không phải tên nước
	if len(lastPart) <= 3 {
		return "Unknown"
	}

	words := strings.Fields(lastPart)
	for i, word := range words {
		// Viết hoa theo rune đầu, không cắt byte (địa chỉ có thể chứa UTF-8)
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// SalesByCountry gộp doanh thu và số đơn theo quốc gia đoán từ địa chỉ.
// Đơn chưa có địa chỉ bị bỏ qua. Kết quả sort giảm dần theo doanh thu.
func SalesByCountry(orders []ordermodels.Order) []analyticsdto.CountrySales {
	index := make(map[string]int)
	result := make([]analyticsdto.CountrySales, 0)
	for i := range orders {
		order := &orders[i]
		if order.Address == "" {
			continue
		}
		country := GuessCountryFromAddress(order.Address)
		pos, seen := index[country]
		if !seen {
			pos = len(result)
			index[country] = pos
			result = append(result, analyticsdto.CountrySales{Country: country})
		}
		result[pos].Revenue += orderValue(order)
		result[pos].OrderCount++
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Revenue > result[b].Revenue
	})
	return result
}
