package analyticssvc

import (
	"testing"
	"time"

	ordermodels "design_commerce/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGuessCountryFromAddress(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"123 Main St, Springfield, IL 62704", "USA"},
		{"500 5th Ave, New York, USA", "USA"},
		{"88 Queen St, Toronto, M5V 2T6", "Canada"},
		{"12 Maple Rd, Vancouver, canada", "Canada"},
		{"10 Downing St, London, UK", "United Kingdom"},
		{"1 High St, Manchester, United Kingdom", "United Kingdom"},
		{"5 George St, Sydney, Australia", "Australia"},
		{"Hauptstr. 1, Berlin, Germany", "Germany"},
		{"12 Rue de Rivoli, Paris, France", "France"},
		{"123 Le Loi, Ho Chi Minh City, viet nam", "Viet Nam"},
		{"1 Plaza, Mexico City, mexico", "Mexico"},
		{"Ringstraße 1, Wien, österreich", "Österreich"}, // viết hoa theo rune, không cắt byte UTF-8
		{"42 Somewhere, 700000", "Unknown"}, // postcode trần, không có tên nước
		{"9 Short St, NY", "Unknown"},       // quá ngắn, nhiều khả năng là mã bang
		{"", "Unknown"},
		{" , , ", "Unknown"},
	}
	for _, c := range cases {
		if got := GuessCountryFromAddress(c.address); got != c.want {
			t.Errorf("GuessCountryFromAddress(%q) = %q, muốn %q", c.address, got, c.want)
		}
	}
}

func TestProductPerformances_GroupsAndSortsByRevenue(t *testing.T) {
	shirtID := primitive.NewObjectID()
	mugID := primitive.NewObjectID()
	orders := []ordermodels.Order{
		{OrderItems: []ordermodels.OrderItem{
			{ProductID: shirtID, Name: "Áo thun", UnitPrice: 10},
			{ProductID: mugID, Name: "Cốc sứ", UnitPrice: 50},
		}},
		{OrderItems: []ordermodels.OrderItem{
			{ProductID: shirtID, Name: "Áo thun", UnitPrice: 10},
		}},
	}

	result := ProductPerformances(orders)
	if len(result) != 2 {
		t.Fatalf("số sản phẩm = %d, muốn 2", len(result))
	}
	if result[0].Name != "Cốc sứ" || result[0].Revenue != 50 || result[0].UnitsSold != 1 {
		t.Errorf("result[0] = %+v, muốn Cốc sứ doanh thu 50, 1 đơn vị", result[0])
	}
	if result[1].Name != "Áo thun" || result[1].Revenue != 20 || result[1].UnitsSold != 2 {
		t.Errorf("result[1] = %+v, muốn Áo thun doanh thu 20, 2 đơn vị", result[1])
	}
}

func TestSalesByCountry_SkipsOrdersWithoutAddress(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	withAddress := makePaidOrder("a@example.com", 1, 100, now)
	withAddress.Address = "123 Main St, Springfield, IL 62704"
	noAddress := makePaidOrder("b@example.com", 1, 999, now)

	result := SalesByCountry([]ordermodels.Order{withAddress, noAddress})
	if len(result) != 1 {
		t.Fatalf("số quốc gia = %d, muốn 1 (đơn không địa chỉ phải bị bỏ qua)", len(result))
	}
	if result[0].Country != "USA" || result[0].Revenue != 100 || result[0].OrderCount != 1 {
		t.Errorf("result[0] = %+v, muốn USA doanh thu 100, 1 đơn", result[0])
	}
}

func TestSalesByCountry_RollsUpUnguessableAddresses(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	us := makePaidOrder("a@example.com", 1, 100, now)
	us.Address = "1 First Ave, Boston, USA"
	bare := makePaidOrder("b@example.com", 1, 40, now)
	bare.Address = "42 Somewhere, 700000"

	result := SalesByCountry([]ordermodels.Order{us, bare})
	if len(result) != 2 {
		t.Fatalf("số quốc gia = %d, muốn 2 (địa chỉ không đoán được vẫn gộp vào Unknown)", len(result))
	}
	if result[1].Country != "Unknown" || result[1].Revenue != 40 || result[1].OrderCount != 1 {
		t.Errorf("result[1] = %+v, muốn Unknown doanh thu 40, 1 đơn", result[1])
	}
}

func TestSalesByCountry_GroupsByGuessedCountry(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	us1 := makePaidOrder("a@example.com", 1, 100, now)
	us1.Address = "1 First Ave, Boston, USA"
	us2 := makePaidOrder("b@example.com", 1, 200, now)
	us2.Address = "2 Second St, Chicago, IL 60601"
	fr := makePaidOrder("c@example.com", 1, 50, now)
	fr.Address = "3 Rue Cler, Paris, France"

	result := SalesByCountry([]ordermodels.Order{us1, us2, fr})
	if len(result) != 2 {
		t.Fatalf("số quốc gia = %d, muốn 2", len(result))
	}
	if result[0].Country != "USA" || result[0].Revenue != 300 || result[0].OrderCount != 2 {
		t.Errorf("result[0] = %+v, muốn USA doanh thu 300, 2 đơn", result[0])
	}
	if result[1].Country != "France" || result[1].Revenue != 50 {
		t.Errorf("result[1] = %+v, muốn France doanh thu 50", result[1])
	}
}
