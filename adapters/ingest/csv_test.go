package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

func TestReadItems(t *testing.T) {
	input := `item_id,item_name,category,quantity_sold,net_sales,unit_food_cost,cost_source,is_anchor
burger,Classic Burger,mains,50,500.00,3.00,MANUAL,false
fries,Fries,sides,80,320.00,,,true
soup,Soup of the Day,starters,12,96.00,1.25,,
`
	items, err := ReadItems(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	burger := items[0]
	if burger.ItemID != "burger" || burger.QuantitySold != 50 {
		t.Errorf("burger = %+v", burger)
	}
	if burger.NetSales.String() != "500.00" {
		t.Errorf("net sales = %s", burger.NetSales)
	}
	if burger.Cost == nil || burger.Cost.Source != types.CostSourceManual {
		t.Errorf("burger cost = %+v", burger.Cost)
	}

	fries := items[1]
	if fries.Cost != nil {
		t.Errorf("empty unit_food_cost should leave cost nil, got %+v", fries.Cost)
	}
	if !fries.IsAnchor {
		t.Error("fries should be an anchor")
	}

	soup := items[2]
	if soup.Cost == nil || soup.Cost.Source != types.CostSourceManual {
		t.Errorf("blank cost_source should default to MANUAL, got %+v", soup.Cost)
	}
}

func TestReadItemsColumnOrderIndependent(t *testing.T) {
	input := `net_sales,item_id,quantity_sold,item_name
100.00,soup,10,Soup
`
	items, err := ReadItems(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadItems: %v", err)
	}
	if items[0].ItemID != "soup" || items[0].NetSales.String() != "100.00" {
		t.Errorf("item = %+v", items[0])
	}
}

func TestReadItemsErrors(t *testing.T) {
	cases := map[string]string{
		"missing column":  "item_id,item_name\nburger,Burger\n",
		"bad quantity":    "item_id,item_name,quantity_sold,net_sales\nburger,Burger,lots,100.00\n",
		"bad money":       "item_id,item_name,quantity_sold,net_sales\nburger,Burger,10,ten\n",
		"bad source":      "item_id,item_name,quantity_sold,net_sales,unit_food_cost,cost_source\nburger,Burger,10,100.00,3.00,GUESS\n",
		"estimate source": "item_id,item_name,quantity_sold,net_sales,unit_food_cost,cost_source\nburger,Burger,10,100.00,3.00,ESTIMATE\n",
		"empty file":      "",
	}
	for name, input := range cases {
		if _, err := ReadItems(strings.NewReader(input)); !errors.IsType(err, errors.TypeIngest) {
			t.Errorf("%s: err = %v, want INGEST_ERROR", name, err)
		}
	}
}

func TestReadExternalCosts(t *testing.T) {
	input := `item_name,unit_cost,unit_cost_base,unit_cost_modifiers,reported_revenue,quantity_sold,period_start,period_end
Classic Burger,3.10,2.50,packaging:0.35;garnish:0.25,510.00,50,2025-03-03,2025-03-09
Fries,0.80,,,,,2025-03-03,2025-03-09
`
	records, err := ReadExternalCosts(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadExternalCosts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	burger := records[0]
	if burger.UnitCost.String() != "3.10" {
		t.Errorf("unit cost = %s", burger.UnitCost)
	}
	if burger.Base == nil || burger.Base.String() != "2.50" {
		t.Errorf("base = %v", burger.Base)
	}
	if len(burger.Modifiers) != 2 || burger.Modifiers[0].Name != "packaging" {
		t.Errorf("modifiers = %+v", burger.Modifiers)
	}
	if burger.ReportedRevenue == nil || burger.QuantitySold != 50 {
		t.Errorf("revenue = %v, qty = %d", burger.ReportedRevenue, burger.QuantitySold)
	}
	wantStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	if !burger.Period.Start.Equal(wantStart) {
		t.Errorf("period start = %v, want %v", burger.Period.Start, wantStart)
	}

	fries := records[1]
	if fries.Base != nil || fries.Modifiers != nil || fries.ReportedRevenue != nil {
		t.Errorf("optional fields should be empty: %+v", fries)
	}
}

func TestReadExternalCostsBadModifier(t *testing.T) {
	input := `item_name,unit_cost,unit_cost_modifiers,period_start,period_end
Burger,3.10,packaging=0.35,2025-03-03,2025-03-09
`
	if _, err := ReadExternalCosts(strings.NewReader(input)); !errors.IsType(err, errors.TypeIngest) {
		t.Errorf("err = %v, want INGEST_ERROR", err)
	}
}

func TestReadExternalCostsBadDate(t *testing.T) {
	input := `item_name,unit_cost,period_start,period_end
Burger,3.10,03/03/2025,2025-03-09
`
	if _, err := ReadExternalCosts(strings.NewReader(input)); !errors.IsType(err, errors.TypeIngest) {
		t.Errorf("err = %v, want INGEST_ERROR", err)
	}
}
