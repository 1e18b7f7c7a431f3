// Package ingest loads weekly POS exports and external cost reports from
// CSV files into the types the scoring engine consumes.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

const dateLayout = "2006-01-02"

// ReadItemsFile loads a weekly POS item export.
func ReadItemsFile(path string) ([]types.ItemInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Ingest("opening items file", err)
	}
	defer file.Close()
	return ReadItems(file)
}

// ReadItems parses POS item rows. Expected columns: item_id, item_name,
// category, quantity_sold, net_sales, unit_food_cost, cost_source,
// is_anchor. An empty unit_food_cost means the item has no explicit cost
// record and the engine will fall back to an estimate.
func ReadItems(r io.Reader) ([]types.ItemInput, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if err := header.require("item_id", "item_name", "quantity_sold", "net_sales"); err != nil {
		return nil, err
	}

	items := make([]types.ItemInput, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header

		qty, err := strconv.Atoi(header.get(row, "quantity_sold"))
		if err != nil {
			return nil, errors.Newf(errors.TypeIngest, "line %d: bad quantity_sold %q", line, header.get(row, "quantity_sold"))
		}
		netSales, err := determinism.NewMoney(header.get(row, "net_sales"))
		if err != nil {
			return nil, errors.Newf(errors.TypeIngest, "line %d: bad net_sales %q", line, header.get(row, "net_sales"))
		}

		item := types.ItemInput{
			ItemID:       header.get(row, "item_id"),
			ItemName:     header.get(row, "item_name"),
			Category:     header.get(row, "category"),
			QuantitySold: qty,
			NetSales:     netSales,
		}

		if raw := header.get(row, "unit_food_cost"); raw != "" {
			unitCost, err := determinism.NewMoney(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad unit_food_cost %q", line, raw)
			}
			source := types.CostSourceManual
			if s := header.get(row, "cost_source"); s != "" {
				source = types.CostSource(strings.ToUpper(s))
				// ESTIMATE is the engine's own fallback tag; an explicit
				// cost can only declare where it actually came from.
				if source != types.CostSourceManual && source != types.CostSourceMarginEdge {
					return nil, errors.Newf(errors.TypeIngest, "line %d: cost_source must be MANUAL or MARGINEDGE, got %q", line, s)
				}
			}
			item.Cost = &types.CostRecord{UnitCost: unitCost, Source: source}
		}

		if raw := header.get(row, "is_anchor"); raw != "" {
			anchor, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad is_anchor %q", line, raw)
			}
			item.IsAnchor = anchor
		}

		items = append(items, item)
	}
	return items, nil
}

// ReadExternalCostsFile loads an external cost-system report.
func ReadExternalCostsFile(path string) ([]types.ExternalCostRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Ingest("opening external costs file", err)
	}
	defer file.Close()
	return ReadExternalCosts(file)
}

// ReadExternalCosts parses external cost rows. Expected columns: item_name,
// unit_cost, unit_cost_base, unit_cost_modifiers, reported_revenue,
// quantity_sold, period_start, period_end. Modifiers are encoded as
// "name:amount" pairs separated by semicolons.
func ReadExternalCosts(r io.Reader) ([]types.ExternalCostRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if err := header.require("item_name", "unit_cost", "period_start", "period_end"); err != nil {
		return nil, err
	}

	records := make([]types.ExternalCostRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		unitCost, err := determinism.NewMoney(header.get(row, "unit_cost"))
		if err != nil {
			return nil, errors.Newf(errors.TypeIngest, "line %d: bad unit_cost %q", line, header.get(row, "unit_cost"))
		}

		rec := types.ExternalCostRecord{
			ItemName: header.get(row, "item_name"),
			UnitCost: unitCost,
		}

		rec.Period.Start, err = time.Parse(dateLayout, header.get(row, "period_start"))
		if err != nil {
			return nil, errors.Newf(errors.TypeIngest, "line %d: bad period_start %q", line, header.get(row, "period_start"))
		}
		rec.Period.End, err = time.Parse(dateLayout, header.get(row, "period_end"))
		if err != nil {
			return nil, errors.Newf(errors.TypeIngest, "line %d: bad period_end %q", line, header.get(row, "period_end"))
		}

		if raw := header.get(row, "unit_cost_base"); raw != "" {
			base, err := determinism.NewMoney(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad unit_cost_base %q", line, raw)
			}
			rec.Base = &base
		}

		if raw := header.get(row, "unit_cost_modifiers"); raw != "" {
			rec.Modifiers, err = parseModifiers(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad unit_cost_modifiers %q", line, raw)
			}
		}

		if raw := header.get(row, "reported_revenue"); raw != "" {
			revenue, err := determinism.NewMoney(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad reported_revenue %q", line, raw)
			}
			rec.ReportedRevenue = &revenue
		}

		if raw := header.get(row, "quantity_sold"); raw != "" {
			rec.QuantitySold, err = strconv.Atoi(raw)
			if err != nil {
				return nil, errors.Newf(errors.TypeIngest, "line %d: bad quantity_sold %q", line, raw)
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

func parseModifiers(raw string) ([]types.CostModifier, error) {
	var modifiers []types.CostModifier
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, amount, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, errors.Newf(errors.TypeIngest, "modifier %q is not name:amount", pair)
		}
		m, err := determinism.NewMoney(strings.TrimSpace(amount))
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, types.CostModifier{Name: strings.TrimSpace(name), Amount: m})
	}
	return modifiers, nil
}

// headerIndex maps column names to positions so exports can order or omit
// optional columns freely.
type headerIndex map[string]int

func (h headerIndex) get(row []string, column string) string {
	idx, ok := h[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (h headerIndex) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := h[c]; !ok {
			return errors.Newf(errors.TypeIngest, "missing required column %q", c)
		}
	}
	return nil
}

func readAll(r io.Reader) ([][]string, headerIndex, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New(errors.TypeIngest, "empty file")
	}
	if err != nil {
		return nil, nil, errors.Ingest("reading header", err)
	}

	header := make(headerIndex, len(headerRow))
	for i, name := range headerRow {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Ingest("reading rows", err)
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}
