// Package plan loads tariff plan definitions from HCL configuration.
// A plan file is user-edited text; everything read from it passes
// through the coercion boundary before it reaches the tariff engine,
// so blank tier limits become the unbounded sentinel and malformed
// band times drop the band rather than failing the whole plan.
package plan

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"powertariff/core/coerce"
	"powertariff/core/tariff"
	"powertariff/core/types"

	"powertariff/internal/errors"
)

// FlatPlan configures the flat-rate scheme
type FlatPlan struct {
	// Rate is the per-kWh price
	Rate float64

	// FixedFee is added regardless of usage
	FixedFee float64
}

// Compute bills the series under this flat-rate configuration
func (p FlatPlan) Compute(s types.UsageSeries) types.BillResult {
	return tariff.Flat(s, p.Rate, p.FixedFee)
}

// TOUPlan configures the time-of-use scheme
type TOUPlan struct {
	// Bands are evaluated in declaration order
	Bands []tariff.Band

	// FixedFee is added regardless of usage
	FixedFee float64
}

// Compute bills the series under this time-of-use configuration
func (p TOUPlan) Compute(s types.UsageSeries) types.BillResult {
	return tariff.TimeOfUse(s, p.Bands, p.FixedFee)
}

// TieredPlan configures the tiered consumption scheme
type TieredPlan struct {
	// Limits are cumulative tier bounds; nil means unbounded
	Limits []*float64

	// Rates are per-kWh prices per tier, optionally with one trailing
	// overflow rate
	Rates []float64

	// FixedFee is added regardless of usage
	FixedFee float64
}

// Compute bills the series under this tiered configuration
func (p TieredPlan) Compute(s types.UsageSeries) types.BillResult {
	return tariff.Tiered(s, p.Limits, p.Rates, p.FixedFee)
}

// Plan is a named set of tariff scheme configurations. A plan may
// configure any subset of the three schemes.
type Plan struct {
	Name   string
	Flat   *FlatPlan
	TOU    *TOUPlan
	Tiered *TieredPlan
}

// Bills computes every configured scheme over the series, in Flat,
// TOU, Tiered order.
func (p Plan) Bills(s types.UsageSeries) []types.BillResult {
	var bills []types.BillResult
	if p.Flat != nil {
		bills = append(bills, p.Flat.Compute(s))
	}
	if p.TOU != nil {
		bills = append(bills, p.TOU.Compute(s))
	}
	if p.Tiered != nil {
		bills = append(bills, p.Tiered.Compute(s))
	}
	return bills
}

// Scheme returns the configured scheme matching the given name, or an
// input error when the plan does not configure it.
func (p Plan) Scheme(scheme types.Scheme, s types.UsageSeries) (types.BillResult, error) {
	switch scheme {
	case types.SchemeFlat:
		if p.Flat != nil {
			return p.Flat.Compute(s), nil
		}
	case types.SchemeTOU:
		if p.TOU != nil {
			return p.TOU.Compute(s), nil
		}
	case types.SchemeTiered:
		if p.Tiered != nil {
			return p.Tiered.Compute(s), nil
		}
	default:
		return types.BillResult{}, errors.Inputf("unknown scheme: %q", scheme)
	}
	return types.BillResult{}, errors.Newf(errors.TypeNotFound,
		"plan %q does not configure the %s scheme", p.Name, scheme)
}

// Find returns the named plan. An empty name selects the first plan
// in the file.
func Find(plans []Plan, name string) (Plan, error) {
	if len(plans) == 0 {
		return Plan{}, errors.Input("plan file defines no plans")
	}
	if name == "" {
		return plans[0], nil
	}
	for _, p := range plans {
		if p.Name == name {
			return p, nil
		}
	}
	return Plan{}, errors.NotFound("plan", name)
}

// HCL decoding schema. Numeric fields HCL can type-check stay numeric;
// fields that carry the blank-means-unspecified convention (tier
// limits, band times) come in as strings and go through coerce.

type fileRoot struct {
	Plans []planBlock `hcl:"plan,block"`
}

type planBlock struct {
	Name   string       `hcl:"name,label"`
	Flat   *flatBlock   `hcl:"flat,block"`
	TOU    *touBlock    `hcl:"tou,block"`
	Tiered *tieredBlock `hcl:"tiered,block"`
}

type flatBlock struct {
	Rate     float64 `hcl:"rate"`
	FixedFee float64 `hcl:"fixed_fee,optional"`
}

type touBlock struct {
	FixedFee float64     `hcl:"fixed_fee,optional"`
	Bands    []bandBlock `hcl:"band,block"`
}

type bandBlock struct {
	Name    string  `hcl:"name,label"`
	Start   string  `hcl:"start,optional"`
	End     string  `hcl:"end,optional"`
	Rate    float64 `hcl:"rate"`
	Default bool    `hcl:"default,optional"`
}

type tieredBlock struct {
	Limits   []string  `hcl:"limits"`
	Rates    []float64 `hcl:"rates"`
	FixedFee float64   `hcl:"fixed_fee,optional"`
}

// Load reads and parses a plan file
func Load(path string) ([]Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading plan file", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL plan source. The filename is used only for
// diagnostics.
func Parse(src []byte, filename string) ([]Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing plan file", diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Parsing("decoding plan file", diags)
	}

	plans := make([]Plan, 0, len(root.Plans))
	for _, pb := range root.Plans {
		plans = append(plans, buildPlan(pb))
	}
	return plans, nil
}

func buildPlan(pb planBlock) Plan {
	p := Plan{Name: pb.Name}

	if pb.Flat != nil {
		p.Flat = &FlatPlan{Rate: pb.Flat.Rate, FixedFee: pb.Flat.FixedFee}
	}

	if pb.TOU != nil {
		tou := &TOUPlan{FixedFee: pb.TOU.FixedFee}
		for _, bb := range pb.TOU.Bands {
			if band, ok := buildBand(bb); ok {
				tou.Bands = append(tou.Bands, band)
			}
		}
		p.TOU = tou
	}

	if pb.Tiered != nil {
		tiered := &TieredPlan{
			Rates:    pb.Tiered.Rates,
			FixedFee: pb.Tiered.FixedFee,
		}
		for _, limit := range pb.Tiered.Limits {
			tiered.Limits = append(tiered.Limits, coerce.OptionalFloat(limit))
		}
		p.Tiered = tiered
	}

	return p
}

// buildBand coerces one band block. A range band whose start or end is
// blank or unparseable is dropped, matching the boundary contract of
// substituting rather than failing on malformed user text.
func buildBand(bb bandBlock) (tariff.Band, bool) {
	if bb.Default {
		return tariff.DefaultBand(bb.Name, bb.Rate), true
	}
	start, okStart := types.ParseClock(bb.Start)
	end, okEnd := types.ParseClock(bb.End)
	if !okStart || !okEnd {
		return tariff.Band{}, false
	}
	return tariff.RangeBand(bb.Name, start, end, bb.Rate), true
}
