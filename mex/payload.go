package mex

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mockexchange/dash"
)

// toDecimal converts the JSON value shapes the back-end is known to emit for
// numbers. json.Number and string go through exact decimal parsing; float64
// only shows up when a caller bypassed UseNumber decoding.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Decimal{}, false
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	}
	return ""
}

// extractAssets normalizes the five historical /balance payload shapes into a
// flat list of asset records:
//
//  1. {"assets": [...]}
//  2. {"data": [...]}
//  3. {"balances": [...]}
//  4. a bare list
//  5. a mapping {"BTC": {...}, "ETH": {...}}
//
// An unfamiliar shape is an error so schema drift surfaces fast.
func extractAssets(raw any) ([]map[string]any, error) {
	asList := func(v any) ([]map[string]any, bool) {
		list, ok := v.([]any)
		if !ok {
			return nil, false
		}
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	}

	if out, ok := asList(raw); ok {
		return out, nil
	}
	if obj, ok := raw.(map[string]any); ok {
		for _, key := range []string{"assets", "data", "balances"} {
			if v, present := obj[key]; present {
				if out, ok := asList(v); ok {
					return out, nil
				}
			}
		}
		// mapping style: every value must itself be an asset record
		out := make([]map[string]any, 0, len(obj))
		for asset, v := range obj {
			fields, ok := v.(map[string]any)
			if !ok {
				return nil, errors.New("unrecognized balance payload shape")
			}
			rec := map[string]any{"asset": asset}
			for k, fv := range fields {
				rec[k] = fv
			}
			out = append(out, rec)
		}
		return out, nil
	}
	return nil, errors.New("unrecognized balance payload shape")
}

// tickerPrice digs the last price out of one ticker record, regardless of the
// CCXT schema ("last") or the simplified one (nested under info.price).
func tickerPrice(rec map[string]any) (decimal.Decimal, bool) {
	if v, ok := rec["last"]; ok {
		if d, ok := toDecimal(v); ok {
			return d, true
		}
	}
	if v, err := jsonpath.Get("$.info.price", any(rec)); err == nil {
		// jsonpath sometimes answers with a one-element list
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[0]
		}
		if d, ok := toDecimal(v); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// Tickers fetches the last price for each pair (like "BTC/USDT"), keyed by
// symbol. Pairs the back-end cannot price are simply absent from the result.
func (c *Client) Tickers(ctx context.Context, pairs []string) (map[string]decimal.Decimal, error) {
	if len(pairs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}
	raw, err := c.get(ctx, "/tickers/"+strings.Join(pairs, ","), nil)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal)
	record := func(rec map[string]any) {
		symbol := toString(rec["symbol"])
		if symbol == "" {
			return
		}
		if p, ok := tickerPrice(rec); ok {
			prices[symbol] = p
		}
	}
	switch payload := raw.(type) {
	case map[string]any:
		for _, v := range payload {
			if rec, ok := v.(map[string]any); ok {
				record(rec)
			}
		}
	case []any:
		for _, v := range payload {
			if rec, ok := v.(map[string]any); ok {
				record(rec)
			}
		}
	default:
		return nil, errors.Errorf("unexpected ticker payload type %T", raw)
	}
	return prices, nil
}

// assetPrices resolves the quote price of each base asset. The quote asset
// itself always prices at 1 so downstream math stays simple.
func (c *Client) assetPrices(ctx context.Context, assets []string, quote string) (map[string]decimal.Decimal, error) {
	pairs := make([]string, 0, len(assets))
	for _, a := range assets {
		if a != quote {
			pairs = append(pairs, a+"/"+quote)
		}
	}
	bySymbol, err := c.Tickers(ctx, pairs)
	if err != nil {
		return nil, err
	}
	byAsset := make(map[string]decimal.Decimal, len(bySymbol)+1)
	for symbol, p := range bySymbol {
		base, _, _ := strings.Cut(symbol, "/")
		byAsset[base] = p
	}
	byAsset[quote] = decimal.New(1, 0)
	return byAsset, nil
}

// Balance fetches /balance, normalizes the payload shape and attaches the
// last quote price of every asset. Assets without a resolvable price keep an
// invalid QuotePrice; their value simply does not count toward equity.
func (c *Client) Balance(ctx context.Context, quoteAsset string) (dash.BalanceSnapshot, error) {
	raw, err := c.get(ctx, "/balance", nil)
	if err != nil {
		return dash.BalanceSnapshot{}, err
	}
	records, err := extractAssets(raw)
	if err != nil {
		return dash.BalanceSnapshot{}, err
	}

	snap := dash.BalanceSnapshot{QuoteAsset: quoteAsset}
	names := make([]string, 0, len(records))
	for _, rec := range records {
		name := toString(rec["asset"])
		if name == "" {
			return dash.BalanceSnapshot{}, errors.New("balance record lacks an asset name")
		}
		free, _ := toDecimal(rec["free"])
		used, usedOK := toDecimal(rec["locked"])
		if !usedOK {
			used, _ = toDecimal(rec["used"])
		}
		total, ok := toDecimal(rec["total"])
		if !ok {
			total = free.Add(used)
		}
		snap.Assets = append(snap.Assets, dash.BalanceAsset{
			Asset: name,
			Free:  free,
			Used:  used,
			Total: total,
		})
		names = append(names, name)
	}

	prices, err := c.assetPrices(ctx, names, quoteAsset)
	if err != nil {
		return dash.BalanceSnapshot{}, err
	}
	for i := range snap.Assets {
		if p, ok := prices[snap.Assets[i].Asset]; ok {
			snap.Assets[i].QuotePrice = decimal.NullDecimal{Decimal: p, Valid: true}
		}
	}
	return snap, nil
}

// Trades fetches the most recent executed trades and canonicalizes them. The
// mark-to-market CurrentValue is left invalid for trades whose base asset has
// no resolvable price, which downstream flags as incomplete.
func (c *Client) Trades(ctx context.Context, quoteAsset string, tail int) ([]dash.TradeRecord, error) {
	query := map[string]string{}
	if tail > 0 {
		query["tail"] = strconv.Itoa(tail)
	}
	raw, err := c.get(ctx, "/trades", query)
	if err != nil {
		return nil, err
	}
	rows, ok := raw.([]any)
	if !ok {
		return nil, errors.Errorf("unexpected trades payload type %T", raw)
	}

	type parsed struct {
		rec  dash.TradeRecord
		base string
	}
	var trades []parsed
	bases := make(map[string]bool)
	for _, row := range rows {
		rec, ok := row.(map[string]any)
		if !ok {
			continue
		}
		side, err := dash.ParseSide(toString(rec["side"]))
		if err != nil {
			logrus.WithField("side", rec["side"]).Warn("skipping trade with unknown side")
			continue
		}
		notional, ok := toDecimal(rec["notional"])
		if !ok {
			notional, _ = toDecimal(rec["cost"])
		}
		fee, _ := toDecimal(rec["fee"])
		amount, _ := toDecimal(rec["amount"])
		base, _, _ := strings.Cut(toString(rec["symbol"]), "/")
		trades = append(trades, parsed{
			rec: dash.TradeRecord{
				Side:     side,
				Notional: notional,
				Fee:      fee,
				Amount:   amount,
			},
			base: base,
		})
		if base != "" {
			bases[base] = true
		}
	}

	names := make([]string, 0, len(bases))
	for b := range bases {
		names = append(names, b)
	}
	prices, err := c.assetPrices(ctx, names, quoteAsset)
	if err != nil {
		return nil, err
	}

	out := make([]dash.TradeRecord, 0, len(trades))
	for _, t := range trades {
		if p, ok := prices[t.base]; ok {
			t.rec.CurrentValue = decimal.NullDecimal{Decimal: t.rec.Amount.Mul(p), Valid: true}
		}
		out = append(out, t.rec)
	}
	return out, nil
}

// Orders fetches recent orders, optionally filtered by status. An unparsable
// updated_at timestamp yields the zero time: the row just has no determinable
// age and renders unstyled.
func (c *Client) Orders(ctx context.Context, status string, tail int) ([]dash.Order, error) {
	query := map[string]string{}
	if status != "" {
		query["status"] = status
	}
	if tail > 0 {
		query["tail"] = strconv.Itoa(tail)
	}
	raw, err := c.get(ctx, "/orders", query)
	if err != nil {
		return nil, err
	}
	rows, ok := raw.([]any)
	if !ok {
		return nil, errors.Errorf("unexpected orders payload type %T", raw)
	}

	out := make([]dash.Order, 0, len(rows))
	for _, row := range rows {
		rec, ok := row.(map[string]any)
		if !ok {
			continue
		}
		side, _ := dash.ParseSide(toString(rec["side"]))
		price, _ := toDecimal(rec["price"])
		quantity, ok := toDecimal(rec["amount"])
		if !ok {
			quantity, _ = toDecimal(rec["quantity"])
		}
		filled, _ := toDecimal(rec["filled"])
		out = append(out, dash.Order{
			ID:        toString(rec["id"]),
			Symbol:    toString(rec["symbol"]),
			Side:      side,
			Type:      toString(rec["type"]),
			Price:     price,
			Quantity:  quantity,
			Filled:    filled,
			Status:    dash.Status(strings.ToLower(toString(rec["status"]))),
			UpdatedAt: toTime(rec["updated_at"]),
		})
	}
	return out, nil
}

// toTime parses the timestamp shapes the back-end emits: RFC 3339 strings and
// unix epochs in seconds or milliseconds. Anything else is the zero time.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	case json.Number:
		if epoch, err := t.Int64(); err == nil && epoch > 0 {
			if epoch > 1e12 {
				return time.UnixMilli(epoch)
			}
			return time.Unix(epoch, 0)
		}
	}
	return time.Time{}
}

// metricSet converts one source block of the assets overview into a MetricSet.
func metricSet(name string, raw any) (dash.MetricSet, error) {
	block, ok := raw.(map[string]any)
	if !ok {
		return dash.MetricSet{}, errors.Errorf("assets overview source %q is not an object", name)
	}
	set := dash.MetricSet{Name: name, Values: make(map[string]decimal.Decimal, len(block))}
	for field, v := range block {
		d, ok := toDecimal(v)
		if !ok {
			return dash.MetricSet{}, errors.Errorf("assets overview %s.%s is not numeric", name, field)
		}
		set.Values[field] = d
	}
	return set, nil
}

// AssetsOverview fetches the two independently computed views of the account
// metrics (balance ledger vs order book) plus the cash asset they are
// denominated in. Mismatch detection is left to the caller; the server's own
// opinion on it is ignored.
func (c *Client) AssetsOverview(ctx context.Context) (balance, orders dash.MetricSet, cashAsset string, err error) {
	raw, err := c.get(ctx, "/overview/assets", nil)
	if err != nil {
		return dash.MetricSet{}, dash.MetricSet{}, "", err
	}
	payload, ok := raw.(map[string]any)
	if !ok {
		return dash.MetricSet{}, dash.MetricSet{}, "", errors.Errorf("unexpected assets overview payload type %T", raw)
	}
	balance, err = metricSet("balance_source", payload["balance_source"])
	if err != nil {
		return dash.MetricSet{}, dash.MetricSet{}, "", err
	}
	orders, err = metricSet("orders_source", payload["orders_source"])
	if err != nil {
		return dash.MetricSet{}, dash.MetricSet{}, "", err
	}
	if misc, ok := payload["misc"].(map[string]any); ok {
		cashAsset = toString(misc["cash_asset"])
	}
	return balance, orders, cashAsset, nil
}

// Capital fetches the ledger's capital snapshot. The back-end has renamed
// these fields over time, so both vocabularies are accepted.
func (c *Client) Capital(ctx context.Context) (dash.CapitalSnapshot, error) {
	raw, err := c.get(ctx, "/overview/capital", nil)
	if err != nil {
		return dash.CapitalSnapshot{}, err
	}
	payload, ok := raw.(map[string]any)
	if !ok {
		return dash.CapitalSnapshot{}, errors.Errorf("unexpected capital payload type %T", raw)
	}
	pick := func(keys ...string) decimal.Decimal {
		for _, k := range keys {
			if d, ok := toDecimal(payload[k]); ok {
				return d
			}
		}
		return decimal.Decimal{}
	}
	return dash.CapitalSnapshot{
		Equity:        pick("equity", "total_equity"),
		PaidInCapital: pick("paid_in_capital", "deposits"),
		Distributions: pick("distributions", "withdrawals"),
	}, nil
}
