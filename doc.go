// Package dash provides the financial analytics core behind the MockExchange
// dashboard. It turns raw balance, order and trade records fetched from the
// exchange back-end into reconciled, display-ready figures.
//
// The core functionalities include:
//   - Trade Aggregation: reducing a window of executed trades into BUY/SELL/
//     TOTAL summaries, with explicit tracking of unpriceable positions.
//   - Multiples: deriving earnings, ROI and the DPI/RVPI/TVPI family from a
//     capital snapshot, with strict null guards instead of divide-by-zero.
//   - Reconciliation: comparing two independently computed views of the same
//     figures field by field, and refusing to silently skip a field.
//   - Rate Normalization: scaling raw hourly turnover to a per-day rate when
//     the portfolio trades slowly, so displayed rates stay meaningful.
//
// Every computation in this package is a pure function over immutable inputs:
// no I/O, no shared state, safe for concurrent callers. Retrieval from the
// back-end lives in the mex package, visual encoding of record age in the
// palette package, and text rendering in the renderer package.
package dash
