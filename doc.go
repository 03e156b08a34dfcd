// Package bondplan provides the types and analyses behind a personal
// fixed-income portfolio planner. Users record bond-like assets and planned
// cash outflows; the package computes summary statistics, a monthly cash-flow
// timeline, and heuristic recommendations.
//
// The core is the recommendation engine: a stateless pipeline over three
// inputs (user profile, assets, liquidity events) that derives a rollover
// plan for soon-maturing assets, allocation-imbalance warnings, bond-ladder
// gap detection, a liquidity shortfall/surplus projection, and regional
// yield commentary. The engine performs no I/O and never mutates its inputs;
// a degenerate input degrades to fewer recommendations, never to an error.
//
// Supporting concerns follow the same local-first approach as the `bpl`
// command-line tool built on top of this package: records are persisted in a
// human-readable JSONL file, and an optional benchmark-rate feed can refine
// the built-in approximate rate table.
package bondplan
