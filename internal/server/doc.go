// Package server implements the guestwall HTTP API surface.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts
//   - Identity stamp resolution (cookie parse / mint) via RequireIdentity
//   - The Store contract and its backends (memory, SQLite, Mongo)
//
// Does not own:
//   - Static frontend assets (served as plain files from the public dir)
//   - Process configuration (internal/shared)
//
// Invariants:
//   - JSON responses are consistent via writeJSON
//   - Every API route is wrapped by RequireIdentity, so handlers always see X-User-Id
//   - No entry is persisted with empty trimmed text
package server
