// Package tokens persists the session's bearer tokens.
//
// Two opaque strings are stored, the access token and the refresh token,
// under fixed keys (common.AccessTokenKey, common.RefreshTokenKey). Nothing
// here looks inside a token: absence is the only state that matters.
//
// Implementations:
//   - SQLiteRepository: the "tokens" table created by the embedded goose
//     migrations (see storage.Open). Survives restarts.
//   - MemoryRepository: process-local map, used in tests and for -d :memory:.
package tokens
