// Package store provides the two key-value persistence regions the storefront
// state engine reads and writes: a durable region that survives restarts and a
// session region that is cleared when the browsing session ends.
//
// Every region speaks the same Get/Set/Remove-by-key contract. Reads through
// ReadJSON never fail: a missing, corrupt or unreachable value is reported via
// Result.Status and replaced by the caller's default.
package store
