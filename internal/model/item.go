// Package model defines the persisted entities managed by the service.
//
// Entities are plain structs; all persistence logic lives in the
// repository layer and all wire formatting in the handler layer.
package model

import "time"

// Item is the primary entity: a named record with an optional description
// and server-managed timestamps.
//
// ID and CreatedAt are immutable once assigned. UpdatedAt is refreshed on
// every successful mutation, so UpdatedAt >= CreatedAt always holds.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
