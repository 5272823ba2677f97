// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, update
// and delete rows, keeping SQL out of the service layer. Every mutating
// operation is a single statement, so it either fully applies or has no
// effect without explicit transaction management.
package repository
