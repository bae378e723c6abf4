// Package utils provides small shared helpers for the route-chat service.
//
// It contains:
//   - Clock string parsing (HH:MM, 24h)
//   - Text folding used to compare stop names and build cache keys
package utils
