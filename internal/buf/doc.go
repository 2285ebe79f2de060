// Package buf contains overflow-safe size arithmetic and range checks shared
// by the growth planner and the sequence store.
package buf
