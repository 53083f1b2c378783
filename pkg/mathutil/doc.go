// Package mathutil provides integer helpers and descriptive statistics over
// integer sequences.
//
// Every function is pure; nothing here fails or allocates shared state.
package mathutil
