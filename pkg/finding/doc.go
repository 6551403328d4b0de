// Package finding provides the canonical accessibility finding types
// shared by both engine integrations.
//
// Raw engine results differ wildly in shape (axe groups affected
// elements under rules, the combined runner emits a flat issue list),
// so everything downstream of normalization operates on the single
// Finding record defined here.
package finding
