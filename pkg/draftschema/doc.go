// Package draftschema converts persisted form-definition documents to and
// from the canonical model in pkg/model.
//
// The persisted schema accumulated several historical shapes: `pages` for
// `sections`, `conditions` for `rules`, symbolic comparison operators, and
// validation/ui/logic fields stored flat on the field object instead of in
// sub-objects. The parser accepts all of them and degrades gracefully on
// anything it cannot read; no parse path returns an error. The serializer
// emits exactly one canonical shape, so one parse/serialize pass normalizes
// any legacy document.
package draftschema
