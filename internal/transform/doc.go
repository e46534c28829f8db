// Package transform converts internal domain entities into client-facing
// representations. Each entity kind has a Transformer that produces a flat
// field mapping and declares which related resources it can embed; a Resolver
// walks a client-supplied selection tree (e.g. "author,comments.author"),
// recursively invoking the right Transformer for every requested relation and
// assembling the nested result. The final structure is wrapped in a
// data-namespaced envelope with an optional pagination meta slot.
package transform
