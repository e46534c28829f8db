// Package resource defines the concrete transformers for the application's
// entity kinds (post, comment, user) and wires them into a transform.Registry.
// Each transformer maps one domain entity to its flat API representation and
// resolves its declared relations through the store's RelationLoader.
package resource
