// Package store defines interfaces for data persistence operations,
// including the RelationLoader collaborator that backs on-demand embedding
// of related resources. The interfaces abstract the underlying storage
// mechanism from the application's core logic, so transformers and services
// stay independent of any specific database technology.
package store
