package ports

// Catalog is the full read side the API depends on.
type Catalog interface {
	SectionRepository
	LineRepository
}
