package domain

// DomainLoader reads pathway configurations from a directory.
type DomainLoader interface {
	Load(dir string) ([]DomainConfig, error)
	LoadFile(path string) (DomainConfig, error)
}

// RevisionReader resolves the version-control revision of a path.
type RevisionReader interface {
	IsGitRepo(path string) bool
	ShortHash(path string) (string, error)
}
