package ports

// Hasher computes content fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeHash computes the hash of data already in memory.
	ComputeHash(data []byte) uint64
}
