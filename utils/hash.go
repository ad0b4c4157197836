package utils

import (
	"github.com/mitchellh/hashstructure"

	"github.com/openlakehouse/catalog-go/utils/logger"
)

// Hash returns a stable hash of v. Only exported fields participate, so
// callers hash canonical key structs rather than raw value objects.
func Hash(v any) uint64 {
	hash, err := hashstructure.Hash(v, nil)
	if err != nil {
		logger.Fatalf("failed to hash value of type %T: %s", v, err)
	}

	return hash
}
