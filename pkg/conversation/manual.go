package conversation

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

const manualIDSpace = 10_000_000

// ManualID derives the negative tmdb id stored for a series entered by hand. The same title
// always maps to the same id. Distinct titles can collide inside the bounded id space.
func ManualID(title string) int32 {
	n := int32(xxhash.Sum64String(strings.TrimSpace(title)) % manualIDSpace)
	if n == 0 {
		return -manualIDSpace
	}
	return -n
}
