// Built-in Dutch profile.
package lang

import (
	"sync"

	"github.com/akpeker/text2num/data"
)

var dutchOnce = sync.OnceValue(func() *Profile {
	return MustLoad(data.DutchProfile)
})

// Dutch returns the built-in Dutch profile.
// The profile is built once on first use and shared; it is read-only and
// safe for concurrent use.
func Dutch() *Profile {
	return dutchOnce()
}
