// hioload-pool/internal/concurrency/pin.go
// Author: momentics <momentics@gmail.com>
//
// Applies api.ThreadAttributes to the calling OS thread.

package concurrency

import (
	"fmt"
	"unicode/utf8"

	"github.com/momentics/hioload-pool/affinity"
	"github.com/momentics/hioload-pool/api"
)

// MaxThreadNameLen is the Linux comm limit in bytes, without the terminating NUL.
const MaxThreadNameLen = 15

// TruncateThreadName cuts name to at most limit bytes without splitting a
// UTF-8 sequence.
func TruncateThreadName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	n := 0
	for n < len(name) {
		_, size := utf8.DecodeRuneInString(name[n:])
		if n+size > limit {
			break
		}
		n += size
	}
	return name[:n]
}

// PrepareCurrentThread applies attrs to the calling thread. The caller must
// already hold runtime.LockOSThread. Naming is best-effort; affinity and nice
// failures are reported.
func PrepareCurrentThread(attrs *api.ThreadAttributes) error {
	if attrs == nil {
		return nil
	}
	if attrs.Name != "" {
		_ = setThreadName(TruncateThreadName(attrs.Name, MaxThreadNameLen))
	}
	if len(attrs.CPUs) > 0 {
		if err := affinity.SetAffinity(attrs.CPUs...); err != nil {
			return err
		}
	}
	if attrs.Nice != nil {
		if err := setThreadNice(*attrs.Nice); err != nil {
			return fmt.Errorf("thread: set nice %d: %w", *attrs.Nice, err)
		}
	}
	return nil
}
