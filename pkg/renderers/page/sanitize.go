package page

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	headerPolicyOnce sync.Once
	headerPolicy     *bluemonday.Policy
)

// SanitizeHeader cleans an operator supplied header snippet. Formatting,
// links and images survive; scripts, styles and event handlers do not.
func SanitizeHeader(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(headerSanitizer().Sanitize(trimmed))
}

func headerSanitizer() *bluemonday.Policy {
	headerPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		headerPolicy = policy
	})
	return headerPolicy
}
