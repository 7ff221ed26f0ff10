package audit

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

// DescribeClient renders a compact human-readable client description from a
// raw User-Agent header, e.g. "Chrome 120.0.0.0 on Windows". Unrecognized
// agents fall back to the raw string, truncated.
func DescribeClient(rawUA string) string {
	if rawUA == "" {
		return ""
	}

	parsed := useragent.New(rawUA)
	name, version := parsed.Browser()
	if name == "" {
		return truncate(rawUA, 64)
	}

	desc := strings.TrimSpace(fmt.Sprintf("%s %s", name, version))
	if os := parsed.OSInfo().Name; os != "" {
		desc = fmt.Sprintf("%s on %s", desc, os)
	}
	if parsed.Bot() {
		desc += " (bot)"
	}
	return desc
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
