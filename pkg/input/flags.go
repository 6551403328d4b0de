package input

import "strings"

// StringSliceFlag implements flag.Value for target and tag flags
// that may be repeated or given once comma-separated, so
// `-u a.com -u b.com` and `-u a.com,b.com` both work.
type StringSliceFlag []string

func (s *StringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

// Set appends each non-empty comma-separated element.
func (s *StringSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}
