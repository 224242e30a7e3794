package player

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// sanitizeTarget rejects anything mpv could read as a flag and any scheme other than http(s).
func sanitizeTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", errors.New("empty media target")
	}

	if strings.ContainsAny(t, "\x00\n\r") {
		return "", errors.New("media target contains control characters")
	}

	if strings.HasPrefix(t, "-") {
		return "", fmt.Errorf("media target %q looks like a flag", t)
	}

	if strings.Contains(t, "://") {
		u, err := url.Parse(t)
		if err != nil {
			return "", fmt.Errorf("invalid media URL: %w", err)
		}

		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return t, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
		}
	}

	return filepath.Clean(t), nil
}

var titleReplacer = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "")

func sanitizeTitle(title string) string {
	return strings.TrimSpace(titleReplacer.Replace(title))
}
