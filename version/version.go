package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/clipdeck/clipdeck/network"
	"github.com/clipdeck/clipdeck/where"
	"github.com/metafates/gache"
)

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// releaseURL is the GitHub endpoint for the newest release.
var releaseURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// Latest returns the newest released version without the "v" prefix. Results are cached for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := latestCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.UserAgent)

	res, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: unexpected status %s", res.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(res.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("release lookup: empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCacher.Set(latest)
	return latest, nil
}
