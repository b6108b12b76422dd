package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Asset refs look like "image-<id>-<width>x<height>-<format>".
var dimsPattern = regexp.MustCompile(`^\d+x\d+$`)

// ImageURL converts a Sanity asset reference into its CDN URL, e.g.
// "image-abc123-800x600-jpg" →
// "https://cdn.sanity.io/images/<project>/<dataset>/abc123-800x600.jpg".
func (c *Client) ImageURL(ref string) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("invalid image asset ref %q", ref)
	}

	id, dims, format := parts[1], parts[2], parts[3]
	if id == "" || format == "" || !dimsPattern.MatchString(dims) {
		return "", fmt.Errorf("invalid image asset ref %q", ref)
	}

	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.projectID, c.dataset, id, dims, format), nil
}
