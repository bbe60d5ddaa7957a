package pokeapi

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png" // sprites are PNG
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"pokeview/internal/config"
)

// maxSpriteBytes bounds a sprite download. Official sprites are a few KB.
const maxSpriteBytes = 2 << 20

// SpriteURL fills the {id} placeholder of a sprite template.
func SpriteURL(template string, id int) string {
	return strings.ReplaceAll(template, config.IDPlaceholder, strconv.Itoa(id))
}

// SpriteLoader fetches and decodes a sprite image.
type SpriteLoader interface {
	LoadSprite(ctx context.Context, url string) (image.Image, error)
}

var _ SpriteLoader = (*Client)(nil)

// LoadSprite downloads a PNG sprite. Callers treat any error as "no image".
func (c *Client) LoadSprite(ctx context.Context, url string) (image.Image, error) {
	resp, err := c.get(ctx, url, "image/png")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSpriteBytes))
	if err != nil {
		return nil, fmt.Errorf("read sprite: %w", err)
	}
	c.sugar.Debugf("Fetched sprite %s (%s)", url, humanize.Bytes(uint64(len(data))))

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	return img, nil
}
