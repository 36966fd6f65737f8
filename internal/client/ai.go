package client

import (
	"context"
	"net/http"

	"github.com/jonathan/resume-nest/internal/types"
)

// Transform asks the server to apply action to text. On any error the original
// text is returned alongside it, so callers can always display the result.
func (c *Client) Transform(ctx context.Context, s *Session, text string, action types.AIAction, background string) (string, error) {
	req := types.TransformRequest{
		Text:    text,
		Action:  string(action),
		Context: background,
	}
	v, err := c.once(flightKey(s.Token(), "transform", req), func() (any, error) {
		var out types.TransformResponse
		err := c.doJSON(ctx, http.MethodPost, "/ai/transform", s.Token(), req, &out)
		return out.Text, err
	})
	if err != nil {
		return text, err
	}
	return v.(string), nil
}
