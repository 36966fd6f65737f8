package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/types"
)

// SaveResume stores a new resume. A blank title is stored as "Untitled Resume".
func (c *Client) SaveResume(ctx context.Context, s *Session, title string, data types.ResumeData) (*types.Resume, error) {
	req := types.SaveResumeRequest{Title: title, Data: &data}
	v, err := c.once(flightKey(s.Token(), "save", req), func() (any, error) {
		var out types.Resume
		err := c.doJSON(ctx, http.MethodPost, "/resumes", s.Token(), req, &out)
		return &out, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Resume), nil
}

// ListResumes returns the session user's resumes, most recently updated first.
func (c *Client) ListResumes(ctx context.Context, s *Session) ([]types.ResumeSummary, error) {
	var out []types.ResumeSummary
	if err := c.doJSON(ctx, http.MethodGet, "/resumes", s.Token(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.ResumeSummary{}
	}
	return out, nil
}

// GetResume fetches one resume.
func (c *Client) GetResume(ctx context.Context, s *Session, id uuid.UUID) (*types.Resume, error) {
	var out types.Resume
	if err := c.doJSON(ctx, http.MethodGet, "/resumes/"+id.String(), s.Token(), nil, &out); err != nil {
		return nil, err
	}
	out.Data.Normalize()
	return &out, nil
}

// UpdateResume replaces a resume's title and data.
func (c *Client) UpdateResume(ctx context.Context, s *Session, id uuid.UUID, title string, data types.ResumeData) (*types.Resume, error) {
	req := types.SaveResumeRequest{Title: title, Data: &data}
	v, err := c.once(flightKey(s.Token(), "update:"+id.String(), req), func() (any, error) {
		var out types.Resume
		err := c.doJSON(ctx, http.MethodPut, "/resumes/"+id.String(), s.Token(), req, &out)
		return &out, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Resume), nil
}

// DeleteResume deletes a resume.
func (c *Client) DeleteResume(ctx context.Context, s *Session, id uuid.UUID) error {
	_, err := c.once(s.Token()+"|delete:"+id.String(), func() (any, error) {
		return nil, c.doJSON(ctx, http.MethodDelete, "/resumes/"+id.String(), s.Token(), nil, nil)
	})
	return err
}

// RenderResume fetches a stored resume rendered as an HTML page.
func (c *Client) RenderResume(ctx context.Context, s *Session, id uuid.UUID, t types.TemplateType) ([]byte, error) {
	return c.getRaw(ctx, "/resumes/"+id.String()+"/render?template="+url.QueryEscape(string(t)), s.Token())
}

// Render renders data without storing it.
func (c *Client) Render(ctx context.Context, t types.TemplateType, data types.ResumeData) ([]byte, error) {
	return c.postRaw(ctx, "/render", types.RenderRequest{Template: string(t), Data: &data})
}

// Export prints data to PDF. A server without a print driver answers 503.
func (c *Client) Export(ctx context.Context, t types.TemplateType, data types.ResumeData) ([]byte, error) {
	return c.postRaw(ctx, "/export", types.RenderRequest{Template: string(t), Data: &data})
}

func (c *Client) getRaw(ctx context.Context, path, token string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}

func (c *Client) postRaw(ctx context.Context, path string, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}
