package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-nest/internal/client"
	"github.com/jonathan/resume-nest/internal/rendering"
	"github.com/jonathan/resume-nest/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render resume data to a standalone HTML page",
	Long: `Render a resume data JSON document with one template, or with every template
when --template all is given. With a single template the page goes to --out or stdout.
With all templates --out names a directory that receives one <template>.html per layout.
With --remote the pages are rendered by a running server instead of in process.`,
	RunE: runRender,
}

var (
	renderInput    string
	renderTemplate string
	renderOutput   string
	renderRemote   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume data JSON, or - for stdin (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", string(types.DefaultTemplate), "Template: modern, minimal, creative, professional or all")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file, or directory with --template all")
	renderCmd.Flags().StringVar(&renderRemote, "remote", "", "Base URL of a resume_nest server to render with")
	_ = renderCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(renderCmd)
}

// pageRenderer turns resume data into a complete HTML page.
type pageRenderer func(ctx context.Context, data types.ResumeData, t types.TemplateType) ([]byte, error)

func localPage(_ context.Context, data types.ResumeData, t types.TemplateType) ([]byte, error) {
	return rendering.RenderPage(data, t)
}

func remotePage(api *client.Client) pageRenderer {
	return func(ctx context.Context, data types.ResumeData, t types.TemplateType) ([]byte, error) {
		return api.Render(ctx, t, data)
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	templates, err := parseTemplates(renderTemplate)
	if err != nil {
		return err
	}
	data, err := loadResume(renderInput, cmd.InOrStdin())
	if err != nil {
		return err
	}

	render := pageRenderer(localPage)
	if renderRemote != "" {
		api, _ := newRemote(renderRemote)
		render = remotePage(api)
	}
	ctx := commandContext(cmd)

	if len(templates) == 1 {
		page, err := render(ctx, data, templates[0])
		if err != nil {
			return err
		}
		return writeOutput(renderOutput, page, cmd.OutOrStdout())
	}

	if renderOutput == "" {
		return fmt.Errorf("--out directory is required with --template all")
	}
	return renderAll(ctx, render, data, renderOutput, cmd.OutOrStdout())
}

// renderAll writes every template's page into dir concurrently.
func renderAll(ctx context.Context, render pageRenderer, data types.ResumeData, dir string, stdout io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	templates := types.AllTemplates()
	paths := make([]string, len(templates))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range templates {
		g.Go(func() error {
			page, err := render(gctx, data, t)
			if err != nil {
				return fmt.Errorf("%s: %w", t, err)
			}
			paths[i] = filepath.Join(dir, t.Slug()+".html")
			return writeOutput(paths[i], page, nil)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}
	return nil
}
