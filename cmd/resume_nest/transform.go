package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/client"
	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/editor"
	"github.com/jonathan/resume-nest/internal/types"
)

var transformCmd = &cobra.Command{
	Use:   "transform [text]",
	Short: "Apply a text action to a piece of resume text",
	Long: `Apply FIX_SPELLING, ENHANCE_TONE or GENERATE_SUMMARY to text given as the
argument, or read from --in. On any provider failure the input is printed unchanged.

With --resume the action is applied to the resume's summary and the updated resume
JSON is printed. With --remote the action runs on a server, authenticated with the
token in RESUME_NEST_TOKEN.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

var (
	transformAction     string
	transformInput      string
	transformResume     string
	transformBackground string
	transformModel      string
	transformRemote     string
)

func init() {
	transformCmd.Flags().StringVarP(&transformAction, "action", "a", "", "Action: FIX_SPELLING, ENHANCE_TONE or GENERATE_SUMMARY (required)")
	transformCmd.Flags().StringVarP(&transformInput, "in", "i", "", "Read text from this file, or - for stdin")
	transformCmd.Flags().StringVar(&transformResume, "resume", "", "Rewrite the summary of this resume data JSON")
	transformCmd.Flags().StringVar(&transformBackground, "context", "", "Background for GENERATE_SUMMARY, e.g. role and skills")
	transformCmd.Flags().StringVar(&transformModel, "model", "", "Override the provider model")
	transformCmd.Flags().StringVar(&transformRemote, "remote", "", "Base URL of a resume_nest server to transform with")
	_ = transformCmd.MarkFlagRequired("action")
	rootCmd.AddCommand(transformCmd)
}

// textTransformer applies action to text. It returns text unchanged, with the
// error, when the action could not run.
type textTransformer func(ctx context.Context, text string, action types.AIAction, background string) (string, error)

func remoteTransformer(api *client.Client, session *client.Session) textTransformer {
	return func(ctx context.Context, text string, action types.AIAction, background string) (string, error) {
		return api.Transform(ctx, session, text, action, background)
	}
}

func runTransform(cmd *cobra.Command, args []string) error {
	action, err := types.ParseAIAction(transformAction)
	if err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{len(args) == 1, transformInput != "", transformResume != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("give text as an argument, with --in or with --resume, not more than one")
	}

	ctx := commandContext(cmd)
	transform, closeFn, err := buildTransformer(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if transformResume != "" {
		data, err := loadResume(transformResume, cmd.InOrStdin())
		if err != nil {
			return err
		}
		updated, err := transformSummary(ctx, transform, data, action, transformBackground)
		raw, merr := json.MarshalIndent(updated, "", "  ")
		if merr != nil {
			return fmt.Errorf("failed to encode resume: %w", merr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return err
	}

	var text string
	switch {
	case len(args) == 1:
		text = args[0]
	case transformInput != "":
		raw, err := readInput(transformInput, cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = strings.TrimRight(string(raw), "\n")
	}

	out, err := transform(ctx, text, action, transformBackground)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// buildTransformer returns the remote transformer when --remote is set,
// otherwise the configured in-process provider.
func buildTransformer(ctx context.Context) (textTransformer, func(), error) {
	if transformRemote != "" {
		return remoteTransformer(newRemote(transformRemote)), func() {}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	local, closeFn, err := newTransformer(ctx, cfg, transformModel, config.NewLogger(cfg.Log))
	if err != nil {
		return nil, nil, err
	}
	return func(ctx context.Context, text string, action types.AIAction, background string) (string, error) {
		return local.Transform(ctx, text, action, background), nil
	}, closeFn, nil
}

// transformSummary applies action to the resume's summary through an editor session.
// On failure the resume comes back unchanged.
func transformSummary(ctx context.Context, transform textTransformer, data types.ResumeData, action types.AIAction, background string) (types.ResumeData, error) {
	session := editor.NewSessionFrom(data, types.DefaultTemplate)
	out, err := transform(ctx, session.Snapshot().Summary, action, background)
	if err != nil {
		return session.Snapshot(), err
	}
	session.SetSummary(out)
	return session.Snapshot(), nil
}
