package main

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/httpauth"
	"github.com/zx06/picred/internal/output"
)

// RequestFlags holds the flags for the request command
type RequestFlags struct {
	Bootstrap bool
	Timeout   time.Duration
}

// NewRequestCommand creates the request command
func NewRequestCommand(w *output.Writer) *cobra.Command {
	flags := &RequestFlags{}

	cmd := &cobra.Command{
		Use:   "request [URL]",
		Short: "Send one authenticated GET request (relative URLs use base_url)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd.Context(), args[0], flags, w)
		},
	}

	cmd.Flags().BoolVar(&flags.Bootstrap, "bootstrap", false, "Prompt and store credentials when none are found")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", httpauth.DefaultTimeout, "Request timeout (0 disables)")

	return cmd
}

func runRequest(ctx context.Context, rawURL string, flags *RequestFlags, w *output.Writer) error {
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}
	target, xe := resolveURL(GlobalConfig.Resolved.BaseURL, rawURL)
	if xe != nil {
		return xe
	}
	timeout, xe := requestTimeout(flags.Timeout)
	if xe != nil {
		return xe
	}

	opts := secretOptions()
	if flags.Bootstrap {
		opts.Bootstrap = true
		opts.Prompter = newPrompter()
	}
	s, xe := httpauth.RequestsSession(GlobalConfig.AccountStr, opts)
	if xe != nil {
		return xe
	}
	s.Timeout = timeout

	if ctx == nil {
		ctx = context.Background()
	}
	resp, xe := httpauth.Get(ctx, s.Client, target)
	if xe != nil {
		return xe
	}
	return w.WriteOK(format, resp)
}

// requestTimeout validates --timeout; 0 means no client timeout, as with http.Client
func requestTimeout(d time.Duration) (time.Duration, *errors.XError) {
	if d < 0 {
		return 0, errors.New(errors.CodeCfgInvalid, "timeout must not be negative", map[string]any{"timeout": d.String()})
	}
	return d, nil
}

// resolveURL joins a relative path onto base; absolute URLs are returned unchanged
func resolveURL(base, raw string) (string, *errors.XError) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(errors.CodeCfgInvalid, "invalid url", map[string]any{"url": raw}, err)
	}
	if u.IsAbs() {
		return raw, nil
	}
	if base == "" {
		return "", errors.New(errors.CodeCfgInvalid, "relative url requires base_url in config", map[string]any{"url": raw})
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(raw, "/"), nil
}
