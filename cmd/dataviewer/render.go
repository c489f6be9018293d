package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/dataviewer/internal/document"
	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/internal/tailwind"
	"github.com/vango-dev/dataviewer/pkg/store"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

type renderOptions struct {
	output    string
	pretty    bool
	inlineCSS bool
	stdout    bool
}

func renderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render DOCUMENT.yaml",
		Short: "Render a document to HTML",
		Long: `Render a YAML document to a self-contained HTML file.

The output defaults to the document name with an .html extension in
the configured output directory. An s3://bucket/key output uploads
the document instead; credentials come from the AWS_* environment.

With --inline-css the stylesheet is compiled with the Tailwind
standalone CLI and embedded, so the file works offline.

Examples:
  dataviewer render report.yaml
  dataviewer render report.yaml -o out/index.html --pretty
  dataviewer render report.yaml -o s3://reports/2024/index.html
  dataviewer render report.yaml --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file or s3://bucket/key")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the HTML (default from config)")
	cmd.Flags().BoolVar(&opts.inlineCSS, "inline-css", false, "Compile and embed the stylesheet (default from config)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write the HTML to standard output")

	return cmd
}

func runRender(ctx context.Context, a *app, path string, opts renderOptions) error {
	cfg := a.cfg

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	pageOpts := []ui.PageOption{ui.WithCSSRuntime(cfg.CSSRuntimeURL())}
	if opts.pretty || cfg.Output.Pretty {
		pageOpts = append(pageOpts, ui.WithPretty())
	}

	page, err := buildPage(a, doc, pageOpts...)
	if err != nil {
		return err
	}

	if opts.inlineCSS || cfg.Output.InlineCSS {
		html, err := page.RenderContext(ctx)
		if err != nil {
			return err
		}
		binary := tailwind.NewBinary(cfg.Tailwind.Version, cfg.TailwindBinDir())
		binary.Logger = a.logger
		css, err := tailwind.NewCompiler(binary).Compile(ctx, html)
		if err != nil {
			return errors.New("DV104").Wrap(err)
		}
		// Rebuild so the page carries the compiled stylesheet.
		page, err = buildPage(a, doc, append(pageOpts, ui.WithInlineCSS(css))...)
		if err != nil {
			return err
		}
	}

	if opts.stdout {
		_, err := page.WriteTo(os.Stdout)
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".html"
	}

	if strings.HasPrefix(output, "s3://") {
		target, err := store.ParseTarget(output)
		if err != nil {
			return errors.New("DV102").WithDetail(output)
		}
		st, err := store.Open(target, store.S3Options{
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return errors.New("DV102").WithDetail(output).Wrap(err)
		}
		location, err := page.Publish(ctx, st, target.Name)
		if err != nil {
			return err
		}
		success("Published %s", location)
		return nil
	}

	output = cfg.OutputPath(output)
	if err := page.Save(output); err != nil {
		return err
	}
	success("Rendered %s", output)
	if files := doc.Files(); len(files) > 0 {
		info("data: %s", strings.Join(files, ", "))
	}
	return nil
}

// buildPage builds doc in a fresh session.
func buildPage(a *app, doc *document.Document, opts ...ui.PageOption) (*ui.Page, error) {
	s := ui.NewSession(ui.WithLogger(a.logger))
	page, err := doc.Build(s, opts...)
	if err != nil {
		return nil, err
	}
	if len(page.Components()) == 0 {
		warn("%s has no body", doc.Path)
	}
	return page, nil
}
