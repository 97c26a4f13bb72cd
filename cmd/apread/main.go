// Command apread reads a fediverse account's public feed from the
// terminal. It resolves an id@domain handle through WebFinger to the
// account's ActivityPub outbox and prints the first page of posts.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/esmevane/apread/pkg/apclient"
	"github.com/esmevane/apread/pkg/apub"
	"github.com/esmevane/apread/pkg/config"
	"github.com/esmevane/apread/pkg/render"
	"github.com/esmevane/apread/pkg/webfinger"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Read     ReadCmd     `cmd:"" default:"withargs" help:"Print the latest posts for a handle"`
	Discover DiscoverCmd `cmd:"" help:"Show the resolution chain for a handle"`
	Open     OpenCmd     `cmd:"" help:"Open a handle's profile page in the browser"`
}

type ReadCmd struct {
	Handle string `arg:"" help:"Fediverse handle (e.g., user@example.social)"`
	Width  uint   `short:"w" help:"Wrap column for post bodies (overrides config)"`
	Save   string `short:"s" placeholder:"DIR" help:"Also save each post as a markdown file under DIR"`
}

type DiscoverCmd struct {
	Handle string `arg:"" help:"Fediverse handle (e.g., user@example.social)"`
	Raw    bool   `short:"r" help:"Dump the raw JSON of every stage"`
	Expand bool   `short:"e" help:"Print the actor document with JSON-LD expansion applied"`
}

type OpenCmd struct {
	Handle string `arg:"" help:"Fediverse handle (e.g., user@example.social)"`
}

func main() {
	appCtx := context.Background()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	configDir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := kong.Parse(&CLI,
		kong.Name("apread"),
		kong.Description("A command-line feed reader for ActivityPub handles"),
		kong.UsageOnError(),
		kong.BindTo(appCtx, (*context.Context)(nil)),
		kong.Bind(cfg),
		kong.Bind(logger),
	)

	if CLI.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the pipeline client from config: transport timeout
// plus an optional bearer token for authorized-fetch servers.
func newClient(cfg config.Config, log *logrus.Logger) *apclient.Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.AccessToken != "" {
		return apclient.NewWithToken(httpClient, log, cfg.AccessToken)
	}
	return apclient.New(httpClient, log)
}

func (cmd *ReadCmd) Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	handle, err := webfinger.ParseHandle(cmd.Handle)
	if err != nil {
		return err
	}

	client := newClient(cfg, log)
	res, err := client.Resolve(ctx, handle)
	if err != nil {
		return err
	}

	posts := render.ExtractPosts(res.Page)

	width := cfg.Width
	if cmd.Width > 0 {
		width = cmd.Width
	}
	if err := render.Render(os.Stdout, handle, posts, width); err != nil {
		return err
	}

	if cmd.Save != "" {
		if err := render.WriteArchive(afero.NewOsFs(), cmd.Save, handle, posts); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"dir":   cmd.Save,
			"posts": len(posts),
		}).Info("archive written")
	}

	return nil
}

func (cmd *DiscoverCmd) Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	handle, err := webfinger.ParseHandle(cmd.Handle)
	if err != nil {
		return err
	}

	client := newClient(cfg, log)
	res, err := client.Resolve(ctx, handle)
	if err != nil {
		return err
	}

	if cmd.Raw {
		stages := []struct {
			name string
			body json.RawMessage
		}{
			{"webfinger", res.WebFingerRaw},
			{"actor", res.ActorRaw},
			{"outbox", res.IndexRaw},
			{"page", res.PageRaw},
		}
		for _, stage := range stages {
			fmt.Printf("--- %s ---\n", stage.name)
			if err := printJSON(stage.body); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Printf("Handle: %s\n", handle)
	fmt.Printf("WebFinger URL: %s\n", res.WebFingerURL)
	fmt.Printf("Actor URL: %s\n", res.ActorURL)
	if res.Actor.PreferredUsername != "" {
		fmt.Printf("Username: %s\n", res.Actor.PreferredUsername)
	}
	if res.Actor.Name != "" {
		fmt.Printf("Display name: %s\n", res.Actor.Name)
	}
	fmt.Printf("Outbox: %s\n", res.Actor.Outbox)
	fmt.Printf("First page: %s\n", res.Index.First)
	fmt.Printf("Total items: %d\n", res.Index.TotalItems)
	if template := res.WebFinger.SubscribeTemplate(); template != "" {
		fmt.Printf("Remote follow: %s\n", template)
	}

	if cmd.Expand {
		expanded, err := apub.Expand(res.ActorRaw, client.HTTPClient())
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(expanded, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("\nExpanded actor document:\n%s\n", data)
	}

	return nil
}

func (cmd *OpenCmd) Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	handle, err := webfinger.ParseHandle(cmd.Handle)
	if err != nil {
		return err
	}

	client := newClient(cfg, log)
	doc, err := client.FetchWebFinger(ctx, handle)
	if err != nil {
		return err
	}

	href := doc.ProfileHref()
	if href == "" {
		return fmt.Errorf("no profile page link for %s", handle)
	}

	fmt.Printf("Opening %s\n", href)
	return browser.OpenURL(href)
}

func printJSON(raw json.RawMessage) error {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	fmt.Println(out.String())
	return nil
}
