package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/y-yagi/hotspots"
	"github.com/y-yagi/hotspots/aggregator"
	"github.com/y-yagi/hotspots/config"
	"github.com/y-yagi/hotspots/fetcher"
	"github.com/y-yagi/hotspots/output"
	"github.com/y-yagi/hotspots/renderer"
)

const app = config.App

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, outStream, errStream io.Writer) (exitCode int) {
	var configPath string
	var outputPath string

	flags := flag.NewFlagSet(app, flag.ContinueOnError)
	flags.SetOutput(errStream)
	flags.StringVar(&configPath, "c", "", "load configuration from `FILE`")
	flags.StringVar(&outputPath, "o", "", "write the page to `FILE`")
	if err := flags.Parse(args[1:]); err != nil {
		exitCode = 2
		return
	}

	log := newLogger(errStream)

	cfg := config.NewLoader(hotspots.DefaultConfig(), log).Load(configPath)
	if len(outputPath) == 0 {
		outputPath = cfg.OutputPath()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := fetcher.NewHTTPClient(cfg.CachePath, cfg.TimeoutDuration())
	agg := aggregator.New(fetcher.New(client, log), cfg.SkipPatterns, log)
	digest := agg.Aggregate(ctx, cfg.Feeds, cfg.MaxEntriesPerFeed)

	html, err := renderer.NewHTML()
	if err != nil {
		fmt.Fprintf(errStream, "%v\n", err)
		exitCode = 1
		return
	}

	page, err := renderPage(html, cfg.SiteTitle, time.Now(), digest)
	if err != nil {
		fmt.Fprintf(errStream, "%v\n", err)
		exitCode = 1
		return
	}

	if err = output.Write(outputPath, page); err != nil {
		fmt.Fprintf(errStream, "%v\n", err)
		exitCode = 1
		return
	}

	fmt.Fprintf(outStream, "Successfully generated %s\n", outputPath)
	return
}

func renderPage(r renderer.Renderer, title string, at time.Time, digest *hotspots.Digest) (string, error) {
	return r.Render(renderer.Page{SiteTitle: title, GeneratedAt: at, Digest: digest})
}

func newLogger(errStream io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(errStream)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if os.Getenv("HOTSPOTS_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
