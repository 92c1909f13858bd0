package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-chatedit/internal/config"
	"github.com/goliatone/go-chatedit/internal/logging"
	"github.com/goliatone/go-chatedit/internal/prompt"
	"github.com/goliatone/go-chatedit/pkg/assistant"
	"github.com/goliatone/go-chatedit/pkg/instruction"
	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/renderers/text"
	"github.com/goliatone/go-chatedit/pkg/schema"
	"github.com/goliatone/go-chatedit/pkg/session"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Configuration file (YAML)")
		schemaFlag   = flag.String("schema", "", "Form definition file (YAML); empty uses the built-in questionnaire")
		documentFlag = flag.String("document", "# Project Notes\n\nWelcome! This document will update as we chat.\n", "Initial document content")
		providerFlag = flag.String("provider", "", "Assistant provider (scripted, openai)")
		levelFlag    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *providerFlag != "" {
		cfg.Assistant.Provider = *providerFlag
	}
	if *schemaFlag != "" {
		cfg.Session.SchemaPath = *schemaFlag
	}
	if *levelFlag != "" {
		cfg.Log.Level = *levelFlag
	}

	logger, closeLogs, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			log.Printf("close logs: %v", err)
		}
	}()

	form := schema.Default()
	if cfg.Session.SchemaPath != "" {
		form, err = schema.LoadFile(cfg.Session.SchemaPath)
		if err != nil {
			log.Fatalf("schema: %v", err)
		}
	}

	collab, err := assistant.New(assistant.Config{
		Provider: cfg.Assistant.Provider,
		Model:    cfg.Assistant.Model,
		APIKey:   cfg.Assistant.APIKey,
		BaseURL:  cfg.Assistant.BaseURL,
	})
	if err != nil {
		log.Fatalf("assistant: %v", err)
	}

	sess := session.New(
		session.WithSchema(form),
		session.WithDocument(*documentFlag),
		session.WithAssistant(collab),
		session.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, sess, prompt.NewSurveyDriver(), text.New()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("chat: %v", err)
	}
}

func run(ctx context.Context, sess *session.Session, driver prompt.Driver, renderer render.Renderer) error {
	_ = driver.Info(ctx, "chatedit: type a message, 'fill <field-id>' to answer directly, 'exit' to quit.")
	_ = driver.Info(ctx, "Try 'title: My Project', 'note: remember this', 'autofill example', or 'show form'.")

	for {
		message, err := driver.Input(ctx, "you>", "chat message")
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupted) {
				return nil
			}
			return err
		}
		trimmed := strings.TrimSpace(message)
		switch strings.ToLower(trimmed) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if id, ok := strings.CutPrefix(trimmed, "fill "); ok {
			if err := fillField(ctx, sess, driver, strings.TrimSpace(id)); err != nil {
				if errors.Is(err, prompt.ErrInterrupted) {
					continue
				}
				_ = driver.Info(ctx, fmt.Sprintf("error: %v", err))
				continue
			}
			pane, err := renderer.Render(ctx, sess.View(), render.Options{})
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			_ = driver.Info(ctx, string(pane))
			continue
		}

		reply, err := sess.HandleMessage(ctx, message)
		if err != nil {
			_ = driver.Info(ctx, fmt.Sprintf("error: %v", err))
			continue
		}

		if reply.Text != "" {
			_ = driver.Info(ctx, reply.Text)
		}
		if reply.Applied == 0 {
			_ = driver.Info(ctx, "No changes applied.")
			continue
		}

		pane, err := renderer.Render(ctx, sess.View(), render.Options{})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		_ = driver.Info(ctx, string(pane))
	}
}

// fillField answers one form field directly, prompting with the widget the
// schema declares for it.
func fillField(ctx context.Context, sess *session.Session, driver prompt.Driver, id string) error {
	field, ok := sess.Schema().Field(id)
	if !ok {
		return fmt.Errorf("unknown field %q", id)
	}

	var value string
	switch field.Widget {
	case schema.WidgetSelect:
		index, err := driver.Select(ctx, field.Label, field.Options)
		if err != nil {
			return err
		}
		value = field.Options[index]
	case schema.WidgetTextarea:
		answer, err := driver.TextArea(ctx, field.Label)
		if err != nil {
			return err
		}
		value = answer
	default:
		answer, err := driver.Input(ctx, field.Label, field.Help)
		if err != nil {
			return err
		}
		value = answer
	}

	sess.Apply(instruction.Instruction{Kind: instruction.KindReplace, Field: id, Value: value})
	return nil
}
