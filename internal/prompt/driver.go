// Package prompt abstracts terminal prompting so the REPL can be tested
// without a real terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted reports that the user cancelled the prompt (Ctrl-C).
var ErrInterrupted = errors.New("prompt: interrupted")

// Driver is the prompting surface the REPL needs.
type Driver interface {
	Input(ctx context.Context, message, placeholder string) (string, error)
	TextArea(ctx context.Context, message string) (string, error)
	Select(ctx context.Context, message string, options []string) (int, error)
	Info(ctx context.Context, message string) error
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by AlecAivazis/survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, message, placeholder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    placeholder,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (surveyDriver) TextArea(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: message,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (surveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var index int
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, translate(err)
	}
	return index, nil
}

func (surveyDriver) Info(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, message)
	return err
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
