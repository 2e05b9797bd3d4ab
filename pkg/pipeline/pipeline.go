package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/noperator/ncx/pkg/config"
	"github.com/noperator/ncx/pkg/llm"
	"github.com/noperator/ncx/pkg/logging"
	"github.com/noperator/ncx/pkg/relay"
)

// Explainer yields a plain-language explanation for one completed netcat
// run. Failures are recovered by the pipeline into a user-facing notice.
type Explainer interface {
	Explain(ctx context.Context, req llm.Request) (string, error)
}

// Pipeline runs one relay-and-explain pass: run the real netcat with the
// given arguments, request an explanation of the captured output, present
// both.
type Pipeline struct {
	runner    *relay.Runner
	explainer Explainer
	logger    *slog.Logger
	stdout    io.Writer
}

// New builds the pipeline from process-wide configuration. It fails when
// the real netcat binary cannot be located; nothing is executed or
// explained in that case.
func New(cfg *config.Config) (*Pipeline, error) {
	ncPath, err := relay.Locate(cfg.NCPath)
	if err != nil {
		return nil, err
	}

	explainer := llm.NewClient(llm.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})

	return &Pipeline{
		runner:    relay.NewRunner(ncPath),
		explainer: explainer,
		logger:    logging.NewLoggerFromEnv(),
		stdout:    os.Stdout,
	}, nil
}

// Run executes one pass and returns the exit code the process should
// terminate with: netcat's own exit code whenever netcat ran, regardless of
// explanation success. A returned error means netcat could not be run at
// all; no explanation is attempted then.
func (p *Pipeline) Run(ctx context.Context, args []string) (int, error) {
	result, err := p.runner.Run(args)
	if err != nil {
		return 0, err
	}

	command := p.runner.CommandLine(args)

	p.logger.Debug("relay complete",
		"component", "relay",
		"command", command,
		"exit_code", result.ExitCode,
		"output_bytes", len(result.Output))

	req := llm.Request{
		Command:  command,
		ExitCode: result.ExitCode,
		Output:   result.Output,
	}

	explanation, err := p.explainer.Explain(ctx, req)
	if err != nil {
		p.logger.Warn("AI explanation failed",
			"component", "explainer",
			"error", err)
		explanation = fmt.Sprintf("AI explanation unavailable: %v", err)
	}

	p.present(result.Output, explanation)

	return result.ExitCode, nil
}
