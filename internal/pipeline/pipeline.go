package pipeline

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sant0-9/nebulaextract/internal/intent"
	"github.com/sant0-9/nebulaextract/internal/llm"
	"github.com/sant0-9/nebulaextract/internal/logger"
	"github.com/sant0-9/nebulaextract/internal/prompts"
	"github.com/sant0-9/nebulaextract/internal/tui/styles"
)

const (
	EmptyInputMessage = "No text recieved. Try again."
	NotJSONNotice     = "Response received is not pure JSON (the upper still helps in debbuging)."
)

// Generator is the remote model call. *llm.GeminiClient implements it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (*llm.GenerateResponse, error)
}

// Outcome describes one run. Skipped is set when there was no input.
type Outcome struct {
	Skipped bool
	Text    string
	Result  ParseResult
}

// Pipeline runs client text through prompt, model, extraction and parsing,
// printing each section to out.
type Pipeline struct {
	client Generator
	out    io.Writer
	log    *zap.Logger
}

func New(client Generator, out io.Writer, log *zap.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		client: client,
		out:    out,
		log:    log.Named("pipeline"),
	}
}

// Run processes clientText. Empty text prints a notice and makes no remote
// call. Remote failures are returned before anything else is printed; output
// that is not JSON is reported in the Outcome, not as an error.
func (p *Pipeline) Run(ctx context.Context, clientText string) (*Outcome, error) {
	if clientText == "" {
		fmt.Fprintln(p.out, EmptyInputMessage)
		return &Outcome{Skipped: true}, nil
	}

	prompt := prompts.BuildExtractionPrompt(clientText)
	p.log.Debug("prompt built", zap.Int("text_len", len(clientText)), zap.Int("prompt_len", len(prompt)))

	resp, err := p.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	text := CleanJSONText(llm.ExtractText(resp))

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, styles.SectionTitle("Model Response"))
	fmt.Fprintln(p.out, text)

	result := ParseJSON(text)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, styles.SectionTitle("Validating JSON"))
	if result.IsJSON() {
		fmt.Fprintln(p.out, result.Parsed.Pretty)
		p.logExtraction(result.Parsed.Extraction)
	} else {
		fmt.Fprintln(p.out, styles.Notice.Render(NotJSONNotice))
		p.log.Warn("model output is not pure JSON", zap.Int("text_len", len(text)))
	}

	return &Outcome{Text: text, Result: result}, nil
}

func (p *Pipeline) logExtraction(ex *intent.Extraction) {
	if ex == nil {
		p.log.Info("parsed JSON is not an extraction object")
		return
	}
	fields := []zap.Field{
		zap.Stringp("intent", ex.Intent),
		zap.Bool("has_email", ex.Entities.Email != nil),
		zap.Bool("has_phone", ex.Entities.Phone != nil),
	}
	if ex.Priority != nil {
		fields = append(fields, zap.String("priority", string(*ex.Priority)))
	}
	p.log.Info("extraction parsed", fields...)
	if ex.Priority != nil && !ex.Priority.Valid() {
		p.log.Warn("unexpected priority value", zap.String("priority", string(*ex.Priority)))
	}
}
