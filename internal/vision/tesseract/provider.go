package tesseract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/vision"
)

const ProviderName = "tesseract"

// Provider runs the classical OCR pipeline: fetch the signed image refs,
// shell out to the tesseract binary for each side, then map the normalized
// text onto the card fields with regex heuristics.
type Provider struct {
	cfg    common.OCRConfig
	client *http.Client
	runner Runner
}

func NewProvider(cfg common.OCRConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		runner: execRunner{},
	}
}

func (p *Provider) Name() string { return ProviderName }

func (p *Provider) Analyze(ctx context.Context, in vision.Input) (vision.Result, error) {
	if in.FrontURL == "" {
		return vision.Result{}, permanent(fmt.Errorf("missing front image ref"))
	}

	tmpDir, err := os.MkdirTemp("", "cardscan-ocr-*")
	if err != nil {
		return vision.Result{}, retryable(fmt.Errorf("create temp dir: %w", err))
	}
	defer os.RemoveAll(tmpDir)

	frontText, err := p.recognize(ctx, in.FrontURL, filepath.Join(tmpDir, "front"))
	if err != nil {
		return vision.Result{}, err
	}

	var backText string
	if in.BackURL != "" {
		backText, err = p.recognize(ctx, in.BackURL, filepath.Join(tmpDir, "back"))
		if err != nil {
			return vision.Result{}, err
		}
	}

	text := frontText
	if backText != "" {
		text = frontText + "\n\n" + backText
	}

	fields, conf := mapFields(text)
	if len(fields) == 0 {
		return vision.Result{}, permanent(fmt.Errorf("no recognizable fields in OCR output"))
	}
	if _, ok := fields[vision.FieldName]; !ok {
		return vision.Result{}, permanent(fmt.Errorf("card name not found in OCR output"))
	}

	return vision.Result{
		Fields:          fields,
		FieldConfidence: conf,
		ProviderName:    ProviderName,
	}, nil
}

// recognize fetches one image to disk and returns its normalized OCR text.
func (p *Provider) recognize(ctx context.Context, url, base string) (string, error) {
	imgPath := base + ".img"
	if err := p.fetch(ctx, url, imgPath); err != nil {
		return "", err
	}

	args := []string{imgPath, "stdout", "-l", p.cfg.TesseractLang}
	if p.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", p.cfg.TessdataDir)
	}

	stdout, stderr, err := p.runner.Run(ctx, p.cfg.Tesseract, args...)
	if err != nil {
		if ctx.Err() != nil {
			return "", retryable(fmt.Errorf("tesseract: %w", ctx.Err()))
		}
		return "", permanent(fmt.Errorf("tesseract: %w: %s", err, truncate(string(stderr), 512)))
	}

	text := normalize(string(stdout))
	if strings.TrimSpace(text) == "" {
		return "", permanent(fmt.Errorf("tesseract produced no text for %s", filepath.Base(imgPath)))
	}
	return text, nil
}

func (p *Provider) fetch(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return permanent(fmt.Errorf("build fetch request: %w", err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return retryable(fmt.Errorf("fetch image: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return retryable(fmt.Errorf("fetch image: status %d", resp.StatusCode))
	default:
		return permanent(fmt.Errorf("fetch image: status %d", resp.StatusCode))
	}

	f, err := os.Create(dst)
	if err != nil {
		return retryable(fmt.Errorf("write image: %w", err))
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return retryable(fmt.Errorf("write image: %w", err))
	}
	return nil
}

func retryable(err error) error {
	return &vision.ProviderError{Provider: ProviderName, Retryable: true, Err: err}
}

func permanent(err error) error {
	return &vision.ProviderError{Provider: ProviderName, Retryable: false, Err: err}
}
