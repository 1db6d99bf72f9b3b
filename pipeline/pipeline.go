package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"auto_blog_publisher/cover"
	"auto_blog_publisher/generator"
	"auto_blog_publisher/publisher"
)

// Collaborator contracts, kept narrow so each stage can be faked in tests.

type Generator interface {
	GenerateTitles(ctx context.Context, domain string, excluded []string) ([]string, error)
	GenerateDraft(ctx context.Context, title string) (generator.Draft, error)
}

type Renderer interface {
	Render(lines []cover.Line) ([]byte, error)
}

type Publisher interface {
	UploadMedia(ctx context.Context, data []byte, contentType, filename string) (int64, error)
	CreatePost(ctx context.Context, post publisher.Post) (string, error)
}

type Ledger interface {
	Load() ([]string, error)
	Append(title string) error
}

// Pipeline runs one publish job end to end: domain selection, title
// generation with dedup against the ledger, draft generation, featured-image
// synthesis, media upload, block segmentation, post submission, and finally
// the ledger append. Any stage failure short-circuits the run; there are no
// retries in-run (a fresh invocation is the retry unit). An image uploaded
// before a later stage fails is left in place.
type Pipeline struct {
	gen      Generator
	renderer Renderer
	pub      Publisher
	ledger   Ledger

	domains      []string
	categories   []int
	charsPerLine int
	logger       *log.Logger
}

func New(gen Generator, renderer Renderer, pub Publisher, ledger Ledger, domains []string, categories []int, charsPerLine int, logger *log.Logger) (*Pipeline, error) {
	if gen == nil || renderer == nil || pub == nil || ledger == nil {
		return nil, errors.New("pipeline requires generator, renderer, publisher, and ledger")
	}
	if len(domains) == 0 {
		return nil, errors.New("pipeline requires at least one subject domain")
	}
	if charsPerLine <= 0 {
		charsPerLine = 30
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		gen:          gen,
		renderer:     renderer,
		pub:          pub,
		ledger:       ledger,
		domains:      domains,
		categories:   categories,
		charsPerLine: charsPerLine,
		logger:       logger,
	}, nil
}

// Run executes one publish job and returns the public post URL. Progress and
// every abort reason are written to logf so the web trigger can stream them;
// a nil logf falls back to the pipeline's logger.
func (p *Pipeline) Run(ctx context.Context, logf func(string)) (string, error) {
	if logf == nil {
		logf = func(msg string) { p.logger.Print(msg) }
	}

	domain := p.domains[rand.Intn(len(p.domains))]
	logf(fmt.Sprintf("Selected domain: %s", domain))

	published, err := p.ledger.Load()
	if err != nil {
		return "", p.abort(logf, "load history", err)
	}

	titles, err := p.gen.GenerateTitles(ctx, domain, published)
	if err != nil {
		return "", p.abort(logf, "generate titles", err)
	}
	logf(fmt.Sprintf("Model proposed %d title(s)", len(titles)))

	candidates := excludeUsed(titles, published)
	if len(candidates) == 0 {
		return "", p.abort(logf, "select title", fmt.Errorf("%w: %d generated, all excluded or blank", ErrEmptyCandidateSet, len(titles)))
	}
	title := candidates[rand.Intn(len(candidates))]
	logf(fmt.Sprintf("Selected title: %q", title))

	draft, err := p.gen.GenerateDraft(ctx, title)
	if err != nil {
		return "", p.abort(logf, "generate draft", err)
	}
	logf("Draft generated and sanitized")

	lines := cover.LayoutTitle(draft.Title, p.charsPerLine)
	imageBytes, err := p.renderer.Render(lines)
	if err != nil {
		return "", p.abort(logf, "synthesize image", fmt.Errorf("%w: %v", ErrSynthesisFailure, err))
	}
	logf(fmt.Sprintf("Featured image rendered (%d line(s), %d bytes)", len(lines), len(imageBytes)))

	imageName := fmt.Sprintf("featured-image-%s.jpg", uuid.NewString())
	mediaID, err := p.pub.UploadMedia(ctx, imageBytes, "image/jpeg", imageName)
	if err != nil {
		return "", p.abort(logf, "upload image", fmt.Errorf("%w: %v", ErrSynthesisFailure, err))
	}
	logf(fmt.Sprintf("Image uploaded, media id %d", mediaID))

	link, err := p.pub.CreatePost(ctx, publisher.Post{
		Title:      draft.Title,
		Content:    publisher.SegmentBlocks(draft.Body),
		Excerpt:    draft.Excerpt,
		MediaID:    mediaID,
		Categories: p.categories,
	})
	if err != nil {
		return "", p.abort(logf, "submit post", fmt.Errorf("%w: %v", ErrPublicationFailure, err))
	}
	logf(fmt.Sprintf("Post published: %s", link))

	// Fail-soft: the post is already live, so a ledger failure must not
	// fail the run. It is logged so the next run's operator can see the
	// dedup gap.
	if err := p.ledger.Append(draft.Title); err != nil {
		logf(fmt.Sprintf("WARNING: %v: %v", ErrPersistenceFailure, err))
	}

	return link, nil
}

func (p *Pipeline) abort(logf func(string), stage string, err error) error {
	logf(fmt.Sprintf("Aborted at stage %q: %v", stage, err))
	return fmt.Errorf("pipeline: %s: %w", stage, err)
}

// excludeUsed drops blank candidates and any title already in the ledger,
// compared case-insensitively after trimming.
func excludeUsed(titles, published []string) []string {
	var out []string
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		used := false
		for _, prev := range published {
			if strings.EqualFold(title, strings.TrimSpace(prev)) {
				used = true
				break
			}
		}
		if !used {
			out = append(out, title)
		}
	}
	return out
}
