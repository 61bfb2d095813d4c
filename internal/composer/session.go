package composer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"roomviz/internal/domain"
)

// ErrStale is returned to a caller whose response arrived after a newer
// request had been issued. Its result is discarded.
var ErrStale = errors.New("stale response discarded")

// Sender delivers a composed request. *Client implements it.
type Sender interface {
	Edit(ctx context.Context, req domain.EditRequest) (*domain.EditResponse, error)
}

// Result is a displayed image together with the sequence number of the
// request that produced it.
type Result struct {
	Seq   uint64
	Image domain.GeneratedImage
}

// Session owns the single displayed result. Every Generate call takes a new
// sequence number and only the latest issued request may replace the result.
type Session struct {
	composer *Composer
	sender   Sender
	logger   zerolog.Logger

	issued   atomic.Uint64
	inflight atomic.Int64

	mu      sync.Mutex
	current *Result
}

func NewSession(c *Composer, sender Sender, logger zerolog.Logger) *Session {
	return &Session{composer: c, sender: sender, logger: logger}
}

// Generate composes sel, sends it and applies the result if no newer request
// was issued meanwhile. A missing base photo fails before a sequence number
// is taken or anything is sent. Failures never touch the displayed result.
func (s *Session) Generate(ctx context.Context, sel Selection) (*Result, error) {
	req, err := s.composer.Compose(ctx, sel)
	if err != nil {
		return nil, err
	}

	seq := s.issued.Add(1)
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	resp, err := s.sender.Edit(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Uint64("seq", seq).Msg("edit request failed")
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(resp.Image)
	if err != nil {
		s.logger.Error().Err(err).Uint64("seq", seq).Msg("edit response is not valid base64")
		return nil, fmt.Errorf("%w: decode image: %v", domain.ErrTransport, err)
	}
	mime := resp.MIMEType
	if mime == "" {
		mime = domain.DefaultImageMIME
	}
	return s.apply(seq, domain.GeneratedImage{Data: data, MIMEType: mime})
}

func (s *Session) apply(seq uint64, img domain.GeneratedImage) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if latest := s.issued.Load(); seq != latest {
		s.logger.Debug().Uint64("seq", seq).Uint64("latest", latest).Msg("discarding stale edit result")
		return nil, ErrStale
	}
	s.current = &Result{Seq: seq, Image: img}
	out := *s.current
	return &out, nil
}

// Current returns the displayed result, or nil before the first success.
func (s *Session) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// Busy reports whether any request is still in flight.
func (s *Session) Busy() bool {
	return s.inflight.Load() > 0
}

// Issued is the sequence number of the most recently issued request.
func (s *Session) Issued() uint64 {
	return s.issued.Load()
}
