package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"order-review-svc/internal/auth"
	"order-review-svc/internal/service"
)

// HeaderAuthorization carries "Bearer <token>" for the customer issuing a
// status command, the same token the HTTP API accepts.
const HeaderAuthorization = "authorization"

// ErrUnauthenticated marks a command without a valid customer token. Such
// commands are never retried.
var ErrUnauthenticated = errors.New("status command is not authenticated")

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type CommandHandler interface {
	HandleStatusCommand(ctx context.Context, callerIdentity string, payload []byte) error
}

type TokenParser interface {
	Parse(raw string) (auth.Claims, error)
}

// Consumer applies status commands. A message is committed once it is
// handled, or once it has been parked in the DLQ.
type Consumer struct {
	reader  messageReader
	dlq     messageWriter
	handler CommandHandler
	tokens  TokenParser
	cfg     Config
	now     func() time.Time
}

func NewConsumer(cfg Config, tokens TokenParser, h CommandHandler) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})
	var w messageWriter
	if cfg.DLQ != "" {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return newConsumer(cfg, r, w, tokens, h)
}

func newConsumer(cfg Config, r messageReader, dlq messageWriter, tokens TokenParser, h CommandHandler) *Consumer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}
	return &Consumer{reader: r, dlq: dlq, handler: h, tokens: tokens, cfg: cfg, now: time.Now}
}

// Subscribe blocks until ctx is cancelled.
func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			logrus.WithError(err).Warn("kafka fetch")
			if !sleep(ctx, 300*time.Millisecond) {
				return nil
			}
			continue
		}

		log := logrus.WithFields(logrus.Fields{
			"topic":     m.Topic,
			"partition": m.Partition,
			"offset":    m.Offset,
		})
		log.Debug("status command fetched")

		attempts, last := c.handle(ctx, m)
		if last != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !c.park(ctx, m, attempts, last, log) {
				continue
			}
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("kafka commit")
		}
	}
}

// handle runs the command with retries and returns the number of attempts
// and the last error, nil on success.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) (int, error) {
	caller, err := c.authenticate(m)
	if err != nil {
		return 0, err
	}

	var last error
	attempt := 0
	for ; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 && !sleep(ctx, backoff(attempt, c.cfg.BaseBackoff)) {
			return attempt, ctx.Err()
		}
		last = c.handler.HandleStatusCommand(ctx, caller, m.Value)
		if last == nil {
			return attempt + 1, nil
		}
		if isNonRetryable(last) {
			return attempt + 1, last
		}
	}
	return attempt, last
}

// authenticate returns the email of the customer whose token the message
// carries.
func (c *Consumer) authenticate(m kafka.Message) (string, error) {
	var raw string
	for _, h := range m.Headers {
		if strings.EqualFold(h.Key, HeaderAuthorization) {
			raw = string(h.Value)
		}
	}
	token, ok := strings.CutPrefix(raw, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: no bearer token", ErrUnauthenticated)
	}
	claims, err := c.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Role != auth.RoleCustomer {
		return "", fmt.Errorf("%w: role %s", ErrUnauthenticated, claims.Role)
	}
	return claims.Subject, nil
}

// park writes the message to the DLQ. It returns false when the message must
// not be committed yet.
func (c *Consumer) park(ctx context.Context, m kafka.Message, attempts int, reason error, log *logrus.Entry) bool {
	if c.dlq == nil {
		log.WithError(reason).Warn("DLQ disabled, dropping status command")
		return true
	}

	headers := make([]kafka.Header, 0, len(m.Headers)+5)
	for _, h := range m.Headers {
		if !strings.EqualFold(h.Key, HeaderAuthorization) {
			headers = append(headers, h)
		}
	}
	headers = append(headers,
		kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(reason))},
		kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
		kafka.Header{Key: "x-dlq-ts", Value: []byte(c.now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "x-dlq-source-topic", Value: []byte(c.cfg.Topic)},
		kafka.Header{Key: "x-dlq-group", Value: []byte(c.cfg.GroupID)},
	)
	if err := c.dlq.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}); err != nil {
		log.WithError(err).Error("write to DLQ")
		sleep(ctx, 500*time.Millisecond)
		return false
	}
	log.WithError(reason).WithField("attempts", attempts).Warn("status command sent to DLQ")
	return true
}

func (c *Consumer) Close() error {
	var first error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			first = err
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	d := base * (1 << (n - 1))
	if d > 5*time.Second || d <= 0 {
		d = 5 * time.Second
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

// isNonRetryable is true for every business rejection, bad payloads and
// missing credentials.
func isNonRetryable(err error) bool {
	return service.IsDomain(err) || errors.Is(err, ErrUnauthenticated)
}
