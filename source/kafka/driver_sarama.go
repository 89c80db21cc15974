package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "dimred/api/proto/v1"
	"dimred/internal/logging"
	"dimred/internal/matrix"
	"dimred/internal/registry"

	"github.com/IBM/sarama"
	"google.golang.org/protobuf/proto"
)

type SaramaDriver struct {
	cfg   Config
	cl    sarama.Client
	group sarama.ConsumerGroup
}

func (d *SaramaDriver) Configure(config Config) error {
	applyDefaults(&config)
	if len(config.Brokers) == 0 || len(config.Topics) == 0 {
		return fmt.Errorf("kafka: brokers and topics are required")
	}
	d.cfg = config

	ver, err := sarama.ParseKafkaVersion(config.Version)
	if err != nil {
		return err
	}
	sc := sarama.NewConfig()
	sc.ClientID = "dimred"
	sc.Version = ver
	sc.Consumer.Return.Errors = true
	sc.Consumer.Offsets.AutoCommit.Enable = true
	sc.Consumer.Offsets.AutoCommit.Interval = config.CommitInterval
	if config.TLSEn {
		sc.Net.TLS.Enable = true
	}
	if config.SASLUser != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.User, sc.Net.SASL.Password = config.SASLUser, config.SASLPass
	}
	switch config.StartFrom {
	case "oldest":
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	default:
		sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	if d.cl, err = sarama.NewClient(config.Brokers, sc); err != nil {
		return err
	}
	if d.group, err = sarama.NewConsumerGroupFromClient(config.GroupID, d.cl); err != nil {
		_ = d.cl.Close()
		return err
	}
	return nil
}

// Run consumes until ctx is cancelled. Each rebalance starts a new session;
// offsets resume from the last message that was fitted or skipped.
func (d *SaramaDriver) Run(ctx context.Context, fit FitFunc) error {
	handler := &groupHandler{fit: fit, backoff: d.cfg.RetryBackoff}
	go d.drainErrors()

	for {
		if err := d.group.Consume(ctx, d.cfg.Topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (d *SaramaDriver) drainErrors() {
	for err := range d.group.Errors() {
		logging.Component("kafka-source").Warn("consumer error", "err", err)
	}
}

func (d *SaramaDriver) Close() error {
	if d.group == nil {
		return nil
	}
	gerr := d.group.Close()
	if cerr := d.cl.Close(); cerr != nil && !errors.Is(cerr, sarama.ErrClosedClient) {
		return errors.Join(gerr, cerr)
	}
	return gerr
}

type groupHandler struct {
	fit     FitFunc
	backoff time.Duration
}

func (*groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := sess.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(ctx, msg); err != nil {
				return err
			}
			sess.MarkMessage(msg, "")
		}
	}
}

// handle returns an error only when the message should be redelivered.
func (h *groupHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	log := logging.Component("kafka-source").With(
		"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

	req := &pb.FitRequest{}
	if err := proto.Unmarshal(msg.Value, req); err != nil {
		log.Warn("skipping undecodable message", "err", err)
		return nil
	}

	err := h.fit(ctx, req)
	switch {
	case err == nil:
		log.Info("fitted from kafka", "rows", len(req.GetVectors()))
		return nil
	case permanent(err):
		log.Warn("skipping rejected training data", "err", err)
		return nil
	}

	log.Error("fit failed; will redeliver", "err", err, "backoff", h.backoff)
	select {
	case <-ctx.Done():
	case <-time.After(h.backoff):
	}
	return err
}

// permanent reports failures that redelivery cannot fix.
func permanent(err error) bool {
	return errors.Is(err, registry.ErrFitFailure) ||
		errors.Is(err, registry.ErrInvalidInput) ||
		errors.Is(err, matrix.ErrRagged)
}

func init() { Register("sarama", func() Adapter { return &SaramaDriver{} }) }
