package kafka

import (
	"fmt"
	"sync"

	pb "dimred/api/proto/v1"
	"dimred/internal/logging"
	"dimred/sink"

	"github.com/IBM/sarama"
	"google.golang.org/protobuf/proto"
)

type Config struct {
	Brokers []string
	Topic   string
	Acks    int16 // 0,1,-1
	Version string
}

type driver struct {
	cfg Config
	p   sarama.AsyncProducer

	once sync.Once
	done chan struct{} // closed when the error drain exits
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config, got %T", c)
	}
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return fmt.Errorf("kafka-sink: brokers and topic are required")
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.ClientID = "dimred"
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
	sc.Producer.Return.Errors = true
	if cfg.Version != "" {
		v, err := sarama.ParseKafkaVersion(cfg.Version)
		if err != nil {
			return fmt.Errorf("kafka-sink: %w", err)
		}
		sc.Version = v
	}

	p, err := sarama.NewAsyncProducer(cfg.Brokers, sc)
	if err != nil {
		return err
	}
	d.start(p)
	return nil
}

func (d *driver) start(p sarama.AsyncProducer) {
	d.p = p
	d.done = make(chan struct{})
	go d.drainErrors()
}

// delivery failures surface here asynchronously
func (d *driver) drainErrors() {
	defer close(d.done)
	log := logging.Component("kafka-sink")
	for perr := range d.p.Errors() {
		log.Error("delivery failed", "topic", perr.Msg.Topic, "err", perr.Err)
	}
}

// Push keys each message by registry generation so all events of one
// generation land on the same partition.
func (d *driver) Push(ev *pb.RegistryEvent) error {
	if d.p == nil {
		return fmt.Errorf("kafka-sink: not configured")
	}
	val, err := proto.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka-sink: %w", err)
	}
	d.p.Input() <- &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Key:   sarama.StringEncoder(ev.GetGeneration()),
		Value: sarama.ByteEncoder(val),
	}
	return nil
}

func (d *driver) Close() error {
	d.once.Do(func() {
		if d.p == nil {
			return
		}
		d.p.AsyncClose()
		<-d.done
	})
	return nil
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
