package engine

import (
	"fmt"

	"dimred/internal/config"
	"dimred/sink"
	sinkkafka "dimred/sink/kafka"
	"dimred/sink/stdout"
)

func openSinks(cfg config.EventsCfg) (*sink.Fanout, error) {
	f := sink.NewFanout()
	for _, name := range cfg.Sinks {
		a, err := sink.NewAdapter(name)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		switch name {
		case "stdout":
			err = a.Configure(stdout.Config{})
		case "kafka":
			err = a.Configure(sinkkafka.Config{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
				Acks:    cfg.Kafka.Acks,
				Version: cfg.Kafka.Version,
			})
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("sink %s: %w", name, err)
		}
		f.Add(name, a)
	}
	return f, nil
}
