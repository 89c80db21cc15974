// dimred/sink/stdout/driver.go
package stdout

import (
	"fmt"
	"io"
	"os"
	"sync"

	pb "dimred/api/proto/v1"
	"dimred/sink"

	"google.golang.org/protobuf/encoding/protojson"
)

/* ────────── public config ────────── */
type Config struct {
	Output io.Writer // nil → os.Stdout
}

/* ────────── driver ────────── */
type driver struct {
	mu     sync.Mutex // one line at a time
	out    io.Writer
	closed bool
}

var marshal = protojson.MarshalOptions{UseProtoNames: true}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.out = c.Output
	if d.out == nil {
		d.out = os.Stdout
	}
	return nil
}

func (d *driver) Push(ev *pb.RegistryEvent) error {
	line, err := marshal.Marshal(ev)
	if err != nil {
		return fmt.Errorf("stdout-sink: %w", err)
	}
	line = append(line, '\n')

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return fmt.Errorf("stdout-sink: closed")
	}
	_, err = d.out.Write(line)
	return err
}

func (d *driver) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{out: os.Stdout} })
}
