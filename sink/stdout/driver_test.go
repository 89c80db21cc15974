package stdout

import (
	"bufio"
	"bytes"
	"testing"

	pb "dimred/api/proto/v1"
	"dimred/sink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func TestPushWritesOneLinePerEvent(t *testing.T) {
	a, err := sink.NewAdapter("stdout")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Configure(Config{Output: &buf}))

	events := []*pb.RegistryEvent{
		{Id: "1", Type: "fit", Generation: "g1", Pipelines: []string{"pca"}, Rows: 10, Cols: 4},
		{Id: "2", Type: "load", Generation: "g1"},
	}
	for _, ev := range events {
		require.NoError(t, a.Push(ev))
	}
	require.NoError(t, a.Close())
	assert.Error(t, a.Push(events[0]))

	sc := bufio.NewScanner(&buf)
	var i int
	for sc.Scan() {
		var got pb.RegistryEvent
		require.NoError(t, protojson.Unmarshal(sc.Bytes(), &got))
		assert.True(t, proto.Equal(events[i], &got))
		i++
	}
	assert.Equal(t, len(events), i)
}

func TestConfigureRejectsWrongType(t *testing.T) {
	d := &driver{}
	assert.Error(t, d.Configure("stdout"))
}
