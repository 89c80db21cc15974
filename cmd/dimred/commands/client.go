package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	pb "dimred/api/proto/v1"
	"dimred/internal/transport"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func FitAction(ctx context.Context, cmd *cli.Command) error {
	rows, err := readInput(cmd)
	if err != nil {
		return err
	}
	return withClient(ctx, cmd, func(ctx context.Context, c *transport.Client) error {
		if _, err := c.Fit(ctx, &pb.FitRequest{Vectors: rows}); err != nil {
			return rpcErr("fit", err)
		}
		fmt.Fprintf(cmd.Root().Writer, "fitted %d vectors\n", len(rows))
		return nil
	})
}

func TransformAction(ctx context.Context, cmd *cli.Command) error {
	rows, err := readInput(cmd)
	if err != nil {
		return err
	}
	return withClient(ctx, cmd, func(ctx context.Context, c *transport.Client) error {
		resp, err := c.Transform(ctx, &pb.TransformRequest{ModelName: cmd.String("model"), Vectors: rows})
		if err != nil {
			return rpcErr("transform", err)
		}
		out := make([][]float32, len(resp.GetVectors()))
		for i, v := range resp.GetVectors() {
			out[i] = v.GetValues()
			if out[i] == nil {
				out[i] = []float32{}
			}
		}
		return json.NewEncoder(cmd.Root().Writer).Encode(out)
	})
}

func LoadAction(ctx context.Context, cmd *cli.Command) error {
	return withClient(ctx, cmd, func(ctx context.Context, c *transport.Client) error {
		if _, err := c.Load(ctx, &emptypb.Empty{}); err != nil {
			return rpcErr("load", err)
		}
		fmt.Fprintln(cmd.Root().Writer, "registry loaded")
		return nil
	})
}

func PipelinesAction(ctx context.Context, cmd *cli.Command) error {
	return withClient(ctx, cmd, func(ctx context.Context, c *transport.Client) error {
		list, err := c.ListPipelines(ctx, &emptypb.Empty{})
		if err != nil {
			return rpcErr("pipelines", err)
		}
		w := cmd.Root().Writer
		fmt.Fprintf(w, "generation %s\n", list.GetGeneration())

		table := tablewriter.NewWriter(w)
		table.Header("Name", "Kind", "Steps", "In", "Out")
		for _, p := range list.GetPipelines() {
			kind := "single"
			if p.GetChain() {
				kind = "chain"
			}
			_ = table.Append(
				p.GetName(),
				kind,
				strings.Join(p.GetSteps(), " -> "),
				strconv.Itoa(int(p.GetInputDim())),
				strconv.Itoa(int(p.GetOutputDim())),
			)
		}
		return table.Render()
	})
}

func withClient(ctx context.Context, cmd *cli.Command, fn func(context.Context, *transport.Client) error) error {
	c, err := transport.Dial(cmd.String("addr"))
	if err != nil {
		return fmt.Errorf("dial %s: %w", cmd.String("addr"), err)
	}
	defer c.Close()

	if d := cmd.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return fn(ctx, c)
}

// rpcErr flattens a status into "op: Code: message [REASON]".
func rpcErr(op string, err error) error {
	st := status.Convert(err)
	if r := transport.Reason(err); r != "" {
		return fmt.Errorf("%s: %s: %s [%s]", op, st.Code(), st.Message(), r)
	}
	return fmt.Errorf("%s: %s: %s", op, st.Code(), st.Message())
}

func readInput(cmd *cli.Command) ([]*pb.FloatArray, error) {
	src := cmd.String("input")
	var r io.Reader
	if src == "-" {
		r = cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeRows(r)
}

// decodeRows reads [[x, y, ...], ...]. Ragged rows are left for the server
// to reject.
func decodeRows(r io.Reader) ([]*pb.FloatArray, error) {
	var rows [][]float32
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	out := make([]*pb.FloatArray, len(rows))
	for i, row := range rows {
		out[i] = &pb.FloatArray{Values: row}
	}
	return out, nil
}
