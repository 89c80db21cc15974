package transport

import (
	pb "dimred/api/proto/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	pb.ReducerClient
	conn *grpc.ClientConn
}

// Dial returns a plaintext Reducer client; extra options are appended.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	cc, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{ReducerClient: pb.NewReducerClient(cc), conn: cc}, nil
}

func (c *Client) Close() error { return c.conn.Close() }
