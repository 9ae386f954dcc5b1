package engine

import (
	"context"
	"encoding/json"
	"fmt"
)

// Operation names understood by the bridge.
const (
	OpDetectGlycans     = "detect_glycans"
	OpReceiverSequences = "receiver_sequences"
	OpGraft             = "graft"
)

// transport carries one JSON request to the bridge and returns its JSON reply.
type transport interface {
	roundTrip(ctx context.Context, op string, body []byte) ([]byte, error)
}

// envelope is the reply wrapper every bridge operation uses.
type envelope struct {
	Error  string          `json:"error,omitempty"`
	Result json.RawMessage `json:"result"`
}

type request struct {
	Op   string `json:"op"`
	Args any    `json:"args"`
}

// Client implements Engine and Grafter over a bridge transport.
type Client struct {
	t transport
}

var (
	_ Engine  = (*Client)(nil)
	_ Grafter = (*Client)(nil)
)

func (c *Client) call(ctx context.Context, op string, args, out any) error {
	body, err := json.Marshal(request{Op: op, Args: args})
	if err != nil {
		return &Error{Op: op, Message: "encode request", Err: err}
	}

	raw, err := c.t.roundTrip(ctx, op, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &Error{Op: op, Message: "decode reply", Err: err}
	}
	if env.Error != "" {
		return &Error{Op: op, Message: env.Error}
	}
	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &Error{Op: op, Message: "decode result", Err: err}
	}
	return nil
}

// DetectGlycans returns the glycans the engine finds in a structure file.
func (c *Client) DetectGlycans(ctx context.Context, path string) ([]Glycan, error) {
	var glycans []Glycan
	if err := c.call(ctx, OpDetectGlycans, map[string]string{"path": path}, &glycans); err != nil {
		return nil, err
	}
	if len(glycans) == 0 {
		return nil, &Error{Op: OpDetectGlycans, Message: path, Err: ErrNoGlycans}
	}
	return glycans, nil
}

// ReceiverSequences returns the chain sequences of a receiving model.
func (c *Client) ReceiverSequences(ctx context.Context, receiver string) ([]ChainSequence, error) {
	var seqs []ChainSequence
	if err := c.call(ctx, OpReceiverSequences, map[string]string{"receiver": receiver}, &seqs); err != nil {
		return nil, err
	}
	return seqs, nil
}

// Graft grafts the donor glycan at every target and exports the model.
func (c *Client) Graft(ctx context.Context, req GraftRequest) ([]GraftedGlycan, error) {
	if req.Receiver == "" || req.Donor == "" || req.Output == "" {
		return nil, &Error{Op: OpGraft, Message: fmt.Sprintf("receiver, donor and output are required (got %q, %q, %q)", req.Receiver, req.Donor, req.Output)}
	}
	var grafts []GraftedGlycan
	if err := c.call(ctx, OpGraft, req, &grafts); err != nil {
		return nil, err
	}
	return grafts, nil
}
