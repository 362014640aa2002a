package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"velo-relay/internal/core/ports"
)

// confirmPollInterval spaces out signature-status polls while waiting
// for confirmation.
const confirmPollInterval = 500 * time.Millisecond

// RPCClient implements ports.ChainClient over the chain's JSON-RPC
// endpoint.
type RPCClient struct {
	url    string
	client *http.Client
	log    zerolog.Logger
	nextID atomic.Uint64
}

// NewRPCClient creates a chain RPC client with a bounded per-request
// timeout.
func NewRPCClient(url string, requestTimeout time.Duration, log zerolog.Logger) *RPCClient {
	return &RPCClient{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
		log:    log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (c *RPCClient) call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: %w", method, envelope.Error)
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("unmarshaling %s result: %w", method, err)
		}
	}
	return nil
}

// GetBalance returns an account's lamport balance.
func (c *RPCClient) GetBalance(ctx context.Context, address string) (uint64, error) {
	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{address}, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

// GetLatestBlockhash fetches a fresh blockhash for transaction building.
func (c *RPCClient) GetLatestBlockhash(ctx context.Context) (string, error) {
	var result struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", []any{}, &result); err != nil {
		return "", err
	}
	return result.Value.Blockhash, nil
}

// SubmitTransaction sends a signed transaction and returns its signature.
func (c *RPCClient) SubmitTransaction(ctx context.Context, signedTx []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(signedTx)
	var signature string
	err := c.call(ctx, "sendTransaction", []any{
		encoded,
		map[string]any{"encoding": "base64"},
	}, &signature)
	if err != nil {
		return "", err
	}
	return signature, nil
}

// ConfirmTransaction polls signature status until the transaction is
// confirmed, fails, or ctx expires. Expiry means the outcome is unknown,
// not that the transaction failed.
func (c *RPCClient) ConfirmTransaction(ctx context.Context, signature string) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		status, err := c.GetSignatureStatus(ctx, signature)
		if err != nil {
			c.log.Debug().Err(err).Str("signature", signature).Msg("signature status poll failed")
		} else {
			switch {
			case status.Landed():
				return nil
			case status == ports.StatusFailed:
				return fmt.Errorf("transaction %s failed on chain", signature)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// GetSignatureStatus returns the chain's current view of a signature.
func (c *RPCClient) GetSignatureStatus(ctx context.Context, signature string) (ports.ConfirmationStatus, error) {
	var result struct {
		Value []*struct {
			ConfirmationStatus string          `json:"confirmationStatus"`
			Err                json.RawMessage `json:"err"`
		} `json:"value"`
	}
	err := c.call(ctx, "getSignatureStatuses", []any{
		[]string{signature},
		map[string]any{"searchTransactionHistory": true},
	}, &result)
	if err != nil {
		return ports.StatusUnknown, err
	}
	if len(result.Value) == 0 || result.Value[0] == nil {
		return ports.StatusUnknown, nil
	}
	entry := result.Value[0]
	if len(entry.Err) > 0 && string(entry.Err) != "null" {
		return ports.StatusFailed, nil
	}
	switch entry.ConfirmationStatus {
	case "processed":
		return ports.StatusProcessed, nil
	case "confirmed":
		return ports.StatusConfirmed, nil
	case "finalized":
		return ports.StatusFinalized, nil
	}
	return ports.StatusUnknown, nil
}

// Ping implements ports.HealthChecker against the RPC endpoint.
func (c *RPCClient) Ping(ctx context.Context) error {
	return c.call(ctx, "getHealth", nil, nil)
}

// Name returns the dependency name.
func (c *RPCClient) Name() string {
	return "chain-rpc"
}
