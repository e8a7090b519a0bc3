// File: services/wallet/rpc.go
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"
)

// weiPerToken converts the RPC's wei-denominated balance into whole tokens.
var weiPerToken = new(big.Float).SetFloat64(1e18)

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// RPCBalanceFetcher reads balances over JSON-RPC 2.0 (eth_getBalance).
type RPCBalanceFetcher struct {
	Endpoint string
	Client   *http.Client
}

// NewRPCBalanceFetcher builds a fetcher against the given RPC endpoint.
func NewRPCBalanceFetcher(endpoint string) *RPCBalanceFetcher {
	return &RPCBalanceFetcher{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// GetBalance resolves the latest balance for the address, in whole tokens.
func (f *RPCBalanceFetcher) GetBalance(ctx context.Context, address string) (float64, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_getBalance",
		Params:  []interface{}{address, "latest"},
		ID:      1,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to build RPC request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build RPC request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("RPC request failed: %w", err)
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return 0, fmt.Errorf("decoding RPC response failed: %w", err)
	}
	if rpcResp.Error != nil {
		return 0, fmt.Errorf("RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return weiHexToTokens(rpcResp.Result)
}

// weiHexToTokens parses a 0x-prefixed hex wei quantity into whole tokens.
func weiHexToTokens(hexWei string) (float64, error) {
	cleaned := strings.TrimPrefix(hexWei, "0x")
	if cleaned == "" {
		return 0, fmt.Errorf("empty balance in RPC response")
	}
	wei, ok := new(big.Int).SetString(cleaned, 16)
	if !ok {
		return 0, fmt.Errorf("malformed balance %q in RPC response", hexWei)
	}
	tokens, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerToken).Float64()
	return tokens, nil
}
