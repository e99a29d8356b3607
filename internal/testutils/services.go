// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/heliost/cli/pkg/constants"
	"github.com/spf13/viper"
)

// Services fakes the metadata host, the transaction relay, the parameter
// generator and a Solana RPC node.
type Services struct {
	Metadata  *httptest.Server
	Relay     *httptest.Server
	Generator *httptest.Server
	RPC       *httptest.Server

	// Signature is what the RPC node returns for every sendTransaction.
	Signature solana.Signature

	mu          sync.Mutex
	relayStatus int
	forms       []map[string]string
	creates     []map[string]any
	sends       int
}

// NewServices starts the fakes and closes them when the test ends.
func NewServices(t *testing.T) *Services {
	t.Helper()
	s := &Services{relayStatus: http.StatusOK}
	s.Signature[0] = 9
	s.Metadata = httptest.NewServer(http.HandlerFunc(s.serveMetadata))
	s.Relay = httptest.NewServer(http.HandlerFunc(s.serveRelay))
	s.Generator = httptest.NewServer(http.HandlerFunc(s.serveGenerator))
	s.RPC = httptest.NewServer(http.HandlerFunc(s.serveRPC))
	t.Cleanup(func() {
		s.Metadata.Close()
		s.Relay.Close()
		s.Generator.Close()
		s.RPC.Close()
	})
	return s
}

// Configure points every endpoint key at the fakes.
func (s *Services) Configure() {
	viper.Set(constants.ConfigMetadataEndpoint, s.Metadata.URL)
	viper.Set(constants.ConfigRelayEndpoint, s.Relay.URL)
	viper.Set(constants.ConfigGeneratorEndpoint, s.Generator.URL)
	viper.Set(constants.ConfigRPCEndpoint, s.RPC.URL)
	viper.Set(constants.ConfigExplorerURL, "https://explorer.test")
}

// FailRelay makes the relay answer with status.
func (s *Services) FailRelay(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relayStatus = status
}

// Forms returns the metadata uploads received so far.
func (s *Services) Forms() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]string(nil), s.forms...)
}

// CreateRequests returns the relay request bodies received so far.
func (s *Services) CreateRequests() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.creates...)
}

// Sends returns how many transactions reached the RPC node.
func (s *Services) Sends() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sends
}

func (s *Services) serveMetadata(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := map[string]string{}
	for k, v := range r.MultipartForm.Value {
		form[k] = v[0]
	}
	if _, ok := r.MultipartForm.File["file"]; ok {
		form["file"] = r.MultipartForm.File["file"][0].Filename
	}
	s.mu.Lock()
	s.forms = append(s.forms, form)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"metadata": map[string]string{
			"name":   form["name"],
			"symbol": form["symbol"],
		},
		"metadataUri": "https://ipfs.test/ipfs/" + form["symbol"],
	})
}

func (s *Services) serveRelay(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.creates = append(s.creates, body)
	status := s.relayStatus
	s.mu.Unlock()

	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}
	payload, err := unsignedCreate(fmt.Sprint(body["publicKey"]), fmt.Sprint(body["mint"]))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(payload)
}

func (s *Services) serveGenerator(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"name":        "SunCoin",
		"symbol":      "SUN",
		"description": "a bright token",
		"website":     "https://sun.test",
		"privateKey":  "never-read",
	})
}

func (s *Services) serveRPC(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.sends++
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%q}`, req.ID, s.Signature.String())
}

// unsignedCreate builds a create-shaped transaction paid by operator with
// mint as the second signer and empty signature slots.
func unsignedCreate(operator, mint string) ([]byte, error) {
	payer, err := solana.PublicKeyFromBase58(operator)
	if err != nil {
		return nil, err
	}
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, err
	}
	ix := solana.NewInstruction(
		solana.SystemProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mintKey).WRITE().SIGNER(),
			solana.Meta(payer).WRITE().SIGNER(),
		},
		[]byte{0x18, 0x1e, 0xc8, 0x28},
	)
	tx, err := solana.NewTransaction([]solana.Instruction{ix}, solana.Hash{1}, solana.TransactionPayer(payer))
	if err != nil {
		return nil, err
	}
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	return tx.MarshalBinary()
}
