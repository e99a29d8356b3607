// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deploy runs the deployment stage of a launch session: metadata
// publication, transaction assembly, dual signing and broadcast.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/key"
	"github.com/heliost/cli/pkg/launcher"
	"github.com/heliost/cli/pkg/pumpfun"
	"github.com/heliost/cli/pkg/txutils"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrMetadataPublish         = errors.New("metadata publish failed")
	ErrTransactionConstruction = errors.New("Transaction creation failed") //nolint:stylecheck
	ErrSigning                 = errors.New("signing failed")
	ErrBroadcast               = errors.New("broadcast failed")
)

// MetadataPublisher hosts token metadata and returns its canonical reference.
type MetadataPublisher interface {
	Publish(ctx context.Context, req pumpfun.MetadataRequest) (*pumpfun.TokenMetadata, error)
}

// TransactionRelay builds the unsigned create transaction.
type TransactionRelay interface {
	BuildCreate(ctx context.Context, req pumpfun.CreateRequest) ([]byte, error)
}

// Broadcaster submits a fully signed transaction.
type Broadcaster interface {
	Send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// Result describes a broadcast deployment.
type Result struct {
	SessionID string
	Mint      solana.PublicKey
	Signature solana.Signature
	URL       string
	Metadata  pumpfun.TokenMetadata
}

// Deployer orders the deployment stages. A Deployer may be reused, but every
// Deploy call generates its own token identity.
type Deployer struct {
	metadata    MetadataPublisher
	relay       TransactionRelay
	broadcaster Broadcaster

	fs          afero.Fs
	log         luxlog.Logger
	explorerURL string
	pool        string
	newIdentity func() (*key.Secret, error)
}

// Option configures a Deployer.
type Option func(*Deployer)

// WithFs reads the token image from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(d *Deployer) {
		d.fs = fs
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log luxlog.Logger) Option {
	return func(d *Deployer) {
		d.log = log
	}
}

// WithExplorerURL sets the base of the confirmation URL.
func WithExplorerURL(url string) Option {
	return func(d *Deployer) {
		d.explorerURL = url
	}
}

// WithPool sets the relay pool.
func WithPool(pool string) Option {
	return func(d *Deployer) {
		d.pool = pool
	}
}

// WithIdentitySource replaces token identity generation.
func WithIdentitySource(fn func() (*key.Secret, error)) Option {
	return func(d *Deployer) {
		d.newIdentity = fn
	}
}

// New creates a Deployer from its three network collaborators.
func New(metadata MetadataPublisher, relay TransactionRelay, broadcaster Broadcaster, opts ...Option) *Deployer {
	d := &Deployer{
		metadata:    metadata,
		relay:       relay,
		broadcaster: broadcaster,
		fs:          afero.NewOsFs(),
		log:         luxlog.NewNoOpLogger(),
		explorerURL: constants.SolscanURL,
		pool:        constants.PumpPool,
		newIdentity: key.NewTokenIdentity,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Func adapts the Deployer to a sequencer deploy function returning the
// confirmation URL. onResult, when set, receives the full result.
func (d *Deployer) Func(onResult func(*Result)) launcher.DeployFunc {
	return func(ctx context.Context, p *launcher.Params) (string, error) {
		res, err := d.Deploy(ctx, p)
		if err != nil {
			return "", err
		}
		if onResult != nil {
			onResult(res)
		}
		return res.URL, nil
	}
}

// Deploy publishes metadata for p, has the relay build the create
// transaction, signs it with a fresh token identity and the operator key,
// and broadcasts it. Each stage starts only after the previous one succeeded.
func (d *Deployer) Deploy(ctx context.Context, p *launcher.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sessionID := uuid.NewString()
	log := func(msg string, fields ...any) {
		d.log.Debug(msg, append([]any{zap.String("session", sessionID)}, fields...)...)
	}

	meta, err := d.publish(ctx, p)
	if err != nil {
		d.log.Error("metadata publish failed", zap.String("session", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrMetadataPublish, err)
	}
	log("metadata published", zap.String("uri", meta.URI))

	tokenKey, err := d.newIdentity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	defer tokenKey.Release()
	mint := tokenKey.PublicKey()
	log("token identity generated", zap.String("mint", mint.String()), zap.Bool("pinned", tokenKey.Locked()))

	req := pumpfun.NewCreateRequest(p.PublicKey, mint.String(), *meta, p.Amount, p.Slippage, p.PriorityFee, d.pool)
	payload, err := d.relay.BuildCreate(ctx, req)
	if err != nil {
		d.log.Error("transaction construction failed", zap.String("session", sessionID), zap.Error(err))
		return nil, constructionError(err)
	}
	log("unsigned transaction received", zap.Int("bytes", len(payload)))

	tx, err := txutils.DecodeTransaction(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	if !txutils.IsCreateTx(tx, mint) {
		return nil, fmt.Errorf("%w: %w: mint %s is not a required signer", ErrSigning, txutils.ErrNotASigner, mint)
	}

	operatorKey, err := key.FromBase58(p.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	defer operatorKey.Release()
	if err := operatorKey.MatchPublicKey(p.PublicKey); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	if err := txutils.DualSign(tx, tokenKey, operatorKey); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	log("transaction signed")

	sig, err := d.broadcaster.Send(ctx, tx)
	if err != nil {
		d.log.Error("broadcast failed", zap.String("session", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBroadcast, err)
	}
	d.log.Info("token deployed",
		zap.String("session", sessionID),
		zap.String("mint", mint.String()),
		zap.String("signature", sig.String()),
	)

	return &Result{
		SessionID: sessionID,
		Mint:      mint,
		Signature: sig,
		URL:       TransactionURL(d.explorerURL, sig.String()),
		Metadata:  *meta,
	}, nil
}

func (d *Deployer) publish(ctx context.Context, p *launcher.Params) (*pumpfun.TokenMetadata, error) {
	image, err := d.fs.Open(p.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = image.Close() }()

	return d.metadata.Publish(ctx, pumpfun.MetadataRequest{
		Image:       image,
		ImageName:   p.ImagePath,
		Name:        p.Name,
		Symbol:      p.Symbol,
		Description: p.Description,
		Twitter:     p.Twitter,
		Telegram:    p.Telegram,
		Website:     p.Website,
	})
}

// constructionError keeps the relay's status text as the visible cause.
func constructionError(err error) error {
	var se *pumpfun.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %s", ErrTransactionConstruction, se.Status)
	}
	return fmt.Errorf("%w: %w", ErrTransactionConstruction, err)
}

// TransactionURL builds the explorer link for a transaction signature.
func TransactionURL(explorer, signature string) string {
	return strings.TrimRight(explorer, "/") + "/tx/" + signature
}
