package integration

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"velo-relay/internal/adapter/chain"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// In-memory repositories and a fake chain for integration tests. The
// HTTP layer, middleware, services, and Redis stores are all real; only
// PostgreSQL and the RPC endpoint are replaced.

type inMemoryNullifierRepo struct {
	mu    sync.Mutex
	spent map[[32]byte]domain.NullifierRecord
}

func newInMemoryNullifierRepo() *inMemoryNullifierRepo {
	return &inMemoryNullifierRepo{spent: make(map[[32]byte]domain.NullifierRecord)}
}

func (r *inMemoryNullifierRepo) HasBeenSpent(_ context.Context, nullifierHash [32]byte) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.spent[nullifierHash]
	return ok, nil
}

func (r *inMemoryNullifierRepo) MarkSpent(_ context.Context, rec *domain.NullifierRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.spent[rec.NullifierHash]; ok {
		return apperror.ErrAlreadySpent()
	}
	r.spent[rec.NullifierHash] = *rec
	return nil
}

type inMemoryTransferRepo struct {
	mu        sync.Mutex
	transfers map[uuid.UUID]domain.PendingConfidentialTransfer
}

func newInMemoryTransferRepo() *inMemoryTransferRepo {
	return &inMemoryTransferRepo{transfers: make(map[uuid.UUID]domain.PendingConfidentialTransfer)}
}

func (r *inMemoryTransferRepo) Create(_ context.Context, t *domain.PendingConfidentialTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers[t.ID] = *t
	return nil
}

func (r *inMemoryTransferRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PendingConfidentialTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	out := t
	return &out, nil
}

func (r *inMemoryTransferRepo) ListUnclaimedByRecipient(_ context.Context, recipient string) ([]domain.PendingConfidentialTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PendingConfidentialTransfer
	for _, t := range r.transfers {
		if t.Recipient == recipient && !t.Claimed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *inMemoryTransferRepo) MarkClaimed(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return apperror.ErrTransferNotFound()
	}
	if t.Claimed {
		return apperror.ErrTransferAlreadyClaimed()
	}
	t.Claimed = true
	r.transfers[id] = t
	return nil
}

type inMemoryKeyVault struct {
	mu      sync.Mutex
	secrets map[string][]byte
}

func newInMemoryKeyVault() *inMemoryKeyVault {
	return &inMemoryKeyVault{secrets: make(map[string][]byte)}
}

func (v *inMemoryKeyVault) Store(_ context.Context, pubkey string, encryptedSecret []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.secrets[pubkey] = append([]byte(nil), encryptedSecret...)
	return nil
}

func (v *inMemoryKeyVault) Load(_ context.Context, pubkey string) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.secrets[pubkey], nil
}

type inMemoryHopJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]domain.HopJob
}

func newInMemoryHopJobRepo() *inMemoryHopJobRepo {
	return &inMemoryHopJobRepo{jobs: make(map[uuid.UUID]domain.HopJob)}
}

func (r *inMemoryHopJobRepo) Create(_ context.Context, job *domain.HopJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

func (r *inMemoryHopJobRepo) Update(_ context.Context, job *domain.HopJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

func (r *inMemoryHopJobRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.HopJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	out := job
	return &out, nil
}

func (r *inMemoryHopJobRepo) ListNonTerminal(_ context.Context) ([]domain.HopJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.HopJob
	for _, job := range r.jobs {
		if !job.State.IsTerminal() {
			out = append(out, job)
		}
	}
	return out, nil
}

// fakeChainClient accepts every submitted transaction and confirms it
// instantly. It keeps a per-address lamport ledger, decoding each
// submitted transaction and applying its balance effects, so tests can
// assert where the money actually went. Submissions are counted so
// tests can assert exactly-once behavior at the chain boundary.
type fakeChainClient struct {
	submissions atomic.Int64

	mu          sync.Mutex
	balances    map[string]uint64
	vaultDenoms map[string]uint64
}

func newFakeChainClient() *fakeChainClient {
	return &fakeChainClient{
		balances:    make(map[string]uint64),
		vaultDenoms: make(map[string]uint64),
	}
}

// fund credits an address directly, bypassing any transaction.
func (c *fakeChainClient) fund(address string, lamports uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[address] += lamports
}

// registerVault teaches the fake which denomination a pool vault pays
// out, so relayer withdrawals can be applied to the ledger.
func (c *fakeChainClient) registerVault(address string, denomination uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vaultDenoms[address] = denomination
}

func (c *fakeChainClient) GetBalance(_ context.Context, address string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[address], nil
}

func (c *fakeChainClient) GetLatestBlockhash(_ context.Context) (string, error) {
	var h [32]byte
	h[0] = byte(time.Now().UnixNano())
	return base58.Encode(h[:]), nil
}

func (c *fakeChainClient) SubmitTransaction(_ context.Context, signedTx []byte) (string, error) {
	c.submissions.Add(1)
	if err := c.apply(signedTx); err != nil {
		return "", err
	}
	return chain.SignatureOf(signedTx)
}

// apply decodes the single instruction of a legacy transaction and
// moves lamports the way the real programs would.
func (c *fakeChainClient) apply(tx []byte) error {
	program, accounts, data, err := decodeSingleInstruction(tx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	withdrawDisc := chain.Discriminator("relayer_withdraw")
	var systemProgram [32]byte
	switch {
	case program == systemProgram && len(data) >= 12 && binary.LittleEndian.Uint32(data[:4]) == 2:
		// Native transfer: from, to.
		if len(accounts) < 2 {
			return errors.New("transfer needs two accounts")
		}
		lamports := binary.LittleEndian.Uint64(data[4:12])
		from := base58.Encode(accounts[0][:])
		to := base58.Encode(accounts[1][:])
		if c.balances[from] < lamports {
			return fmt.Errorf("insufficient funds on %s", from)
		}
		c.balances[from] -= lamports
		c.balances[to] += lamports
	case len(data) >= 48 && bytes.Equal(data[:8], withdrawDisc[:]):
		// relayer_withdraw: pool, vault, nullifier, relayer state,
		// recipient, relayer, system program.
		if len(accounts) < 7 {
			return errors.New("relayer_withdraw needs seven accounts")
		}
		fee := binary.LittleEndian.Uint64(data[40:48])
		vault := base58.Encode(accounts[1][:])
		recipient := base58.Encode(accounts[4][:])
		relayer := base58.Encode(accounts[5][:])
		denomination, ok := c.vaultDenoms[vault]
		if !ok {
			return fmt.Errorf("vault account %s is not a registered pool vault", vault)
		}
		if c.balances[vault] < denomination {
			return fmt.Errorf("vault %s cannot cover the denomination", vault)
		}
		c.balances[vault] -= denomination
		c.balances[recipient] += denomination - fee
		c.balances[relayer] += fee
	}
	// Anything else (decoy deposits) leaves the ledger alone.
	return nil
}

// decodeSingleInstruction walks the legacy transaction wire layout and
// returns the program key, resolved instruction accounts, and payload.
func decodeSingleInstruction(tx []byte) ([32]byte, [][32]byte, []byte, error) {
	var program [32]byte
	i := 0

	numSigs, n, err := readCompactU16(tx[i:])
	if err != nil {
		return program, nil, nil, err
	}
	i += n + numSigs*64

	if len(tx) < i+3 {
		return program, nil, nil, errors.New("transaction truncated before header")
	}
	i += 3 // message header

	numKeys, n, err := readCompactU16(tx[i:])
	if err != nil {
		return program, nil, nil, err
	}
	i += n
	if len(tx) < i+numKeys*32+32 {
		return program, nil, nil, errors.New("transaction truncated in account keys")
	}
	keys := make([][32]byte, numKeys)
	for k := range keys {
		copy(keys[k][:], tx[i:i+32])
		i += 32
	}
	i += 32 // recent blockhash

	numInstrs, n, err := readCompactU16(tx[i:])
	if err != nil {
		return program, nil, nil, err
	}
	i += n
	if numInstrs != 1 {
		return program, nil, nil, fmt.Errorf("expected one instruction, got %d", numInstrs)
	}

	if len(tx) < i+1 {
		return program, nil, nil, errors.New("transaction truncated at program index")
	}
	programIdx := int(tx[i])
	i++
	if programIdx >= numKeys {
		return program, nil, nil, errors.New("program index out of range")
	}
	program = keys[programIdx]

	numAccounts, n, err := readCompactU16(tx[i:])
	if err != nil {
		return program, nil, nil, err
	}
	i += n
	if len(tx) < i+numAccounts {
		return program, nil, nil, errors.New("transaction truncated in account indices")
	}
	accounts := make([][32]byte, numAccounts)
	for a := 0; a < numAccounts; a++ {
		idx := int(tx[i+a])
		if idx >= numKeys {
			return program, nil, nil, errors.New("account index out of range")
		}
		accounts[a] = keys[idx]
	}
	i += numAccounts

	dataLen, n, err := readCompactU16(tx[i:])
	if err != nil {
		return program, nil, nil, err
	}
	i += n
	if len(tx) < i+dataLen {
		return program, nil, nil, errors.New("transaction truncated in instruction data")
	}
	return program, accounts, tx[i : i+dataLen], nil
}

func readCompactU16(b []byte) (int, int, error) {
	value, shift := 0, 0
	for i := 0; i < len(b) && i < 3; i++ {
		value |= int(b[i]&0x7f) << shift
		if b[i]&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, errors.New("malformed compact-u16")
}

func (c *fakeChainClient) ConfirmTransaction(_ context.Context, _ string) error {
	return nil
}

func (c *fakeChainClient) GetSignatureStatus(_ context.Context, _ string) (ports.ConfirmationStatus, error) {
	return ports.StatusFinalized, nil
}
