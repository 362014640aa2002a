package chain

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"

	"velo-relay/internal/core/domain"
)

// Factory implements ports.TransactionFactory for the velo mixer
// program. All payloads are fixed-width: raw 32-byte hashes and
// little-endian u64s.
type Factory struct {
	programID [32]byte
	relayer   ed25519.PrivateKey
}

// NewFactory creates a transaction factory bound to one program and the
// relayer signing key.
func NewFactory(programID string, relayer ed25519.PrivateKey) (*Factory, error) {
	pid, err := decodeKey(programID)
	if err != nil {
		return nil, fmt.Errorf("parsing program id: %w", err)
	}
	return &Factory{programID: pid, relayer: relayer}, nil
}

// RelayerPublicKey returns the relayer's base58 address.
func (f *Factory) RelayerPublicKey() string {
	return base58.Encode(f.relayer.Public().(ed25519.PublicKey))
}

// VaultAddress derives the pool vault PDA for a pool size.
func (f *Factory) VaultAddress(pool domain.PoolSize) (string, error) {
	addr, _, err := DerivePDA(poolSeeds(seedVault, pool), f.programID)
	if err != nil {
		return "", err
	}
	return base58.Encode(addr[:]), nil
}

// RelayWithdrawal builds the relayer_withdraw transaction. The relayer
// key is the sole signer and fee payer; the depositor's keys never
// appear, which is what unlinks deposit from withdrawal.
//
// Payload: discriminator ‖ nullifier_hash[32] ‖ fee u64 LE.
func (f *Factory) RelayWithdrawal(pool domain.PoolSize, nullifierHash [32]byte, recipient string, fee uint64, blockhash string) ([]byte, error) {
	recipientKey, err := decodeKey(recipient)
	if err != nil {
		return nil, fmt.Errorf("parsing recipient: %w", err)
	}
	poolAddr, _, err := DerivePDA(poolSeeds(seedPool, pool), f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving pool pda: %w", err)
	}
	vaultAddr, _, err := DerivePDA(poolSeeds(seedVault, pool), f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving vault pda: %w", err)
	}
	nullifierAddr, _, err := DerivePDA([][]byte{[]byte(seedNullifier), nullifierHash[:]}, f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving nullifier pda: %w", err)
	}

	var relayerPub [32]byte
	copy(relayerPub[:], f.relayer.Public().(ed25519.PublicKey))
	relayerStateAddr, _, err := DerivePDA([][]byte{[]byte(seedRelayer), relayerPub[:]}, f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving relayer state pda: %w", err)
	}
	systemProgram, err := decodeKey(SystemProgramID)
	if err != nil {
		return nil, err
	}

	disc := Discriminator("relayer_withdraw")
	data := make([]byte, 0, 8+32+8)
	data = append(data, disc[:]...)
	data = append(data, nullifierHash[:]...)
	data = binary.LittleEndian.AppendUint64(data, fee)

	// Account order is fixed by the program's context struct. The
	// nullifier PDA is init'd by the program, so it must be writable;
	// the system program pays for that allocation.
	ix := Instruction{
		ProgramID: f.programID,
		Accounts: []AccountMeta{
			{Pubkey: poolAddr},
			{Pubkey: vaultAddr, Writable: true},
			{Pubkey: nullifierAddr, Writable: true},
			{Pubkey: relayerStateAddr},
			{Pubkey: recipientKey, Writable: true},
			{Pubkey: relayerPub, IsSigner: true, Writable: true},
			{Pubkey: systemProgram},
		},
		Data: data,
	}
	return buildTransaction(ix, blockhash, []ed25519.PrivateKey{f.relayer})
}

// Transfer builds a native transfer signed by from. Used by the router's
// forward hop, where the intermediate wallet itself signs.
//
// Payload: u32 LE transfer index ‖ lamports u64 LE.
func (f *Factory) Transfer(from ed25519.PrivateKey, to string, lamports uint64, blockhash string) ([]byte, error) {
	toKey, err := decodeKey(to)
	if err != nil {
		return nil, fmt.Errorf("parsing destination: %w", err)
	}
	systemProgram, err := decodeKey(SystemProgramID)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 4+8)
	data = binary.LittleEndian.AppendUint32(data, 2)
	data = binary.LittleEndian.AppendUint64(data, lamports)

	var fromPub [32]byte
	copy(fromPub[:], from.Public().(ed25519.PublicKey))

	ix := Instruction{
		ProgramID: systemProgram,
		Accounts: []AccountMeta{
			{Pubkey: fromPub, IsSigner: true, Writable: true},
			{Pubkey: toKey, Writable: true},
		},
		Data: data,
	}
	return buildTransaction(ix, blockhash, []ed25519.PrivateKey{from})
}

// DecoyDeposit builds a decoy deposit carrying a fabricated commitment,
// signed by the relayer. Indistinguishable on the wire from a real
// deposit.
func (f *Factory) DecoyDeposit(pool domain.PoolSize, fakeCommitment [32]byte, blockhash string) ([]byte, error) {
	poolAddr, _, err := DerivePDA(poolSeeds(seedPool, pool), f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving pool pda: %w", err)
	}
	vaultAddr, _, err := DerivePDA(poolSeeds(seedVault, pool), f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving vault pda: %w", err)
	}
	// The decoy config is keyed by the pool PDA itself, not the
	// denomination; the decoy vault carries a trailing index byte.
	configAddr, _, err := DerivePDA([][]byte{[]byte(seedDecoyConfig), poolAddr[:]}, f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving decoy config pda: %w", err)
	}
	var denom [8]byte
	binary.LittleEndian.PutUint64(denom[:], pool.Denomination())
	decoyVaultAddr, _, err := DerivePDA([][]byte{[]byte(seedDecoyVault), denom[:], {0}}, f.programID)
	if err != nil {
		return nil, fmt.Errorf("deriving decoy vault pda: %w", err)
	}
	systemProgram, err := decodeKey(SystemProgramID)
	if err != nil {
		return nil, err
	}

	disc := Discriminator("decoy_deposit")
	data := make([]byte, 0, 8+32)
	data = append(data, disc[:]...)
	data = append(data, fakeCommitment[:]...)

	ix := Instruction{
		ProgramID: f.programID,
		Accounts: []AccountMeta{
			{Pubkey: poolAddr, Writable: true},
			{Pubkey: configAddr},
			{Pubkey: vaultAddr, Writable: true},
			{Pubkey: decoyVaultAddr, Writable: true},
			{Pubkey: systemProgram},
		},
		Data: data,
	}
	return buildTransaction(ix, blockhash, []ed25519.PrivateKey{f.relayer})
}
