package handler

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"velo-relay/config"
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/core/ports/mocks"
	"velo-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func hex32(b byte) string {
	var buf [32]byte
	for i := range buf {
		buf[i] = b
	}
	return hex.EncodeToString(buf[:])
}

func addr32(b byte) string {
	var buf [32]byte
	for i := range buf {
		buf[i] = b
	}
	return base58.Encode(buf[:])
}

func postJSON(t *testing.T, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Note Handler Tests ---

func TestGenerateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNote := mocks.NewMockNoteService(ctrl)
	h := NewNoteHandler(mockNote)

	note := &domain.Note{
		Denomination: domain.DenominationMedium,
		PoolSize:     domain.PoolMedium,
		CreatedAt:    time.Now().UTC(),
	}
	note.Secret[0] = 0xaa
	note.Nullifier[0] = 0xbb
	note.Commitment[0] = 0xcc
	mockNote.EXPECT().Generate(domain.PoolMedium).Return(note, nil)

	w, c := postJSON(t, dto.GenerateNoteRequest{PoolSize: "medium"})
	h.GenerateNote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, hex.EncodeToString(note.Commitment[:]), data["commitment"])
	assert.Equal(t, float64(domain.DenominationMedium), data["denomination"])
	assert.Equal(t, "medium", data["pool_size"])
}

func TestGenerateNote_UnknownPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewNoteHandler(mocks.NewMockNoteService(ctrl))

	w, c := postJSON(t, map[string]string{"pool_size": "gigantic"})
	h.GenerateNote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Relay Handler Tests ---

func validRelayBody() dto.RelayRequest {
	return dto.RelayRequest{
		Commitment: hex32(0x01),
		Nullifier:  hex32(0x02),
		Secret:     hex32(0x03),
		Recipient:  addr32(0x04),
		PoolSize:   "medium",
	}
}

func TestRelay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay, mocks.NewMockStealthService(ctrl))

	body := validRelayBody()
	mockRelay.EXPECT().RelayWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RelayRequest) (*ports.RelayResult, error) {
			assert.Equal(t, body.Recipient, req.Recipient)
			assert.Equal(t, domain.PoolMedium, req.PoolSize)
			assert.Equal(t, byte(0x02), req.Nullifier[0])
			return &ports.RelayResult{
				Signature:       "sig-abc",
				Fee:             5_000_000,
				RecipientAmount: 995_000_000,
			}, nil
		})

	w, c := postJSON(t, body)
	h.Relay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "sig-abc", data["signature"])
	assert.Equal(t, float64(5_000_000), data["fee"])
	assert.Equal(t, float64(995_000_000), data["recipient_amount"])
}

func TestRelay_MalformedCommitment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRelayHandler(mocks.NewMockRelayService(ctrl), mocks.NewMockStealthService(ctrl))

	body := validRelayBody()
	body.Commitment = "not-hex"

	w, c := postJSON(t, body)
	h.Relay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelay_BadRecipientEncoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRelayHandler(mocks.NewMockRelayService(ctrl), mocks.NewMockStealthService(ctrl))

	body := validRelayBody()
	body.Recipient = "0OIl-not-base58"

	w, c := postJSON(t, body)
	h.Relay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelay_AlreadySpent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay, mocks.NewMockStealthService(ctrl))

	mockRelay.EXPECT().RelayWithdrawal(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAlreadySpent())

	w, c := postJSON(t, validRelayBody())
	h.Relay(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOTE_002", resp["error_code"])
}

func TestRelayToStealth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	mockStealth := mocks.NewMockStealthService(ctrl)
	h := NewRelayHandler(mockRelay, mockStealth)

	meta := &domain.StealthMetaAddress{Encoded: "stealth:a:b"}
	payment := &domain.StealthPaymentInfo{
		StealthAddress: addr32(0x07),
		ViewTag:        0x42,
	}
	payment.EphemeralPubkey[0] = 0x09

	mockStealth.EXPECT().ParseMetaAddress("stealth:a:b").Return(meta, nil)
	mockStealth.EXPECT().DeriveStealthAddress(meta).Return(payment, nil)
	mockRelay.EXPECT().RelayWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RelayRequest) (*ports.RelayResult, error) {
			// Funds must go to the derived one-time address.
			assert.Equal(t, payment.StealthAddress, req.Recipient)
			return &ports.RelayResult{Signature: "sig-stealth", Fee: 5_000_000, RecipientAmount: 995_000_000}, nil
		})

	w, c := postJSON(t, dto.StealthRelayRequest{
		Commitment:  hex32(0x01),
		Nullifier:   hex32(0x02),
		Secret:      hex32(0x03),
		MetaAddress: "stealth:a:b",
		PoolSize:    "medium",
	})
	h.RelayToStealth(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, payment.StealthAddress, data["stealth_address"])
	assert.Equal(t, base58.Encode(payment.EphemeralPubkey[:]), data["ephemeral_pubkey"])
	assert.Equal(t, float64(0x42), data["view_tag"])
}

func TestRelayToStealth_BadMetaAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStealth := mocks.NewMockStealthService(ctrl)
	h := NewRelayHandler(mocks.NewMockRelayService(ctrl), mockStealth)

	mockStealth.EXPECT().ParseMetaAddress("garbage").Return(nil, apperror.Validation("meta-address must have three segments"))

	w, c := postJSON(t, dto.StealthRelayRequest{
		Commitment:  hex32(0x01),
		Nullifier:   hex32(0x02),
		Secret:      hex32(0x03),
		MetaAddress: "garbage",
		PoolSize:    "small",
	})
	h.RelayToStealth(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Stealth Handler Tests ---

func TestGenerateMetaAddress_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStealth := mocks.NewMockStealthService(ctrl)
	h := NewStealthHandler(mockStealth)

	meta := &domain.StealthMetaAddress{Encoded: "stealth:spend:view"}
	meta.SpendPubkey[0] = 0x11
	meta.ViewPubkey[0] = 0x22
	keys := &domain.StealthMetaKeys{}
	keys.SpendSeed[0] = 0x33
	keys.ViewSecret[0] = 0x44
	mockStealth.EXPECT().GenerateMetaAddress().Return(meta, keys, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.GenerateMetaAddress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "stealth:spend:view", data["encoded"])
	assert.Equal(t, hex.EncodeToString(keys.SpendSeed[:]), data["spend_seed"])
	assert.Equal(t, hex.EncodeToString(keys.ViewSecret[:]), data["view_secret"])
}

// --- Router Handler Tests ---

func TestSend_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouter := mocks.NewMockRouterService(ctrl)
	h := NewRouterHandler(mockRouter)

	job := &domain.HopJob{
		ID:                 uuid.New(),
		PoolSize:           domain.PoolMedium,
		FinalRecipient:     addr32(0x05),
		State:              domain.HopStateWithdrawing,
		IntermediatePubkey: addr32(0x06),
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	mockRouter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(job, nil)

	w, c := postJSON(t, dto.PrivateSendRequest{
		Commitment:     hex32(0x01),
		Nullifier:      hex32(0x02),
		Secret:         hex32(0x03),
		FinalRecipient: addr32(0x05),
		PoolSize:       "medium",
	})
	h.Send(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, job.ID.String(), data["id"])
	assert.Equal(t, string(domain.HopStateWithdrawing), data["state"])
}

func TestGetJob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouter := mocks.NewMockRouterService(ctrl)
	h := NewRouterHandler(mockRouter)

	id := uuid.New()
	job := &domain.HopJob{
		ID:            id,
		PoolSize:      domain.PoolSmall,
		State:         domain.HopStateComplete,
		ForwardAmount: 99_995_000,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	mockRouter.EXPECT().GetJob(gomock.Any(), id).Return(job, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetJob(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, string(domain.HopStateComplete), data["state"])
	assert.Equal(t, float64(99_995_000), data["forward_amount"])
}

func TestGetJob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouter := mocks.NewMockRouterService(ctrl)
	h := NewRouterHandler(mockRouter)

	id := uuid.New()
	mockRouter.EXPECT().GetJob(gomock.Any(), id).Return(nil, apperror.ErrJobNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetJob(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetJob_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRouterHandler(mocks.NewMockRouterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetJob(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Transfer Handler Tests ---

func TestCreateTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConf := mocks.NewMockConfidentialService(ctrl)
	h := NewTransferHandler(mockConf, mocks.NewMockTransferRepository(ctrl))

	transfer := &domain.PendingConfidentialTransfer{
		ID:                  uuid.New(),
		Sender:              "alice",
		Recipient:           "bob@example.com",
		StealthWalletPubkey: addr32(0x08),
		AmountLamports:      250_000,
		CreatedAt:           time.Now().UTC(),
	}
	mockConf.EXPECT().CreatePendingTransfer(gomock.Any(), ports.PendingTransferRequest{
		Sender:         "alice",
		Recipient:      "bob@example.com",
		AmountLamports: 250_000,
		RecipientPub:   dto.DecodeHex32(hex32(0x0a)),
	}).Return(transfer, nil)

	w, c := postJSON(t, dto.CreateTransferRequest{
		Sender:         "alice",
		Recipient:      "bob@example.com",
		AmountLamports: 250_000,
		RecipientPub:   hex32(0x0a),
	})
	h.CreateTransfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, transfer.ID.String(), data["id"])
	assert.Equal(t, transfer.StealthWalletPubkey, data["stealth_wallet_pubkey"])
	// The encrypted secret key must never be serialized.
	_, leaked := data["encrypted_secret_key"]
	assert.False(t, leaked)
}

func TestCreateTransfer_ZeroAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockConfidentialService(ctrl), mocks.NewMockTransferRepository(ctrl))

	w, c := postJSON(t, dto.CreateTransferRequest{
		Sender:       "alice",
		Recipient:    "bob",
		RecipientPub: hex32(0x0a),
	})
	h.CreateTransfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTransfers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepository(ctrl)
	h := NewTransferHandler(mocks.NewMockConfidentialService(ctrl), mockRepo)

	mockRepo.EXPECT().ListUnclaimedByRecipient(gomock.Any(), "bob@example.com").Return([]domain.PendingConfidentialTransfer{
		{ID: uuid.New(), Recipient: "bob@example.com", AmountLamports: 100, CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Recipient: "bob@example.com", AmountLamports: 200, CreatedAt: time.Now().UTC()},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?recipient=bob%40example.com", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 2)
}

func TestListTransfers_MissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockConfidentialService(ctrl), mocks.NewMockTransferRepository(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConf := mocks.NewMockConfidentialService(ctrl)
	h := NewTransferHandler(mockConf, mocks.NewMockTransferRepository(ctrl))

	id := uuid.New()
	mockConf.EXPECT().ClaimPendingTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ClaimRequest) (*ports.ClaimResult, error) {
			assert.Equal(t, id, req.TransferID)
			assert.Equal(t, "bob@example.com", req.Recipient)
			return &ports.ClaimResult{
				StealthWalletPubkey: addr32(0x08),
				StealthWalletSecret: make([]byte, 64),
				AmountLamports:      250_000,
			}, nil
		})

	w, c := postJSON(t, dto.ClaimTransferRequest{
		Recipient: "bob@example.com",
		SecretKey: hex32(0x0b),
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.ClaimTransfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, addr32(0x08), data["stealth_wallet_pubkey"])
	assert.Equal(t, float64(250_000), data["amount_lamports"])
	assert.NotEmpty(t, data["stealth_wallet_secret"])
}

func TestClaimTransfer_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConf := mocks.NewMockConfidentialService(ctrl)
	h := NewTransferHandler(mockConf, mocks.NewMockTransferRepository(ctrl))

	id := uuid.New()
	mockConf.EXPECT().ClaimPendingTransfer(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrTransferAlreadyClaimed())

	w, c := postJSON(t, dto.ClaimTransferRequest{
		Recipient: "bob@example.com",
		SecretKey: hex32(0x0b),
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.ClaimTransfer(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Info Handler Tests ---

func infoHandlerForTest(ctrl *gomock.Controller) (*InfoHandler, *mocks.MockRelayService, *mocks.MockChainClient, *mocks.MockTransactionFactory) {
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockChain := mocks.NewMockChainClient(ctrl)
	mockFactory := mocks.NewMockTransactionFactory(ctrl)
	h := NewInfoHandler(mockRelay, mockChain, mockFactory, relayerTestConfig())
	return h, mockRelay, mockChain, mockFactory
}

func relayerTestConfig() (cfg config.RelayerConfig) {
	cfg.FeePercent = 0.5
	cfg.MinFeeLamports = 500_000
	cfg.MaxFeeLamports = 10_000_000
	return cfg
}

func TestInfo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRelay, mockChain, mockFactory := infoHandlerForTest(ctrl)

	mockFactory.EXPECT().RelayerPublicKey().Return(addr32(0x0c))
	for _, pool := range domain.AllPoolSizes {
		vault := "vault-" + string(pool)
		mockFactory.EXPECT().VaultAddress(pool).Return(vault, nil)
		mockChain.EXPECT().GetBalance(gomock.Any(), vault).Return(uint64(42_000_000_000), nil)
		mockRelay.EXPECT().CalculateFee(pool.Denomination()).Return(uint64(5_000_000))
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Info(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, addr32(0x0c), data["relayer_pubkey"])
	assert.Equal(t, 0.5, data["fee_percent"])
	pools := data["pools"].([]interface{})
	assert.Len(t, pools, 3)
}

func TestPools_DegradedBalanceRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRelay, mockChain, mockFactory := infoHandlerForTest(ctrl)

	for _, pool := range domain.AllPoolSizes {
		vault := "vault-" + string(pool)
		mockFactory.EXPECT().VaultAddress(pool).Return(vault, nil)
		mockChain.EXPECT().GetBalance(gomock.Any(), vault).Return(uint64(0), errors.New("rpc down"))
		mockRelay.EXPECT().CalculateFee(pool.Denomination()).Return(uint64(5_000_000))
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Pools(c)

	// Balance reads degrade to zero; the endpoint still answers.
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	pools := resp["data"].([]interface{})
	require.Len(t, pools, 3)
	first := pools[0].(map[string]interface{})
	assert.Equal(t, float64(0), first["vault_balance"])
}

func TestEstimateFee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRelay, _, _ := infoHandlerForTest(ctrl)
	mockRelay.EXPECT().CalculateFee(domain.PoolMedium.Denomination()).Return(uint64(5_000_000))

	w, c := postJSON(t, map[string]string{"pool_size": "medium"})
	h.EstimateFee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1_000_000_000), data["denomination"])
	assert.Equal(t, float64(5_000_000), data["fee"])
	assert.Equal(t, float64(995_000_000), data["recipient_amount"])
}

func TestEstimateFee_UnknownPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := infoHandlerForTest(ctrl)

	w, c := postJSON(t, map[string]string{"pool_size": "gigantic"})
	h.EstimateFee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

// --- Health Check Tests ---

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).Return(nil)
	checker.EXPECT().Name().Return("redis")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(checker)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := mocks.NewMockHealthChecker(ctrl)
	healthy.EXPECT().Ping(gomock.Any()).Return(nil)
	healthy.EXPECT().Name().Return("postgresql")

	broken := mocks.NewMockHealthChecker(ctrl)
	broken.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	broken.EXPECT().Name().Return("redis")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(healthy, broken)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
}
