package handler

import (
	"net/http"

	"velo-relay/config"
	"velo-relay/internal/adapter/http/dto"
	"velo-relay/internal/core/domain"
	"velo-relay/internal/core/ports"
	"velo-relay/pkg/apperror"
	"velo-relay/pkg/response"

	"github.com/gin-gonic/gin"
)

// InfoHandler serves relayer metadata and health endpoints.
type InfoHandler struct {
	relaySvc  ports.RelayService
	chain     ports.ChainClient
	txFactory ports.TransactionFactory
	cfg       config.RelayerConfig
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(relaySvc ports.RelayService, chain ports.ChainClient, txFactory ports.TransactionFactory, cfg config.RelayerConfig) *InfoHandler {
	return &InfoHandler{relaySvc: relaySvc, chain: chain, txFactory: txFactory, cfg: cfg}
}

// Info handles GET /api/v1/info.
func (h *InfoHandler) Info(c *gin.Context) {
	pools, err := h.poolInfo(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.InfoResponse{
		RelayerPubkey: h.txFactory.RelayerPublicKey(),
		FeePercent:    h.cfg.FeePercent,
		MinFee:        h.cfg.MinFeeLamports,
		MaxFee:        h.cfg.MaxFeeLamports,
		Pools:         pools,
	})
}

// EstimateFee handles POST /api/v1/estimate-fee.
func (h *InfoHandler) EstimateFee(c *gin.Context) {
	var req dto.EstimateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	pool, err := domain.ParsePoolSize(req.PoolSize)
	if err != nil {
		response.Error(c, apperror.ErrUnknownPool())
		return
	}

	denom := pool.Denomination()
	fee := h.relaySvc.CalculateFee(denom)
	response.OK(c, dto.EstimateFeeResponse{
		PoolSize:        string(pool),
		Denomination:    denom,
		Fee:             fee,
		RecipientAmount: denom - fee,
	})
}

// Pools handles GET /api/v1/pools.
func (h *InfoHandler) Pools(c *gin.Context) {
	pools, err := h.poolInfo(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pools)
}

// poolInfo reads per-pool vault balances. A vault read failure degrades
// to a zero balance rather than failing the whole endpoint.
func (h *InfoHandler) poolInfo(c *gin.Context) ([]dto.PoolInfo, error) {
	ctx := c.Request.Context()
	out := make([]dto.PoolInfo, 0, len(domain.AllPoolSizes))
	for _, pool := range domain.AllPoolSizes {
		vault, err := h.txFactory.VaultAddress(pool)
		if err != nil {
			return nil, err
		}
		balance, err := h.chain.GetBalance(ctx, vault)
		if err != nil {
			balance = 0
		}
		denom := pool.Denomination()
		out = append(out, dto.PoolInfo{
			PoolSize:     string(pool),
			Denomination: denom,
			Fee:          h.relaySvc.CalculateFee(denom),
			VaultAddress: vault,
			VaultBalance: balance,
		})
	}
	return out, nil
}

// depStatus is the health report for one dependency.
type depStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck returns a handler for GET /health. It pings each
// dependency and answers 503 if any is down.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		healthy := true
		deps := make(map[string]depStatus, len(checkers))

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				healthy = false
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				continue
			}
			deps[checker.Name()] = depStatus{Status: "healthy"}
		}

		status := http.StatusOK
		overall := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		c.JSON(status, gin.H{
			"status":       overall,
			"dependencies": deps,
		})
	}
}
