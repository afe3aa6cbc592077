package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/response_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string
	ReturnURL    string
	CancelURL    string
	ProviderName string // stored on Transaction.Provider
}

type PaymentServiceInterface interface {
	ListPacks(ctx context.Context) ([]response_models.CreditPackResponse, error)
	CreateCheckout(ctx context.Context, accountID uuid.UUID, packCode string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	txnRepo repositories.TransactionRepository
	cfg     PayOSConfig
}

func NewPaymentService(txnRepo repositories.TransactionRepository, cfg PayOSConfig) (PaymentServiceInterface, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.ApiKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}
	return &paymentService{txnRepo: txnRepo, cfg: cfg}, nil
}

func (p *paymentService) ListPacks(ctx context.Context) ([]response_models.CreditPackResponse, error) {
	packs, err := p.txnRepo.ListActivePacks(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	result := make([]response_models.CreditPackResponse, 0, len(packs))
	for _, pack := range packs {
		result = append(result, response_models.CreditPackResponse{
			Code:       pack.Code,
			Name:       pack.Name,
			Credits:    pack.Credits,
			PriceMinor: pack.PriceMinor,
			Currency:   pack.Currency,
		})
	}
	return result, nil
}

func (p *paymentService) CreateCheckout(ctx context.Context, accountID uuid.UUID, packCode string) (*response_models.CreateCheckoutResponse, error) {
	pack, err := p.txnRepo.FindPackByCode(ctx, packCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pack == nil {
		return nil, utils.ErrPackNotFound
	}
	if pack.PriceMinor <= 0 {
		return nil, fmt.Errorf("pack %s is not billable (amount=%d)", packCode, pack.PriceMinor)
	}

	// payOS expects an int64 order code; unix seconds plus a short
	// random suffix keeps it unique enough and within 13 digits.
	suffix, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return nil, err
	}
	orderCode := time.Now().Unix()%1_000_000_000*10_000 + suffix.Int64() + 1000

	txn := &db_models.Transaction{
		AccountID:     accountID,
		PackID:        pack.ID,
		AmountMinor:   pack.PriceMinor,
		Currency:      strings.ToUpper(pack.Currency),
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}
	if err := p.txnRepo.Insert(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(pack.PriceMinor),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("%s (%d kredytów)", pack.Name, pack.Credits),
			Price:    int(pack.PriceMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Pakiet kredytów %s", pack.Code),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.txnRepo.UpdateStatus(ctx, txn, db_models.TxnStatusFailed)
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	if meta, err := json.Marshal(map[string]any{"pack_code": pack.Code, "payos_link": resp}); err == nil {
		_ = p.txnRepo.UpdateMetadata(ctx, txn, meta)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:  orderCode,
		Amount:     pack.PriceMinor,
		PaymentURL: resp.CheckoutUrl,
		Provider:   p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("Error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("Error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	p.settleWebhook(c, data)
}

// settleWebhook runs after signature verification. Only a successful
// payment grants credits; failure notices close the transaction.
func (p *paymentService) settleWebhook(c *gin.Context, data *payos.WebhookDataType) {
	// payOS sends order code 123 when confirming the webhook URL.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	providerTxn := fmt.Sprintf("payos:%d", data.OrderCode)
	txn, err := p.txnRepo.FindByProviderTxnId(c.Request.Context(), providerTxn)
	if err != nil {
		log.Printf("webhook: lookup failed for order %d: %v", data.OrderCode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}
	if txn == nil {
		// ack 200 to avoid a retry storm, but log for investigation
		log.Printf("webhook: transaction not found for order %d", data.OrderCode)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if data.Code != "00" {
		log.Printf("webhook: order %d not paid (code=%s desc=%s)", data.OrderCode, data.Code, data.Desc)
		if txn.Status == db_models.TxnStatusPending {
			if err := p.txnRepo.UpdateStatus(c.Request.Context(), txn, db_models.TxnStatusFailed); err != nil {
				log.Printf("webhook: failed to mark order %d failed: %v", data.OrderCode, err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := p.txnRepo.MarkPaidWithCredits(c.Request.Context(), txn, txn.Pack.Credits); err != nil {
		log.Printf("webhook: failed to settle order %d: %v", data.OrderCode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
