package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/pkg/utils"
)

type generationFixture struct {
	orderRepo   *fakeOrderRepo
	profileRepo *fakeProfileRepo
	creditRepo  *fakeCreditRepo
	client      *fakeGenerationClient
	service     GenerationServiceInterface

	accountID    uuid.UUID
	astrologerID uuid.UUID
	orderID      uuid.UUID
}

func newGenerationFixture(t *testing.T) *generationFixture {
	t.Helper()

	f := &generationFixture{
		orderRepo:    newFakeOrderRepo(),
		profileRepo:  newFakeProfileRepo(),
		creditRepo:   newFakeCreditRepo(),
		client:       &fakeGenerationClient{text: "<p>Twój dzień zapowiada się pomyślnie.</p>"},
		accountID:    uuid.New(),
		astrologerID: uuid.New(),
	}
	f.service = NewGenerationService(f.orderRepo, f.profileRepo, f.creditRepo, f.client)

	f.profileRepo.profiles[f.accountID] = &db_models.Profile{
		AccountID:  f.accountID,
		FirstName:  "Anna",
		BirthDate:  "1990-04-01",
		ZodiacSign: utils.ZodiacAries,
	}

	order := &db_models.Order{
		AccountID:    f.accountID,
		AstrologerID: f.astrologerID,
		Category:     db_models.HoroscopeDaily,
		Status:       db_models.OrderStatusPending,
		Cost:         15,
	}
	order.ID = uuid.New()
	f.orderID = order.ID
	f.orderRepo.orders[order.ID] = order
	return f
}

func TestBeginGeneration_CompletesOrderWithHoroscope(t *testing.T) {
	f := newGenerationFixture(t)

	require.NoError(t, f.service.BeginGeneration(context.Background(), f.orderID))

	order := f.orderRepo.orders[f.orderID]
	assert.Equal(t, db_models.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	require.NotNil(t, order.HoroscopeID)

	horoscope := f.orderRepo.horoscopes[f.orderID]
	require.NotNil(t, horoscope)
	assert.Equal(t, f.orderID, horoscope.OrderID)
	assert.Equal(t, "<p>Twój dzień zapowiada się pomyślnie.</p>", horoscope.Body)
	assert.Equal(t, "Horoskop dzienny — Baran", horoscope.Title)
	assert.NotZero(t, horoscope.ValidFrom)
	require.NotNil(t, horoscope.ValidTo)
	assert.Greater(t, *horoscope.ValidTo, horoscope.ValidFrom)
	assert.Equal(t, 1, f.client.calls)
}

func TestBeginGeneration_SingleWinner(t *testing.T) {
	f := newGenerationFixture(t)

	require.NoError(t, f.service.BeginGeneration(context.Background(), f.orderID))
	err := f.service.BeginGeneration(context.Background(), f.orderID)

	assert.ErrorIs(t, err, utils.ErrOrderNotPending)
	assert.Equal(t, 1, f.client.calls, "only the winning claim may call the provider")
	assert.Len(t, f.orderRepo.horoscopes, 1)
}

func TestBeginGeneration_ConcurrentClaims(t *testing.T) {
	f := newGenerationFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = f.service.BeginGeneration(context.Background(), f.orderID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, utils.ErrOrderNotPending)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, f.client.calls)
}

func TestBeginGeneration_OrderNotFound(t *testing.T) {
	f := newGenerationFixture(t)

	err := f.service.BeginGeneration(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestGenerate_ProviderErrorLeavesOrderProcessing(t *testing.T) {
	f := newGenerationFixture(t)
	f.client.err = errors.New("upstream timeout")

	err := f.service.BeginGeneration(context.Background(), f.orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	assert.Equal(t, db_models.OrderStatusProcessing, f.orderRepo.orders[f.orderID].Status,
		"a failed run keeps the claim so a retrigger can resume it")
	assert.Nil(t, f.orderRepo.horoscopes[f.orderID])
}

func TestGenerate_EmptyContentUsesFallbackBody(t *testing.T) {
	f := newGenerationFixture(t)
	f.client.text = "   "

	require.NoError(t, f.service.BeginGeneration(context.Background(), f.orderID))

	horoscope := f.orderRepo.horoscopes[f.orderID]
	require.NotNil(t, horoscope)
	assert.Equal(t, FallbackHoroscopeBody, horoscope.Body)
	assert.Equal(t, db_models.OrderStatusCompleted, f.orderRepo.orders[f.orderID].Status)
}

func TestGenerate_LifetimeHoroscopeHasOpenEnd(t *testing.T) {
	f := newGenerationFixture(t)
	f.orderRepo.orders[f.orderID].Category = db_models.HoroscopeLifetime

	require.NoError(t, f.service.BeginGeneration(context.Background(), f.orderID))

	horoscope := f.orderRepo.horoscopes[f.orderID]
	require.NotNil(t, horoscope)
	assert.Nil(t, horoscope.ValidTo)
	assert.Equal(t, "Horoskop życiowy — Baran", horoscope.Title)
}

func TestGenerate_PromptCarriesProfileAndAnswers(t *testing.T) {
	f := newGenerationFixture(t)

	question := &db_models.CreditQuestion{Question: "Czego dotyczy Twoje najważniejsze pytanie?", RewardCredits: 5, IsActive: true}
	question.ID = uuid.New()
	f.creditRepo.questions[question.ID] = question
	f.creditRepo.answers[f.accountID] = []db_models.CreditAnswer{{
		AccountID:  f.accountID,
		QuestionID: question.ID,
		Answer:     "kariery",
		Question:   *question,
	}}
	f.orderRepo.orders[f.orderID].Note = "proszę o praktyczne rady"

	require.NoError(t, f.service.BeginGeneration(context.Background(), f.orderID))

	require.Len(t, f.client.prompts, 1)
	prompt := f.client.prompts[0]
	assert.Contains(t, prompt, "Znak zodiaku: Baran")
	assert.Contains(t, prompt, "Imię: Anna")
	assert.Contains(t, prompt, "Czego dotyczy Twoje najważniejsze pytanie?: kariery")
	assert.Contains(t, prompt, "Uwagi do zamówienia: proszę o praktyczne rady")
}

// Full credit-to-horoscope flow at the service level: place an order
// with enough credits, let the worker path claim and complete it.
func TestOrderLifecycle_PendingToCompleted(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	horoscopeRepo := newFakeHoroscopeRepo()
	astrologerRepo := newFakeAstrologerRepo()
	profileRepo := newFakeProfileRepo()
	creditRepo := newFakeCreditRepo()
	genQueue := newFakeQueue()
	client := &fakeGenerationClient{text: "<p>Gwiazdy sprzyjają.</p>"}

	accountID := uuid.New()
	astrologerID := uuid.New()
	orderRepo.balances[accountID] = 20
	astrologerRepo.setPrice(astrologerID, db_models.HoroscopeWeekly, 15)
	profileRepo.profiles[accountID] = &db_models.Profile{
		AccountID:  accountID,
		BirthDate:  "1985-11-30",
		ZodiacSign: utils.ZodiacSagittarius,
	}

	orderService := NewOrderService(orderRepo, horoscopeRepo, astrologerRepo, profileRepo, genQueue)
	genService := NewGenerationService(orderRepo, profileRepo, creditRepo, client)

	resp, err := orderService.CreateOrder(context.Background(), accountID, request_models.CreateOrderRequest{
		AstrologerID: astrologerID.String(),
		Category:     "weekly",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), orderRepo.balances[accountID])

	jobs := genQueue.enqueued()
	require.Len(t, jobs, 1)
	require.NoError(t, genService.BeginGeneration(context.Background(), jobs[0].OrderID))

	orderID := uuid.MustParse(resp.OrderID)
	order := orderRepo.orders[orderID]
	assert.Equal(t, db_models.OrderStatusCompleted, order.Status)

	horoscope := orderRepo.horoscopes[orderID]
	require.NotNil(t, horoscope)
	assert.Equal(t, accountID, horoscope.AccountID)
	assert.Equal(t, "Horoskop tygodniowy — Strzelec", horoscope.Title)

	// Completed orders can no longer be cancelled.
	err = orderService.CancelOrder(context.Background(), accountID, orderID)
	assert.ErrorIs(t, err, utils.ErrOrderNotPending)
	assert.Equal(t, int64(5), orderRepo.balances[accountID])
}
