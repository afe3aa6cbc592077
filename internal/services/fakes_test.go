package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"astroportal/internal/models/db_models"
	"astroportal/pkg/queue"
	"astroportal/pkg/utils"
)

// Hand-rolled in-memory fakes for the repository interfaces, shared by
// the service tests in this package.

type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]*db_models.Order
	horoscopes map[uuid.UUID]*db_models.Horoscope // keyed by order id
	balances   map[uuid.UUID]int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:     make(map[uuid.UUID]*db_models.Order),
		horoscopes: make(map[uuid.UUID]*db_models.Horoscope),
		balances:   make(map[uuid.UUID]int64),
	}
}

func (f *fakeOrderRepo) CreateWithDebit(_ context.Context, order *db_models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balances[order.AccountID] < order.Cost {
		return utils.ErrInsufficientCredits
	}
	f.balances[order.AccountID] -= order.Cost

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now().Unix()
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []db_models.Order
	for _, order := range f.orders {
		if order.AccountID == accountID {
			result = append(result, *order)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt > result[j].CreatedAt })

	start := (page - 1) * pageSize
	if start >= len(result) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (f *fakeOrderRepo) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok || order.Status != db_models.OrderStatusPending {
		return false, nil
	}
	order.Status = db_models.OrderStatusProcessing
	return true, nil
}

func (f *fakeOrderRepo) CancelWithRefund(_ context.Context, id, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok || order.AccountID != accountID {
		return false, utils.ErrOrderNotFound
	}
	if order.Status != db_models.OrderStatusPending {
		return false, nil
	}
	order.Status = db_models.OrderStatusCancelled
	f.balances[accountID] += order.Cost
	return true, nil
}

func (f *fakeOrderRepo) CompleteWithHoroscope(_ context.Context, orderID uuid.UUID, horoscope *db_models.Horoscope) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if horoscope.ID == uuid.Nil {
		horoscope.ID = uuid.New()
	}
	horoscope.CreatedAt = time.Now().Unix()
	stored := *horoscope
	f.horoscopes[orderID] = &stored

	order, ok := f.orders[orderID]
	if ok && order.Status == db_models.OrderStatusProcessing {
		now := time.Now().Unix()
		order.Status = db_models.OrderStatusCompleted
		order.CompletedAt = &now
		order.HoroscopeID = &stored.ID
	}
	return nil
}

type fakeHoroscopeRepo struct {
	mu         sync.Mutex
	horoscopes map[uuid.UUID]*db_models.Horoscope
}

func newFakeHoroscopeRepo() *fakeHoroscopeRepo {
	return &fakeHoroscopeRepo{horoscopes: make(map[uuid.UUID]*db_models.Horoscope)}
}

func (f *fakeHoroscopeRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Horoscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	horoscope, ok := f.horoscopes[id]
	if !ok {
		return nil, nil
	}
	copied := *horoscope
	return &copied, nil
}

func (f *fakeHoroscopeRepo) FindByOrderId(_ context.Context, orderID uuid.UUID) (*db_models.Horoscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, horoscope := range f.horoscopes {
		if horoscope.OrderID == orderID {
			copied := *horoscope
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeHoroscopeRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Horoscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []db_models.Horoscope
	for _, horoscope := range f.horoscopes {
		if horoscope.AccountID == accountID {
			result = append(result, *horoscope)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt > result[j].CreatedAt })

	start := (page - 1) * pageSize
	if start >= len(result) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

type fakeAstrologerRepo struct {
	astrologers map[uuid.UUID]*db_models.Astrologer
	prices      map[uuid.UUID]map[db_models.HoroscopeType]int64
}

func newFakeAstrologerRepo() *fakeAstrologerRepo {
	return &fakeAstrologerRepo{
		astrologers: make(map[uuid.UUID]*db_models.Astrologer),
		prices:      make(map[uuid.UUID]map[db_models.HoroscopeType]int64),
	}
}

func (f *fakeAstrologerRepo) setPrice(astrologerID uuid.UUID, category db_models.HoroscopeType, credits int64) {
	if f.prices[astrologerID] == nil {
		f.prices[astrologerID] = make(map[db_models.HoroscopeType]int64)
	}
	f.prices[astrologerID][category] = credits
}

func (f *fakeAstrologerRepo) ListActive(_ context.Context, page, pageSize int) ([]db_models.Astrologer, error) {
	var result []db_models.Astrologer
	for _, astrologer := range f.astrologers {
		result = append(result, *astrologer)
	}
	return result, nil
}

func (f *fakeAstrologerRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Astrologer, error) {
	astrologer, ok := f.astrologers[id]
	if !ok {
		return nil, nil
	}
	copied := *astrologer
	return &copied, nil
}

func (f *fakeAstrologerRepo) FindPrice(_ context.Context, astrologerID uuid.UUID, category db_models.HoroscopeType) (*db_models.AstrologerPrice, error) {
	credits, ok := f.prices[astrologerID][category]
	if !ok {
		return nil, nil
	}
	return &db_models.AstrologerPrice{
		AstrologerID: astrologerID,
		Category:     category,
		Credits:      credits,
	}, nil
}

func (f *fakeAstrologerRepo) InsertReview(_ context.Context, review *db_models.AstrologerReview) error {
	return nil
}

func (f *fakeAstrologerRepo) HasCompletedOrder(_ context.Context, astrologerID, accountID uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeAstrologerRepo) HasReviewBy(_ context.Context, astrologerID, accountID uuid.UUID) (bool, error) {
	return false, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*db_models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*db_models.Profile)}
}

func (f *fakeProfileRepo) FindByAccountId(_ context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[accountID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) Insert(_ context.Context, profile *db_models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	stored := *profile
	f.profiles[profile.AccountID] = &stored
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *db_models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *profile
	f.profiles[profile.AccountID] = &stored
	return nil
}

type fakeCreditRepo struct {
	mu        sync.Mutex
	balances  map[uuid.UUID]int64
	questions map[uuid.UUID]*db_models.CreditQuestion
	answers   map[uuid.UUID][]db_models.CreditAnswer
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{
		balances:  make(map[uuid.UUID]int64),
		questions: make(map[uuid.UUID]*db_models.CreditQuestion),
		answers:   make(map[uuid.UUID][]db_models.CreditAnswer),
	}
}

func (f *fakeCreditRepo) GetBalance(_ context.Context, accountID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[accountID], nil
}

func (f *fakeCreditRepo) ListActiveQuestions(_ context.Context) ([]db_models.CreditQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []db_models.CreditQuestion
	for _, q := range f.questions {
		if q.IsActive {
			result = append(result, *q)
		}
	}
	return result, nil
}

func (f *fakeCreditRepo) ListAnswers(_ context.Context, accountID uuid.UUID) ([]db_models.CreditAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.answers[accountID], nil
}

func (f *fakeCreditRepo) FindQuestionById(_ context.Context, id uuid.UUID) (*db_models.CreditQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	question, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	copied := *question
	return &copied, nil
}

func (f *fakeCreditRepo) InsertAnswerWithReward(_ context.Context, answer *db_models.CreditAnswer, reward int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.answers[answer.AccountID] {
		if existing.QuestionID == answer.QuestionID {
			return utils.ErrAlreadyAnswered
		}
	}
	f.answers[answer.AccountID] = append(f.answers[answer.AccountID], *answer)
	f.balances[answer.AccountID] += reward
	return nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []queue.GenerationJob
	ch   chan queue.GenerationJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{ch: make(chan queue.GenerationJob, 16)}
}

func (f *fakeQueue) Enqueue(job queue.GenerationJob) error {
	f.mu.Lock()
	f.jobs = append(f.jobs, job)
	f.mu.Unlock()
	f.ch <- job
	return nil
}

func (f *fakeQueue) Jobs() <-chan queue.GenerationJob { return f.ch }

func (f *fakeQueue) Close() { close(f.ch) }

func (f *fakeQueue) enqueued() []queue.GenerationJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.GenerationJob(nil), f.jobs...)
}

type fakeGenerationClient struct {
	mu      sync.Mutex
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerationClient) GenerateText(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, userPrompt)
	return f.text, f.err
}
