package services

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/internal/models/response_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/metrics"
	"astroportal/pkg/queue"
	"astroportal/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, accountID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
	CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) error
	GetOrderById(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderResponse, error)
	ListOrders(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.OrderResponse, error)
	GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HistoryItem, error)
}

type OrderService struct {
	orderRepo      repositories.OrderRepository
	horoscopeRepo  repositories.HoroscopeRepository
	astrologerRepo repositories.AstrologerRepository
	profileRepo    repositories.ProfileRepository
	genQueue       queue.GenerationQueue
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	horoscopeRepo repositories.HoroscopeRepository,
	astrologerRepo repositories.AstrologerRepository,
	profileRepo repositories.ProfileRepository,
	genQueue queue.GenerationQueue,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:      orderRepo,
		horoscopeRepo:  horoscopeRepo,
		astrologerRepo: astrologerRepo,
		profileRepo:    profileRepo,
		genQueue:       genQueue,
	}
}

// CreateOrder checks the zodiac and price preconditions, inserts the
// pending order with an atomic credit debit, and hands the order id to
// the generation queue. The queued job id is returned to the caller.
func (o *OrderService) CreateOrder(ctx context.Context, accountID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	category := db_models.HoroscopeType(request.Category)
	if !category.Valid() {
		return nil, utils.ErrInvalidInput
	}

	astrologerID, err := uuid.Parse(request.AstrologerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile, err := o.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil || profile.ZodiacSign == "" {
		return nil, utils.ErrZodiacUnresolved
	}

	price, err := o.astrologerRepo.FindPrice(ctx, astrologerID, category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if price == nil {
		return nil, utils.ErrPriceNotFound
	}

	order := &db_models.Order{
		AccountID:    accountID,
		AstrologerID: astrologerID,
		Category:     category,
		Status:       db_models.OrderStatusPending,
		Cost:         price.Credits,
		Note:         request.Note,
	}

	if err := o.orderRepo.CreateWithDebit(ctx, order); err != nil {
		if err == utils.ErrInsufficientCredits {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	metrics.OrdersCreated.Inc()

	if err := o.genQueue.Enqueue(queue.GenerationJob{OrderID: order.ID}); err != nil {
		// The order stays pending; the internal trigger endpoint can
		// restart it.
		log.Printf("order %s: failed to enqueue generation job: %v", order.ID, err)
	}

	return &response_models.CreateOrderResponse{
		OrderID: order.ID.String(),
		JobID:   order.ID.String(),
		Status:  string(order.Status),
	}, nil
}

func (o *OrderService) CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) error {
	cancelled, err := o.orderRepo.CancelWithRefund(ctx, orderID, accountID)
	if err != nil {
		if err == utils.ErrOrderNotFound {
			return err
		}
		return utils.ErrDatabaseError
	}
	if !cancelled {
		return utils.ErrOrderNotPending
	}
	metrics.OrdersCancelled.Inc()
	return nil
}

func (o *OrderService) GetOrderById(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	order, err := o.orderRepo.FindById(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil || order.AccountID != accountID {
		return nil, utils.ErrOrderNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (o *OrderService) ListOrders(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.OrderResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	orders, err := o.orderRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}
	return result, nil
}

// GetHistory merges the user's orders and horoscopes into one feed of
// tagged items, newest first. Both sources are fetched up to the
// requested window and merged before slicing the page, so the global
// ordering holds across page boundaries.
func (o *OrderService) GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HistoryItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	// The newest page*pageSize rows of each source are enough to fill
	// any prefix of the merged feed up to this page.
	window := page * pageSize
	orders, err := o.orderRepo.ListByAccount(ctx, accountID, 1, window)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	horoscopes, err := o.horoscopeRepo.ListByAccount(ctx, accountID, 1, window)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.HistoryItem, 0, len(orders)+len(horoscopes))
	for i := range orders {
		items = append(items, response_models.NewOrderHistoryItem(toOrderResponse(&orders[i])))
	}
	for i := range horoscopes {
		items = append(items, response_models.NewHoroscopeHistoryItem(toHoroscopeResponse(&horoscopes[i])))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []response_models.HistoryItem{}, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}

func toOrderResponse(order *db_models.Order) response_models.OrderResponse {
	resp := response_models.OrderResponse{
		ID:             order.ID.String(),
		AstrologerID:   order.AstrologerID.String(),
		AstrologerName: order.Astrologer.DisplayName,
		Category:       string(order.Category),
		CategoryLabel:  utils.FormatHoroscopeType(order.Category),
		Status:         string(order.Status),
		StatusLabel:    utils.FormatOrderStatus(order.Status),
		Cost:           order.Cost,
		Note:           order.Note,
		CreatedAt:      order.CreatedAt,
		CompletedAt:    order.CompletedAt,
	}
	if order.HoroscopeID != nil {
		resp.HoroscopeID = order.HoroscopeID.String()
	}
	return resp
}

func toHoroscopeResponse(horoscope *db_models.Horoscope) response_models.HoroscopeResponse {
	return response_models.HoroscopeResponse{
		ID:             horoscope.ID.String(),
		OrderID:        horoscope.OrderID.String(),
		AstrologerName: horoscope.Astrologer.DisplayName,
		Category:       string(horoscope.Category),
		CategoryLabel:  utils.FormatHoroscopeType(horoscope.Category),
		Title:          horoscope.Title,
		Body:           horoscope.Body,
		ValidFrom:      horoscope.ValidFrom,
		ValidTo:        horoscope.ValidTo,
		CreatedAt:      horoscope.CreatedAt,
	}
}
